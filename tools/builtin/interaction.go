package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type LogInteractionTool struct {
	svc *crm.Service
}

func NewLogInteractionTool(svc *crm.Service) *LogInteractionTool {
	return &LogInteractionTool{svc: svc}
}

func (t *LogInteractionTool) Name() string { return "log_interaction" }

func (t *LogInteractionTool) Description() string {
	return "Logs an interaction with a contact. Invalid types fall back to 'note'."
}

func (t *LogInteractionTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_id":       intProp("ID of the contact."),
		"date":             strProp("Interaction date (YYYY-MM-DD); defaults to today."),
		"interaction_type": strProp("Type of interaction: call|email|meeting|note."),
		"summary":          strProp("Summary of the interaction."),
	}, "contact_id")
}

func (t *LogInteractionTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "log_interaction"
	contactID, ok := int64Param(params, "contact_id")
	if !ok {
		return tools.Errorf(action, "contact_id is required")
	}
	logged, err := t.svc.LogInteraction(ctx, sess.AccountID, crm.InteractionInput{
		ContactID: contactID,
		Date:      stringParam(params, "date"),
		Type:      stringParam(params, "interaction_type"),
		Summary:   stringParam(params, "summary"),
	})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to log interaction for contact %d", contactID), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully logged %s interaction with %s", logged.Type, logged.ContactName),
		map[string]any{
			"interaction_id": logged.ID,
			"contact_id":     logged.ContactID,
			"contact_name":   logged.ContactName,
			"date":           logged.Date,
			"type":           string(logged.Type),
			"summary":        logged.Summary,
		})
}

type ReadInteractionsTool struct {
	svc *crm.Service
}

func NewReadInteractionsTool(svc *crm.Service) *ReadInteractionsTool {
	return &ReadInteractionsTool{svc: svc}
}

func (t *ReadInteractionsTool) Name() string { return "read_interactions" }

func (t *ReadInteractionsTool) Description() string {
	return "Lists the interaction history for a contact, newest first."
}

func (t *ReadInteractionsTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_id": intProp("ID of the contact."),
	}, "contact_id")
}

func (t *ReadInteractionsTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "read_interactions"
	contactID, ok := int64Param(params, "contact_id")
	if !ok {
		return tools.Errorf(action, "contact_id is required")
	}
	contact, interactions, err := t.svc.Interactions(ctx, sess.AccountID, contactID)
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to retrieve interactions for contact %d", contactID), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d interactions with %s", len(interactions), contact.Name),
		map[string]any{
			"contact_id":         contact.ID,
			"contact_name":       contact.Name,
			"interactions_count": len(interactions),
			"interactions":       interactions,
		})
}

type LogInteractionByContactNameTool struct {
	svc *crm.Service
}

func NewLogInteractionByContactNameTool(svc *crm.Service) *LogInteractionByContactNameTool {
	return &LogInteractionByContactNameTool{svc: svc}
}

func (t *LogInteractionByContactNameTool) Name() string { return "log_interaction_by_contact_name" }

func (t *LogInteractionByContactNameTool) Description() string {
	return "Logs an interaction using the contact's name instead of id."
}

func (t *LogInteractionByContactNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_name":     strProp("Name of the contact."),
		"date":             strProp("Interaction date (YYYY-MM-DD); defaults to today."),
		"interaction_type": strProp("Type of interaction: call|email|meeting|note."),
		"summary":          strProp("Summary of the interaction."),
	}, "contact_name")
}

func (t *LogInteractionByContactNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "log_interaction_by_contact_name"
	name := stringParam(params, "contact_name")
	if name == "" {
		return tools.Errorf(action, "contact_name is required")
	}
	logged, err := crm.WithContactByName(ctx, t.svc, sess.AccountID, name,
		func(c crm.Contact) (crm.LoggedInteraction, error) {
			return t.svc.LogInteraction(ctx, sess.AccountID, crm.InteractionInput{
				ContactID: c.ID,
				Date:      stringParam(params, "date"),
				Type:      stringParam(params, "interaction_type"),
				Summary:   stringParam(params, "summary"),
			})
		})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Cannot find contact %q to log interaction", name), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully logged %s interaction with %s", logged.Type, logged.ContactName),
		map[string]any{
			"interaction_id": logged.ID,
			"contact_id":     logged.ContactID,
			"contact_name":   logged.ContactName,
			"date":           logged.Date,
			"type":           string(logged.Type),
			"summary":        logged.Summary,
		})
}

type ReadInteractionsByContactNameTool struct {
	svc *crm.Service
}

func NewReadInteractionsByContactNameTool(svc *crm.Service) *ReadInteractionsByContactNameTool {
	return &ReadInteractionsByContactNameTool{svc: svc}
}

func (t *ReadInteractionsByContactNameTool) Name() string { return "read_interactions_by_contact_name" }

func (t *ReadInteractionsByContactNameTool) Description() string {
	return "Lists a contact's interaction history using their name instead of id."
}

func (t *ReadInteractionsByContactNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_name": strProp("Name of the contact."),
	}, "contact_name")
}

func (t *ReadInteractionsByContactNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "read_interactions_by_contact_name"
	name := stringParam(params, "contact_name")
	if name == "" {
		return tools.Errorf(action, "contact_name is required")
	}
	type history struct {
		contact      crm.Contact
		interactions []crm.Interaction
	}
	h, err := crm.WithContactByName(ctx, t.svc, sess.AccountID, name,
		func(c crm.Contact) (history, error) {
			contact, interactions, err := t.svc.Interactions(ctx, sess.AccountID, c.ID)
			return history{contact: contact, interactions: interactions}, err
		})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Cannot find contact %q to read interactions", name), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d interactions with %s", len(h.interactions), h.contact.Name),
		map[string]any{
			"contact_id":         h.contact.ID,
			"contact_name":       h.contact.Name,
			"interactions_count": len(h.interactions),
			"interactions":       h.interactions,
		})
}
