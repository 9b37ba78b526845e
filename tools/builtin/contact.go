package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type CreateContactTool struct {
	svc *crm.Service
}

func NewCreateContactTool(svc *crm.Service) *CreateContactTool {
	return &CreateContactTool{svc: svc}
}

func (t *CreateContactTool) Name() string { return "create_contact" }

func (t *CreateContactTool) Description() string {
	return "Adds a new contact. Invalid statuses fall back to 'lead'."
}

func (t *CreateContactTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"name":    strProp("Contact's full name."),
		"email":   strProp("Email address."),
		"phone":   strProp("Phone number."),
		"company": strProp("Company name."),
		"notes":   strProp("Free-form notes."),
		"status":  strProp("Contact status: lead|prospect|client|inactive."),
	}, "name")
}

func (t *CreateContactTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_contact"
	in := crm.ContactInput{
		Name:    stringParam(params, "name"),
		Email:   stringParam(params, "email"),
		Phone:   stringParam(params, "phone"),
		Company: stringParam(params, "company"),
		Notes:   stringParam(params, "notes"),
		Status:  stringParam(params, "status"),
	}
	contact, err := t.svc.CreateContact(ctx, sess.AccountID, in)
	if err != nil {
		return tools.FromError(action, "Failed to add contact: "+in.Name, err)
	}
	msg := "Successfully added contact: " + contact.Name
	if contact.Company != "" {
		msg += " from " + contact.Company
	}
	return tools.Success(action, msg, map[string]any{
		"contact_id":     contact.ID,
		"name":           contact.Name,
		"email":          contact.Email,
		"company":        contact.Company,
		"phone":          contact.Phone,
		"notes":          contact.Notes,
		"contact_status": string(contact.Status),
	})
}

type ReadAllContactsTool struct {
	svc *crm.Service
}

func NewReadAllContactsTool(svc *crm.Service) *ReadAllContactsTool {
	return &ReadAllContactsTool{svc: svc}
}

func (t *ReadAllContactsTool) Name() string { return "read_all_contacts" }

func (t *ReadAllContactsTool) Description() string {
	return "Lists every contact in the calling account."
}

func (t *ReadAllContactsTool) ParameterSchema() string {
	return objectSchema(map[string]any{})
}

func (t *ReadAllContactsTool) Execute(ctx context.Context, sess tools.Session, _ map[string]any) tools.Envelope {
	const action = "read_all_contacts"
	contacts, err := t.svc.ListContacts(ctx, sess.AccountID)
	if err != nil {
		return tools.FromError(action, "Failed to retrieve contacts", err)
	}
	return tools.Success(action, fmt.Sprintf("Retrieved %d contacts", len(contacts)), map[string]any{
		"contacts_count": len(contacts),
		"contacts":       contacts,
	})
}

type UpdateContactTool struct {
	svc *crm.Service
}

func NewUpdateContactTool(svc *crm.Service) *UpdateContactTool {
	return &UpdateContactTool{svc: svc}
}

func (t *UpdateContactTool) Name() string { return "update_contact" }

func (t *UpdateContactTool) Description() string {
	return "Updates an existing contact by id. Only supplied fields are applied."
}

func (t *UpdateContactTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_id": intProp("ID of the contact to update."),
		"name":       strProp("Updated name."),
		"email":      strProp("Updated email."),
		"phone":      strProp("Updated phone."),
		"company":    strProp("Updated company."),
		"notes":      strProp("Updated notes."),
		"status":     strProp("Updated status: lead|prospect|client|inactive."),
	}, "contact_id")
}

func (t *UpdateContactTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "update_contact"
	id, ok := int64Param(params, "contact_id")
	if !ok {
		return tools.Errorf(action, "contact_id is required")
	}
	upd := contactUpdateFromParams(params)
	contact, err := t.svc.UpdateContact(ctx, sess.AccountID, id, upd)
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to update contact %d", id), err)
	}
	return tools.Success(action, "Successfully updated contact: "+contact.Name, map[string]any{
		"contact_id":      contact.ID,
		"updated_contact": contact,
	})
}

func contactUpdateFromParams(params map[string]any) crm.ContactUpdate {
	return crm.ContactUpdate{
		Name:    optionalString(params, "name"),
		Email:   optionalString(params, "email"),
		Phone:   optionalString(params, "phone"),
		Company: optionalString(params, "company"),
		Notes:   optionalString(params, "notes"),
		Status:  optionalString(params, "status"),
	}
}

type UpdateContactByNameTool struct {
	svc *crm.Service
}

func NewUpdateContactByNameTool(svc *crm.Service) *UpdateContactByNameTool {
	return &UpdateContactByNameTool{svc: svc}
}

func (t *UpdateContactByNameTool) Name() string { return "update_contact_by_name" }

func (t *UpdateContactByNameTool) Description() string {
	return "Updates a contact by name instead of id. Reports candidates when the name is ambiguous."
}

func (t *UpdateContactByNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"name":     strProp("Current name of the contact to update."),
		"new_name": strProp("New name for the contact."),
		"email":    strProp("Updated email."),
		"phone":    strProp("Updated phone."),
		"company":  strProp("Updated company."),
		"notes":    strProp("Updated notes."),
		"status":   strProp("Updated status: lead|prospect|client|inactive."),
	}, "name")
}

func (t *UpdateContactByNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "update_contact_by_name"
	name := stringParam(params, "name")
	if name == "" {
		return tools.Errorf(action, "name is required")
	}
	upd := contactUpdateFromParams(params)
	upd.Name = optionalString(params, "new_name")

	contact, err := crm.WithContactByName(ctx, t.svc, sess.AccountID, name,
		func(c crm.Contact) (crm.Contact, error) {
			return t.svc.UpdateContact(ctx, sess.AccountID, c.ID, upd)
		})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Cannot update contact %q", name), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully updated contact %q to %q", name, contact.Name),
		map[string]any{
			"contact_id":      contact.ID,
			"updated_contact": contact,
		})
}
