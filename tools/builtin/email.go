package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type SendEmailTool struct {
	svc *crm.Service
}

func NewSendEmailTool(svc *crm.Service) *SendEmailTool {
	return &SendEmailTool{svc: svc}
}

func (t *SendEmailTool) Name() string { return "send_email" }

func (t *SendEmailTool) Description() string {
	return "Sends an email to a contact and logs it as an interaction."
}

func (t *SendEmailTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_id": intProp("ID of the contact to email."),
		"subject":    strProp("Email subject line."),
		"body":       strProp("Email body."),
	}, "contact_id", "subject")
}

func (t *SendEmailTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "send_email"
	contactID, ok := int64Param(params, "contact_id")
	if !ok {
		return tools.Errorf(action, "contact_id is required")
	}
	subject := stringParam(params, "subject")
	if subject == "" {
		return tools.Errorf(action, "subject is required")
	}
	result, err := t.svc.SendEmail(ctx, sess.AccountID, contactID, subject, stringParam(params, "body"))
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to send email to contact %d", contactID), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully sent email to %s (%s)", result.ContactName, result.Email),
		map[string]any{
			"contact_id":   result.ContactID,
			"contact_name": result.ContactName,
			"email":        result.Email,
			"subject":      result.Subject,
		})
}

type SendEmailByContactNameTool struct {
	svc *crm.Service
}

func NewSendEmailByContactNameTool(svc *crm.Service) *SendEmailByContactNameTool {
	return &SendEmailByContactNameTool{svc: svc}
}

func (t *SendEmailByContactNameTool) Name() string { return "send_email_by_contact_name" }

func (t *SendEmailByContactNameTool) Description() string {
	return "Sends an email using the contact's name instead of id."
}

func (t *SendEmailByContactNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_name": strProp("Name of the contact to email."),
		"subject":      strProp("Email subject line."),
		"body":         strProp("Email body."),
	}, "contact_name", "subject")
}

func (t *SendEmailByContactNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "send_email_by_contact_name"
	name := stringParam(params, "contact_name")
	if name == "" {
		return tools.Errorf(action, "contact_name is required")
	}
	subject := stringParam(params, "subject")
	if subject == "" {
		return tools.Errorf(action, "subject is required")
	}
	result, err := crm.WithContactByName(ctx, t.svc, sess.AccountID, name,
		func(c crm.Contact) (crm.EmailResult, error) {
			return t.svc.SendEmail(ctx, sess.AccountID, c.ID, subject, stringParam(params, "body"))
		})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Cannot send email to contact %q", name), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully sent email to %s (%s)", result.ContactName, result.Email),
		map[string]any{
			"contact_id":   result.ContactID,
			"contact_name": result.ContactName,
			"email":        result.Email,
			"subject":      result.Subject,
		})
}
