package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type FindContactByNameTool struct {
	svc *crm.Service
}

func NewFindContactByNameTool(svc *crm.Service) *FindContactByNameTool {
	return &FindContactByNameTool{svc: svc}
}

func (t *FindContactByNameTool) Name() string { return "find_contact_by_name" }

func (t *FindContactByNameTool) Description() string {
	return "Finds contacts by name (case-insensitive partial match)."
}

func (t *FindContactByNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"name": strProp("Contact name, full or partial."),
	}, "name")
}

func (t *FindContactByNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "find_contact_by_name"
	name := stringParam(params, "name")
	contacts, err := t.svc.FindContactsByName(ctx, sess.AccountID, name)
	if err != nil {
		return tools.FromError(action, "Failed to search for contact: "+name, err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d contacts matching %q", len(contacts), name),
		map[string]any{
			"search_term":   name,
			"matches_found": len(contacts),
			"contacts":      contacts,
		})
}

type FindContactByEmailTool struct {
	svc *crm.Service
}

func NewFindContactByEmailTool(svc *crm.Service) *FindContactByEmailTool {
	return &FindContactByEmailTool{svc: svc}
}

func (t *FindContactByEmailTool) Name() string { return "find_contact_by_email" }

func (t *FindContactByEmailTool) Description() string {
	return "Finds contacts by email address (partial match)."
}

func (t *FindContactByEmailTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"email": strProp("Email address, full or partial."),
	}, "email")
}

func (t *FindContactByEmailTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "find_contact_by_email"
	email := stringParam(params, "email")
	contacts, err := t.svc.FindContactsByEmail(ctx, sess.AccountID, email)
	if err != nil {
		return tools.FromError(action, "Failed to search for email: "+email, err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d contacts with email containing %q", len(contacts), email),
		map[string]any{
			"search_email":  email,
			"matches_found": len(contacts),
			"contacts":      contacts,
		})
}

type FindContactByCompanyTool struct {
	svc *crm.Service
}

func NewFindContactByCompanyTool(svc *crm.Service) *FindContactByCompanyTool {
	return &FindContactByCompanyTool{svc: svc}
}

func (t *FindContactByCompanyTool) Name() string { return "find_contact_by_company" }

func (t *FindContactByCompanyTool) Description() string {
	return "Finds contacts by company name (partial match)."
}

func (t *FindContactByCompanyTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"company": strProp("Company name, full or partial."),
	}, "company")
}

func (t *FindContactByCompanyTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "find_contact_by_company"
	company := stringParam(params, "company")
	contacts, err := t.svc.FindContactsByCompany(ctx, sess.AccountID, company)
	if err != nil {
		return tools.FromError(action, "Failed to search for company: "+company, err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d contacts from companies matching %q", len(contacts), company),
		map[string]any{
			"search_company": company,
			"matches_found":  len(contacts),
			"contacts":       contacts,
		})
}
