package builtin

import (
	"context"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type CreateAccountTool struct {
	svc *crm.Service
}

func NewCreateAccountTool(svc *crm.Service) *CreateAccountTool {
	return &CreateAccountTool{svc: svc}
}

func (t *CreateAccountTool) Name() string { return "create_account" }

func (t *CreateAccountTool) Description() string {
	return "Creates a new account (the owning principal for all business records)."
}

func (t *CreateAccountTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"account_id": strProp("Unique account identifier."),
		"name":       strProp("Display name for the account."),
		"email":      strProp("Email address."),
		"company":    strProp("Company name."),
		"phone":      strProp("Phone number."),
	}, "account_id", "name")
}

func (t *CreateAccountTool) Execute(ctx context.Context, _ tools.Session, params map[string]any) tools.Envelope {
	const action = "create_account"
	in := crm.AccountInput{
		ID:      stringParam(params, "account_id"),
		Name:    stringParam(params, "name"),
		Email:   stringParam(params, "email"),
		Company: stringParam(params, "company"),
		Phone:   stringParam(params, "phone"),
	}
	acct, err := t.svc.CreateAccount(ctx, in)
	if err != nil {
		return tools.FromError(action, "Failed to create account: "+in.Name, err)
	}
	return tools.Success(action, "Successfully created account: "+acct.Name, map[string]any{
		"account_id": acct.ID,
		"name":       acct.Name,
		"email":      acct.Email,
		"company":    acct.Company,
		"phone":      acct.Phone,
	})
}
