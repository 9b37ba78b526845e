package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type CreateRevenueTool struct {
	svc *crm.Service
}

func NewCreateRevenueTool(svc *crm.Service) *CreateRevenueTool {
	return &CreateRevenueTool{svc: svc}
}

func (t *CreateRevenueTool) Name() string { return "create_revenue" }

func (t *CreateRevenueTool) Description() string {
	return "Records a revenue entry for an invoice. Warns instead of duplicating when one already exists."
}

func (t *CreateRevenueTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"invoice_id": intProp("ID of the invoice this revenue is for."),
		"amount":     numProp("Revenue amount."),
		"date":       strProp("Revenue date (YYYY-MM-DD); defaults to today."),
	}, "invoice_id", "amount")
}

func (t *CreateRevenueTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_revenue"
	invoiceID, ok := int64Param(params, "invoice_id")
	if !ok {
		return tools.Errorf(action, "invoice_id is required")
	}
	amount, ok := floatParam(params, "amount")
	if !ok {
		return tools.Errorf(action, "amount is required")
	}
	rev, err := t.svc.RecordRevenue(ctx, sess.AccountID, invoiceID, amount, stringParam(params, "date"))
	if err != nil {
		return tools.FromError(action,
			fmt.Sprintf("Failed to record revenue for invoice %d", invoiceID), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully recorded $%.2f revenue for invoice %d", rev.Amount, invoiceID),
		map[string]any{
			"revenue_id": rev.ID,
			"invoice_id": rev.InvoiceID,
			"amount":     rev.Amount,
			"date":       rev.Date,
		})
}

type CreateExpenseTool struct {
	svc *crm.Service
}

func NewCreateExpenseTool(svc *crm.Service) *CreateExpenseTool {
	return &CreateExpenseTool{svc: svc}
}

func (t *CreateExpenseTool) Name() string { return "create_expense" }

func (t *CreateExpenseTool) Description() string {
	return "Records a business expense."
}

func (t *CreateExpenseTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"amount":      numProp("Expense amount."),
		"category":    strProp("Expense category."),
		"description": strProp("Description of the expense."),
		"date":        strProp("Expense date (YYYY-MM-DD); defaults to today."),
	}, "amount", "category")
}

func (t *CreateExpenseTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_expense"
	amount, ok := floatParam(params, "amount")
	if !ok {
		return tools.Errorf(action, "amount is required")
	}
	category := stringParam(params, "category")
	expense, err := t.svc.RecordExpense(ctx, sess.AccountID, crm.ExpenseInput{
		Amount:      amount,
		Category:    category,
		Description: stringParam(params, "description"),
		Date:        stringParam(params, "date"),
	})
	if err != nil {
		return tools.FromError(action, "Failed to create expense: "+category, err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully recorded $%.2f expense for %s", expense.Amount, expense.Category),
		map[string]any{
			"expense_id":  expense.ID,
			"amount":      expense.Amount,
			"category":    expense.Category,
			"description": expense.Description,
			"date":        expense.Date,
		})
}
