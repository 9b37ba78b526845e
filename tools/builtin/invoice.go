package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type CreateInvoiceTool struct {
	svc *crm.Service
}

func NewCreateInvoiceTool(svc *crm.Service) *CreateInvoiceTool {
	return &CreateInvoiceTool{svc: svc}
}

func (t *CreateInvoiceTool) Name() string { return "create_invoice" }

func (t *CreateInvoiceTool) Description() string {
	return "Creates an invoice for an existing contact. Dates default to today, status to 'unpaid'."
}

func (t *CreateInvoiceTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_id":   intProp("ID of the contact this invoice is for."),
		"issue_date":   strProp("Issue date (YYYY-MM-DD)."),
		"due_date":     strProp("Due date (YYYY-MM-DD)."),
		"total_amount": numProp("Invoice total amount."),
		"status":       strProp("Invoice status: unpaid|paid|overdue|cancelled."),
		"notes":        strProp("Additional notes."),
	}, "contact_id", "total_amount")
}

func (t *CreateInvoiceTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_invoice"
	contactID, ok := int64Param(params, "contact_id")
	if !ok {
		return tools.Errorf(action, "contact_id is required")
	}
	amount, ok := floatParam(params, "total_amount")
	if !ok {
		return tools.Errorf(action, "total_amount is required")
	}
	detail, err := t.svc.CreateInvoice(ctx, sess.AccountID, crm.InvoiceInput{
		ContactID:   contactID,
		IssueDate:   stringParam(params, "issue_date"),
		DueDate:     stringParam(params, "due_date"),
		TotalAmount: amount,
		Status:      stringParam(params, "status"),
		Notes:       stringParam(params, "notes"),
	})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to create invoice for contact %d", contactID), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully created $%.2f invoice for %s", detail.TotalAmount, detail.ContactName),
		invoiceFields(detail))
}

func invoiceFields(detail crm.InvoiceDetail) map[string]any {
	return map[string]any{
		"invoice_id":     detail.ID,
		"contact_id":     detail.ContactID,
		"contact_name":   detail.ContactName,
		"company":        detail.ContactCompany,
		"total_amount":   detail.TotalAmount,
		"invoice_status": string(detail.Status),
		"issue_date":     detail.IssueDate,
		"due_date":       detail.DueDate,
		"notes":          detail.Notes,
	}
}

type ReadInvoiceTool struct {
	svc *crm.Service
}

func NewReadInvoiceTool(svc *crm.Service) *ReadInvoiceTool {
	return &ReadInvoiceTool{svc: svc}
}

func (t *ReadInvoiceTool) Name() string { return "read_invoice" }

func (t *ReadInvoiceTool) Description() string {
	return "Reads one invoice with its contact details."
}

func (t *ReadInvoiceTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"invoice_id": intProp("ID of the invoice to retrieve."),
	}, "invoice_id")
}

func (t *ReadInvoiceTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "read_invoice"
	id, ok := int64Param(params, "invoice_id")
	if !ok {
		return tools.Errorf(action, "invoice_id is required")
	}
	detail, err := t.svc.GetInvoice(ctx, sess.AccountID, id)
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to retrieve invoice %d", id), err)
	}
	return tools.Success(action, fmt.Sprintf("Retrieved invoice %d", id), map[string]any{
		"invoice": detail,
	})
}

type UpdateInvoiceTool struct {
	svc *crm.Service
}

func NewUpdateInvoiceTool(svc *crm.Service) *UpdateInvoiceTool {
	return &UpdateInvoiceTool{svc: svc}
}

func (t *UpdateInvoiceTool) Name() string { return "update_invoice" }

func (t *UpdateInvoiceTool) Description() string {
	return "Updates an existing invoice. Only supplied fields are applied."
}

func (t *UpdateInvoiceTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"invoice_id":   intProp("ID of the invoice to update."),
		"issue_date":   strProp("Updated issue date (YYYY-MM-DD)."),
		"due_date":     strProp("Updated due date (YYYY-MM-DD)."),
		"total_amount": numProp("Updated total amount."),
		"status":       strProp("Updated status: unpaid|paid|overdue|cancelled."),
		"notes":        strProp("Updated notes."),
	}, "invoice_id")
}

func (t *UpdateInvoiceTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "update_invoice"
	id, ok := int64Param(params, "invoice_id")
	if !ok {
		return tools.Errorf(action, "invoice_id is required")
	}
	invoice, err := t.svc.UpdateInvoice(ctx, sess.AccountID, id, crm.InvoiceUpdate{
		IssueDate:   optionalString(params, "issue_date"),
		DueDate:     optionalString(params, "due_date"),
		TotalAmount: optionalFloat(params, "total_amount"),
		Status:      optionalString(params, "status"),
		Notes:       optionalString(params, "notes"),
	})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to update invoice %d", id), err)
	}
	return tools.Success(action, fmt.Sprintf("Successfully updated invoice %d", id), map[string]any{
		"invoice_id": invoice.ID,
		"invoice":    invoice,
	})
}

type MarkInvoicePaidTool struct {
	svc *crm.Service
}

func NewMarkInvoicePaidTool(svc *crm.Service) *MarkInvoicePaidTool {
	return &MarkInvoicePaidTool{svc: svc}
}

func (t *MarkInvoicePaidTool) Name() string { return "mark_invoice_paid" }

func (t *MarkInvoicePaidTool) Description() string {
	return "Marks an invoice as paid and records the matching revenue entry. Repeating the call reports a warning."
}

func (t *MarkInvoicePaidTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"invoice_id": intProp("ID of the invoice to mark as paid."),
	}, "invoice_id")
}

func (t *MarkInvoicePaidTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "mark_invoice_paid"
	id, ok := int64Param(params, "invoice_id")
	if !ok {
		return tools.Errorf(action, "invoice_id is required")
	}
	invoice, err := t.svc.MarkInvoicePaid(ctx, sess.AccountID, id)
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Failed to mark invoice %d as paid", id), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully marked invoice %d as paid ($%.2f)", id, invoice.TotalAmount),
		map[string]any{
			"invoice_id": invoice.ID,
			"amount":     invoice.TotalAmount,
		})
}

type CreateInvoiceByContactNameTool struct {
	svc *crm.Service
}

func NewCreateInvoiceByContactNameTool(svc *crm.Service) *CreateInvoiceByContactNameTool {
	return &CreateInvoiceByContactNameTool{svc: svc}
}

func (t *CreateInvoiceByContactNameTool) Name() string { return "create_invoice_by_contact_name" }

func (t *CreateInvoiceByContactNameTool) Description() string {
	return "Creates an invoice using the contact's name instead of id. Reports candidates when the name is ambiguous."
}

func (t *CreateInvoiceByContactNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_name": strProp("Name of the contact."),
		"total_amount": numProp("Invoice total amount."),
		"issue_date":   strProp("Issue date (YYYY-MM-DD)."),
		"due_date":     strProp("Due date (YYYY-MM-DD)."),
		"status":       strProp("Invoice status: unpaid|paid|overdue|cancelled."),
		"notes":        strProp("Additional notes."),
	}, "contact_name", "total_amount")
}

func (t *CreateInvoiceByContactNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "create_invoice_by_contact_name"
	name := stringParam(params, "contact_name")
	if name == "" {
		return tools.Errorf(action, "contact_name is required")
	}
	amount, ok := floatParam(params, "total_amount")
	if !ok {
		return tools.Errorf(action, "total_amount is required")
	}
	detail, err := crm.WithContactByName(ctx, t.svc, sess.AccountID, name,
		func(c crm.Contact) (crm.InvoiceDetail, error) {
			return t.svc.CreateInvoice(ctx, sess.AccountID, crm.InvoiceInput{
				ContactID:   c.ID,
				IssueDate:   stringParam(params, "issue_date"),
				DueDate:     stringParam(params, "due_date"),
				TotalAmount: amount,
				Status:      stringParam(params, "status"),
				Notes:       stringParam(params, "notes"),
			})
		})
	if err != nil {
		return tools.FromError(action, fmt.Sprintf("Cannot find contact %q to create invoice", name), err)
	}
	return tools.Success(action,
		fmt.Sprintf("Successfully created $%.2f invoice for %s", detail.TotalAmount, detail.ContactName),
		invoiceFields(detail))
}

type FindInvoicesByContactNameTool struct {
	svc *crm.Service
}

func NewFindInvoicesByContactNameTool(svc *crm.Service) *FindInvoicesByContactNameTool {
	return &FindInvoicesByContactNameTool{svc: svc}
}

func (t *FindInvoicesByContactNameTool) Name() string { return "find_invoices_by_contact_name" }

func (t *FindInvoicesByContactNameTool) Description() string {
	return "Lists invoices for contacts whose name matches, newest first."
}

func (t *FindInvoicesByContactNameTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"contact_name": strProp("Name of the contact, full or partial."),
	}, "contact_name")
}

func (t *FindInvoicesByContactNameTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "find_invoices_by_contact_name"
	name := stringParam(params, "contact_name")
	invoices, err := t.svc.FindInvoicesByContactName(ctx, sess.AccountID, name)
	if err != nil {
		return tools.FromError(action, "Failed to find invoices for: "+name, err)
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d invoices for contacts matching %q", len(invoices), name),
		map[string]any{
			"contact_name":   name,
			"invoices_found": len(invoices),
			"invoices":       invoices,
		})
}

type FindInvoicesByStatusTool struct {
	svc *crm.Service
}

func NewFindInvoicesByStatusTool(svc *crm.Service) *FindInvoicesByStatusTool {
	return &FindInvoicesByStatusTool{svc: svc}
}

func (t *FindInvoicesByStatusTool) Name() string { return "find_invoices_by_status" }

func (t *FindInvoicesByStatusTool) Description() string {
	return "Lists invoices with the given status, ordered by due date."
}

func (t *FindInvoicesByStatusTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"status": strProp("Invoice status: unpaid|paid|overdue|cancelled."),
	}, "status")
}

func (t *FindInvoicesByStatusTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "find_invoices_by_status"
	status := stringParam(params, "status")
	invoices, err := t.svc.FindInvoicesByStatus(ctx, sess.AccountID, status)
	if err != nil {
		return tools.FromError(action, "Failed to find "+status+" invoices", err)
	}
	var total float64
	for _, inv := range invoices {
		total += inv.TotalAmount
	}
	return tools.Success(action,
		fmt.Sprintf("Found %d %s invoices totaling $%.2f", len(invoices), status, total),
		map[string]any{
			"invoice_status": status,
			"invoices_found": len(invoices),
			"total_amount":   total,
			"invoices":       invoices,
		})
}
