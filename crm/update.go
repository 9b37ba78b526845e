package crm

import "strings"

// Update structs carry optional fields for partial updates. A nil pointer (or an
// empty trimmed string) leaves the stored value untouched; only supplied fields
// reach the UPDATE statement.

type ContactUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
	Status  *string
}

func (u ContactUpdate) columns() map[string]any {
	cols := map[string]any{}
	putString(cols, "name", u.Name)
	putString(cols, "email", u.Email)
	putString(cols, "phone", u.Phone)
	putString(cols, "company", u.Company)
	putString(cols, "notes", u.Notes)
	if u.Status != nil && strings.TrimSpace(*u.Status) != "" {
		// Invalid statuses are dropped rather than defaulted: an update must
		// never overwrite a valid stored status with the fallback.
		if s := strings.ToLower(strings.TrimSpace(*u.Status)); isContactStatus(s) {
			cols["status"] = s
		}
	}
	return cols
}

type InvoiceUpdate struct {
	IssueDate   *string
	DueDate     *string
	TotalAmount *float64
	Status      *string
	Notes       *string
}

func (u InvoiceUpdate) columns() map[string]any {
	cols := map[string]any{}
	putString(cols, "issue_date", u.IssueDate)
	putString(cols, "due_date", u.DueDate)
	if u.TotalAmount != nil && *u.TotalAmount > 0 {
		cols["total_amount"] = *u.TotalAmount
	}
	if u.Status != nil && strings.TrimSpace(*u.Status) != "" {
		if s := strings.ToLower(strings.TrimSpace(*u.Status)); isInvoiceStatus(s) {
			cols["status"] = s
		}
	}
	putString(cols, "notes", u.Notes)
	return cols
}

func putString(cols map[string]any, column string, v *string) {
	if v == nil {
		return
	}
	if s := strings.TrimSpace(*v); s != "" {
		cols[column] = s
	}
}

func isContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactLead, ContactProspect, ContactClient, ContactInactive:
		return true
	}
	return false
}

func isInvoiceStatus(s string) bool {
	switch InvoiceStatus(s) {
	case InvoiceUnpaid, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}
