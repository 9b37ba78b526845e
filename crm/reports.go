package crm

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

type ReportKind string

const (
	ReportRevenue      ReportKind = "revenue"
	ReportExpenses     ReportKind = "expenses"
	ReportContacts     ReportKind = "contacts"
	ReportInvoices     ReportKind = "invoices"
	ReportInteractions ReportKind = "interactions"
	ReportProfitLoss   ReportKind = "profit_loss"
)

// Report is one generated summary. Fields carries the kind-specific payload and
// is flattened into the response envelope by the tool layer.
type Report struct {
	Kind    ReportKind
	Period  string
	Message string
	Fields  map[string]any
}

// RevenueEntry is a revenue row joined with its invoice's contact.
type RevenueEntry struct {
	Revenue
	ContactID   *int64 `gorm:"column:contact_id" json:"contact_id,omitempty"`
	ContactName string `gorm:"column:contact_name" json:"contact_name,omitempty"`
	Company     string `gorm:"column:company" json:"company,omitempty"`
}

func currency(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// GenerateReport computes the summary for one report kind. The period is a
// caller-supplied label carried through on the payload; rows are not filtered
// by it.
func (s *Service) GenerateReport(ctx context.Context, accountID string, kind ReportKind, period string) (Report, error) {
	if err := s.ready(); err != nil {
		return Report{}, err
	}
	switch ReportKind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case ReportRevenue:
		return s.revenueReport(ctx, accountID, period)
	case ReportExpenses:
		return s.expenseReport(ctx, accountID, period)
	case ReportContacts:
		return s.contactReport(ctx, accountID, period)
	case ReportInvoices:
		return s.invoiceReport(ctx, accountID, period)
	case ReportInteractions:
		return s.interactionReport(ctx, accountID, period)
	case ReportProfitLoss, "profit-and-loss", "profit_and_loss":
		pl, err := s.ProfitLoss(ctx, accountID)
		if err != nil {
			return Report{}, err
		}
		return Report{
			Kind:    ReportProfitLoss,
			Period:  period,
			Message: fmt.Sprintf("Profit & loss generated: %s net (%s)", currency(pl.NetProfit), pl.FinancialStatus),
			Fields: map[string]any{
				"total_revenue":    pl.TotalRevenue,
				"total_expenses":   pl.TotalExpenses,
				"net_profit":       pl.NetProfit,
				"profit_margin":    pl.ProfitMargin,
				"financial_status": pl.FinancialStatus,
			},
		}, nil
	default:
		return Report{}, fmt.Errorf("unknown report type: %s", kind)
	}
}

func (s *Service) revenueReport(ctx context.Context, accountID, period string) (Report, error) {
	entries := []RevenueEntry{}
	err := s.db.WithContext(ctx).Table("revenue").
		Select("revenue.*, invoice.contact_id AS contact_id, contact.name AS contact_name, contact.company AS company").
		Joins("JOIN invoice ON invoice.id = revenue.invoice_id").
		Joins("LEFT JOIN contact ON contact.id = invoice.contact_id").
		Where("invoice.account_id = ?", strings.TrimSpace(accountID)).
		Find(&entries).Error
	if err != nil {
		return Report{}, err
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	average := 0.0
	if len(entries) > 0 {
		average = total / float64(len(entries))
	}
	return Report{
		Kind:    ReportRevenue,
		Period:  period,
		Message: fmt.Sprintf("Revenue report generated: %s total", currency(total)),
		Fields: map[string]any{
			"total_revenue":   total,
			"revenue_entries": len(entries),
			"average_revenue": average,
			"revenue_details": entries,
		},
	}, nil
}

func (s *Service) expenseReport(ctx context.Context, accountID, period string) (Report, error) {
	expenses := []Expense{}
	err := s.db.WithContext(ctx).
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Find(&expenses).Error
	if err != nil {
		return Report{}, err
	}
	var total float64
	categories := map[string]float64{}
	for _, e := range expenses {
		total += e.Amount
		categories[e.Category] += e.Amount
	}
	return Report{
		Kind:    ReportExpenses,
		Period:  period,
		Message: fmt.Sprintf("Expense report generated: %s total", currency(total)),
		Fields: map[string]any{
			"total_expenses":  total,
			"expense_count":   len(expenses),
			"categories":      categories,
			"expense_details": expenses,
		},
	}, nil
}

func (s *Service) contactReport(ctx context.Context, accountID, period string) (Report, error) {
	contacts, err := s.ListContacts(ctx, accountID)
	if err != nil {
		return Report{}, err
	}
	statusCounts := map[string]int{}
	for _, c := range contacts {
		statusCounts[string(c.Status)]++
	}
	return Report{
		Kind:    ReportContacts,
		Period:  period,
		Message: fmt.Sprintf("Contact report generated: %d total contacts", len(contacts)),
		Fields: map[string]any{
			"total_contacts":   len(contacts),
			"status_breakdown": statusCounts,
			"contact_details":  contacts,
		},
	}, nil
}

func (s *Service) invoiceReport(ctx context.Context, accountID, period string) (Report, error) {
	invoices := []InvoiceDetail{}
	err := s.db.WithContext(ctx).Table("invoice").
		Select(invoiceDetailSelect).
		Joins("LEFT JOIN contact ON contact.id = invoice.contact_id").
		Where("invoice.account_id = ?", strings.TrimSpace(accountID)).
		Find(&invoices).Error
	if err != nil {
		return Report{}, err
	}
	statusCounts := map[string]int{}
	statusAmounts := map[string]float64{}
	var total float64
	for _, inv := range invoices {
		statusCounts[string(inv.Status)]++
		statusAmounts[string(inv.Status)] += inv.TotalAmount
		total += inv.TotalAmount
	}
	return Report{
		Kind:    ReportInvoices,
		Period:  period,
		Message: fmt.Sprintf("Invoice report generated: %d invoices, %s total", len(invoices), currency(total)),
		Fields: map[string]any{
			"total_invoices":  len(invoices),
			"total_amount":    total,
			"status_counts":   statusCounts,
			"status_amounts":  statusAmounts,
			"invoice_details": invoices,
		},
	}, nil
}

func (s *Service) interactionReport(ctx context.Context, accountID, period string) (Report, error) {
	type interactionEntry struct {
		Interaction
		ContactName string `gorm:"column:contact_name" json:"contact_name,omitempty"`
		Company     string `gorm:"column:company" json:"company,omitempty"`
	}
	entries := []interactionEntry{}
	err := s.db.WithContext(ctx).Table("interaction").
		Select("interaction.*, contact.name AS contact_name, contact.company AS company").
		Joins("LEFT JOIN contact ON contact.id = interaction.contact_id").
		Where("interaction.account_id = ?", strings.TrimSpace(accountID)).
		Find(&entries).Error
	if err != nil {
		return Report{}, err
	}
	typeCounts := map[string]int{}
	for _, e := range entries {
		typeCounts[string(e.Type)]++
	}
	return Report{
		Kind:    ReportInteractions,
		Period:  period,
		Message: fmt.Sprintf("Interaction report generated: %d total interactions", len(entries)),
		Fields: map[string]any{
			"total_interactions":  len(entries),
			"type_breakdown":      typeCounts,
			"interaction_details": entries,
		},
	}, nil
}

// ProfitLossReport is net revenue minus expenses with a derived status tag.
type ProfitLossReport struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetProfit       float64 `json:"net_profit"`
	ProfitMargin    float64 `json:"profit_margin"`
	FinancialStatus string  `json:"financial_status"`
}

// ProfitLoss computes net = revenue - expenses. The margin is 0 when revenue is
// 0 so a fresh account never divides by zero.
func (s *Service) ProfitLoss(ctx context.Context, accountID string) (ProfitLossReport, error) {
	if err := s.ready(); err != nil {
		return ProfitLossReport{}, err
	}
	db := s.db.WithContext(ctx)

	var revenue float64
	err := db.Table("revenue").
		Joins("JOIN invoice ON invoice.id = revenue.invoice_id").
		Where("invoice.account_id = ?", strings.TrimSpace(accountID)).
		Select("COALESCE(SUM(revenue.amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return ProfitLossReport{}, err
	}

	var expenses float64
	err = db.Table("expense").
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expenses).Error
	if err != nil {
		return ProfitLossReport{}, err
	}

	net := revenue - expenses
	margin := 0.0
	if revenue > 0 {
		margin = net / revenue * 100
	}
	status := "breakeven"
	switch {
	case net > 0:
		status = "profitable"
	case net < 0:
		status = "loss"
	}
	return ProfitLossReport{
		TotalRevenue:    revenue,
		TotalExpenses:   expenses,
		NetProfit:       net,
		ProfitMargin:    margin,
		FinancialStatus: status,
	}, nil
}
