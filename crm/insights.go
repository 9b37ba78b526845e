package crm

import (
	"context"
	"fmt"
	"strings"
)

// Insights is the qualitative read on an account's vitals: headline metrics
// plus advisory flags derived from fixed thresholds.
type Insights struct {
	KeyMetrics      map[string]any `json:"key_metrics"`
	Insights        []string       `json:"insights"`
	Recommendations []string       `json:"recommendations"`
}

const (
	outstandingRatioThreshold = 0.3
	healthyMarginPercent      = 20.0
	lowMarginPercent          = 10.0
)

// BusinessInsights derives headline metrics from invoices and expenses. Revenue
// here is the sum of paid invoices, outstanding the sum of unpaid ones.
func (s *Service) BusinessInsights(ctx context.Context, accountID string) (Insights, error) {
	if err := s.ready(); err != nil {
		return Insights{}, err
	}
	db := s.db.WithContext(ctx)

	invoices := []Invoice{}
	if err := db.Where("account_id = ?", strings.TrimSpace(accountID)).Find(&invoices).Error; err != nil {
		return Insights{}, err
	}
	var totalRevenue, outstanding float64
	var paidCount, unpaidCount int
	for _, inv := range invoices {
		switch inv.Status {
		case InvoicePaid:
			totalRevenue += inv.TotalAmount
			paidCount++
		case InvoiceUnpaid:
			outstanding += inv.TotalAmount
			unpaidCount++
		}
	}

	var totalExpenses float64
	err := db.Table("expense").
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalExpenses).Error
	if err != nil {
		return Insights{}, err
	}

	profit := totalRevenue - totalExpenses
	margin := 0.0
	if totalRevenue > 0 {
		margin = profit / totalRevenue * 100
	}

	var flags []string
	if outstanding > 0 && totalRevenue > 0 && outstanding/totalRevenue > outstandingRatioThreshold {
		flags = append(flags, "High outstanding invoices - consider following up on payments to improve cash flow.")
	}
	if totalRevenue > 0 {
		if margin > healthyMarginPercent {
			flags = append(flags, "Healthy profit margin - your business is performing well.")
		} else if margin < lowMarginPercent {
			flags = append(flags, "Low profit margin - consider reviewing expenses or pricing strategies.")
		}
	} else {
		flags = append(flags, "No revenue recorded yet. Focus on securing your first paid invoice.")
	}
	if unpaidCount > paidCount {
		flags = append(flags, "You have more unpaid than paid invoices. It's time to focus on collections.")
	}
	if len(flags) == 0 {
		flags = append(flags, "Business vitals look stable. Keep up the great work!")
	}

	return Insights{
		KeyMetrics: map[string]any{
			"total_revenue":         currency(totalRevenue),
			"outstanding_amount":    currency(outstanding),
			"total_expenses":        currency(totalExpenses),
			"profit":                currency(profit),
			"profit_margin":         fmt.Sprintf("%.2f%%", margin),
			"total_invoices":        len(invoices),
			"paid_invoices_count":   paidCount,
			"unpaid_invoices_count": unpaidCount,
		},
		Insights: flags,
		Recommendations: []string{
			"Regularly follow up on overdue invoices to improve cash flow.",
			"Analyze expense categories to identify potential cost savings.",
			"Consider setting up automated invoice reminders for clients.",
		},
	}, nil
}
