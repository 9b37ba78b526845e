package builtin

import (
	"context"
	"fmt"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type GenerateReportTool struct {
	svc *crm.Service
}

func NewGenerateReportTool(svc *crm.Service) *GenerateReportTool {
	return &GenerateReportTool{svc: svc}
}

func (t *GenerateReportTool) Name() string { return "generate_report" }

func (t *GenerateReportTool) Description() string {
	return "Generates a business report: revenue, expenses, contacts, invoices, interactions or profit_loss."
}

func (t *GenerateReportTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"report_type": strProp("One of: revenue, expenses, contacts, invoices, interactions, profit_loss."),
		"period":      strProp("Reporting period label, e.g. 'all_time' or '2025-06'. Echoed back unchanged."),
	}, "report_type")
}

func (t *GenerateReportTool) Execute(ctx context.Context, sess tools.Session, params map[string]any) tools.Envelope {
	const action = "generate_report"
	kind := stringParam(params, "report_type")
	if kind == "" {
		return tools.Errorf(action, "report_type is required")
	}
	period := stringParam(params, "period")
	if period == "" {
		period = "all_time"
	}
	report, err := t.svc.GenerateReport(ctx, sess.AccountID, crm.ReportKind(kind), period)
	if err != nil {
		return tools.FromError(action, "Failed to generate "+kind+" report", err)
	}
	fields := map[string]any{
		"report_type": string(report.Kind),
		"period":      report.Period,
	}
	for k, v := range report.Fields {
		fields[k] = v
	}
	return tools.Success(action, report.Message, fields)
}

type ProfitAndLossTool struct {
	svc *crm.Service
}

func NewProfitAndLossTool(svc *crm.Service) *ProfitAndLossTool {
	return &ProfitAndLossTool{svc: svc}
}

func (t *ProfitAndLossTool) Name() string { return "profit_and_loss" }

func (t *ProfitAndLossTool) Description() string {
	return "Calculates total revenue, total expenses, net profit and margin."
}

func (t *ProfitAndLossTool) ParameterSchema() string {
	return objectSchema(map[string]any{})
}

func (t *ProfitAndLossTool) Execute(ctx context.Context, sess tools.Session, _ map[string]any) tools.Envelope {
	const action = "profit_and_loss"
	pl, err := t.svc.ProfitLoss(ctx, sess.AccountID)
	if err != nil {
		return tools.FromError(action, "Failed to calculate profit and loss", err)
	}
	return tools.Success(action,
		fmt.Sprintf("Profit & loss calculated: $%.2f net (%s)", pl.NetProfit, pl.FinancialStatus),
		map[string]any{
			"total_revenue":    pl.TotalRevenue,
			"total_expenses":   pl.TotalExpenses,
			"net_profit":       pl.NetProfit,
			"profit_margin":    pl.ProfitMargin,
			"financial_status": pl.FinancialStatus,
		})
}

type BusinessInsightsTool struct {
	svc *crm.Service
}

func NewBusinessInsightsTool(svc *crm.Service) *BusinessInsightsTool {
	return &BusinessInsightsTool{svc: svc}
}

func (t *BusinessInsightsTool) Name() string { return "get_business_insights" }

func (t *BusinessInsightsTool) Description() string {
	return "Summarizes key metrics and flags financial health issues with recommendations."
}

func (t *BusinessInsightsTool) ParameterSchema() string {
	return objectSchema(map[string]any{})
}

func (t *BusinessInsightsTool) Execute(ctx context.Context, sess tools.Session, _ map[string]any) tools.Envelope {
	const action = "get_business_insights"
	insights, err := t.svc.BusinessInsights(ctx, sess.AccountID)
	if err != nil {
		return tools.FromError(action, "Failed to generate business insights", err)
	}
	return tools.Success(action,
		fmt.Sprintf("Business insights generated: %d observations", len(insights.Insights)),
		map[string]any{
			"key_metrics":     insights.KeyMetrics,
			"insights":        insights.Insights,
			"recommendations": insights.Recommendations,
		})
}
