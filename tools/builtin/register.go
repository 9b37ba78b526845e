package builtin

import (
	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

// RegisterAll wires the full catalog against one service. Every tool shares the
// same *crm.Service; parse_date only needs the service clock.
func RegisterAll(reg *tools.Registry, svc *crm.Service) {
	reg.Register(NewCreateAccountTool(svc))

	reg.Register(NewCreateContactTool(svc))
	reg.Register(NewReadAllContactsTool(svc))
	reg.Register(NewUpdateContactTool(svc))
	reg.Register(NewUpdateContactByNameTool(svc))
	reg.Register(NewFindContactByNameTool(svc))
	reg.Register(NewFindContactByEmailTool(svc))
	reg.Register(NewFindContactByCompanyTool(svc))

	reg.Register(NewCreateInvoiceTool(svc))
	reg.Register(NewReadInvoiceTool(svc))
	reg.Register(NewUpdateInvoiceTool(svc))
	reg.Register(NewMarkInvoicePaidTool(svc))
	reg.Register(NewCreateInvoiceByContactNameTool(svc))
	reg.Register(NewFindInvoicesByContactNameTool(svc))
	reg.Register(NewFindInvoicesByStatusTool(svc))

	reg.Register(NewCreateRevenueTool(svc))
	reg.Register(NewCreateExpenseTool(svc))

	reg.Register(NewCreateEventTool(svc))
	reg.Register(NewListUpcomingEventsTool(svc))

	reg.Register(NewLogInteractionTool(svc))
	reg.Register(NewReadInteractionsTool(svc))
	reg.Register(NewLogInteractionByContactNameTool(svc))
	reg.Register(NewReadInteractionsByContactNameTool(svc))

	reg.Register(NewSendEmailTool(svc))
	reg.Register(NewSendEmailByContactNameTool(svc))

	reg.Register(NewGenerateReportTool(svc))
	reg.Register(NewProfitAndLossTool(svc))
	reg.Register(NewBusinessInsightsTool(svc))

	reg.Register(NewParseDateTool(svc.Clock()))
}
