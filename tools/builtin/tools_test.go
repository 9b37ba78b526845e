package builtin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testClock = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *crm.Service {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.sqlite")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&crm.Account{}, &crm.Contact{}, &crm.Invoice{}, &crm.Revenue{},
		&crm.Expense{}, &crm.Event{}, &crm.Interaction{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return crm.NewServiceWithOptions(gdb, crm.ServiceOptions{
		AutoProvisionAccounts: true,
		Now:                   func() time.Time { return testClock },
	})
}

func testSession() tools.Session {
	return tools.Session{AccountID: "acct_test"}
}

func TestRegisterAllCatalog(t *testing.T) {
	reg := tools.NewRegistry()
	RegisterAll(reg, newTestService(t))
	if got := len(reg.All()); got != 29 {
		t.Fatalf("catalog size = %d, want 29", got)
	}
	for _, name := range []string{
		"create_account", "create_contact", "mark_invoice_paid",
		"get_business_insights", "parse_date", "send_email_by_contact_name",
	} {
		if _, ok := reg.Get(name); !ok {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestCreateContactTool(t *testing.T) {
	svc := newTestService(t)
	tool := NewCreateContactTool(svc)
	env := tool.Execute(context.Background(), testSession(), map[string]any{
		"name":   "Jane Roe",
		"email":  "jane@example.com",
		"status": "nonsense",
	})
	if env.Status != tools.StatusSuccess {
		t.Fatalf("status = %q (%s)", env.Status, env.Message)
	}
	if env.Fields["contact_status"] != "lead" {
		t.Fatalf("contact_status field = %v, want lead", env.Fields["contact_status"])
	}
	if env.Fields["contact_id"] == nil {
		t.Fatalf("missing contact_id: %v", env.Fields)
	}
}

func TestCreateContactToolRequiresName(t *testing.T) {
	tool := NewCreateContactTool(newTestService(t))
	env := tool.Execute(context.Background(), testSession(), map[string]any{})
	if env.Status != tools.StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
}

func TestUpdateContactByNameToolAmbiguous(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	for _, name := range []string{"Bob Smith", "Bobby Smithers"} {
		if _, err := svc.CreateContact(ctx, "acct_test", crm.ContactInput{Name: name}); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
	}
	tool := NewUpdateContactByNameTool(svc)
	env := tool.Execute(ctx, testSession(), map[string]any{
		"name":  "bob",
		"email": "bob@new.example",
	})
	if env.Status != tools.StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Fields["matches_found"] != 2 {
		t.Fatalf("matches_found = %v, want 2", env.Fields["matches_found"])
	}
}

func TestMarkInvoicePaidToolWarnsOnRepeat(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	contact, err := svc.CreateContact(ctx, "acct_test", crm.ContactInput{Name: "Henry"})
	if err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	detail, err := svc.CreateInvoice(ctx, "acct_test", crm.InvoiceInput{ContactID: contact.ID, TotalAmount: 500})
	if err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	tool := NewMarkInvoicePaidTool(svc)
	params := map[string]any{"invoice_id": float64(detail.ID)}

	env := tool.Execute(ctx, testSession(), params)
	if env.Status != tools.StatusSuccess {
		t.Fatalf("first call status = %q (%s)", env.Status, env.Message)
	}
	env = tool.Execute(ctx, testSession(), params)
	if env.Status != tools.StatusWarning {
		t.Fatalf("repeat call status = %q, want warning", env.Status)
	}
	if env.Message != "Invoice is already marked as paid" {
		t.Fatalf("repeat call message = %q", env.Message)
	}
}

func TestMarkInvoicePaidToolUnknownInvoice(t *testing.T) {
	tool := NewMarkInvoicePaidTool(newTestService(t))
	env := tool.Execute(context.Background(), testSession(), map[string]any{"invoice_id": float64(9999)})
	if env.Status != tools.StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Message != "Invoice 9999 not found" {
		t.Fatalf("message = %q, want the missing invoice named", env.Message)
	}
}

func TestCreateRevenueToolUnknownInvoice(t *testing.T) {
	tool := NewCreateRevenueTool(newTestService(t))
	env := tool.Execute(context.Background(), testSession(), map[string]any{
		"invoice_id": float64(9999),
		"amount":     100.0,
	})
	if env.Status != tools.StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Message != "Invoice 9999 not found" {
		t.Fatalf("message = %q, want the missing invoice named", env.Message)
	}
}

func TestGenerateReportToolFlattens(t *testing.T) {
	svc := newTestService(t)
	tool := NewGenerateReportTool(svc)
	env := tool.Execute(context.Background(), testSession(), map[string]any{
		"report_type": "contacts",
	})
	if env.Status != tools.StatusSuccess {
		t.Fatalf("status = %q (%s)", env.Status, env.Message)
	}
	if env.Fields["report_type"] != "contacts" {
		t.Fatalf("report_type = %v", env.Fields["report_type"])
	}
	if env.Fields["period"] != "all_time" {
		t.Fatalf("period = %v, want all_time default", env.Fields["period"])
	}
	if env.Fields["total_contacts"] != 0 {
		t.Fatalf("total_contacts = %v, want 0", env.Fields["total_contacts"])
	}
}

func TestParseDateTool(t *testing.T) {
	tool := NewParseDateTool(func() time.Time { return testClock })
	env := tool.Execute(context.Background(), testSession(), map[string]any{
		"date_string": "in 3 days",
	})
	if env.Status != tools.StatusSuccess {
		t.Fatalf("status = %q (%s)", env.Status, env.Message)
	}
	if env.Fields["formatted_date"] != "2025-06-13" {
		t.Fatalf("formatted_date = %v", env.Fields["formatted_date"])
	}

	env = tool.Execute(context.Background(), testSession(), map[string]any{
		"date_string": "complete gibberish zzz",
	})
	if env.Status != tools.StatusError {
		t.Fatalf("status = %q, want error for unparseable input", env.Status)
	}
}
