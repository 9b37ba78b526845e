package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
)

func TestAppendSQLitePragmas(t *testing.T) {
	cfg := SQLiteConfig{BusyTimeoutMs: 5000, WAL: true, ForeignKeys: true}

	got := appendSQLitePragmas("/tmp/app.sqlite", cfg)
	for _, want := range []string{"_pragma=busy_timeout(5000)", "_pragma=foreign_keys(1)", "_pragma=journal_mode(WAL)"} {
		if !strings.Contains(got, want) {
			t.Errorf("dsn %q missing %q", got, want)
		}
	}

	// Caller-supplied pragmas win.
	custom := "/tmp/app.sqlite?_pragma=busy_timeout(100)"
	if got := appendSQLitePragmas(custom, cfg); got != custom {
		t.Errorf("custom dsn rewritten: %q", got)
	}

	if got := appendSQLitePragmas("/tmp/app.sqlite", SQLiteConfig{}); got != "/tmp/app.sqlite" {
		t.Errorf("empty config added pragmas: %q", got)
	}
}

func TestOpenAndMigrate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DSN = filepath.Join(t.TempDir(), "app.sqlite")

	gdb, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !gdb.Migrator().HasTable(&crm.Contact{}) {
		t.Fatal("contact table missing after automigrate")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "postgres"
	if _, err := Open(cfg); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSeedDemoIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DSN = filepath.Join(t.TempDir(), "app.sqlite")
	gdb, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	seeded, err := SeedDemo(gdb)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !seeded {
		t.Fatal("first seed reported nothing to do")
	}

	var contacts, invoices, revenue int64
	gdb.Model(&crm.Contact{}).Count(&contacts)
	gdb.Model(&crm.Invoice{}).Count(&invoices)
	gdb.Model(&crm.Revenue{}).Count(&revenue)
	if contacts != 6 || invoices != 6 || revenue != 3 {
		t.Fatalf("seeded rows: contacts=%d invoices=%d revenue=%d", contacts, invoices, revenue)
	}

	seeded, err = SeedDemo(gdb)
	if err != nil {
		t.Fatalf("repeat seed: %v", err)
	}
	if seeded {
		t.Fatal("repeat seed wrote again")
	}
	gdb.Model(&crm.Contact{}).Count(&contacts)
	if contacts != 6 {
		t.Fatalf("contacts after repeat = %d, want 6", contacts)
	}
}
