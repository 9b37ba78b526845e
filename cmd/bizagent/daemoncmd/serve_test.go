package daemoncmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools/builtin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T, authToken string) http.Handler {
	t.Helper()
	return newTestHandlerWithAgent(t, authToken, nil)
}

func newTestHandlerWithAgent(t *testing.T, authToken string, agent AgentRunner) http.Handler {
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
	svc := crm.NewServiceWithOptions(gdb, crm.ServiceOptions{
		AutoProvisionAccounts: true,
		Now:                   func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	})
	reg := tools.NewRegistry()
	builtin.RegisterAll(reg, svc)
	return NewHandler(slog.Default(), reg, svc, agent, authToken)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}
}

func TestListTools(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tools", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 29 {
		t.Fatalf("count = %d, want 29", body.Count)
	}
}

func TestCallTool(t *testing.T) {
	h := newTestHandler(t, "")
	payload := `{"user_id":"acct1","params":{"name":"Jane Roe","email":"jane@example.com"}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tools/create_contact", strings.NewReader(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var env map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env["status"] != "success" {
		t.Fatalf("envelope = %v", env)
	}
	if env["name"] != "Jane Roe" {
		t.Fatalf("fields not flattened: %v", env)
	}
}

func TestCallUnknownTool(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tools/frobnicate", strings.NewReader(`{"user_id":"acct1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env["status"] != "error" {
		t.Fatalf("envelope = %v", env)
	}
}

func TestAuthRequired(t *testing.T) {
	h := newTestHandler(t, "secret")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tools", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("without token: status = %d, want 401", rec.Code)
	}

	// /healthz stays open.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz with auth enabled: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/tools", nil)
	req.Header.Set("Authorization", "Bearer secret")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with token: status = %d", rec.Code)
	}
}

type stubAgent struct {
	reply     string
	toolCalls int
}

func (a stubAgent) Chat(_ context.Context, _, _ string) (string, int, error) {
	return a.reply, a.toolCalls, nil
}

func TestChatRelaysReplyAndToolCalls(t *testing.T) {
	h := newTestHandlerWithAgent(t, "", stubAgent{reply: "All set.", toolCalls: 3})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"hi","user_id":"acct1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["reply"] != "All set." {
		t.Fatalf("reply = %v", body["reply"])
	}
	if body["tool_calls"] != float64(3) {
		t.Fatalf("tool_calls = %v, want 3", body["tool_calls"])
	}
}

func TestChatWithoutAgent(t *testing.T) {
	h := newTestHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"hi","user_id":"acct1"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestDataSnapshot(t *testing.T) {
	h := newTestHandler(t, "")
	// Seed one contact through the tool surface, then read the dump.
	payload := `{"user_id":"acct1","params":{"name":"Jane Roe"}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tools/create_contact", strings.NewReader(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("seed: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/data?user_id=acct1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var snap struct {
		Contacts []crm.Contact `json:"contacts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snap.Contacts) != 1 || snap.Contacts[0].Name != "Jane Roe" {
		t.Fatalf("contacts = %+v", snap.Contacts)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/data", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing user_id: status = %d, want 400", rec.Code)
	}
}
