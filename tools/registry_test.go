package tools

import (
	"context"
	"strings"
	"testing"
)

type stubTool struct {
	name string
	env  Envelope
}

func (t stubTool) Name() string            { return t.name }
func (t stubTool) Description() string     { return "stub" }
func (t stubTool) ParameterSchema() string { return `{"type":"object"}` }
func (t stubTool) Execute(_ context.Context, _ Session, _ map[string]any) Envelope {
	return t.env
}

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool{name: "ping", env: Success("ping", "pong", nil)})

	env := reg.Dispatch(context.Background(), Session{AccountID: "acct"}, "ping", nil)
	if env.Status != StatusSuccess || env.Message != "pong" {
		t.Fatalf("dispatch = %+v", env)
	}
}

func TestRegistryDispatchUnknownTool(t *testing.T) {
	reg := NewRegistry()
	env := reg.Dispatch(context.Background(), Session{AccountID: "acct"}, "missing", nil)
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if !strings.Contains(env.Message, "unknown tool") {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestRegistryDispatchInvalidSession(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool{name: "ping", env: Success("ping", "pong", nil)})
	env := reg.Dispatch(context.Background(), Session{}, "ping", nil)
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
}

func TestRegistryToolNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool{name: "beta"})
	reg.Register(stubTool{name: "alpha"})
	if got := reg.ToolNames(); got != "alpha, beta" {
		t.Fatalf("ToolNames = %q", got)
	}
}

func TestRegistryFormatToolDescriptions(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubTool{name: "beta"})
	reg.Register(stubTool{name: "alpha"})

	got := reg.FormatToolDescriptions()
	if !strings.Contains(got, "### alpha") || !strings.Contains(got, "### beta") {
		t.Fatalf("missing tool headings:\n%s", got)
	}
	if strings.Index(got, "### alpha") > strings.Index(got, "### beta") {
		t.Fatalf("tools not sorted by name:\n%s", got)
	}
	if !strings.Contains(got, `{"type":"object"}`) {
		t.Fatalf("missing parameter schema:\n%s", got)
	}
}
