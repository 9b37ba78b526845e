package tools

import (
	"context"
	"strings"
)

// Session is the per-call context handed to every tool by the agent runtime.
// AccountID identifies the calling account; every record operation is scoped
// to it.
type Session struct {
	AccountID string
}

func (s Session) Valid() bool {
	return strings.TrimSpace(s.AccountID) != ""
}

// Tool is one catalog entry callable by name with keyword arguments. Execute
// always returns an envelope: failures are reported through Status, never as a
// Go error escaping the tool boundary.
type Tool interface {
	Name() string
	Description() string
	ParameterSchema() string
	Execute(ctx context.Context, sess Session, params map[string]any) Envelope
}
