package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/naturaldate"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusWarning Status = "warning"
)

// Envelope is the uniform response contract every tool returns. Callers trust
// Status exclusively; Message is human-readable commentary, Fields carry the
// action-specific payload and are flattened into the JSON object.
type Envelope struct {
	Action  string
	Status  Status
	Message string
	Err     string
	Fields  map[string]any
}

func (e Envelope) With(key string, value any) Envelope {
	if e.Fields == nil {
		e.Fields = map[string]any{}
	}
	e.Fields[key] = value
	return e
}

func Success(action, message string, fields map[string]any) Envelope {
	return Envelope{Action: action, Status: StatusSuccess, Message: message, Fields: fields}
}

func Warningf(action, format string, args ...any) Envelope {
	return Envelope{Action: action, Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}

func Errorf(action, format string, args ...any) Envelope {
	msg := fmt.Sprintf(format, args...)
	return Envelope{Action: action, Status: StatusError, Message: msg, Err: msg}
}

// FromError maps the domain error taxonomy onto the envelope statuses:
// no-op conditions become warnings, everything else an error. Ambiguous
// resolutions attach the candidate list so the caller can ask the user to
// disambiguate instead of guessing. Typed errors own the message; the
// caller-supplied one only covers untyped failures.
func FromError(action, message string, err error) Envelope {
	env := Envelope{Action: action, Message: message, Err: err.Error()}

	var ambiguous *crm.AmbiguousError
	if errors.As(err, &ambiguous) {
		env.Status = StatusError
		env.Message = fmt.Sprintf("Found %d contacts matching %q. Please be more specific or use the contact ID.",
			len(ambiguous.Candidates), ambiguous.Name)
		env = env.With("found_contacts", ambiguous.Candidates)
		env = env.With("matches_found", len(ambiguous.Candidates))
		return env
	}
	var notFound *crm.NotFoundError
	if errors.As(err, &notFound) {
		env.Status = StatusError
		env.Message = capitalize(notFound.Error())
		return env
	}
	var parseErr *naturaldate.ParseError
	if errors.As(err, &parseErr) {
		env.Status = StatusError
		env.Message = fmt.Sprintf("Could not understand the date expression %q", parseErr.Input)
		return env
	}
	if crm.IsWarning(err) {
		env.Status = StatusWarning
		env.Err = ""
		env.Message = capitalize(err.Error())
		return env
	}
	env.Status = StatusError
	if env.Message == "" {
		env.Message = err.Error()
	}
	return env
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MarshalJSON flattens Fields into the top-level object next to the fixed
// keys. Field names never collide with the fixed keys by catalog convention;
// fixed keys win if one ever does.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Fields)+4)
	for k, v := range e.Fields {
		out[k] = v
	}
	out["action"] = e.Action
	out["status"] = string(e.Status)
	out["message"] = e.Message
	if e.Err != "" {
		out["error"] = e.Err
	} else {
		delete(out, "error")
	}
	return json.Marshal(out)
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pop := func(key string) string {
		v, _ := raw[key].(string)
		delete(raw, key)
		return v
	}
	e.Action = pop("action")
	e.Status = Status(pop("status"))
	e.Message = pop("message")
	e.Err = pop("error")
	if len(raw) > 0 {
		e.Fields = raw
	} else {
		e.Fields = nil
	}
	return nil
}
