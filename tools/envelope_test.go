package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/naturaldate"
)

func TestEnvelopeMarshalFlattensFields(t *testing.T) {
	env := Success("create_contact", "Successfully created contact", map[string]any{
		"contact_id": int64(7),
		"name":       "Jane",
	})
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["action"] != "create_contact" || out["status"] != "success" {
		t.Fatalf("fixed keys wrong: %v", out)
	}
	if out["name"] != "Jane" {
		t.Fatalf("fields not flattened: %v", out)
	}
	if _, hasError := out["error"]; hasError {
		t.Fatalf("success envelope must not carry error: %v", out)
	}
	if _, nested := out["Fields"]; nested {
		t.Fatalf("fields leaked as nested object: %v", out)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := Errorf("read_invoice", "Invoice %d not found", 42).With("invoice_id", 42)
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Envelope
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Action != env.Action || back.Status != env.Status || back.Message != env.Message || back.Err != env.Err {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, env)
	}
	if back.Fields["invoice_id"] == nil {
		t.Fatalf("fields lost in round trip: %+v", back)
	}
}

func TestFromErrorAmbiguous(t *testing.T) {
	err := &crm.AmbiguousError{
		Name: "bob",
		Candidates: []crm.Contact{
			{ID: 1, Name: "Bob Smith"},
			{ID: 2, Name: "Bobby Smithers"},
		},
	}
	env := FromError("update_contact_by_name", "fallback", err)
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Fields["matches_found"] != 2 {
		t.Fatalf("matches_found = %v", env.Fields["matches_found"])
	}
	if env.Message != `Found 2 contacts matching "bob". Please be more specific or use the contact ID.` {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestFromErrorWarnings(t *testing.T) {
	for _, err := range []error{crm.ErrAlreadyPaid, crm.ErrNoFields, crm.ErrRevenueExists} {
		env := FromError("x", "Failed to do the thing", err)
		if env.Status != StatusWarning {
			t.Fatalf("%v: status = %q, want warning", err, env.Status)
		}
		if env.Err != "" {
			t.Fatalf("%v: warning envelope must not carry error text", err)
		}
		// The warning text comes from the condition, never from the
		// caller's failure message.
		if env.Message == "Failed to do the thing" {
			t.Fatalf("%v: message kept the failure text", err)
		}
	}

	env := FromError("mark_invoice_paid", "Failed to mark invoice 5 as paid", crm.ErrAlreadyPaid)
	if env.Message != "Invoice is already marked as paid" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestFromErrorNotFound(t *testing.T) {
	env := FromError("mark_invoice_paid", "Failed to mark invoice 9999 as paid",
		&crm.NotFoundError{Entity: "invoice", Ref: "9999"})
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Message != "Invoice 9999 not found" {
		t.Fatalf("message = %q, want the missing entity named", env.Message)
	}
	if env.Err != "invoice 9999 not found" {
		t.Fatalf("error = %q", env.Err)
	}
}

func TestFromErrorParseError(t *testing.T) {
	env := FromError("parse_date", "", &naturaldate.ParseError{Input: "blorp"})
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Message != `Could not understand the date expression "blorp"` {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestFromErrorGeneric(t *testing.T) {
	env := FromError("read_contact", "", errors.New("disk on fire"))
	if env.Status != StatusError {
		t.Fatalf("status = %q, want error", env.Status)
	}
	if env.Message != "disk on fire" {
		t.Fatalf("message = %q, must fall back to the error text", env.Message)
	}
}
