package naturaldate

import (
	"errors"
	"testing"
	"time"
)

// Tuesday, June 10 2025, 09:30 local.
var reference = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

func TestResolveLiterals(t *testing.T) {
	cases := []struct {
		input    string
		wantDate string
		relative string
	}{
		{"today", "2025-06-10", "today"},
		{"now", "2025-06-10", "today"},
		{"Tomorrow", "2025-06-11", "tomorrow"},
		{"yesterday", "2025-06-09", "yesterday"},
		{"next week", "2025-06-17", "in 7 days"},
		{"sometime next month", "2025-07-10", "in 30 days"},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.input, reference)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.input, err)
		}
		if got.Date != tc.wantDate {
			t.Errorf("Resolve(%q).Date = %q, want %q", tc.input, got.Date, tc.wantDate)
		}
		if got.Relative != tc.relative {
			t.Errorf("Resolve(%q).Relative = %q, want %q", tc.input, got.Relative, tc.relative)
		}
	}
}

func TestResolveRelativeUnits(t *testing.T) {
	cases := []struct {
		input    string
		wantDate string
	}{
		{"in 3 days", "2025-06-13"},
		{"in 1 day", "2025-06-11"},
		{"in 2 weeks", "2025-06-24"},
		{"in 1 month", "2025-07-10"},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.input, reference)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.input, err)
		}
		if got.Date != tc.wantDate {
			t.Errorf("Resolve(%q).Date = %q, want %q", tc.input, got.Date, tc.wantDate)
		}
	}
}

func TestResolveWeekdayTime(t *testing.T) {
	// Reference is a Tuesday; Thursday is two days out.
	got, err := Resolve("Thursday at 2pm", reference)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Date != "2025-06-12" {
		t.Fatalf("date = %q, want 2025-06-12", got.Date)
	}
	if got.TimeOfDay != "14:00:00" {
		t.Fatalf("time = %q, want 14:00:00", got.TimeOfDay)
	}
	if got.Weekday != "Thursday" {
		t.Fatalf("weekday = %q, want Thursday", got.Weekday)
	}
}

func TestResolveSameWeekdayRollsForward(t *testing.T) {
	// Naming today's weekday means next week, never today.
	got, err := Resolve("tuesday at 9am", reference)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Date != "2025-06-17" {
		t.Fatalf("date = %q, want 2025-06-17", got.Date)
	}
	if got.TimeOfDay != "09:00:00" {
		t.Fatalf("time = %q, want 09:00:00", got.TimeOfDay)
	}
}

func TestResolveMeridiemEdges(t *testing.T) {
	noon, err := Resolve("friday at 12pm", reference)
	if err != nil {
		t.Fatalf("Resolve 12pm: %v", err)
	}
	if noon.TimeOfDay != "12:00:00" {
		t.Fatalf("12pm = %q, want 12:00:00", noon.TimeOfDay)
	}
	midnight, err := Resolve("friday at 12am", reference)
	if err != nil {
		t.Fatalf("Resolve 12am: %v", err)
	}
	if midnight.TimeOfDay != "00:00:00" {
		t.Fatalf("12am = %q, want 00:00:00", midnight.TimeOfDay)
	}
}

func TestResolveAbsoluteDate(t *testing.T) {
	got, err := Resolve("2025-12-25", reference)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Date != "2025-12-25" {
		t.Fatalf("date = %q, want 2025-12-25", got.Date)
	}
}

func TestResolveFailure(t *testing.T) {
	_, err := Resolve("the heat death of the universe", reference)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}

	if _, err := Resolve("   ", reference); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestRenderFields(t *testing.T) {
	got, err := Resolve("tomorrow", reference)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.DateTime != "2025-06-11 09:30:00" {
		t.Fatalf("datetime = %q", got.DateTime)
	}
	if got.Unix != got.Time.Unix() {
		t.Fatalf("unix = %d, want %d", got.Unix, got.Time.Unix())
	}
	if got.Display == "" {
		t.Fatal("display is empty")
	}
}
