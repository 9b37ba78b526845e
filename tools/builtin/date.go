package builtin

import (
	"context"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/naturaldate"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
)

type ParseDateTool struct {
	now func() time.Time
}

// NewParseDateTool builds the date tool. A nil now defaults to time.Now so
// tests can pin the clock.
func NewParseDateTool(now func() time.Time) *ParseDateTool {
	if now == nil {
		now = time.Now
	}
	return &ParseDateTool{now: now}
}

func (t *ParseDateTool) Name() string { return "parse_date" }

func (t *ParseDateTool) Description() string {
	return "Converts a natural-language date like 'tomorrow', 'in 3 days' or 'Friday at 2pm' into a concrete date and time."
}

func (t *ParseDateTool) ParameterSchema() string {
	return objectSchema(map[string]any{
		"date_string": strProp("The date expression to resolve."),
	}, "date_string")
}

func (t *ParseDateTool) Execute(_ context.Context, _ tools.Session, params map[string]any) tools.Envelope {
	const action = "parse_date"
	input := stringParam(params, "date_string")
	if input == "" {
		return tools.Errorf(action, "date_string is required")
	}
	resolved, err := naturaldate.Resolve(input, t.now())
	if err != nil {
		return tools.FromError(action, "Could not understand date: "+input, err)
	}
	return tools.Success(action, "Resolved "+input+" to "+resolved.Display, map[string]any{
		"input":              input,
		"formatted_date":     resolved.Date,
		"formatted_time":     resolved.TimeOfDay,
		"formatted_datetime": resolved.DateTime,
		"display":            resolved.Display,
		"day_of_week":        resolved.Weekday,
		"relative":           resolved.Relative,
		"timestamp":          resolved.Unix,
	})
}
