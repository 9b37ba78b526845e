package runtimeclock

import (
	"strings"
	"time"
)

// Meta renders the current instant in the forms status payloads carry.
func Meta(now time.Time) map[string]any {
	loc := now.Location()
	tzName := "Local"
	if loc != nil && strings.TrimSpace(loc.String()) != "" {
		tzName = strings.TrimSpace(loc.String())
	}
	return map[string]any{
		"now_utc":    now.UTC().Format(time.RFC3339),
		"now_local":  now.Format(time.RFC3339),
		"timezone":   tzName,
		"utc_offset": now.Format("-07:00"),
	}
}
