// Package naturaldate normalizes free-text date expressions ("next Friday at
// 2pm", "in 3 days") into a resolved instant plus canonical renderings.
package naturaldate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Resolved is one point in time with every rendering downstream callers want.
type Resolved struct {
	Time      time.Time `json:"-"`
	Date      string    `json:"formatted_date"`
	TimeOfDay string    `json:"formatted_time"`
	DateTime  string    `json:"formatted_datetime"`
	Display   string    `json:"display"`
	Weekday   string    `json:"day_of_week"`
	Relative  string    `json:"relative"`
	Unix      int64     `json:"timestamp"`
}

// ParseError reports input that no rule could convert. Resolution never falls
// back to "now" on failure; the error surfaces to the caller.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse date expression %q", e.Input)
}

var (
	relativeRe    = regexp.MustCompile(`\bin (\d+) (day|days|week|weeks|month|months)\b`)
	weekdayTimeRe = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b.*?\b(\d{1,2})\s*(am|pm)\b`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Resolve converts a natural-language phrase into a Resolved instant relative
// to now. Rules are priority-ordered; the first match wins:
// literal keywords, "in N units", weekday+hour, then a permissive parser.
func Resolve(input string, now time.Time) (Resolved, error) {
	phrase := strings.ToLower(strings.TrimSpace(input))
	if phrase == "" {
		return Resolved{}, &ParseError{Input: input}
	}

	if t, ok := resolveLiteral(phrase, now); ok {
		return render(t, now), nil
	}
	if m := relativeRe.FindStringSubmatch(phrase); m != nil {
		n, _ := strconv.Atoi(m[1])
		return render(addUnits(now, n, m[2]), now), nil
	}
	if m := weekdayTimeRe.FindStringSubmatch(phrase); m != nil {
		t, err := resolveWeekdayTime(now, m[1], m[2], m[3])
		if err != nil {
			return Resolved{}, err
		}
		return render(t, now), nil
	}

	t, err := permissiveParse(input, now)
	if err != nil {
		return Resolved{}, &ParseError{Input: input}
	}
	return render(t, now), nil
}

func resolveLiteral(phrase string, now time.Time) (time.Time, bool) {
	switch phrase {
	case "today", "now":
		return now, true
	case "tomorrow":
		return now.AddDate(0, 0, 1), true
	case "yesterday":
		return now.AddDate(0, 0, -1), true
	}
	// Fixed offsets, not "first day of": a deliberate carry-over.
	if strings.Contains(phrase, "next week") {
		return now.AddDate(0, 0, 7), true
	}
	if strings.Contains(phrase, "next month") {
		return now.AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}

func addUnits(now time.Time, n int, unit string) time.Time {
	switch strings.TrimSuffix(unit, "s") {
	case "day":
		return now.AddDate(0, 0, n)
	case "week":
		return now.AddDate(0, 0, 7*n)
	default:
		return now.AddDate(0, n, 0)
	}
}

// resolveWeekdayTime finds the next future occurrence of the named weekday. A
// weekday equal to today's rolls forward a full week; naming a weekday never
// resolves to today.
func resolveWeekdayTime(now time.Time, weekday, hourText, meridiem string) (time.Time, error) {
	target, ok := weekdays[weekday]
	if !ok {
		return time.Time{}, &ParseError{Input: weekday}
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 1 || hour > 12 {
		return time.Time{}, &ParseError{Input: hourText + meridiem}
	}
	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}

	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	day := now.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location()), nil
}

// permissiveParse hands the phrase to a natural-language parser seeded with the
// reference instant, then retries with a second permissive parser for absolute
// formats before giving up.
func permissiveParse(input string, now time.Time) (time.Time, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	if r, err := w.Parse(input, now); err == nil && r != nil {
		return r.Time, nil
	}
	return dateparse.ParseIn(strings.TrimSpace(input), now.Location())
}

func render(t, now time.Time) Resolved {
	return Resolved{
		Time:      t,
		Date:      t.Format("2006-01-02"),
		TimeOfDay: t.Format("15:04:05"),
		DateTime:  t.Format("2006-01-02 15:04:05"),
		Display:   t.Format("Monday, January 2, 2006 at 3:04 PM"),
		Weekday:   t.Weekday().String(),
		Relative:  describeRelative(t, now),
		Unix:      t.Unix(),
	}
}

// describeRelative renders the day distance between t and now in words,
// counting calendar days rather than 24h spans.
func describeRelative(t, now time.Time) string {
	midnight := func(v time.Time) time.Time {
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, v.Location())
	}
	days := int(midnight(t).Sub(midnight(now)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
