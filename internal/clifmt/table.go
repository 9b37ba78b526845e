package clifmt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	defaultTableWidth = 100
	minDetailWidth    = 36
)

type Row struct {
	Name   string
	Detail string
}

// PrintTable renders name/detail rows as a two-column table, wrapping the
// detail column to the terminal width when stdout is a tty.
func PrintTable(out io.Writer, title string, rows []Row) {
	if out == nil {
		out = os.Stdout
	}

	title = strings.TrimSpace(title)
	if title != "" {
		fmt.Fprintf(out, "%s (%d)\n", title, len(rows))
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No entries.")
		return
	}

	nameWidth := len("NAME")
	for _, row := range rows {
		if w := utf8.RuneCountInString(row.Name); w > nameWidth {
			nameWidth = w
		}
	}
	detailWidth := detailColumnWidth(out, nameWidth)

	fmt.Fprintf(out, "%s  %s\n", padRight("NAME", nameWidth), "DESCRIPTION")
	fmt.Fprintf(out, "%s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", detailWidth))

	for _, row := range rows {
		detail := strings.TrimSpace(row.Detail)
		if detail == "" {
			detail = "No description provided."
		}
		lines := wrap(detail, detailWidth)
		fmt.Fprintf(out, "%s  %s\n", padRight(row.Name, nameWidth), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(out, "%s  %s\n", strings.Repeat(" ", nameWidth), line)
		}
	}
}

func detailColumnWidth(out io.Writer, nameWidth int) int {
	width := defaultTableWidth
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if terminalWidth, _, err := term.GetSize(int(file.Fd())); err == nil && terminalWidth > 0 {
			width = terminalWidth
		}
	}
	detailWidth := width - nameWidth - 2
	if detailWidth < minDetailWidth {
		detailWidth = minDetailWidth
	}
	return detailWidth
}

func padRight(s string, width int) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return []string{text}
	}
	lines := make([]string, 0, len(words))
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
