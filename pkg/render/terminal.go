package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/firmware-ci/unitycheck/pkg/unity"
)

// Terminal renders a report as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render formats the report for terminal display.
func (t *Terminal) Render(rep unity.Report) string {
	var sb strings.Builder
	s := rep.Summary

	sb.WriteString(t.theme.Bold.Render("Test Results:"))
	sb.WriteString("\n")
	sb.WriteString("  " + t.theme.Muted.Render("Total Tests: ") + strconv.Itoa(s.Tests) + "\n")

	failStyle := t.theme.Success
	if s.Failures > 0 {
		failStyle = t.theme.Error
	}
	sb.WriteString("  " + t.theme.Muted.Render("Failures: ") + failStyle.Render(strconv.Itoa(s.Failures)) + "\n")

	ignStyle := t.theme.Muted
	if s.Ignored > 0 {
		ignStyle = t.theme.Warning
	}
	sb.WriteString("  " + t.theme.Muted.Render("Ignored: ") + ignStyle.Render(strconv.Itoa(s.Ignored)) + "\n")

	if failed := rep.FailedResults(); len(failed) > 0 {
		sb.WriteString("\n")
		sb.WriteString(t.theme.Bold.Render("Failed:"))
		sb.WriteString("\n")
		for _, f := range failed {
			line := fmt.Sprintf("%s %s", t.theme.Icons.Fail, f.Name)
			if f.Message != "" {
				line += t.theme.Muted.Render(": " + f.Message)
			}
			loc := t.theme.Muted.Render(fmt.Sprintf(" (%s:%d)", f.File, f.Line))
			sb.WriteString("  " + t.theme.Error.Render(line) + loc + "\n")
		}
	}

	sb.WriteString("\n")
	if s.Passed() {
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Pass+" All tests passed!") + "\n")
	} else {
		sb.WriteString(t.theme.Error.Render(fmt.Sprintf("%s %d test(s) failed", t.theme.Icons.Fail, s.Failures)) + "\n")
	}
	return sb.String()
}
