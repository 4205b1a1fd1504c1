package render

import (
	"fmt"
	"strings"

	"github.com/firmware-ci/unitycheck/pkg/unity"
)

// Plain renders a report as unstyled text for piped or CI consumption.
// Zero ANSI codes, byte-stable labels.
type Plain struct{}

// NewPlain creates a plain text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the report as plain text.
func (p *Plain) Render(rep unity.Report) string {
	var sb strings.Builder
	s := rep.Summary

	sb.WriteString("Test Results:\n")
	fmt.Fprintf(&sb, "  Total Tests: %d\n", s.Tests)
	fmt.Fprintf(&sb, "  Failures: %d\n", s.Failures)
	fmt.Fprintf(&sb, "  Ignored: %d\n", s.Ignored)

	if failed := rep.FailedResults(); len(failed) > 0 {
		sb.WriteString("\nFailed:\n")
		for _, f := range failed {
			if f.Message != "" {
				fmt.Fprintf(&sb, "  FAIL %s: %s (%s:%d)\n", f.Name, f.Message, f.File, f.Line)
			} else {
				fmt.Fprintf(&sb, "  FAIL %s (%s:%d)\n", f.Name, f.File, f.Line)
			}
		}
	}

	sb.WriteString("\n")
	if s.Passed() {
		sb.WriteString("All tests passed!\n")
	} else {
		fmt.Fprintf(&sb, "%d test(s) failed\n", s.Failures)
	}
	return sb.String()
}
