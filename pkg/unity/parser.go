package unity

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrNoSummary is returned when no tally line exists in the content.
// Truncated captures, crashes before test completion, and an uninitialized
// Unity harness all surface as this error.
var ErrNoSummary = errors.New("unity test summary not found in output")

// SummaryRe matches the Unity tally line.
// Canonical regex — separators are whitespace runs and may span newlines,
// so matching is over the whole content, not line by line.
var SummaryRe = regexp.MustCompile(`(\d+)\s+Tests\s+(\d+)\s+Failures\s+(\d+)\s+Ignored`)

// resultRe matches per-test detail lines: file:line:TestName:STATUS[: message].
// Serial captures are often CRLF; the optional \r keeps messages clean.
var resultRe = regexp.MustCompile(`(?m)^([^\s:]+):(\d+):(\w+):(PASS|FAIL|IGNORE)(?::\s?(.*?))?\r?$`)

// ExtractSummary finds every tally occurrence in content and returns the
// last one. A harness may print intermediate tallies before the final
// summary; the textually last occurrence is authoritative.
func ExtractSummary(content []byte) (Summary, error) {
	matches := SummaryRe.FindAllSubmatch(content, -1)
	if len(matches) == 0 {
		return Summary{}, ErrNoSummary
	}
	m := matches[len(matches)-1]

	// Digit-only groups; Atoi cannot fail here.
	tests, _ := strconv.Atoi(string(m[1]))
	failures, _ := strconv.Atoi(string(m[2]))
	ignored, _ := strconv.Atoi(string(m[3]))

	return Summary{Tests: tests, Failures: failures, Ignored: ignored}, nil
}

// ParseResults collects per-test detail lines in emission order. Logs from
// older Unity configurations may carry none; that is not an error.
func ParseResults(content []byte) []TestResult {
	matches := resultRe.FindAllSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	results := make([]TestResult, 0, len(matches))
	for _, m := range matches {
		line, _ := strconv.Atoi(string(m[2]))
		results = append(results, TestResult{
			File:    string(m[1]),
			Line:    line,
			Name:    string(m[3]),
			Status:  string(m[4]),
			Message: string(m[5]),
		})
	}
	return results
}

// Parse extracts the full report from one captured log. The summary is the
// gate: detail lines without a tally still return ErrNoSummary.
func Parse(content []byte) (Report, error) {
	summary, err := ExtractSummary(content)
	if err != nil {
		return Report{}, err
	}
	return Report{Summary: summary, Results: ParseResults(content)}, nil
}
