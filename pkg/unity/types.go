// Package unity parses Unity test framework output captured from a QEMU
// serial log. The only structurally significant content is the final tally
// line ("X Tests Y Failures Z Ignored") plus optional per-test detail lines;
// everything around them is boot noise.
package unity

// Summary is the final tally of a Unity test run.
type Summary struct {
	Tests    int `json:"tests"`
	Failures int `json:"failures"`
	Ignored  int `json:"ignored"`
}

// Passed reports whether the run had zero failures.
func (s Summary) Passed() bool { return s.Failures == 0 }

// TestResult is one per-test detail line emitted before the tally.
type TestResult struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Name    string `json:"name"`
	Status  string `json:"status"` // "PASS", "FAIL", "IGNORE"
	Message string `json:"message,omitempty"`
}

// Report is everything extracted from one captured log.
type Report struct {
	Summary Summary      `json:"summary"`
	Results []TestResult `json:"results,omitempty"`
}

// FailedResults returns the failing tests in emission order.
func (r Report) FailedResults() []TestResult {
	var failed []TestResult
	for _, res := range r.Results {
		if res.Status == StatusFail {
			failed = append(failed, res)
		}
	}
	return failed
}

// Unity detail line statuses.
const (
	StatusPass   = "PASS"
	StatusFail   = "FAIL"
	StatusIgnore = "IGNORE"
)
