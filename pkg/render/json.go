package render

import (
	"encoding/json"

	"github.com/firmware-ci/unitycheck/pkg/unity"
)

// JSON renders a report as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string       `json:"version"`
	Report  unity.Report `json:"report"`
	Passed  bool         `json:"passed"`
}

// Render formats the report as indented JSON.
func (j *JSON) Render(rep unity.Report) string {
	out := jsonOutput{
		Version: "1.0",
		Report:  rep,
		Passed:  rep.Summary.Passed(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
