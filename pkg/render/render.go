// Package render provides output renderers for Unity test reports.
package render

import "github.com/firmware-ci/unitycheck/pkg/unity"

// Renderer converts a report to formatted output.
type Renderer interface {
	Render(rep unity.Report) string
}
