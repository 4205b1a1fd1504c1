package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmware-ci/unitycheck/pkg/unity"
)

func passingReport() unity.Report {
	return unity.Report{Summary: unity.Summary{Tests: 10, Failures: 0, Ignored: 0}}
}

func failingReport() unity.Report {
	return unity.Report{
		Summary: unity.Summary{Tests: 10, Failures: 2, Ignored: 1},
		Results: []unity.TestResult{
			{File: "test/test_gpio.c", Line: 42, Name: "test_gpio_set_level", Status: unity.StatusPass},
			{File: "test/test_gpio.c", Line: 57, Name: "test_gpio_invalid_pin", Status: unity.StatusFail, Message: "Expected 0 Was -1"},
			{File: "test/test_spi.c", Line: 12, Name: "test_spi_dma", Status: unity.StatusFail},
		},
	}
}

func TestPlain_AllPassed(t *testing.T) {
	out := NewPlain().Render(passingReport())

	assert.Contains(t, out, "Test Results:")
	assert.Contains(t, out, "Total Tests: 10")
	assert.Contains(t, out, "Failures: 0")
	assert.Contains(t, out, "Ignored: 0")
	assert.Contains(t, out, "All tests passed!")
	assert.NotContains(t, out, "\033[", "plain output must not contain ANSI codes")
}

func TestPlain_SomeFailed(t *testing.T) {
	out := NewPlain().Render(failingReport())

	assert.Contains(t, out, "Failures: 2")
	assert.Contains(t, out, "2 test(s) failed")
	assert.Contains(t, out, "FAIL test_gpio_invalid_pin: Expected 0 Was -1 (test/test_gpio.c:57)")
	assert.Contains(t, out, "FAIL test_spi_dma (test/test_spi.c:12)")
	assert.NotContains(t, out, "test_gpio_set_level", "passing tests are not listed")
}

func TestTerminal_MonoTheme(t *testing.T) {
	out := NewTerminal(MonoTheme()).Render(failingReport())

	assert.Contains(t, out, "Total Tests: 10")
	assert.Contains(t, out, "x 2 test(s) failed")
	assert.Contains(t, out, "test_gpio_invalid_pin")
}

func TestTerminal_PassBanner(t *testing.T) {
	out := NewTerminal(MonoTheme()).Render(passingReport())

	assert.Contains(t, out, "+ All tests passed!")
	assert.NotContains(t, out, "Failed:")
}

func TestJSON_RoundTrip(t *testing.T) {
	out := NewJSON().Render(failingReport())

	var decoded struct {
		Version string       `json:"version"`
		Report  unity.Report `json:"report"`
		Passed  bool         `json:"passed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0", decoded.Version)
	assert.False(t, decoded.Passed)
	assert.Equal(t, 10, decoded.Report.Summary.Tests)
	assert.Len(t, decoded.Report.Results, 3)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestJSON_Passed(t *testing.T) {
	out := NewJSON().Render(passingReport())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["passed"])
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("default").Name)
	assert.Equal(t, "default", ThemeByName("nonsense").Name)
}
