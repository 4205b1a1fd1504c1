// unitycheck classifies a captured Unity test log into a CI exit code.
//
// Usage:
//
//	qemu-system-xtensa ... | tee qemu_output.log
//	unitycheck qemu_output.log
//
// The log is scanned for the Unity tally line "X Tests Y Failures Z Ignored";
// the last occurrence wins. Exit codes:
//
//	0 — summary found, zero failures
//	1 — failures present, or no summary in the log
//	2 — bad arguments or unreadable file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/firmware-ci/unitycheck/internal/config"
	"github.com/firmware-ci/unitycheck/internal/version"
	"github.com/firmware-ci/unitycheck/pkg/render"
	"github.com/firmware-ci/unitycheck/pkg/unity"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load(".")

	fs := flag.NewFlagSet("unitycheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: unitycheck [flags] <output.log>\n")
		fs.PrintDefaults()
	}
	formatFlag := fs.String("format", cfg.Format, "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", cfg.Theme, "Theme: default, mono")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "unitycheck %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	// Exactly one positional argument; checked before any file access.
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	mode := resolveFormat(*formatFlag, stdout)
	validFormats := map[string]bool{"terminal": true, "plain": true, "json": true}
	if !validFormats[mode] {
		fmt.Fprintf(stderr, "unitycheck: unknown format %q (expected auto, terminal, plain, json)\n", *formatFlag)
		return 2
	}

	path := fs.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Error: output file not found: %s\n", path)
		} else {
			fmt.Fprintf(stderr, "Error: reading %s: %v\n", path, err)
		}
		return 2
	}

	rep, err := unity.Parse(content)
	if err != nil {
		if errors.Is(err, unity.ErrNoSummary) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintf(stderr, "\nThis usually means:\n")
			fmt.Fprintf(stderr, "  - Tests didn't complete (QEMU timeout or crash)\n")
			fmt.Fprintf(stderr, "  - Unity framework wasn't properly initialized\n")
			fmt.Fprintf(stderr, "  - Output was truncated\n")
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	fmt.Fprint(stdout, selectRenderer(mode, *themeFlag, cfg.NoColor).Render(rep))

	if rep.Summary.Passed() {
		return 0
	}
	return 1
}

func selectRenderer(mode, themeName string, noColor bool) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		theme := render.ThemeByName(themeName)
		// Honor NO_COLOR
		if noColor || os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return "terminal"
		}
	}
	return "plain"
}
