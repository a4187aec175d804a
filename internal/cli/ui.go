package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dotsweep/pkg/batch"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// Status lines go to w (stderr in practice) so that stdout stays reserved
// for the converter's file names.

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed detail line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+styleValue.Render(value))
}

// =============================================================================
// Run Summary
// =============================================================================

// printSummary reports the outcome of a conversion run, listing each failed
// file with the renderer's diagnostics.
func printSummary(w io.Writer, r *batch.Report) {
	total := len(r.Results)
	switch {
	case total == 0:
		printInfo(w, "No graph files in %s", r.Dir)
	case r.Failed() == 0:
		printSuccess(w, "Rendered %d graph(s)", r.Rendered())
	default:
		printWarning(w, "Rendered %d of %d graph(s), %d failed", r.Rendered(), total, r.Failed())
	}

	if n := r.Cached(); n > 0 {
		printDetail(w, "%d served from cache", n)
	}
	for _, f := range r.Failures() {
		printError(w, "%s", filepath.Base(f.Source))
		if f.Stderr != "" {
			printDetail(w, "%s", f.Stderr)
		}
	}
	if n := len(r.StaleRemoved); n > 0 {
		printDetail(w, "Removed %d stale image(s)", n)
	}
	if n := len(r.SourcesRemoved); n > 0 {
		printDetail(w, "Removed %d graph file(s)", n)
	}
}
