// Package output renders merged validation runs for humans and for machines
// and owns the exit-status policy.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ccmarket/plugval/internal/types"
)

// severityOrder fixes the grouping order of the text report.
var severityOrder = []string{types.SeverityError, types.SeverityWarning, types.SeverityInfo}

// TextFormatter renders a run as a severity-grouped, colorized report.
type TextFormatter struct {
	quiet    bool
	colorize bool

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	passStyle    lipgloss.Style
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(quiet bool) *TextFormatter {
	return &TextFormatter{
		quiet:        quiet,
		colorize:     true,
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		warningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // cyan
		passStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")), // green
	}
}

// Format writes the report for one merged run.
func (f *TextFormatter) Format(w io.Writer, run types.Run) error {
	if len(run.Diagnostics) == 0 {
		if !f.quiet {
			fmt.Fprintf(w, "%s %s: no issues found\n", f.render(f.passStyle, "✓"), run.Target)
		}
		return nil
	}

	for _, severity := range severityOrder {
		if f.quiet && severity == types.SeverityInfo {
			continue
		}
		for _, d := range run.Diagnostics {
			if d.Severity != severity {
				continue
			}
			fmt.Fprintf(w, "%s %s: %s\n", f.badge(severity), location(d), d.Message)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d errors, %d warnings, %d info\n",
		run.Count(types.SeverityError),
		run.Count(types.SeverityWarning),
		run.Count(types.SeverityInfo))

	return nil
}

// badge renders the severity tag for one report line.
func (f *TextFormatter) badge(severity string) string {
	switch severity {
	case types.SeverityError:
		return f.render(f.errorStyle, "✘ ERROR")
	case types.SeverityWarning:
		return f.render(f.warningStyle, "⚠ WARNING")
	default:
		return f.render(f.infoStyle, "ℹ INFO")
	}
}

func (f *TextFormatter) render(style lipgloss.Style, s string) string {
	if !f.colorize {
		return s
	}
	return style.Render(s)
}

// location formats a diagnostic's file position. Line and column are omitted
// for file-level diagnostics.
func location(d types.Diagnostic) string {
	switch {
	case d.Line > 0 && d.Column > 0:
		return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	case d.Line > 0:
		return fmt.Sprintf("%s:%d", d.File, d.Line)
	default:
		return d.File
	}
}

// ExitCode maps a merged run onto the process exit status: zero when the run
// passes, one otherwise. Strict mode promotes warnings to failing.
func ExitCode(run types.Run, strict bool) int {
	if run.Passing(strict) {
		return 0
	}
	return 1
}
