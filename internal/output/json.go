package output

import (
	"encoding/json"
	"io"

	"github.com/ccmarket/plugval/internal/types"
)

// Record is one diagnostic in the machine-readable report.
type Record struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Report is the machine-readable form of a merged run.
type Report struct {
	Target      string   `json:"target"`
	Diagnostics []Record `json:"diagnostics"`
	Errors      int      `json:"errors"`
	Warnings    int      `json:"warnings"`
	Info        int      `json:"info"`
	Passing     bool     `json:"passing"`
}

// JSONFormatter renders a run as indented JSON, one record per diagnostic.
type JSONFormatter struct {
	strict bool
}

// NewJSONFormatter creates a JSONFormatter. The strict flag changes only the
// reported passing status, not the diagnostics.
func NewJSONFormatter(strict bool) *JSONFormatter {
	return &JSONFormatter{strict: strict}
}

// Format writes the report for one merged run.
func (f *JSONFormatter) Format(w io.Writer, run types.Run) error {
	report := Report{
		Target:      run.Target,
		Diagnostics: make([]Record, 0, len(run.Diagnostics)),
		Errors:      run.Count(types.SeverityError),
		Warnings:    run.Count(types.SeverityWarning),
		Info:        run.Count(types.SeverityInfo),
		Passing:     run.Passing(f.strict),
	}
	for _, d := range run.Diagnostics {
		report.Diagnostics = append(report.Diagnostics, Record{
			File:     d.File,
			Message:  d.Message,
			Severity: d.Severity,
			Line:     d.Line,
			Column:   d.Column,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
