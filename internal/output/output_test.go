package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ccmarket/plugval/internal/types"
)

func sampleRun() types.Run {
	run := types.NewRun("plugins/git-helpers", types.KindPlugin)
	run.Add(types.Diagnostic{File: "plugin.json", Message: "Missing required field in plugin.json: license", Severity: types.SeverityError})
	run.Add(types.Diagnostic{File: "commands/sync.md", Message: "Description should be more descriptive", Severity: types.SeverityWarning, Line: 2})
	run.Add(types.Diagnostic{File: "commands/sync.md", Message: "Found argument placeholder", Severity: types.SeverityInfo, Line: 7})
	return run
}

func TestTextFormatterGroupsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(false)
	f.colorize = false

	if err := f.Format(&buf, sampleRun()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	errIdx := strings.Index(out, "ERROR")
	warnIdx := strings.Index(out, "WARNING")
	infoIdx := strings.Index(out, "INFO")
	if errIdx == -1 || warnIdx == -1 || infoIdx == -1 {
		t.Fatalf("missing severity sections:\n%s", out)
	}
	if !(errIdx < warnIdx && warnIdx < infoIdx) {
		t.Errorf("sections out of order:\n%s", out)
	}
	if !strings.Contains(out, "commands/sync.md:2") {
		t.Errorf("expected file:line location:\n%s", out)
	}
	if !strings.Contains(out, "Summary: 1 errors, 1 warnings, 1 info") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestTextFormatterQuietHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(true)
	f.colorize = false

	if err := f.Format(&buf, sampleRun()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "argument placeholder") {
		t.Errorf("quiet mode must hide info diagnostics:\n%s", buf.String())
	}
}

func TestTextFormatterCleanRun(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(false)
	f.colorize = false

	if err := f.Format(&buf, types.NewRun("plugins/clean", types.KindPlugin)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no issues found") {
		t.Errorf("expected success line, got %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(false).Format(&buf, sampleRun()); err != nil {
		t.Fatal(err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Target != "plugins/git-helpers" {
		t.Errorf("Target = %q", report.Target)
	}
	if len(report.Diagnostics) != 3 {
		t.Errorf("Diagnostics = %d, want 3", len(report.Diagnostics))
	}
	if report.Errors != 1 || report.Warnings != 1 || report.Info != 1 {
		t.Errorf("counts = %d/%d/%d", report.Errors, report.Warnings, report.Info)
	}
	if report.Passing {
		t.Error("run with errors must not pass")
	}
	if report.Diagnostics[1].Line != 2 {
		t.Errorf("Line = %d, want 2", report.Diagnostics[1].Line)
	}
}

func TestJSONFormatterStrictPassing(t *testing.T) {
	run := types.NewRun("x", types.KindPlugin)
	run.Add(types.Diagnostic{File: "a", Message: "m", Severity: types.SeverityWarning})

	var buf bytes.Buffer
	if err := NewJSONFormatter(true).Format(&buf, run); err != nil {
		t.Fatal(err)
	}
	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Passing {
		t.Error("warnings must fail in strict mode")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		strict   bool
		want     int
	}{
		{"clean", "", false, 0},
		{"info_only", types.SeverityInfo, false, 0},
		{"info_strict", types.SeverityInfo, true, 0},
		{"warning_lenient", types.SeverityWarning, false, 0},
		{"warning_strict", types.SeverityWarning, true, 1},
		{"error", types.SeverityError, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := types.NewRun("x", types.KindPlugin)
			if tt.severity != "" {
				run.Add(types.Diagnostic{File: "a", Message: "m", Severity: tt.severity})
			}
			if got := ExitCode(run, tt.strict); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
