package validate

import (
	"testing"

	"github.com/ccmarket/plugval/internal/types"
)

func TestCommandBareBody(t *testing.T) {
	run := Command("deploy.md", "Deploy the current branch to staging.\n")
	if len(run.Diagnostics) != 0 {
		t.Errorf("bare markdown command should pass, got %v", run.Diagnostics)
	}
}

func TestCommandEmptyFile(t *testing.T) {
	run := Command("deploy.md", "   \n")
	if !hasDiagnostic(run, types.SeverityError, "Command file cannot be empty") {
		t.Errorf("expected empty file error, got %v", run.Diagnostics)
	}
}

func TestCommandFrontmatterFields(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		severity string
		message  string
	}{
		{"short_description", "description: Run", types.SeverityWarning, "more descriptive"},
		{"unknown_field", "color: red", types.SeverityWarning, "Unknown frontmatter field: color"},
		{"bad_model", "model: claude-5", types.SeverityWarning, "Unknown model 'claude-5'"},
		{"bad_bool", "disable-model-invocation: yes", types.SeverityError, "must be a boolean"},
		{"unknown_tool", "allowed-tools: Hammer", types.SeverityWarning, "Unknown tool in allowed-tools: Hammer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "---\n" + tt.header + "\n---\nRun the deployment.\n"
			run := Command("deploy.md", content)
			if !hasDiagnostic(run, tt.severity, tt.message) {
				t.Errorf("expected %s %q, got %v", tt.severity, tt.message, run.Diagnostics)
			}
		})
	}
}

func TestCommandValidFrontmatter(t *testing.T) {
	content := `---
description: Deploy the current branch
allowed-tools: Bash(git push:*), Read
argument-hint: "[environment]"
model: sonnet
disable-model-invocation: true
---
Deploy to the requested environment.
`
	run := Command("deploy.md", content)
	if len(run.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", run.Diagnostics)
	}
}

func TestCommandBodyAdvisories(t *testing.T) {
	content := "Deploy $1 using $ARGUMENTS\n\nStatus: !`git status`\n\nSee @docs/deploy.md\n"
	run := Command("deploy.md", content)
	if run.HasErrors() {
		t.Fatalf("unexpected errors: %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityInfo, "argument placeholder") {
		t.Errorf("expected argument placeholder info, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityInfo, "inline command execution") {
		t.Errorf("expected inline execution info, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityInfo, "file references") {
		t.Errorf("expected file reference info, got %v", run.Diagnostics)
	}
}

func TestCommandPlaceholderLineNumbers(t *testing.T) {
	content := "---\ndescription: Deploy the branch\n---\nIntro line.\nUse $ARGUMENTS here.\n"
	run := Command("deploy.md", content)
	found := false
	for _, d := range run.Diagnostics {
		if d.Message == "Found argument placeholder" {
			found = true
			if d.Line != 5 {
				t.Errorf("placeholder line = %d, want 5", d.Line)
			}
		}
	}
	if !found {
		t.Errorf("expected placeholder diagnostic, got %v", run.Diagnostics)
	}
}
