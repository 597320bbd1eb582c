package validate

import (
	"testing"

	"github.com/ccmarket/plugval/internal/types"
)

const minimalAgent = `---
name: code-reviewer
description: Reviews code changes for correctness and style issues.
tools: Read, Grep, Glob
model: sonnet
---
# Code Reviewer

You are an expert reviewer. Use this agent when a pull request needs review.
`

func TestAgentMinimalValid(t *testing.T) {
	run := Agent("reviewer.md", minimalAgent)
	if len(run.Diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", run.Diagnostics)
	}
}

func TestAgentMissingFrontmatter(t *testing.T) {
	run := Agent("reviewer.md", "# Reviewer\n\nJust a body.")
	if !hasDiagnostic(run, types.SeverityError, "must start with a frontmatter block") {
		t.Errorf("expected frontmatter error, got %v", run.Diagnostics)
	}
}

func TestAgentRequiredFields(t *testing.T) {
	run := Agent("reviewer.md", "---\nmodel: sonnet\n---\n# Body\n")
	if !hasDiagnostic(run, types.SeverityError, "Missing required frontmatter field: name") {
		t.Errorf("expected missing name error, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityError, "Missing required frontmatter field: description") {
		t.Errorf("expected missing description error, got %v", run.Diagnostics)
	}
}

func TestAgentEmptyRequiredField(t *testing.T) {
	run := Agent("reviewer.md", "---\nname:\ndescription: Reviews code for problems\n---\n# Body\n")
	if !hasDiagnostic(run, types.SeverityError, "Frontmatter field 'name' cannot be empty") {
		t.Errorf("expected empty name error, got %v", run.Diagnostics)
	}
}

func TestAgentShortDescription(t *testing.T) {
	run := Agent("reviewer.md", "---\nname: reviewer\ndescription: Reviews\n---\n# Body\n")
	if !hasDiagnostic(run, types.SeverityWarning, "more descriptive") {
		t.Errorf("expected short description warning, got %v", run.Diagnostics)
	}
}

func TestAgentToolsAndModel(t *testing.T) {
	content := `---
name: reviewer
description: Reviews code for correctness issues
tools: [Read, Grep, Wrench]
model: turbo
---
# Reviewer
`
	run := Agent("reviewer.md", content)
	if !hasDiagnostic(run, types.SeverityWarning, "Unknown tool in tools: Wrench") {
		t.Errorf("expected unknown tool warning, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityWarning, "Unknown model 'turbo'") {
		t.Errorf("expected unknown model warning, got %v", run.Diagnostics)
	}
}

func TestAgentEmptyBody(t *testing.T) {
	run := Agent("reviewer.md", "---\nname: reviewer\ndescription: Reviews code changes\n---\n")
	if !hasDiagnostic(run, types.SeverityError, "cannot be empty after frontmatter") {
		t.Errorf("expected empty body error, got %v", run.Diagnostics)
	}
}

func TestAgentBodyHints(t *testing.T) {
	content := "---\nname: reviewer\ndescription: Reviews code changes carefully\n---\nA plain body with no heading and no guidance.\n"
	run := Agent("reviewer.md", content)
	if !hasDiagnostic(run, types.SeverityWarning, "main heading") {
		t.Errorf("expected heading warning, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityInfo, "expertise") {
		t.Errorf("expected expertise hint, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityInfo, "when to use") {
		t.Errorf("expected usage hint, got %v", run.Diagnostics)
	}
}
