package validate

import (
	"fmt"
	"strings"

	"github.com/ccmarket/plugval/internal/frontmatter"
	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// minAgentDescriptionLen is the threshold below which an agent description is
// flagged as too short.
const minAgentDescriptionLen = 10

// Agent validates an agent document. Frontmatter is mandatory for agents.
func Agent(file, content string) types.Run {
	run := types.NewRun(file, types.KindAgent)

	fm, err := frontmatter.Extract(content)
	if err != nil {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  err.Error(),
			Severity: types.SeverityError,
		})
		return run
	}
	if !fm.Present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Agent file must start with a frontmatter block (---)",
			Severity: types.SeverityError,
		})
		return run
	}

	checkAgentFrontmatter(&run, fm, file, content)
	checkAgentBody(&run, fm.Body, file)

	return run
}

// checkAgentFrontmatter validates the agent header fields.
func checkAgentFrontmatter(run *types.Run, fm *frontmatter.FrontMatter, file, content string) {
	lineFor := func(field string) int { return frontmatter.FieldLine(content, field) }

	for _, field := range []string{"name", "description"} {
		v, present := fm.Fields[field]
		if !present {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Missing required frontmatter field: %s", field),
				Severity: types.SeverityError,
			})
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Frontmatter field '%s' must be a string, got %s", field, frontmatter.Describe(v)),
				Severity: types.SeverityError,
				Line:     lineFor(field),
			})
			continue
		}
		if s == "" {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Frontmatter field '%s' cannot be empty", field),
				Severity: types.SeverityError,
				Line:     lineFor(field),
			})
		}
	}

	for _, d := range checkUnknownFields(fm.Fields, schema.Agent, "frontmatter", file, lineFor) {
		run.Add(d)
	}

	if tools, ok := fm.ListOrCSV("tools"); !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'tools' must be a string or list",
			Severity: types.SeverityError,
			Line:     lineFor("tools"),
		})
	} else {
		for _, d := range checkToolNames(tools, "tools", file, lineFor("tools")) {
			run.Add(d)
		}
	}

	if v, present := fm.Fields["model"]; present {
		model, isStr := v.(string)
		if !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'model' must be a string",
				Severity: types.SeverityError,
				Line:     lineFor("model"),
			})
		} else {
			for _, d := range checkModel(model, file, lineFor("model")) {
				run.Add(d)
			}
		}
	}

	if desc, ok := fm.String("description"); ok && desc != "" && len(desc) < minAgentDescriptionLen {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Description should be more descriptive (at least %d characters)", minAgentDescriptionLen),
			Severity: types.SeverityWarning,
			Line:     lineFor("description"),
		})
	}
}

// checkAgentBody validates the agent body text.
func checkAgentBody(run *types.Run, body, file string) {
	if strings.TrimSpace(body) == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Agent file cannot be empty after frontmatter",
			Severity: types.SeverityError,
		})
		return
	}

	lines := strings.Split(body, "\n")

	hasHeading := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			hasHeading = true
			break
		}
	}
	if !hasHeading {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Agent file should have a main heading",
			Severity: types.SeverityWarning,
		})
	}

	if !strings.Contains(strings.ToLower(body), "expert") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Consider defining the agent's expertise clearly",
			Severity: types.SeverityInfo,
		})
	}

	hasUsage := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "when") && (strings.Contains(lower, "use") || strings.Contains(lower, "invoke")) {
			hasUsage = true
			break
		}
	}
	if !hasUsage {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Consider specifying when to use this agent",
			Severity: types.SeverityInfo,
		})
	}
}
