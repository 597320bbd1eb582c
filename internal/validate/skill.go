package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ccmarket/plugval/internal/frontmatter"
	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// minSkillDescriptionLen is the threshold below which a skill description is
// flagged as too short.
const minSkillDescriptionLen = 10

// markdownLinkPattern matches [text](target) references in a document body.
var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Skill validates a SKILL.md document.
func Skill(file, content string) types.Run {
	run := types.NewRun(file, types.KindSkill)

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
			Message:  "SKILL.md must start with a frontmatter block (---)",
			Severity: types.SeverityError,
		})
		return run
	}

	checkSkillFrontmatter(&run, fm, file, content)
	checkSkillBody(&run, fm.Body, file)

	return run
}

// checkSkillFrontmatter validates the skill header fields.
func checkSkillFrontmatter(run *types.Run, fm *frontmatter.FrontMatter, file, content string) {
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

	for _, d := range checkUnknownFields(fm.Fields, schema.Skill, "frontmatter", file, lineFor) {
		run.Add(d)
	}

	if tools, ok := fm.ListOrCSV("allowed-tools"); !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'allowed-tools' must be a string or list",
			Severity: types.SeverityError,
			Line:     lineFor("allowed-tools"),
		})
	} else {
		for _, d := range checkToolNames(tools, "allowed-tools", file, lineFor("allowed-tools")) {
			run.Add(d)
		}
	}

	if model, ok := fm.String("model"); ok {
		for _, d := range checkModel(model, file, lineFor("model")) {
			run.Add(d)
		}
	}

	if desc, ok := fm.String("description"); ok && desc != "" {
		if len(desc) < minSkillDescriptionLen {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Description should be more descriptive (at least %d characters)", minSkillDescriptionLen),
				Severity: types.SeverityWarning,
				Line:     lineFor("description"),
			})
		} else if !strings.Contains(strings.ToLower(desc), "use when") {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Consider stating when to use the skill in the description",
				Severity: types.SeverityInfo,
				Line:     lineFor("description"),
			})
		}
	}
}

// checkSkillBody validates the markdown body following the header.
func checkSkillBody(run *types.Run, body, file string) {
	if strings.TrimSpace(body) == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "SKILL.md cannot be empty after frontmatter",
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
			Message:  "SKILL.md should have a main heading (# Skill Name)",
			Severity: types.SeverityWarning,
		})
	}

	lower := strings.ToLower(body)
	if !strings.Contains(lower, "instruction") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Consider adding an Instructions section",
			Severity: types.SeverityInfo,
		})
	}
	if !strings.Contains(lower, "example") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Consider adding an Examples section",
			Severity: types.SeverityInfo,
		})
	}

	for _, ref := range markdownLinkPattern.FindAllStringSubmatch(body, -1) {
		target := ref[2]
		if strings.HasPrefix(target, "./") || strings.HasPrefix(target, "../") {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Found relative file reference: %s", target),
				Severity: types.SeverityInfo,
			})
		}
	}
}
