package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ccmarket/plugval/internal/frontmatter"
	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// minCommandDescriptionLen is the threshold below which a command description
// is flagged as too short.
const minCommandDescriptionLen = 5

// argumentPlaceholderPattern matches positional argument placeholders ($1..$n).
var argumentPlaceholderPattern = regexp.MustCompile(`\$\d+`)

// Command validates a command document. Frontmatter is optional for commands;
// a bare markdown body is a legal command.
func Command(file, content string) types.Run {
	run := types.NewRun(file, types.KindCommand)

	fm, err := frontmatter.Extract(content)
	if err != nil {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  err.Error(),
			Severity: types.SeverityError,
		})
		return run
	}

	if fm.Present {
		checkCommandFrontmatter(&run, fm, file, content)
	}
	checkCommandBody(&run, fm, file)

	return run
}

// checkCommandFrontmatter validates the optional command header fields.
func checkCommandFrontmatter(run *types.Run, fm *frontmatter.FrontMatter, file, content string) {
	lineFor := func(field string) int { return frontmatter.FieldLine(content, field) }

	for _, d := range checkUnknownFields(fm.Fields, schema.Command, "frontmatter", file, lineFor) {
		run.Add(d)
	}

	if v, present := fm.Fields["description"]; present {
		desc, isStr := v.(string)
		if !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Field 'description' must be a string, got %s", frontmatter.Describe(v)),
				Severity: types.SeverityError,
				Line:     lineFor("description"),
			})
		} else if len(desc) < minCommandDescriptionLen {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Description should be more descriptive",
				Severity: types.SeverityWarning,
				Line:     lineFor("description"),
			})
		}
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

	if v, present := fm.Fields["argument-hint"]; present {
		if _, isStr := v.(string); !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'argument-hint' must be a string",
				Severity: types.SeverityError,
				Line:     lineFor("argument-hint"),
			})
		}
	}

	if model, ok := fm.String("model"); ok {
		for _, d := range checkModel(model, file, lineFor("model")) {
			run.Add(d)
		}
	}

	if v, present := fm.Fields["disable-model-invocation"]; present {
		if _, isBool := v.(bool); !isBool {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'disable-model-invocation' must be a boolean",
				Severity: types.SeverityError,
				Line:     lineFor("disable-model-invocation"),
			})
		}
	}
}

// checkCommandBody validates the command body and acknowledges the dynamic
// constructs it uses. All body pattern checks are advisory only.
func checkCommandBody(run *types.Run, fm *frontmatter.FrontMatter, file string) {
	body := fm.Body
	if strings.TrimSpace(body) == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Command file cannot be empty",
			Severity: types.SeverityError,
		})
		return
	}

	for i, line := range strings.Split(body, "\n") {
		if strings.Contains(line, "$ARGUMENTS") || argumentPlaceholderPattern.MatchString(line) {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Found argument placeholder",
				Severity: types.SeverityInfo,
				Line:     fm.BodyLine(i + 1),
			})
		}
	}

	if strings.Contains(body, "!`") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Found inline command execution",
			Severity: types.SeverityInfo,
		})
	}
	if strings.Contains(body, "@") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Found file references",
			Severity: types.SeverityInfo,
		})
	}
}
