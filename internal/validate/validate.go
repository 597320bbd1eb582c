// Package validate implements the per-kind component validators and the
// plugin and marketplace aggregators. Each validator is a pure function from
// a path and file contents to an owned types.Run; aggregators concatenate
// runs rather than mutating a shared collector.
package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// pluginNamePattern matches kebab-case names: lowercase letters, digits, and
// single interior hyphens.
var pluginNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CheckName validates the shared plugin-naming convention. The label names
// the thing being checked ("Plugin name", "Marketplace name") so the message
// reads naturally in both contexts. Violations are errors.
func CheckName(name, label, file string) []types.Diagnostic {
	var diags []types.Diagnostic
	if name == "" {
		diags = append(diags, types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s is required", label),
			Severity: types.SeverityError,
		})
		return diags
	}
	if !pluginNamePattern.MatchString(name) {
		diags = append(diags, types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s '%s' must be kebab-case: lowercase letters, digits, and single hyphens with no leading or trailing hyphen", label, name),
			Severity: types.SeverityError,
		})
	}
	return diags
}

// parseJSONDocument parses a JSON document into a generic map and converts a
// syntax failure into a single file-level diagnostic carrying the parser's
// line and column.
func parseJSONDocument(file, content string) (map[string]any, *types.Diagnostic) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		d := types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Invalid JSON: %v", err),
			Severity: types.SeverityError,
		}
		var syntaxErr *json.SyntaxError
		if ok := asJSONError(err, &syntaxErr); ok {
			d.Line, d.Column = offsetToPosition(content, syntaxErr.Offset)
			d.Message = fmt.Sprintf("Invalid JSON: %s", syntaxErr.Error())
		}
		return nil, &d
	}
	return data, nil
}

// asJSONError is a typed errors.As without importing errors for one call site.
func asJSONError(err error, target **json.SyntaxError) bool {
	se, ok := err.(*json.SyntaxError)
	if ok {
		*target = se
	}
	return ok
}

// offsetToPosition converts a byte offset into 1-based line and column.
func offsetToPosition(content string, offset int64) (line, col int) {
	if offset < 0 || offset > int64(len(content)) {
		return 0, 0
	}
	line, col = 1, 1
	for _, b := range []byte(content[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// checkToolNames warns on allow-list entries outside the recognized tool
// vocabulary. Scoped entries like "Bash(git add:*)" are checked by base name.
func checkToolNames(tools []string, field, file string, line int) []types.Diagnostic {
	var diags []types.Diagnostic
	for _, tool := range tools {
		name := strings.TrimSpace(tool)
		if idx := strings.Index(name, "("); idx > 0 {
			name = name[:idx]
		}
		if name == "" || schema.Tools[name] {
			continue
		}
		diags = append(diags, types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Unknown tool in %s: %s", field, tool),
			Severity: types.SeverityWarning,
			Line:     line,
		})
	}
	return diags
}

// checkModel warns on a model identifier outside the recognized set.
// Unrecognized models are never errors.
func checkModel(model, file string, line int) []types.Diagnostic {
	if schema.Models[strings.ToLower(model)] {
		return nil
	}
	return []types.Diagnostic{{
		File:     file,
		Message:  fmt.Sprintf("Unknown model '%s'. Recognized models: haiku, opus, sonnet", model),
		Severity: types.SeverityWarning,
		Line:     line,
	}}
}

// checkUnknownFields emits a warning for every present field outside the
// schema's required and optional sets. Unknown fields never block validation.
func checkUnknownFields(fields map[string]any, s schema.Schema, label, file string, lineFor func(string) int) []types.Diagnostic {
	// Map iteration order is random; sort so repeated runs produce
	// byte-identical output.
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var diags []types.Diagnostic
	for _, key := range keys {
		if s.Known(key) {
			continue
		}
		line := 0
		if lineFor != nil {
			line = lineFor(key)
		}
		diags = append(diags, types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Unknown %s field: %s", label, key),
			Severity: types.SeverityWarning,
			Line:     line,
		})
	}
	return diags
}
