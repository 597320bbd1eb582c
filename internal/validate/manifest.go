package validate

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ccmarket/plugval/internal/frontmatter"
	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// Manifest validates a plugin manifest document (.claude-plugin/plugin.json).
func Manifest(file, content string) types.Run {
	run := types.NewRun(file, types.KindManifest)

	data, parseErr := parseJSONDocument(file, content)
	if parseErr != nil {
		run.Add(*parseErr)
		return run
	}

	checkManifestRequired(&run, data, file)
	for _, d := range checkUnknownFields(data, schema.Manifest, "plugin.json", file, nil) {
		run.Add(d)
	}
	checkManifestOptional(&run, data, file)
	checkComponentReferences(&run, data, file)

	return run
}

// checkManifestRequired checks the five mandatory manifest fields.
func checkManifestRequired(run *types.Run, data map[string]any, file string) {
	for _, field := range []string{"name", "version", "description", "author", "license"} {
		v, present := data[field]
		if !present {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Missing required field in plugin.json: %s", field),
				Severity: types.SeverityError,
			})
			continue
		}
		if field == "author" {
			checkAuthor(run, v, file)
			continue
		}
		if _, isStr := v.(string); !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Field '%s' in plugin.json must be a string", field),
				Severity: types.SeverityError,
			})
		}
	}

	if name, ok := data["name"].(string); ok {
		for _, d := range CheckName(name, "Plugin name", file) {
			run.Add(d)
		}
	}

	if version, ok := data["version"].(string); ok {
		// StrictNewVersion: "1.2", "1", and "v1.2.3" must all warn.
		if _, err := semver.StrictNewVersion(version); err != nil {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Version '%s' should follow semantic versioning (x.y.z)", version),
				Severity: types.SeverityWarning,
			})
		}
	}
}

// checkAuthor validates the author object shape.
func checkAuthor(run *types.Run, v any, file string) {
	author, isObj := v.(map[string]any)
	if !isObj {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'author' in plugin.json must be an object",
			Severity: types.SeverityError,
		})
		return
	}
	name, present := author["name"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Author object must have a 'name' field",
			Severity: types.SeverityError,
		})
		return
	}
	if _, isStr := name.(string); !isStr {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Author 'name' field must be a string",
			Severity: types.SeverityError,
		})
	}
}

// checkManifestOptional type-checks the optional metadata fields.
func checkManifestOptional(run *types.Run, data map[string]any, file string) {
	for _, field := range []string{"homepage", "repository"} {
		if v, present := data[field]; present {
			if _, isStr := v.(string); !isStr {
				run.Add(types.Diagnostic{
					File:     file,
					Message:  fmt.Sprintf("Field '%s' must be a string", field),
					Severity: types.SeverityError,
				})
			}
		}
	}

	if v, present := data["keywords"]; present {
		list, isList := v.([]any)
		if !isList {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'keywords' must be an array",
				Severity: types.SeverityError,
			})
			return
		}
		for _, item := range list {
			if _, isStr := item.(string); !isStr {
				run.Add(types.Diagnostic{
					File:     file,
					Message:  "All keywords must be strings",
					Severity: types.SeverityError,
				})
				break
			}
		}
	}
}

// checkComponentReferences validates the component-reference fields.
// commands and agents accept a path string or a list of path strings;
// hooks and mcpServers must be objects. Any other shape is an error since
// the host runtime would fail to load the plugin.
func checkComponentReferences(run *types.Run, data map[string]any, file string) {
	for _, field := range []string{"commands", "agents"} {
		v, present := data[field]
		if !present {
			continue
		}
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				run.Add(types.Diagnostic{
					File:     file,
					Message:  fmt.Sprintf("Field '%s' cannot be an empty string", field),
					Severity: types.SeverityError,
				})
			}
		case []any:
			for _, item := range val {
				if _, isStr := item.(string); !isStr {
					run.Add(types.Diagnostic{
						File:     file,
						Message:  fmt.Sprintf("Field '%s' array must contain only strings, got %s", field, frontmatter.Describe(item)),
						Severity: types.SeverityError,
					})
					break
				}
			}
		default:
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Field '%s' must be a string or array of strings", field),
				Severity: types.SeverityError,
			})
		}
	}

	for _, field := range []string{"hooks", "mcpServers"} {
		v, present := data[field]
		if !present {
			continue
		}
		if _, isObj := v.(map[string]any); !isObj {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Field '%s' must be an object", field),
				Severity: types.SeverityError,
			})
		}
	}
}
