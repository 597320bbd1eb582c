package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// Marketplace validates a marketplace registry document (marketplace.json).
// It checks the document's own schema only; cross-referencing entries against
// the local plugin tree is done by CrossReference.
func Marketplace(file, content string) types.Run {
	run := types.NewRun(file, types.KindMarketplace)

	data, parseErr := parseJSONDocument(file, content)
	if parseErr != nil {
		run.Add(*parseErr)
		return run
	}

	for _, field := range []string{"name", "owner", "plugins"} {
		if _, present := data[field]; !present {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Required field '%s' is missing", field),
				Severity: types.SeverityError,
			})
		}
	}

	for _, d := range checkUnknownFields(data, schema.Marketplace, "marketplace.json", file, nil) {
		run.Add(d)
	}

	if name, ok := data["name"].(string); ok {
		for _, d := range CheckName(name, "Marketplace name", file) {
			run.Add(d)
		}
	}

	if v, present := data["owner"]; present {
		checkOwner(&run, v, file)
	}

	if v, present := data["plugins"]; present {
		entries, isList := v.([]any)
		if !isList {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'plugins' must be an array",
				Severity: types.SeverityError,
			})
		} else {
			for i, entry := range entries {
				checkMarketplaceEntry(&run, entry, file, i)
			}
		}
	}

	if v, present := data["metadata"]; present {
		checkMarketplaceMetadata(&run, v, file)
	}

	return run
}

// checkOwner validates the owner object shape.
func checkOwner(run *types.Run, v any, file string) {
	owner, isObj := v.(map[string]any)
	if !isObj {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'owner' must be an object",
			Severity: types.SeverityError,
		})
		return
	}
	name, present := owner["name"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Owner must have a 'name' field",
			Severity: types.SeverityError,
		})
		return
	}
	if _, isStr := name.(string); !isStr {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Owner name must be a string",
			Severity: types.SeverityError,
		})
	}
}

// checkMarketplaceMetadata validates the optional metadata object.
func checkMarketplaceMetadata(run *types.Run, v any, file string) {
	metadata, isObj := v.(map[string]any)
	if !isObj {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'metadata' must be an object",
			Severity: types.SeverityError,
		})
		return
	}
	for _, field := range []string{"description", "version", "pluginRoot"} {
		if fv, present := metadata[field]; present {
			if _, isStr := fv.(string); !isStr {
				run.Add(types.Diagnostic{
					File:     file,
					Message:  fmt.Sprintf("Metadata field '%s' must be a string", field),
					Severity: types.SeverityError,
				})
			}
		}
	}
}

// checkMarketplaceEntry validates one plugin entry in the registry.
func checkMarketplaceEntry(run *types.Run, v any, file string, index int) {
	context := fmt.Sprintf("plugins[%d]", index)

	entry, isObj := v.(map[string]any)
	if !isObj {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: entry must be a JSON object", context),
			Severity: types.SeverityError,
		})
		return
	}

	name, hasName := entry["name"].(string)
	if !hasName {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: Plugin name is required", context),
			Severity: types.SeverityError,
		})
		return
	}
	context = fmt.Sprintf("%s (%s)", context, name)

	for _, d := range CheckName(name, "Plugin name", file) {
		run.Add(d)
	}

	for _, d := range checkUnknownFields(entry, schema.MarketplaceEntry, "marketplace entry", file, nil) {
		run.Add(d)
	}

	source, present := entry["source"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: Source is required", context),
			Severity: types.SeverityError,
		})
	} else {
		checkEntrySource(run, source, context, file)
	}

	for _, field := range []string{"version", "description", "homepage", "repository", "license", "category"} {
		if fv, has := entry[field]; has {
			if _, isStr := fv.(string); !isStr {
				run.Add(types.Diagnostic{
					File:     file,
					Message:  fmt.Sprintf("%s: Field '%s' must be a string", context, field),
					Severity: types.SeverityError,
				})
			}
		}
	}

	if tags, has := entry["tags"]; has {
		list, isList := tags.([]any)
		if !isList {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("%s: Field 'tags' must be an array", context),
				Severity: types.SeverityError,
			})
		} else {
			for _, tag := range list {
				if _, isStr := tag.(string); !isStr {
					run.Add(types.Diagnostic{
						File:     file,
						Message:  fmt.Sprintf("%s: All tags must be strings", context),
						Severity: types.SeverityError,
					})
					break
				}
			}
		}
	}

	if strict, has := entry["strict"]; has {
		if _, isBool := strict.(bool); !isBool {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("%s: Field 'strict' must be a boolean", context),
				Severity: types.SeverityError,
			})
		}
	}
}

// checkEntrySource validates a source descriptor structurally. A string is a
// relative local path; an object carries a discriminator plus that
// discriminator's required fields. No network access happens here.
func checkEntrySource(run *types.Run, source any, context, file string) {
	switch src := source.(type) {
	case string:
		if strings.TrimSpace(src) == "" {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("%s: Source cannot be an empty string", context),
				Severity: types.SeverityError,
			})
		}
	case map[string]any:
		discriminator, hasType := src["source"].(string)
		if !hasType {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("%s: Source object must specify 'source' type", context),
				Severity: types.SeverityError,
			})
			return
		}
		switch discriminator {
		case "github":
			checkGithubSource(run, src, context, file)
		case "url":
			checkURLSource(run, src, context, file)
		}
	default:
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: Source must be a string or object", context),
			Severity: types.SeverityError,
		})
	}
}

// checkGithubSource requires a repo identifier in owner/repo form.
func checkGithubSource(run *types.Run, src map[string]any, context, file string) {
	repo, has := src["repo"].(string)
	if !has || repo == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: GitHub source must specify 'repo'", context),
			Severity: types.SeverityError,
		})
		return
	}
	if !strings.Contains(repo, "/") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: GitHub repo format should be 'owner/repo', got: %s", context, repo),
			Severity: types.SeverityError,
		})
	}
}

// checkURLSource requires a syntactically valid absolute URL.
func checkURLSource(run *types.Run, src map[string]any, context, file string) {
	raw, has := src["url"].(string)
	if !has || raw == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: URL source must specify 'url'", context),
			Severity: types.SeverityError,
		})
		return
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("%s: Invalid URL format: %s", context, raw),
			Severity: types.SeverityError,
		})
	}
}
