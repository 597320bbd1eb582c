// Package schema holds the static field tables for every component kind.
// Each kind owns a fixed set of required fields, optional fields, and
// enumerated legal values. The tables are resolved at init time; validators
// look fields up here instead of walking structs reflectively.
package schema

// Schema describes the frontmatter or document fields of one component kind.
type Schema struct {
	Required map[string]bool
	Optional map[string]bool
	// Enums maps a field name to its closed set of legal values.
	Enums map[string]map[string]bool
}

// Known reports whether the field is in the union of required and optional.
func (s Schema) Known(field string) bool {
	return s.Required[field] || s.Optional[field]
}

// HookEvents is the fixed set of lifecycle events a hook may bind to.
var HookEvents = map[string]bool{
	"PreToolUse":       true,
	"PostToolUse":      true,
	"Notification":     true,
	"UserPromptSubmit": true,
	"Stop":             true,
	"SubagentStop":     true,
	"PreCompact":       true,
	"SessionStart":     true,
	"SessionEnd":       true,
}

// EventMatchers constrains matcher values for the events that have a closed
// matcher vocabulary. The remaining events accept any non-empty matcher.
var EventMatchers = map[string]map[string]bool{
	"SessionStart": {"startup": true, "resume": true, "clear": true, "compact": true},
	"PreCompact":   {"manual": true, "auto": true},
}

// Tools is the set of recognized tool names for allow-lists.
var Tools = map[string]bool{
	"Read":         true,
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"Bash":         true,
	"LS":           true,
	"Glob":         true,
	"Grep":         true,
	"WebSearch":    true,
	"WebFetch":     true,
	"Task":         true,
	"SlashCommand": true,
}

// Models is the set of recognized model identifiers. Unknown models are a
// warning, not an error.
var Models = map[string]bool{
	"sonnet": true,
	"opus":   true,
	"haiku":  true,
}

// Skill is the frontmatter schema for SKILL.md documents.
var Skill = Schema{
	Required: map[string]bool{"name": true, "description": true},
	Optional: map[string]bool{"allowed-tools": true, "model": true},
	Enums:    map[string]map[string]bool{"model": Models},
}

// Command is the frontmatter schema for command documents. Frontmatter is
// optional for commands, so Command has no required fields.
var Command = Schema{
	Optional: map[string]bool{
		"description":              true,
		"allowed-tools":            true,
		"argument-hint":            true,
		"model":                    true,
		"disable-model-invocation": true,
	},
	Required: map[string]bool{},
	Enums:    map[string]map[string]bool{"model": Models},
}

// Agent is the frontmatter schema for agent documents.
var Agent = Schema{
	Required: map[string]bool{"name": true, "description": true},
	Optional: map[string]bool{"tools": true, "model": true},
	Enums:    map[string]map[string]bool{"model": Models},
}

// Manifest is the document schema for .claude-plugin/plugin.json.
var Manifest = Schema{
	Required: map[string]bool{
		"name":        true,
		"version":     true,
		"description": true,
		"author":      true,
		"license":     true,
	},
	Optional: map[string]bool{
		"homepage":   true,
		"repository": true,
		"keywords":   true,
		"commands":   true,
		"agents":     true,
		"hooks":      true,
		"mcpServers": true,
	},
}

// Marketplace is the document schema for marketplace.json.
var Marketplace = Schema{
	Required: map[string]bool{"name": true, "owner": true, "plugins": true},
	Optional: map[string]bool{"metadata": true},
}

// MarketplaceEntry lists the optional per-entry metadata fields of a
// marketplace plugin entry; name and source are checked separately.
var MarketplaceEntry = Schema{
	Required: map[string]bool{"name": true, "source": true},
	Optional: map[string]bool{
		"version":     true,
		"description": true,
		"homepage":    true,
		"repository":  true,
		"license":     true,
		"category":    true,
		"tags":        true,
		"strict":      true,
	},
}
