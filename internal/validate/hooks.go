package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ccmarket/plugval/internal/schema"
	"github.com/ccmarket/plugval/internal/types"
)

// hooksSchema covers the top level of a hooks.json document.
var hooksSchema = schema.Schema{
	Required: map[string]bool{"hooks": true},
	Optional: map[string]bool{"description": true},
}

// Hooks validates a hook-registry document (hooks.json).
func Hooks(file, content string) types.Run {
	run := types.NewRun(file, types.KindHooks)

	for _, d := range scanMarkerBalance(file, content) {
		run.Add(d)
	}

	data, parseErr := parseJSONDocument(file, content)
	if parseErr != nil {
		run.Add(*parseErr)
		return run
	}

	if desc, ok := data["description"]; ok {
		if _, isStr := desc.(string); !isStr {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  "Field 'description' must be a string",
				Severity: types.SeverityError,
			})
		}
	}

	for _, d := range checkUnknownFields(data, hooksSchema, "hooks.json", file, nil) {
		run.Add(d)
	}

	hooks, ok := data["hooks"]
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Missing required 'hooks' field",
			Severity: types.SeverityError,
		})
		return run
	}

	events, ok := hooks.(map[string]any)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Field 'hooks' must be a JSON object keyed by event name",
			Severity: types.SeverityError,
		})
		return run
	}

	names := make([]string, 0, len(events))
	for name := range events {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, event := range names {
		validateEvent(&run, file, event, events[event])
	}

	return run
}

// validateEvent checks one event's binding list. An unrecognized event name
// is a single error; the binding list under it is not inspected further.
func validateEvent(run *types.Run, file, event string, bindings any) {
	if !schema.HookEvents[event] {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Invalid event name '%s'. Valid events: %s", event, joinSorted(schema.HookEvents)),
			Severity: types.SeverityError,
		})
		return
	}

	list, ok := bindings.([]any)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Event '%s' must be a list of hook bindings", event),
			Severity: types.SeverityError,
		})
		return
	}

	for i, binding := range list {
		validateBinding(run, file, event, binding, i)
	}
}

// validateBinding checks a single binding entry: its optional matcher and its
// required, non-empty list of hook actions.
func validateBinding(run *types.Run, file, event string, binding any, index int) {
	entry, ok := binding.(map[string]any)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Hook binding at index %d for '%s' must be a JSON object", index, event),
			Severity: types.SeverityError,
		})
		return
	}

	if matcher, present := entry["matcher"]; present {
		validateMatcher(run, file, event, matcher)
	}

	actions, present := entry["hooks"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Missing 'hooks' field in binding at index %d for '%s'", index, event),
			Severity: types.SeverityError,
		})
		return
	}

	actionList, ok := actions.([]any)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Field 'hooks' must be a list in binding at index %d for '%s'", index, event),
			Severity: types.SeverityError,
		})
		return
	}
	if len(actionList) == 0 {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Binding at index %d for '%s' declares no hook actions", index, event),
			Severity: types.SeverityError,
		})
		return
	}

	for j, action := range actionList {
		validateAction(run, file, event, action, j)
	}
}

// validateMatcher checks matcher legality. Only SessionStart and PreCompact
// have closed matcher vocabularies; every other event accepts any non-empty
// matcher.
func validateMatcher(run *types.Run, file, event string, matcher any) {
	s, ok := matcher.(string)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Matcher for '%s' must be a string", event),
			Severity: types.SeverityWarning,
		})
		return
	}

	if vocab, closed := schema.EventMatchers[event]; closed {
		if !vocab[s] {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Invalid matcher '%s' for %s. Valid: %s", s, event, joinSorted(vocab)),
				Severity: types.SeverityWarning,
			})
		}
		return
	}

	if strings.TrimSpace(s) == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Matcher for '%s' should not be empty", event),
			Severity: types.SeverityWarning,
		})
	}
}

// validateAction checks a single hook action: its type, command, and timeout.
func validateAction(run *types.Run, file, event string, action any, index int) {
	entry, ok := action.(map[string]any)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Hook action at index %d must be a JSON object", index),
			Severity: types.SeverityError,
		})
		return
	}

	actionType, present := entry["type"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Missing 'type' field in hook action at index %d", index),
			Severity: types.SeverityError,
		})
		return
	}
	if actionType != "command" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Invalid hook type '%v'. Only 'command' is supported", actionType),
			Severity: types.SeverityError,
		})
		return
	}

	command, present := entry["command"]
	if !present {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Missing 'command' field in hook action at index %d", index),
			Severity: types.SeverityError,
		})
		return
	}
	cmd, ok := command.(string)
	if !ok {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Command must be a string in hook action at index %d", index),
			Severity: types.SeverityError,
		})
		return
	}
	if strings.TrimSpace(cmd) == "" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Command cannot be empty in hook action at index %d", index),
			Severity: types.SeverityError,
		})
		return
	}

	if timeout, present := entry["timeout"]; present {
		if f, isNum := timeout.(float64); !isNum || f <= 0 {
			run.Add(types.Diagnostic{
				File:     file,
				Message:  fmt.Sprintf("Timeout must be a positive number in hook action at index %d", index),
				Severity: types.SeverityError,
			})
		}
	}

	// Advisory acknowledgement of environment-style variable references.
	if strings.Contains(cmd, "${CLAUDE_PLUGIN_ROOT}") && event != "SessionStart" && event != "PreToolUse" && event != "PostToolUse" {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Uses CLAUDE_PLUGIN_ROOT variable",
			Severity: types.SeverityInfo,
		})
	}
	if strings.Contains(cmd, "$CLAUDE_PROJECT_DIR") {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  "Uses CLAUDE_PROJECT_DIR variable",
			Severity: types.SeverityInfo,
		})
	}
}

// joinSorted renders a set as a sorted comma-separated list for messages.
func joinSorted(set map[string]bool) string {
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}
