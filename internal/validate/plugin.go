package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccmarket/plugval/internal/discovery"
	"github.com/ccmarket/plugval/internal/types"
)

// Plugin validates an entire plugin directory: the manifest, every component
// document, and the structural conventions of the tree. Diagnostics are
// concatenated in file-then-kind order, so repeated runs over the same tree
// produce identical output.
func Plugin(root string) types.Run {
	run := types.NewRun(root, types.KindPlugin)

	tree, err := discovery.ScanPlugin(root)
	if err != nil {
		run.Add(types.Diagnostic{
			File:     root,
			Message:  err.Error(),
			Severity: types.SeverityError,
		})
		return run
	}

	validateManifestFile(&run, tree)
	validateCommandFiles(&run, tree)
	validateAgentFiles(&run, tree)
	validateSkillDirs(&run, tree)
	validateHookFiles(&run, tree)

	if !tree.HasReadme {
		run.Add(types.Diagnostic{
			File:     filepath.Join(root, discovery.ReadmeFileName),
			Message:  "README.md is recommended for better plugin discovery",
			Severity: types.SeverityWarning,
		})
	}

	return run
}

// validateFile reads one document and dispatches it to a per-kind validator.
// A read failure is a diagnostic on the file, never a failure of the whole
// plugin run.
func validateFile(run *types.Run, path string, validator func(string, string) types.Run) {
	content, err := os.ReadFile(path)
	if err != nil {
		run.Add(types.Diagnostic{
			File:     path,
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Severity: types.SeverityError,
		})
		return
	}
	run.Append(validator(path, string(content)))
}

func validateManifestFile(run *types.Run, tree *discovery.Tree) {
	if tree.ManifestPath == "" {
		run.Add(types.Diagnostic{
			File:     filepath.Join(tree.Root, discovery.ManifestRelPath),
			Message:  "Missing .claude-plugin/plugin.json",
			Severity: types.SeverityError,
		})
		return
	}
	validateFile(run, tree.ManifestPath, Manifest)
}

func validateCommandFiles(run *types.Run, tree *discovery.Tree) {
	if !tree.CommandsDir {
		return
	}
	if len(tree.Commands) == 0 {
		run.Add(types.Diagnostic{
			File:     filepath.Join(tree.Root, "commands"),
			Message:  "Commands directory exists but contains no .md files",
			Severity: types.SeverityWarning,
		})
		return
	}
	for _, path := range tree.Commands {
		validateFile(run, path, Command)
	}
}

func validateAgentFiles(run *types.Run, tree *discovery.Tree) {
	if !tree.AgentsDir {
		return
	}
	if len(tree.Agents) == 0 {
		run.Add(types.Diagnostic{
			File:     filepath.Join(tree.Root, "agents"),
			Message:  "Agents directory exists but contains no .md files",
			Severity: types.SeverityWarning,
		})
		return
	}
	for _, path := range tree.Agents {
		validateFile(run, path, Agent)
	}
}

func validateSkillDirs(run *types.Run, tree *discovery.Tree) {
	for _, skill := range tree.Skills {
		if skill.DocPath == "" {
			run.Add(types.Diagnostic{
				File:     filepath.Join(tree.Root, "skills", skill.Name, discovery.SkillFileName),
				Message:  fmt.Sprintf("Skill directory '%s' is missing %s", skill.Name, discovery.SkillFileName),
				Severity: types.SeverityWarning,
			})
			continue
		}
		validateFile(run, skill.DocPath, Skill)
	}
}

// validateHookFiles checks every JSON document under hooks/ against the hook
// schema. Markdown fallback documents in the directory are advisory content
// and get no schema check.
func validateHookFiles(run *types.Run, tree *discovery.Tree) {
	for _, path := range tree.HookFiles {
		validateFile(run, path, Hooks)
	}
}
