package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccmarket/plugval/internal/types"
)

// writePluginFile creates a file under root, making parent directories as
// needed.
func writePluginFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPluginCompleteTree(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, ".claude-plugin/plugin.json", validManifest)
	writePluginFile(t, root, "README.md", "# Git Helpers\n")
	writePluginFile(t, root, "commands/sync.md", "Synchronize the working tree with upstream.\n")
	writePluginFile(t, root, "agents/reviewer.md", minimalAgent)
	writePluginFile(t, root, "skills/pdf-tools/SKILL.md", minimalSkill)
	writePluginFile(t, root, "hooks/hooks.json", `{"hooks": {"Stop": [{"hooks": [{"type": "command", "command": "cleanup.sh"}]}]}}`)

	run := Plugin(root)
	if len(run.Diagnostics) != 0 {
		t.Errorf("expected clean run, got %v", run.Diagnostics)
	}
}

func TestPluginMissingManifest(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, "README.md", "# Plugin\n")

	run := Plugin(root)
	if !hasDiagnostic(run, types.SeverityError, "Missing .claude-plugin/plugin.json") {
		t.Errorf("expected missing manifest error, got %v", run.Diagnostics)
	}
}

func TestPluginMissingDirectory(t *testing.T) {
	run := Plugin(filepath.Join(t.TempDir(), "nope"))
	if !run.HasErrors() {
		t.Errorf("expected error for missing plugin directory, got %v", run.Diagnostics)
	}
}

func TestPluginEmptyComponentDirs(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, ".claude-plugin/plugin.json", validManifest)
	writePluginFile(t, root, "README.md", "# Plugin\n")
	if err := os.MkdirAll(filepath.Join(root, "commands"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "agents"), 0o755); err != nil {
		t.Fatal(err)
	}

	run := Plugin(root)
	if !hasDiagnostic(run, types.SeverityWarning, "Commands directory exists but contains no .md files") {
		t.Errorf("expected empty commands warning, got %v", run.Diagnostics)
	}
	if !hasDiagnostic(run, types.SeverityWarning, "Agents directory exists but contains no .md files") {
		t.Errorf("expected empty agents warning, got %v", run.Diagnostics)
	}
}

func TestPluginSkillDirWithoutDoc(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, ".claude-plugin/plugin.json", validManifest)
	writePluginFile(t, root, "README.md", "# Plugin\n")
	if err := os.MkdirAll(filepath.Join(root, "skills", "empty-skill"), 0o755); err != nil {
		t.Fatal(err)
	}

	run := Plugin(root)
	if !hasDiagnostic(run, types.SeverityWarning, "missing SKILL.md") {
		t.Errorf("expected missing SKILL.md warning, got %v", run.Diagnostics)
	}
}

func TestPluginMissingReadme(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, ".claude-plugin/plugin.json", validManifest)

	run := Plugin(root)
	if !hasDiagnostic(run, types.SeverityWarning, "README.md is recommended") {
		t.Errorf("expected README warning, got %v", run.Diagnostics)
	}
}

func TestPluginBrokenComponentDoesNotAbortRun(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, ".claude-plugin/plugin.json", validManifest)
	writePluginFile(t, root, "README.md", "# Plugin\n")
	writePluginFile(t, root, "hooks/bad.json", "{broken")
	writePluginFile(t, root, "hooks/good.json", `{"hooks": {}}`)

	run := Plugin(root)
	if !hasDiagnostic(run, types.SeverityError, "Invalid JSON") {
		t.Errorf("expected JSON error for bad.json, got %v", run.Diagnostics)
	}
	// good.json after the broken file must still be validated cleanly.
	for _, d := range run.Diagnostics {
		if filepath.Base(d.File) == "good.json" {
			t.Errorf("good.json should be clean, got %+v", d)
		}
	}
}
