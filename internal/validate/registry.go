package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccmarket/plugval/internal/discovery"
	"github.com/ccmarket/plugval/internal/types"
)

// CrossReference checks each registry entry's declared source against the
// local filesystem. String sources resolve relative to baseDir and must point
// at an existing plugin tree with a manifest. GitHub sources that declare a
// local path get an advisory check against pluginsDir; the remote side is
// never contacted.
//
// Parse failures are ignored here: Marketplace already reports them, and a
// malformed registry has no entries to cross-reference.
func CrossReference(file, content, baseDir, pluginsDir string) types.Run {
	run := types.NewRun(file, types.KindMarketplace)

	var doc struct {
		Plugins []struct {
			Name   string          `json:"name"`
			Source json.RawMessage `json:"source"`
		} `json:"plugins"`
	}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return run
	}

	for _, entry := range doc.Plugins {
		name := entry.Name
		if name == "" {
			name = "unknown"
		}
		crossReferenceSource(&run, file, name, entry.Source, baseDir, pluginsDir)
	}

	return run
}

// crossReferenceSource resolves one entry's source declaration.
func crossReferenceSource(run *types.Run, file, name string, raw json.RawMessage, baseDir, pluginsDir string) {
	if len(raw) == 0 {
		return
	}

	var localPath string
	if err := json.Unmarshal(raw, &localPath); err == nil {
		checkLocalSource(run, file, name, localPath, baseDir)
		return
	}

	var src map[string]any
	if err := json.Unmarshal(raw, &src); err != nil {
		return // shape errors are reported by Marketplace
	}
	if src["source"] == "github" {
		checkGithubMirror(run, file, name, src, pluginsDir)
	}
}

// checkLocalSource requires the declared directory and its manifest to exist.
func checkLocalSource(run *types.Run, file, name, source, baseDir string) {
	if source == "" {
		return // empty sources are reported by Marketplace
	}
	dir := filepath.Join(baseDir, filepath.FromSlash(source))

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Plugin '%s' source path does not exist: %s", name, source),
			Severity: types.SeverityError,
		})
		return
	}
	if _, err := os.Stat(filepath.Join(dir, discovery.ManifestRelPath)); err != nil {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Plugin '%s' missing plugin.json at: %s", name, source),
			Severity: types.SeverityError,
		})
	}
}

// checkGithubMirror warns when a github source declares a local path that the
// plugins directory does not mirror. The source itself lives remotely, so a
// missing mirror is advisory only.
func checkGithubMirror(run *types.Run, file, name string, src map[string]any, pluginsDir string) {
	path, _ := src["path"].(string)
	if path == "" || pluginsDir == "" {
		return
	}
	if _, err := os.Stat(pluginsDir); err != nil {
		return
	}

	local := filepath.Join(pluginsDir, filepath.Base(filepath.FromSlash(path)))
	if _, err := os.Stat(local); err != nil {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Plugin '%s' local path '%s' not found for validation", name, path),
			Severity: types.SeverityWarning,
		})
		return
	}
	if _, err := os.Stat(filepath.Join(local, discovery.ManifestRelPath)); err != nil {
		run.Add(types.Diagnostic{
			File:     file,
			Message:  fmt.Sprintf("Plugin '%s' missing plugin.json in local path: %s", name, path),
			Severity: types.SeverityWarning,
		})
	}
}
