// Package discovery provides the read-only filesystem projection of plugin
// trees. It only enumerates files; validation of their contents lives in the
// validate package.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Well-known paths inside a plugin tree.
const (
	ManifestRelPath = ".claude-plugin/plugin.json"
	MetadataDir     = ".claude-plugin"
	SkillFileName   = "SKILL.md"
	HooksFileName   = "hooks.json"
	ReadmeFileName  = "README.md"
)

// SkillDir is one immediate subdirectory of a plugin's skills directory.
type SkillDir struct {
	Name    string
	DocPath string // absolute path to SKILL.md; empty when the doc is missing
}

// Tree is a read-only view of one plugin's on-disk layout. It is built once
// at validation start and never mutated.
type Tree struct {
	Root         string
	ManifestPath string // empty when the manifest is missing
	HasReadme    bool

	CommandsDir bool
	AgentsDir   bool
	SkillsDir   bool
	HooksDir    bool

	Commands  []string // *.md under commands/, sorted
	Agents    []string // *.md under agents/, sorted
	Skills    []SkillDir
	HookFiles []string // *.json under hooks/, sorted
}

// ScanPlugin builds the Tree for a plugin root.
func ScanPlugin(root string) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("plugin directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("plugin path is not a directory: %s", root)
	}

	tree := &Tree{Root: root}

	manifest := filepath.Join(root, ManifestRelPath)
	if fileExists(manifest) {
		tree.ManifestPath = manifest
	}
	tree.HasReadme = fileExists(filepath.Join(root, ReadmeFileName))

	tree.CommandsDir = dirExists(filepath.Join(root, "commands"))
	if tree.CommandsDir {
		tree.Commands = globSorted(root, "commands/*.md")
	}

	tree.AgentsDir = dirExists(filepath.Join(root, "agents"))
	if tree.AgentsDir {
		tree.Agents = globSorted(root, "agents/*.md")
	}

	tree.SkillsDir = dirExists(filepath.Join(root, "skills"))
	if tree.SkillsDir {
		tree.Skills = scanSkillDirs(filepath.Join(root, "skills"))
	}

	tree.HooksDir = dirExists(filepath.Join(root, "hooks"))
	if tree.HooksDir {
		tree.HookFiles = globSorted(root, "hooks/*.json")
	}

	return tree, nil
}

// FindPlugins returns the immediate subdirectories of root that look like
// plugin trees, identified by the presence of the metadata directory.
// The result is sorted for deterministic validation order.
func FindPlugins(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read plugins directory %s: %w", root, err)
	}

	var plugins []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if dirExists(filepath.Join(dir, MetadataDir)) {
			plugins = append(plugins, dir)
		}
	}
	sort.Strings(plugins)
	return plugins, nil
}

// scanSkillDirs lists the immediate subdirectories of a skills directory and
// locates each one's skill document.
func scanSkillDirs(skillsDir string) []SkillDir {
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return nil
	}

	var skills []SkillDir
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sd := SkillDir{Name: entry.Name()}
		doc := filepath.Join(skillsDir, entry.Name(), SkillFileName)
		if fileExists(doc) {
			sd.DocPath = doc
		}
		skills = append(skills, sd)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

// globSorted matches pattern under root and returns absolute paths in sorted
// order.
func globSorted(root, pattern string) []string {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
