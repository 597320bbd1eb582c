package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/discovery"
	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var skillCmd = &cobra.Command{
	Use:   "skill <path>...",
	Short: "Validate skill documents",
	Long: `The skill command validates skill documents. Each path may be a SKILL.md
file or a skill directory containing one.

Validation checks:
- Front matter with required name and description
- Known front matter fields, tool names, and model
- Description quality and discoverability hints
- Non-empty body with a heading and usage guidance`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paths := make([]string, 0, len(args))
		for _, arg := range args {
			paths = append(paths, resolveSkillPath(arg))
		}
		if err := runFileValidation(types.KindSkill, validate.Skill, paths); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(skillCmd)
}

// resolveSkillPath maps a skill directory onto its SKILL.md document.
func resolveSkillPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, discovery.SkillFileName)
	}
	return path
}
