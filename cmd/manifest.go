package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <file>...",
	Short: "Validate plugin manifest files",
	Long: `The manifest command validates plugin.json manifest files.

Validation checks:
- Required fields: name, version, description, author, license
- Name format: lowercase alphanumeric with hyphens
- Version format: semantic versioning (x.y.z)
- Component reference shapes for commands, agents, hooks, and mcpServers`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFileValidation(types.KindManifest, validate.Manifest, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}
