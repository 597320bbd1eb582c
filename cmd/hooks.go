package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks <file>...",
	Short: "Validate hook configuration files",
	Long: `The hooks command validates hook configuration JSON files.

Validation checks:
- Balanced template markers in the raw document
- Well-formed JSON with a top-level hooks object
- Known hook event names and matcher vocabularies
- Hook actions with type "command", a non-empty command, and a positive timeout`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFileValidation(types.KindHooks, validate.Hooks, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}
