package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var commandCmd = &cobra.Command{
	Use:   "command <file>...",
	Short: "Validate command documents",
	Long: `The command command validates slash command markdown files.

Validation checks:
- Optional front matter with known fields only
- description, allowed-tools, argument-hint, model, disable-model-invocation
- Non-empty body
- Informational notes for argument placeholders, bash execution, and file references`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFileValidation(types.KindCommand, validate.Command, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(commandCmd)
}
