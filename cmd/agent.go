package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var agentCmd = &cobra.Command{
	Use:   "agent <file>...",
	Short: "Validate agent definition files",
	Long: `The agent command validates agent definition markdown files.

Validation checks:
- Mandatory front matter with required name and description
- Known front matter fields, tool names, and model
- Description quality
- Non-empty body with a heading`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFileValidation(types.KindAgent, validate.Agent, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)
}
