package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/config"
	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin <dir>...",
	Short: "Validate plugin directory trees",
	Long: `The plugin command validates one or more plugin directories: the manifest
at .claude-plugin/plugin.json plus every command, agent, skill, and hook
configuration found in the tree.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPluginValidation(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pluginCmd)
}

func runPluginValidation(dirs []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	merged := types.NewRun(runTarget(dirs), types.KindPlugin)
	for _, dir := range dirs {
		merged.Append(validate.Plugin(dir))
	}
	return report(cfg, merged)
}
