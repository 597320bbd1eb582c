package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/config"
	"github.com/ccmarket/plugval/internal/types"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Validate every plugin under the plugins directory",
	Long: `The plugins command discovers every plugin under the configured plugins
directory and validates each one. Plugins are validated concurrently; the
report lists them in name order regardless of completion order.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPluginsValidation(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

func runPluginsValidation() error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	runs, err := validatePlugins(cfg)
	if err != nil {
		return err
	}

	merged := types.NewRun(filepath.Join(cfg.Root, cfg.PluginsDir), types.KindPlugin)
	merged.Append(runs...)
	return report(cfg, merged)
}
