package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccmarket/plugval/internal/config"
	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace [file]",
	Short: "Validate the marketplace registry",
	Long: `The marketplace command validates a marketplace.json registry file and
cross-references its entries against the local plugins directory.

Validation checks:
- Required fields: name, owner, plugins
- Entry names: lowercase alphanumeric with hyphens, present and non-empty
- Source shapes: local path strings, github sources, url sources
- Local path entries resolve to a plugin directory with a manifest`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMarketplaceValidation(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(marketplaceCmd)
}

func runMarketplaceValidation(args []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	path := filepath.Join(cfg.Root, cfg.Marketplace)
	if len(args) == 1 {
		path = args[0]
	}

	merged := types.NewRun(path, types.KindMarketplace)
	content, err := os.ReadFile(path)
	if err != nil {
		merged.Add(types.Diagnostic{
			File:     path,
			Message:  fmt.Sprintf("Cannot read file: %v", err),
			Severity: types.SeverityError,
		})
		return report(cfg, merged)
	}

	merged.Append(validate.Marketplace(path, string(content)))
	merged.Append(validate.CrossReference(path, string(content), cfg.Root, cfg.PluginsDir))
	return report(cfg, merged)
}
