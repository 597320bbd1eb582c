package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ccmarket/plugval/internal/config"
	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

var (
	rootPath     string
	pluginsDir   string
	marketplace  string
	strict       bool
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
)

// exitFunc is replaced in tests to observe exit codes without terminating
// the test binary.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "plugval",
	Short: "Plugval - a validator for Claude Code plugin artifacts",
	Long: `Plugval validates the component files that make up Claude Code plugins
and marketplaces: hook configurations, skills, commands, agents, plugin
manifests, and the marketplace registry.

By default, plugval validates the marketplace registry and every plugin
under the plugins directory. Use specialized commands to focus on a single
component type or file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFullValidation(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Marketplace root directory (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVarP(&pluginsDir, "plugins-dir", "p", "plugins", "Directory containing plugins, relative to the root")
	rootCmd.PersistentFlags().StringVarP(&marketplace, "marketplace", "m", ".claude-plugin/marketplace.json", "Marketplace registry file, relative to the root")
	rootCmd.PersistentFlags().BoolVarP(&strict, "strict", "s", false, "Treat warnings as failures")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress info diagnostics and success output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format for reports (text|json)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (defaults to stdout)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("pluginsDir", rootCmd.PersistentFlags().Lookup("plugins-dir"))
	viper.BindPFlag("marketplace", rootCmd.PersistentFlags().Lookup("marketplace"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".plugvalrc.json", ".plugvalrc.yaml", ".plugvalrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

// runFullValidation validates the marketplace registry, cross-references its
// entries against the plugins directory, and validates every plugin tree.
func runFullValidation() error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	merged, err := fullValidationRun(cfg)
	if err != nil {
		return err
	}
	return report(cfg, merged)
}

// fullValidationRun builds the merged run for the default target: the
// marketplace registry plus every plugin. A missing or unreadable registry
// is an error diagnostic, not a silent skip.
func fullValidationRun(cfg *config.Config) (types.Run, error) {
	merged := types.NewRun(cfg.Root, types.KindMarketplace)

	marketplacePath := filepath.Join(cfg.Root, cfg.Marketplace)
	content, err := os.ReadFile(marketplacePath)
	if err != nil {
		merged.Add(types.Diagnostic{
			File:     marketplacePath,
			Message:  fmt.Sprintf("Cannot read file: %v", err),
			Severity: types.SeverityError,
		})
	} else {
		merged.Append(validate.Marketplace(marketplacePath, string(content)))
		merged.Append(validate.CrossReference(marketplacePath, string(content), cfg.Root, cfg.PluginsDir))
	}

	runs, err := validatePlugins(cfg)
	if err != nil {
		return merged, err
	}
	merged.Append(runs...)

	return merged, nil
}
