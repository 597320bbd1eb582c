package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ccmarket/plugval/internal/config"
	"github.com/ccmarket/plugval/internal/discovery"
	"github.com/ccmarket/plugval/internal/output"
	"github.com/ccmarket/plugval/internal/types"
	"github.com/ccmarket/plugval/internal/validate"
)

// fileValidator checks one document and returns its diagnostics.
type fileValidator func(file, content string) types.Run

// runFileValidation is the generic driver behind the single-file commands.
// It reads each path, runs the validator on its content, and reports the
// merged run. Unreadable files become error diagnostics rather than aborting
// the run.
func runFileValidation(kind string, validator fileValidator, paths []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	merged := types.NewRun(runTarget(paths), kind)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			merged.Add(types.Diagnostic{
				File:     path,
				Message:  fmt.Sprintf("Cannot read file: %v", err),
				Severity: types.SeverityError,
			})
			continue
		}
		merged.Append(validator(path, string(content)))
	}

	return report(cfg, merged)
}

// runTarget names a merged run after its inputs.
func runTarget(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%d files", len(paths))
}

// validatePlugins validates every plugin under the configured plugins
// directory. Plugins are validated concurrently but the returned runs are in
// plugin name order, so repeated invocations produce identical reports.
func validatePlugins(cfg *config.Config) ([]types.Run, error) {
	dir := filepath.Join(cfg.Root, cfg.PluginsDir)
	plugins, err := discovery.FindPlugins(dir)
	if err != nil {
		return nil, fmt.Errorf("error scanning plugins directory: %w", err)
	}

	runs := make([]types.Run, len(plugins))
	workers := 1
	if cfg.Parallel {
		workers = cfg.Concurrency
		if workers > len(plugins) && len(plugins) > 0 {
			workers = len(plugins)
		}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runs[i] = validate.Plugin(plugins[i])
			}
		}()
	}
	for i := range plugins {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return runs, nil
}

// report renders the merged run in the configured format and maps the result
// onto the process exit status.
func report(cfg *config.Config, run types.Run) error {
	w := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var formatter output.Formatter
	switch cfg.Format {
	case "json":
		formatter = output.NewJSONFormatter(cfg.Strict)
	default:
		formatter = output.NewTextFormatter(cfg.Quiet)
	}
	if err := formatter.Format(w, run); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if code := output.ExitCode(run, cfg.Strict); code != 0 {
		exitFunc(code)
	}
	return nil
}
