package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quoter/internal/driver"
	"quoter/internal/project"
	"quoter/internal/quote"
)

// addQuoteFlags регистрирует флаги, общие для quote и check.
func addQuoteFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "minimal", "trivia mode (minimal|default|verbose)")
	cmd.Flags().String("quotes", "normalize", "verbatim string arguments (normalize|preserve)")
	cmd.Flags().Int("max-depth", quote.DefaultMaxDepth, "maximum node nesting before giving up")
	cmd.Flags().Int("indent", quote.DefaultIndent, "spaces per nesting level in the output")
	cmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cmd.Flags().Bool("no-cache", false, "disable the on-disk output cache")
	cmd.Flags().StringArray("define", nil, "preprocessor symbol to define (repeatable)")
}

// loadConfig reads --config or the nearest quoter.toml above input.
func loadConfig(cmd *cobra.Command, input string) (project.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.LoadConfig(path)
	}
	start := input
	if info, err := os.Stat(input); err != nil || !info.IsDir() {
		start = filepath.Dir(input)
	}
	m, ok, err := project.LoadManifest(start)
	if err != nil || !ok {
		return project.Config{}, err
	}
	return m.Config, nil
}

// resolveOptions layers command-line flags over quoter.toml.
func resolveOptions(cmd *cobra.Command, input string) (driver.Options, int, error) {
	cfg, err := loadConfig(cmd, input)
	if err != nil {
		return driver.Options{}, 0, err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Quote.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("quotes") {
		cfg.Quote.Quotes, _ = flags.GetString("quotes")
	}
	if flags.Changed("max-depth") {
		cfg.Quote.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("indent") {
		cfg.Quote.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("jobs") {
		cfg.Driver.Jobs, _ = flags.GetInt("jobs")
	}
	if defines, _ := flags.GetStringArray("define"); len(defines) > 0 {
		cfg.Parse.Defines = append(cfg.Parse.Defines, defines...)
	}
	settings, err := cfg.Settings()
	if err != nil {
		return driver.Options{}, 0, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return driver.Options{}, 0, fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := driver.Options{
		Settings:       settings,
		Defines:        cfg.Parse.Defines,
		MaxDiagnostics: maxDiagnostics,
		Timings:        timings,
	}
	noCache, _ := flags.GetBool("no-cache")
	if cfg.CacheEnabled() && !noCache {
		cache, err := driver.OpenDiskCache("quoter")
		if err != nil {
			// без кэша работаем дальше
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}
	return opts, cfg.Driver.Jobs, nil
}
