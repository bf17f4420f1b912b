// Package main provides the CLI entrypoint for darktheme.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darktheme/internal/config"
	"github.com/jmylchreest/darktheme/internal/controller"
	"github.com/jmylchreest/darktheme/internal/store"
	"github.com/jmylchreest/darktheme/internal/system"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose      bool
		stateFile    string
		configPath   string
		prefersDark  bool
		prefersLight bool
	}
	logger *slog.Logger

	// themeStore is the persistent preference store
	themeStore *store.FileStore
	querier    *system.Querier
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "darktheme",
	Short: "Light/dark theme toggle with a persisted preference",
	Long: `darktheme resolves and toggles a light/dark theme preference.

On every load the stored preference is reconciled with the system
color-scheme preference:

  - no valid stored value and the system prefers dark: dark
  - stored "dark": dark
  - stored "light": light
  - otherwise no theme is applied

A toggle flips the applied theme and stores the new choice.

Running darktheme without a subcommand prints the resolved theme.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd.ErrOrStderr())

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		statePath := globalOpts.stateFile
		if statePath == "" {
			statePath = cfg.Store.Path
		}
		themeStore, err = store.NewFileStore(statePath)
		if err != nil {
			return fmt.Errorf("failed to open state file: %w", err)
		}
		themeStore.SetSource(cmd.Name())

		querier, err = newQuerier(cfg)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: runInit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.stateFile, "state-file", "",
		"Path to state file (default: ~/.local/share/darktheme/state.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/darktheme/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.prefersDark, "prefers-dark", false,
		"Treat the system as preferring dark instead of detecting it")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.prefersLight, "prefers-light", false,
		"Treat the system as not preferring dark instead of detecting it")
	rootCmd.MarkFlagsMutuallyExclusive("prefers-dark", "prefers-light")
}

// setupLogger configures the global slog logger.
func setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(w, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newQuerier builds the system preference querier from flags and config.
// The --prefers-dark/--prefers-light flags replace detection entirely.
func newQuerier(c *config.Config) (*system.Querier, error) {
	timeout, err := c.SystemTimeout()
	if err != nil {
		return nil, err
	}

	if globalOpts.prefersDark || globalOpts.prefersLight {
		d := system.NewStaticDetector(globalOpts.prefersDark)
		d.Label = "flag"
		return system.NewQuerier(logger, timeout, d), nil
	}

	detectors, err := system.NewDetectors(c.System.Detectors, logger)
	if err != nil {
		return nil, err
	}
	return system.NewQuerier(logger, timeout, detectors...), nil
}

// loadPage performs a load: query the system preference once, then bind the
// toggle button and resolve the initial theme.
func loadPage(ctx context.Context, opts ...controller.Option) (*controller.Page, system.Preference, error) {
	if themeStore == nil || querier == nil {
		return nil, system.Preference{}, errors.New("darktheme is not initialised")
	}
	pref := querier.Query(ctx)
	opts = append([]controller.Option{controller.WithLogger(logger)}, opts...)
	page := controller.Load(themeStore, pref.PrefersDark, opts...)
	return page, pref, nil
}
