package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darktheme/internal/adapter/output"
)

var statusOpts struct {
	format string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored, system and applied theme",
	Long: `Show the stored preference, the detected system preference, the theme
a fresh load applies, and when the stored preference last changed.

Formats: plain (default), json, yaml.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusOpts.format, "format", "f", "",
		"Output format: plain, json, yaml (default from config)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	page, pref, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	transition, err := themeStore.LastTransition()
	if err != nil {
		logger.Warn("failed to read last transition", "error", err)
	}

	format := statusOpts.format
	if format == "" {
		format = cfg.Output.Format
	}
	if format == "" {
		format = string(output.FormatPlain)
	}
	switch output.FormatType(format) {
	case output.FormatPlain, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("invalid format %q (want plain, json or yaml)", format)
	}

	status := output.Status{
		Stored:         page.Controller.StoredTheme(),
		System:         pref,
		Applied:        page.Initial,
		StatePath:      themeStore.Path(),
		LastTransition: transition,
	}
	return output.NewFormatter(output.FormatType(format)).Format(cmd.OutOrStdout(), status)
}
