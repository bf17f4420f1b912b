package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darktheme/internal/model"
)

var setOpts struct {
	quiet bool
}

// darkCmd applies and stores the dark theme.
var darkCmd = &cobra.Command{
	Use:   "dark",
	Short: "Apply and store the dark theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(cmd, model.ThemeDark)
	},
}

// lightCmd applies and stores the light theme.
var lightCmd = &cobra.Command{
	Use:   "light",
	Short: "Apply and store the light theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(cmd, model.ThemeLight)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{darkCmd, lightCmd} {
		cmd.Flags().BoolVarP(&setOpts.quiet, "quiet", "q", false,
			"Suppress output")
		rootCmd.AddCommand(cmd)
	}
}

func runSet(cmd *cobra.Command, theme model.Theme) error {
	page, _, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	if err := page.Controller.Set(theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	if !setOpts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), page.Controller.Current())
	}
	return nil
}
