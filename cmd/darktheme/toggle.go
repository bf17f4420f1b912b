package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darktheme/internal/controller"
	"github.com/jmylchreest/darktheme/internal/model"
)

var toggleOpts struct {
	quiet bool
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the theme and store the new choice",
	Long: `Load the page, then click the theme toggle once.

Dark becomes light; light or no theme becomes dark. The new theme is
stored so the next load applies it.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVarP(&toggleOpts.quiet, "quiet", "q", false,
		"Suppress output")
}

func runToggle(cmd *cobra.Command, args []string) error {
	var persistErr error
	page, _, err := loadPage(cmd.Context(), controller.WithChangeCallback(func(_ model.Theme, err error) {
		persistErr = err
	}))
	if err != nil {
		return err
	}

	page.Click()
	if persistErr != nil {
		return fmt.Errorf("failed to save theme: %w", persistErr)
	}

	if !toggleOpts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), page.Controller.Current())
	}
	return nil
}
