package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initOpts struct {
	quiet bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Resolve and print the initial theme",
	Long: `Resolve the theme a fresh load would apply and print it.

Prints "dark", "light" or "unset". Nothing is written to the state file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initOpts.quiet, "quiet", "q", false,
		"Suppress output")
}

func runInit(cmd *cobra.Command, args []string) error {
	page, _, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	if !initOpts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), page.Initial)
	}
	return nil
}
