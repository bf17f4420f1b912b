package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show the detected system color-scheme preference",
	Long: `Query the configured detectors once and print whether the system
prefers dark, along with the detector that answered.`,
	Args: cobra.NoArgs,
	RunE: runSystem,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}

func runSystem(cmd *cobra.Command, args []string) error {
	pref := querier.Query(cmd.Context())

	source := pref.Source
	if source == "" {
		source = "none"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "prefers dark: %t (source: %s, detectors: %s)\n",
		pref.PrefersDark, source, strings.Join(querier.Names(), ", "))
	return nil
}
