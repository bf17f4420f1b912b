package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/darktheme/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive theme page",
	Long: `Launch a terminal page with a theme toggle button.

The page is loaded like any other invocation: the initial theme comes from
the stored preference or the system preference. Clicking the button (or
pressing enter/space) toggles and stores the theme.

Key bindings:
  enter, space, t   Toggle theme
  d                 Apply and store dark
  l                 Apply and store light
  ?                 Show help
  q                 Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	page, pref, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOptions{
		Page:     page,
		System:   pref,
		ShowHelp: cfg.TUI.ShowHelp,
	})
}
