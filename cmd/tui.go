package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface.

Views available:
  - Today: streak, today's logs, the log form, and a spark card
  - Profile: recent-pattern grid, life balance, monthly reflection, reset

Keyboard shortcuts:
  - Tab/Shift+Tab: Switch between views
  - 1-2: Jump to a specific view
  - j/k or arrows: Navigate within lists
  - l: Open the log form (Today view)
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// runTUI initializes and runs the TUI application
func runTUI() {
	if !requireServices() {
		return
	}

	if err := tui.Run(deps.Services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
