package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Undo the most recent reset",
	Long: `Restore the log history from the snapshot taken by the most recent
'nzd reset'. Up to three snapshots are kept; the newest one wins.

Example:
  nzd restore`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRestore()
	},
}

// runRestore restores the newest pre-reset snapshot
func runRestore() {
	if !requireServices() {
		return
	}

	if err := deps.Services.Log.Restore(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	status := deps.Services.Log.Status()
	_, _ = fmt.Fprintf(deps.Stdout, "History restored: %d log%s, streak %d day%s\n",
		status.TotalLogs, plural(status.TotalLogs),
		status.Summary.Streak, plural(status.Summary.Streak))
}
