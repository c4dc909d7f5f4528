package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the health of the log storage",
	Long: `Check that the log storage file exists and parses cleanly, and report
its size and log count.

Example:
  nzd validate`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate()
	},
}

// runValidate prints the storage health report
func runValidate() {
	if !requireServices() {
		return
	}

	health, err := deps.Services.Log.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to inspect storage: %v\n", err)
		deps.Exit(1)
		return
	}

	if !health.Exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Storage: not created yet (no logs)")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Storage: %d bytes\n", health.SizeBytes)

	if !health.Parsable {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: CORRUPTED")
		if health.Warning != nil {
			_, _ = fmt.Fprintf(deps.Stdout, "Detail: %s\n", health.Warning.Error)
		}
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: 'nzd restore' may bring back a snapshot if one exists.")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Status: OK")
	_, _ = fmt.Fprintf(deps.Stdout, "Logs: %d\n", health.LogCount)
}
