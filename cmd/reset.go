package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/motivation"
)

var resetYesFlag bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all history and start fresh",
	Long: `Erase the entire log history. A snapshot is taken first, so a
regretted reset can be undone with 'nzd restore'. A confirmation
prompt is shown unless --yes is specified.

Example:
  nzd reset
  nzd reset --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReset()
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// runReset erases all history after confirmation
func runReset() {
	if !requireServices() {
		return
	}

	if !resetYesFlag {
		if !promptResetConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
			return
		}
	}

	if err := deps.Services.Log.Reset(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "History erased. Day one starts now.")
	_, _ = fmt.Fprintln(deps.Stdout, "Changed your mind? 'nzd restore' brings it back.")
}

// promptResetConfirmation asks the user to confirm the reset
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptResetConfirmation() bool {
	quote := motivation.RestartQuotes[rand.Intn(len(motivation.RestartQuotes))]
	_, _ = fmt.Fprintf(deps.Stdout, "%s\n\n", quote)
	_, _ = fmt.Fprint(deps.Stdout, "Erase all history and start fresh? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
