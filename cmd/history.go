package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/service"
)

var historyDaysFlag int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent day grid and latest logs",
	Long: `Show a grid of recent days, marking which were non-zero, followed by
the most recent logged actions.

Example:
  nzd history
  nzd history --days 30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runHistory()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyDaysFlag, "days", service.DefaultGridDays, "number of days in the grid")
}

// runHistory prints the recent-pattern grid and the latest logs
func runHistory() {
	if !requireServices() {
		return
	}

	result := deps.Services.Log.History(historyDaysFlag)

	if result.Warning != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: History file was unreadable and has been treated as empty.")
	}

	var grid strings.Builder
	for _, cell := range result.Cells {
		if cell.Logged {
			grid.WriteString("█")
		} else {
			grid.WriteString("░")
		}
	}

	days := len(result.Cells)
	_, _ = fmt.Fprintf(deps.Stdout, "Last %d days (oldest to newest):\n", days)
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", grid.String())

	if len(result.Recent) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "No logs yet. Start with 'nzd log'.")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Recent logs:")
	for _, l := range result.Recent {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s  [%s/%s] %s\n",
			l.Date.Format("Jan 02 15:04"), l.Category.DisplayLabel(), l.Effort, l.Note)
		if l.Reflection != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "    ↳ %s\n", l.Reflection)
		}
	}
}
