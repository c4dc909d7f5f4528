package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the life-balance breakdown",
	Long: `Show how your logged actions distribute across life categories, plus
the average mood shift across all logs.

Example:
  nzd stats`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats()
	},
}

// barWidth is the maximum width of a breakdown bar in characters
const barWidth = 20

// runStats prints the category breakdown and mood shift
func runStats() {
	if !requireServices() {
		return
	}

	result := deps.Services.Stats.Balance()

	if result.TotalLogs == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No logs yet. Start with 'nzd log'.")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Life balance (%d log%s):\n", result.TotalLogs, plural(result.TotalLogs))

	max := 0
	for _, b := range result.Breakdown {
		if b.Count > max {
			max = b.Count
		}
	}

	for _, b := range result.Breakdown {
		width := b.Count * barWidth / max
		if width == 0 {
			width = 1
		}
		bar := strings.Repeat("█", width)
		_, _ = fmt.Fprintf(deps.Stdout, "  %-14s %s %d\n", b.Category.DisplayLabel(), bar, b.Count)
	}

	if result.HasMood {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintf(deps.Stdout, "Average mood shift: %+.1f\n", result.MoodShift)
	}
}
