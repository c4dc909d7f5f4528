package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/service"
	"github.com/nonzeroday/nzd/internal/stats"
)

// reflectTimeout bounds the reflection round trip; letters take longer than
// sparks.
const reflectTimeout = 30 * time.Second

// reflectCmd represents the reflect command
var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "Generate this month's reflection letter",
	Long: `Generate a short reflective letter about the current month, written
from the perspective of a caring mentor. Requires at least a few logs
this month; offline a built-in letter is shown instead.

Example:
  nzd reflect`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReflect()
	},
}

// runReflect generates and prints the monthly reflection letter
func runReflect() {
	if !requireServices() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), reflectTimeout)
	defer cancel()

	result, err := deps.Services.Motivation.Reflect(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughLogs) {
			_, _ = fmt.Fprintf(deps.Stdout,
				"Not enough logs this month yet. Log at least %d actions and try again.\n",
				stats.MinReflectionLogs)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Reflection for %s (%d log%s):\n\n",
		result.Stats.MonthName, result.Stats.TotalDays, plural(result.Stats.TotalDays))
	_, _ = fmt.Fprintln(deps.Stdout, result.Letter)
}
