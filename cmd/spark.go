package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/motivation"
)

// sparkTimeout bounds the round trip to the text service; the gateway falls
// back locally when it expires.
const sparkTimeout = 20 * time.Second

// sparkCmd represents the spark command
var sparkCmd = &cobra.Command{
	Use:   "spark",
	Short: "Fetch a quick motivational boost",
	Long: `Fetch a short motivational quote or a two-minute micro-task. Needs a
Gemini API key in the ` + motivation.APIKeyEnvVar + ` environment variable;
without one (or offline) a built-in quote is shown instead.

Example:
  nzd spark`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSpark()
	},
}

// runSpark fetches and prints one piece of motivational text
func runSpark() {
	if !requireServices() {
		return
	}

	if deps.Services.Config.Get().DisableSpark {
		_, _ = fmt.Fprintln(deps.Stderr, "Spark is disabled. Enable it with 'nzd config set disable_spark false'.")
		deps.Exit(1)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sparkTimeout)
	defer cancel()

	result := deps.Services.Motivation.Spark(ctx)

	switch result.Type {
	case motivation.SparkTask:
		_, _ = fmt.Fprintln(deps.Stdout, "Micro-task:")
	default:
		_, _ = fmt.Fprintln(deps.Stdout, "Quote:")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", result.Text)
}
