package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the current configuration, or change a single key.

Keys:
  timezone         IANA zone name used for day boundaries (or "Local")
  theme            TUI color theme name
  gemini_model     model used for sparks and reflections
  gemini_base_url  API endpoint for the text service
  disable_spark    true/false, disables the spark feature

Example:
  nzd config
  nzd config set timezone Europe/Oslo
  nzd config set theme nord`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single configuration key",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runConfigSet(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// runConfigShow prints the active configuration
func runConfigShow() {
	if !requireServices() {
		return
	}

	cfg := deps.Services.Config.Get()

	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n\n", deps.Services.Config.Path())
	_, _ = fmt.Fprintf(deps.Stdout, "timezone        = %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "theme           = %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "gemini_model    = %s\n", cfg.GeminiModel)
	_, _ = fmt.Fprintf(deps.Stdout, "gemini_base_url = %s\n", cfg.GeminiBaseURL)
	_, _ = fmt.Fprintf(deps.Stdout, "disable_spark   = %t\n", cfg.DisableSpark)
}

// runConfigSet updates a single key and persists the file
func runConfigSet(key, value string) {
	if !requireServices() {
		return
	}

	if err := deps.Services.Config.Set(key, value); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", key, value)
}
