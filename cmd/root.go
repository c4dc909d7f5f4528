package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/config"
	"github.com/nonzeroday/nzd/internal/logger"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "nzd",
	Short: "A no-zero-day habit tracking CLI",
	Long: `nzd keeps you honest about "no zero days": log one small action every
day and watch the streak grow.

Usage:
  nzd                                           Show today's status and streak
  nzd log <note> -c <category>                  Log a non-zero action
  nzd history                                   Show the recent day grid and latest logs
  nzd stats                                     Show the life-balance breakdown
  nzd spark                                     Fetch a quick motivational boost
  nzd reflect                                   Generate this month's reflection letter
  nzd reset                                     Erase all history (with confirmation)
  nzd restore                                   Undo the most recent reset

Categories: mental, physical, career, health, relationship, skill, other
Effort levels: easy, medium, hard`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDiagnostics()
	},
	Run: func(cmd *cobra.Command, args []string) {
		runStatus()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "mirror diagnostic logs to stderr")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sparkCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
}

// initDiagnostics wires the rotating diagnostic log under the config dir.
// Failure to set it up is not fatal; the logger stays a discard logger.
func initDiagnostics() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return
	}
	_ = logger.Init(logger.Config{
		Debug:     debugFlag,
		ConfigDir: filepath.Dir(configPath),
	})
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"nzd version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runStatus shows the streak summary and today's logs
func runStatus() {
	if !requireServices() {
		return
	}

	status := deps.Services.Log.Status()

	if status.Warning != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: History file was unreadable and has been treated as empty.")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'nzd validate' for details, or 'nzd restore' if a backup exists.")
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Streak: %d day%s\n", status.Summary.Streak, plural(status.Summary.Streak))

	if status.Summary.IsDoneToday {
		_, _ = fmt.Fprintln(deps.Stdout, "Today: ✓ non-zero")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Today: not yet logged")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: One small action keeps the day non-zero. Try 'nzd spark' if you're stuck.")
	}

	if len(status.TodayLogs) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Logged today:")
		for _, l := range status.TodayLogs {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s  [%s/%s] %s\n",
				l.Date.Format("15:04"), l.Category.DisplayLabel(), l.Effort, l.Note)
		}
	}
}

// plural returns "s" unless n is 1
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
