package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nonzeroday/nzd/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log <note>",
	Short: "Log a non-zero action for today",
	Long: `Record a single action. Every logged action keeps the day non-zero;
several actions on the same day still advance the streak by one day.

Usage:
  nzd log "read one chapter" -c mental
  nzd log "ran 5k" -c physical -e hard --mood-before 2 --mood-after 4
  nzd log "called mom" -c relationship -r "should do this more often"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLog(cmd, args)
	},
}

func init() {
	logCmd.Flags().StringP("category", "c", "", "category: mental, physical, career, health, relationship, skill, other")
	logCmd.Flags().StringP("effort", "e", "medium", "effort level: easy, medium, hard")
	logCmd.Flags().Int("mood-before", 3, "mood before the action (1-5)")
	logCmd.Flags().Int("mood-after", 3, "mood after the action (1-5)")
	logCmd.Flags().StringP("reflection", "r", "", "optional reflection (max 120 characters)")
	_ = logCmd.MarkFlagRequired("category")
}

// runLog validates input and records a new action
func runLog(cmd *cobra.Command, args []string) {
	if !requireServices() {
		return
	}

	note := strings.Join(args, " ")
	category, _ := cmd.Flags().GetString("category")
	effort, _ := cmd.Flags().GetString("effort")
	moodBefore, _ := cmd.Flags().GetInt("mood-before")
	moodAfter, _ := cmd.Flags().GetInt("mood-after")
	reflection, _ := cmd.Flags().GetString("reflection")

	l, summary, err := deps.Services.Log.Create(service.CreateParams{
		Note:       note,
		Category:   category,
		Effort:     effort,
		MoodBefore: moodBefore,
		MoodAfter:  moodAfter,
		Reflection: reflection,
	})
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'nzd log --help' for valid categories and effort levels")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s [%s/%s]\n", l.Note, l.Category.DisplayLabel(), l.Effort)
	if summary.Streak == 1 {
		_, _ = fmt.Fprintln(deps.Stdout, "Streak: 1 day. The wall starts with one brick.")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Streak: %d days\n", summary.Streak)
	}
}
