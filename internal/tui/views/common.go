package views

import (
	"fmt"
	"strings"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/tui/ui"
)

// LogRenderOptions configures how logs are rendered
type LogRenderOptions struct {
	ShowDate bool // Show date in addition to time
	Width    int  // Available width for rendering
}

// RenderLogList renders a list of logs with aligned columns
func RenderLogList(logs []daylog.DayLog, styles ui.Styles, opts LogRenderOptions) string {
	if len(logs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, l := range logs {
		var timeStr string
		if opts.ShowDate {
			timeStr = l.Date.Format("Jan 02 15:04")
		} else {
			timeStr = l.Date.Format("15:04")
		}

		note := l.Note
		maxNoteWidth := opts.Width - 30
		if maxNoteWidth < 20 {
			maxNoteWidth = 20
		}
		if len(note) > maxNoteWidth {
			note = note[:maxNoteWidth-1] + "…"
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.LogTime.Render(timeStr),
			styles.LogCategory.Render(fmt.Sprintf("[%s/%s]", l.Category.DisplayLabel(), l.Effort)),
			styles.LogNote.Render(note)))

		if l.Reflection != "" {
			b.WriteString("             ")
			b.WriteString(styles.LogReflection.Render("↳ " + l.Reflection))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderGrid renders the recent-pattern day cells as one row, oldest first
func RenderGrid(cells []stats.DayCell, styles ui.Styles) string {
	var b strings.Builder
	for _, cell := range cells {
		if cell.Logged {
			b.WriteString(styles.GridLogged.Render("█"))
		} else {
			b.WriteString(styles.GridEmpty.Render("░"))
		}
	}
	return b.String()
}

// renderBar renders a proportional bar of at most width characters
func renderBar(count, maxCount, width int) string {
	if maxCount <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
