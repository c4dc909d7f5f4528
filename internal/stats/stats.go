// Package stats provides pure reductions over the log collection for the
// profile views and the monthly reflection input.
package stats

import (
	"sort"
	"time"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/timeutil"
)

// MinReflectionLogs is the number of logs required in the current month
// before a reflection is offered; fewer gives the mentor nothing to say.
const MinReflectionLogs = 3

// CategoryBreakdown contains the log count for a single category
type CategoryBreakdown struct {
	Category daylog.Category
	Count    int
}

// MonthlyStats is the input contract for the monthly reflection request
type MonthlyStats struct {
	TotalDays          int    `json:"totalDays"`
	MostCommonCategory string `json:"mostCommonCategory"`
	LowEffortCount     int    `json:"lowEffortCount"`
	HardestDayNote     string `json:"hardestDayNote"`
	MonthName          string `json:"monthName"`
}

// DayCell is one calendar day in the recent-pattern grid
type DayCell struct {
	Date     time.Time
	Logged   bool
	Category daylog.Category // category of the last log that day, if any
}

// CalculateBreakdown groups logs by category and returns counts sorted by
// count descending, category order as tiebreak. Unknown categories from a
// hand-edited blob are bucketed under their raw value; display code maps
// them to the fallback label.
func CalculateBreakdown(logs []daylog.DayLog) []CategoryBreakdown {
	counts := make(map[daylog.Category]int)
	for _, l := range logs {
		counts[l.Category]++
	}

	breakdowns := make([]CategoryBreakdown, 0, len(counts))
	for c, n := range counts {
		breakdowns = append(breakdowns, CategoryBreakdown{Category: c, Count: n})
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Count != breakdowns[j].Count {
			return breakdowns[i].Count > breakdowns[j].Count
		}
		return breakdowns[i].Category < breakdowns[j].Category
	})

	return breakdowns
}

// Grid builds the recent-pattern cells for the last days calendar days,
// oldest first, ending at now's day. When several logs share a day the most
// recent one colors the cell.
func Grid(logs []daylog.DayLog, now time.Time, days int) []DayCell {
	loc := now.Location()

	latestPerDay := make(map[string]daylog.DayLog)
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		key := timeutil.DayKey(l.Date, loc)
		if prev, ok := latestPerDay[key]; !ok || l.Date.After(prev.Date) {
			latestPerDay[key] = l
		}
	}

	cells := make([]DayCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		cell := DayCell{Date: timeutil.StartOfDay(day)}
		if l, ok := latestPerDay[timeutil.DayKey(day, loc)]; ok {
			cell.Logged = true
			cell.Category = l.Category
		}
		cells = append(cells, cell)
	}

	return cells
}

// MonthlySummary reduces the current month's logs to the reflection input.
// Returns nil when the month has fewer than MinReflectionLogs logs.
// TotalDays counts logs, not distinct days, matching the displayed
// "days logged" figure. The hardest day is the last hard-effort log.
func MonthlySummary(logs []daylog.DayLog, now time.Time) *MonthlyStats {
	loc := now.Location()

	var monthLogs []daylog.DayLog
	for _, l := range logs {
		if !l.Date.IsZero() && timeutil.SameMonth(l.Date, now, loc) {
			monthLogs = append(monthLogs, l)
		}
	}

	if len(monthLogs) < MinReflectionLogs {
		return nil
	}

	lowEffort := 0
	hardestNote := ""
	for _, l := range monthLogs {
		if l.Effort == daylog.EffortEasy {
			lowEffort++
		}
		if l.Effort == daylog.EffortHard {
			hardestNote = l.Note
		}
	}

	mostCommon := "general"
	if breakdown := CalculateBreakdown(monthLogs); len(breakdown) > 0 {
		mostCommon = string(breakdown[0].Category)
	}

	return &MonthlyStats{
		TotalDays:          len(monthLogs),
		MostCommonCategory: mostCommon,
		LowEffortCount:     lowEffort,
		HardestDayNote:     hardestNote,
		MonthName:          now.In(loc).Month().String(),
	}
}

// MoodShift returns the average mood change (after minus before) across the
// given logs, and false when there are no logs to average.
func MoodShift(logs []daylog.DayLog) (float64, bool) {
	if len(logs) == 0 {
		return 0, false
	}
	sum := 0
	for _, l := range logs {
		sum += l.MoodAfter - l.MoodBefore
	}
	return float64(sum) / float64(len(logs)), true
}
