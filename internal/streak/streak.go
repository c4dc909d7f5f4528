// Package streak reduces a log collection to the "non-zero day" streak.
// A day counts once no matter how many actions were logged on it; the streak
// is the run of consecutive logged days ending today (if today is logged) or
// yesterday (if today is still open), so the count does not drop to zero the
// moment midnight passes.
package streak

import (
	"time"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/timeutil"
)

// Summary is the derived display state for a log collection at an instant
type Summary struct {
	IsDoneToday bool
	Streak      int
}

// Evaluate computes the streak summary for logs as of now. It is a pure
// function: it never mutates logs and the same inputs always yield the same
// result. Day keys are taken in now's timezone. Logs with a zero-value date
// (e.g. from a hand-edited blob) are excluded from the day-key set rather
// than failing the computation; future-dated logs are included verbatim.
func Evaluate(logs []daylog.DayLog, now time.Time) Summary {
	loc := now.Location()

	uniqueDays := make(map[string]bool, len(logs))
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		uniqueDays[timeutil.DayKey(l.Date, loc)] = true
	}

	doneToday := uniqueDays[timeutil.DayKey(now, loc)]

	cursor := now
	if !doneToday {
		cursor = now.AddDate(0, 0, -1)
	}

	count := 0
	for uniqueDays[timeutil.DayKey(cursor, loc)] {
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return Summary{IsDoneToday: doneToday, Streak: count}
}
