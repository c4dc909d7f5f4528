package streak

import (
	"testing"
	"time"

	"github.com/nonzeroday/nzd/internal/daylog"
)

func logOn(date time.Time) daylog.DayLog {
	return daylog.New(date, "did a thing", daylog.CategoryMental, daylog.EffortEasy, 3, 4, "")
}

func logsOnDayOffsets(now time.Time, offsets ...int) []daylog.DayLog {
	logs := make([]daylog.DayLog, 0, len(offsets))
	for _, off := range offsets {
		logs = append(logs, logOn(now.AddDate(0, 0, off)))
	}
	return logs
}

func TestEvaluate_EmptyCollection(t *testing.T) {
	got := Evaluate(nil, time.Now())
	if got.IsDoneToday {
		t.Error("expected IsDoneToday=false for empty collection")
	}
	if got.Streak != 0 {
		t.Errorf("expected streak 0, got %d", got.Streak)
	}
}

func TestEvaluate_SingleLogToday(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	got := Evaluate(logsOnDayOffsets(now, 0), now)

	if !got.IsDoneToday {
		t.Error("expected IsDoneToday=true")
	}
	if got.Streak != 1 {
		t.Errorf("expected streak 1, got %d", got.Streak)
	}
}

func TestEvaluate_ThreeConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	got := Evaluate(logsOnDayOffsets(now, 0, -1, -2), now)

	if !got.IsDoneToday {
		t.Error("expected IsDoneToday=true")
	}
	if got.Streak != 3 {
		t.Errorf("expected streak 3, got %d", got.Streak)
	}
}

func TestEvaluate_TodayOpenStreakSurvivesFromYesterday(t *testing.T) {
	// Logs yesterday and the day before, nothing today: the streak holds at 2
	// until a full day is skipped.
	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	got := Evaluate(logsOnDayOffsets(now, -1, -2), now)

	if got.IsDoneToday {
		t.Error("expected IsDoneToday=false")
	}
	if got.Streak != 2 {
		t.Errorf("expected streak 2, got %d", got.Streak)
	}
}

func TestEvaluate_GapBreaksStreak(t *testing.T) {
	// Yesterday and 3 days ago only: cursor starts at yesterday, 2-days-ago is
	// missing, so the streak is exactly 1.
	now := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)
	got := Evaluate(logsOnDayOffsets(now, -1, -3), now)

	if got.IsDoneToday {
		t.Error("expected IsDoneToday=false")
	}
	if got.Streak != 1 {
		t.Errorf("expected streak 1, got %d", got.Streak)
	}
}

func TestEvaluate_MultipleLogsSameDayCountOnce(t *testing.T) {
	now := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)

	one := Evaluate(logsOnDayOffsets(now, 0), now)

	two := []daylog.DayLog{
		logOn(now.Add(-6 * time.Hour)),
		logOn(now.Add(-1 * time.Hour)),
	}
	two[0].Category = daylog.CategoryPhysical
	two[1].Category = daylog.CategoryCareer
	both := Evaluate(two, now)

	if !both.IsDoneToday {
		t.Error("expected IsDoneToday=true")
	}
	if both.Streak != one.Streak {
		t.Errorf("two same-day logs should not advance the streak twice: got %d, want %d", both.Streak, one.Streak)
	}
}

func TestEvaluate_OldLogsDoNotExtendActiveStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := logsOnDayOffsets(now, 0, -1)

	before := Evaluate(logs, now)

	// A log dated far in the past lands behind the gap and changes nothing.
	logs = append(logs, logOn(now.AddDate(0, 0, -30)))
	after := Evaluate(logs, now)

	if after.Streak != before.Streak {
		t.Errorf("past log changed streak from %d to %d", before.Streak, after.Streak)
	}
}

func TestEvaluate_AppendingTodayAlwaysMarksDone(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := logsOnDayOffsets(now, -5, -9)

	if got := Evaluate(logs, now); got.IsDoneToday {
		t.Fatal("precondition failed: today should not be done")
	}

	logs = append(logs, logOn(now))
	if got := Evaluate(logs, now); !got.IsDoneToday {
		t.Error("expected IsDoneToday=true after appending a log dated today")
	}
}

func TestEvaluate_SkipsZeroDates(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := []daylog.DayLog{
		logOn(now),
		{ID: "broken", Note: "no date"},
	}

	got := Evaluate(logs, now)
	if got.Streak != 1 {
		t.Errorf("expected malformed-date log to be excluded, got streak %d", got.Streak)
	}
}

func TestEvaluate_TimeOfDayIrrelevant(t *testing.T) {
	// Just before midnight vs just after midnight on consecutive days.
	now := time.Date(2026, 8, 29, 0, 0, 30, 0, time.UTC)
	logs := []daylog.DayLog{
		logOn(time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)),
		logOn(now),
	}

	got := Evaluate(logs, now)
	if got.Streak != 2 {
		t.Errorf("expected streak 2 across midnight boundary, got %d", got.Streak)
	}
}

func TestEvaluate_DayKeysUseEvaluatorTimezone(t *testing.T) {
	// 01:00 UTC on the 29th is still the 28th in UTC-5. A log at 23:00 UTC-5
	// on the 28th shares that local day.
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC).In(est)
	logs := []daylog.DayLog{logOn(time.Date(2026, 8, 28, 23, 0, 0, 0, est))}

	got := Evaluate(logs, now)
	if !got.IsDoneToday {
		t.Error("expected log to count for the evaluator's local day")
	}
}

func TestEvaluate_Pure(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := logsOnDayOffsets(now, 0, -1, -2, -4)

	first := Evaluate(logs, now)
	second := Evaluate(logs, now)

	if first != second {
		t.Errorf("expected identical results on repeated evaluation: %+v vs %+v", first, second)
	}
	if logs[0].Date != now {
		t.Error("expected inputs to be unmutated")
	}
}

func TestEvaluate_FutureDatedIncludedVerbatim(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	logs := logsOnDayOffsets(now, 0, 1)

	got := Evaluate(logs, now)
	if !got.IsDoneToday || got.Streak != 1 {
		t.Errorf("future log should not affect a backward walk from today: %+v", got)
	}
}
