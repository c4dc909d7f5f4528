package service

import (
	"fmt"
	"time"

	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/storage"
	"github.com/nonzeroday/nzd/internal/streak"
	"github.com/nonzeroday/nzd/internal/timeutil"
)

// DefaultGridDays is the number of days shown in the history grid
const DefaultGridDays = 14

// RecentLogLimit caps how many recent logs history views return
const RecentLogLimit = 10

// LogService provides operations for recording actions and deriving the
// streak state. Validation happens here, before storage; the store itself
// assumes valid input.
type LogService struct {
	storagePath string
	loc         *time.Location
	now         func() time.Time
}

// NewLogService creates a new LogService
func NewLogService(storagePath string, loc *time.Location) *LogService {
	return &LogService{
		storagePath: storagePath,
		loc:         loc,
		now:         time.Now,
	}
}

// CreateParams carries raw producer input for a new log
type CreateParams struct {
	Note       string
	Category   string
	Effort     string
	MoodBefore int
	MoodAfter  int
	Reflection string
}

// Create validates params, builds a DayLog stamped with the service clock,
// and appends it to the store. Returns the created log and the streak
// summary after the append.
func (s *LogService) Create(p CreateParams) (*daylog.DayLog, streak.Summary, error) {
	category, err := daylog.ParseCategory(p.Category)
	if err != nil {
		return nil, streak.Summary{}, err
	}

	effort, err := daylog.ParseEffort(p.Effort)
	if err != nil {
		return nil, streak.Summary{}, err
	}

	now := s.now().In(s.loc)
	l := daylog.New(now, p.Note, category, effort, p.MoodBefore, p.MoodAfter, p.Reflection)
	if err := l.Validate(); err != nil {
		return nil, streak.Summary{}, err
	}

	current := storage.Load(s.storagePath)
	updated, err := storage.Append(s.storagePath, current.Logs, l)
	if err != nil {
		return nil, streak.Summary{}, fmt.Errorf("failed to save log: %w", err)
	}

	return &l, streak.Evaluate(updated, now), nil
}

// Status loads the collection and derives the today view state. Corruption
// degrades to an empty history; the warning is passed along for display.
func (s *LogService) Status() StatusResult {
	result := storage.Load(s.storagePath)
	now := s.now().In(s.loc)

	var today []daylog.DayLog
	for _, l := range result.Logs {
		if !l.Date.IsZero() && timeutil.SameDay(l.Date, now, s.loc) {
			today = append(today, l)
		}
	}

	return StatusResult{
		Summary:   streak.Evaluate(result.Logs, now),
		TodayLogs: today,
		TotalLogs: len(result.Logs),
		Warning:   result.Warning,
	}
}

// History returns the recent-pattern grid for the last days calendar days
// and the latest logs, newest first.
func (s *LogService) History(days int) HistoryResult {
	if days <= 0 {
		days = DefaultGridDays
	}

	result := storage.Load(s.storagePath)
	now := s.now().In(s.loc)

	// Logs arrive sorted ascending; walk backward for newest-first.
	recent := make([]daylog.DayLog, 0, RecentLogLimit)
	for i := len(result.Logs) - 1; i >= 0 && len(recent) < RecentLogLimit; i-- {
		recent = append(recent, result.Logs[i])
	}

	return HistoryResult{
		Cells:   stats.Grid(result.Logs, now, days),
		Recent:  recent,
		Warning: result.Warning,
	}
}

// Reset erases all history after snapshotting the current blob, so a
// regretted reset can be undone with Restore.
func (s *LogService) Reset() error {
	if err := storage.Snapshot(s.storagePath); err != nil {
		return fmt.Errorf("failed to snapshot before reset: %w", err)
	}
	if err := storage.Clear(s.storagePath); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Restore brings back the most recent pre-reset snapshot
func (s *LogService) Restore() error {
	return storage.RestoreLatest(s.storagePath)
}

// Validate reports the health of the storage blob
func (s *LogService) Validate() (storage.StorageHealth, error) {
	return storage.Validate(s.storagePath)
}
