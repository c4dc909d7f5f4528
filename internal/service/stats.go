package service

import (
	"time"

	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/storage"
)

// StatsService provides aggregate views over the full log history
type StatsService struct {
	storagePath string
	loc         *time.Location
	now         func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(storagePath string, loc *time.Location) *StatsService {
	return &StatsService{
		storagePath: storagePath,
		loc:         loc,
		now:         time.Now,
	}
}

// Balance returns the life-balance category breakdown across all logs
func (s *StatsService) Balance() BalanceResult {
	result := storage.Load(s.storagePath)

	shift, hasMood := stats.MoodShift(result.Logs)

	return BalanceResult{
		Breakdown: stats.CalculateBreakdown(result.Logs),
		TotalLogs: len(result.Logs),
		MoodShift: shift,
		HasMood:   hasMood,
	}
}

// Monthly returns the current month's reflection stats, or nil when the
// month does not yet have enough logs to reflect on.
func (s *StatsService) Monthly() *stats.MonthlyStats {
	result := storage.Load(s.storagePath)
	return stats.MonthlySummary(result.Logs, s.now().In(s.loc))
}
