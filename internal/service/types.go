// Package service provides the business logic layer for the application.
// It wraps storage, streak, stats, config, and the motivation gateway,
// providing a clean API for both the CLI and TUI frontends.
package service

import (
	"github.com/nonzeroday/nzd/internal/daylog"
	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/storage"
	"github.com/nonzeroday/nzd/internal/streak"
)

// StatusResult is the derived application state for the today view.
// It is recomputed from the store on every call, never cached.
type StatusResult struct {
	Summary   streak.Summary
	TodayLogs []daylog.DayLog
	TotalLogs int
	Warning   *storage.ParseWarning
}

// HistoryResult contains the recent-pattern grid and the latest logs
type HistoryResult struct {
	Cells   []stats.DayCell
	Recent  []daylog.DayLog // newest first
	Warning *storage.ParseWarning
}

// BalanceResult contains the life-balance category breakdown
type BalanceResult struct {
	Breakdown []stats.CategoryBreakdown
	TotalLogs int
	MoodShift float64
	HasMood   bool
}

// ReflectResult pairs the generated letter with the stats it was built from
type ReflectResult struct {
	Letter string
	Stats  stats.MonthlyStats
}
