package service

import (
	"context"
	"errors"
	"time"

	"github.com/nonzeroday/nzd/internal/motivation"
	"github.com/nonzeroday/nzd/internal/stats"
	"github.com/nonzeroday/nzd/internal/storage"
)

// ErrNotEnoughLogs is returned when the current month has too few logs for a
// reflection to be generated
var ErrNotEnoughLogs = errors.New("not enough logs this month to reflect on")

// MotivationService mediates between the log history and the generative-text
// gateway. Gateway failures never surface here; the gateway guarantees a
// usable result.
type MotivationService struct {
	storagePath string
	loc         *time.Location
	gateway     motivation.TextGateway
	now         func() time.Time
}

// NewMotivationService creates a new MotivationService
func NewMotivationService(storagePath string, loc *time.Location, gateway motivation.TextGateway) *MotivationService {
	return &MotivationService{
		storagePath: storagePath,
		loc:         loc,
		gateway:     gateway,
		now:         time.Now,
	}
}

// Spark fetches a quick motivational quote or micro-task
func (s *MotivationService) Spark(ctx context.Context) motivation.SparkResult {
	return s.gateway.Spark(ctx)
}

// Reflect builds the current month's stats and asks the gateway for a
// reflection letter. Returns ErrNotEnoughLogs when the month is too sparse.
func (s *MotivationService) Reflect(ctx context.Context) (*ReflectResult, error) {
	result := storage.Load(s.storagePath)

	summary := stats.MonthlySummary(result.Logs, s.now().In(s.loc))
	if summary == nil {
		return nil, ErrNotEnoughLogs
	}

	return &ReflectResult{
		Letter: s.gateway.MonthlyReflection(ctx, *summary),
		Stats:  *summary,
	}, nil
}
