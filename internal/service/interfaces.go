package service

import (
	"context"
	"time"

	"github.com/mbenedek/focal/internal/analytics"
	"github.com/mbenedek/focal/internal/domain"
)

type SessionService interface {
	Log(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type TagService interface {
	Create(ctx context.Context, tag *domain.Tag) error
	List(ctx context.Context) ([]domain.Tag, error)
	Delete(ctx context.Context, id string) error
}

// StatsService drives the analytics over the session store. All
// results are computed fresh per call; nothing is cached.
type StatsService interface {
	// WeeklyByHour averages the last 7 calendar days ending at now.
	WeeklyByHour(ctx context.Context, now time.Time) (analytics.HourlyAverages, error)
	// MonthlyByHour averages a full calendar month.
	MonthlyByHour(ctx context.Context, year int, month time.Month) (analytics.HourlyAverages, error)
	// MonthTotals returns productive minutes per day of a month.
	MonthTotals(ctx context.Context, year int, month time.Month) ([]float64, error)
	// Trends compares the current period against its predecessors.
	Trends(ctx context.Context, unit analytics.PeriodUnit, periods int, now time.Time) ([]analytics.TrendPeriod, error)
	// TagBreakdown allocates session time across tags for a range.
	TagBreakdown(ctx context.Context, start, end time.Time) (analytics.TagBreakdown, error)
}
