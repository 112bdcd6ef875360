package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbenedek/focal/internal/analytics"
	"github.com/mbenedek/focal/internal/domain"
	"github.com/mbenedek/focal/internal/repository"
)

type statsServiceImpl struct {
	sessions repository.SessionRepo
	tags     repository.TagRepo
}

func NewStatsService(sessions repository.SessionRepo, tags repository.TagRepo) StatsService {
	return &statsServiceImpl{sessions: sessions, tags: tags}
}

func (s *statsServiceImpl) WeeklyByHour(ctx context.Context, now time.Time) (analytics.HourlyAverages, error) {
	days := analytics.TrailingWindow(now, 7)
	lookup, err := s.lookupFor(ctx, days[0], days[len(days)-1])
	if err != nil {
		return analytics.HourlyAverages{}, err
	}
	return analytics.AverageByHour(days, lookup), nil
}

func (s *statsServiceImpl) MonthlyByHour(ctx context.Context, year int, month time.Month) (analytics.HourlyAverages, error) {
	days := analytics.MonthWindow(year, month, time.Local)
	lookup, err := s.lookupFor(ctx, days[0], days[len(days)-1])
	if err != nil {
		return analytics.HourlyAverages{}, err
	}
	return analytics.AverageByHour(days, lookup), nil
}

func (s *statsServiceImpl) MonthTotals(ctx context.Context, year int, month time.Month) ([]float64, error) {
	days := analytics.MonthWindow(year, month, time.Local)
	lookup, err := s.lookupFor(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	return analytics.TotalsByDay(days, lookup), nil
}

func (s *statsServiceImpl) Trends(ctx context.Context, unit analytics.PeriodUnit, periods int, now time.Time) ([]analytics.TrendPeriod, error) {
	if periods < 1 {
		return nil, fmt.Errorf("at least one period is required")
	}

	defs := make([]analytics.PeriodDef, periods)
	for i := range defs {
		defs[i] = analytics.PeriodDef{Unit: unit, Offset: i}
	}

	// One range query covers every period in the comparison; the
	// oldest period starts earliest.
	start := oldestPeriodStart(defs[len(defs)-1], now)
	lookup, err := s.lookupFor(ctx, start, domain.Day(now))
	if err != nil {
		return nil, err
	}
	return analytics.Compare(defs, now, lookup), nil
}

func (s *statsServiceImpl) TagBreakdown(ctx context.Context, start, end time.Time) (analytics.TagBreakdown, error) {
	sessions, err := s.sessions.ListByRange(ctx, start, end)
	if err != nil {
		return analytics.TagBreakdown{}, err
	}
	catalog, err := s.tags.List(ctx)
	if err != nil {
		return analytics.TagBreakdown{}, err
	}
	return analytics.AllocateTags(sessions, catalog, start, end), nil
}

// lookupFor loads the range once and serves per-day lookups from the
// grouped result, so window walks do not hit the store per day.
func (s *statsServiceImpl) lookupFor(ctx context.Context, start, end time.Time) (analytics.SessionsByDay, error) {
	sessions, err := s.sessions.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string][]domain.Session)
	for _, session := range sessions {
		key := session.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], session)
	}
	return func(day time.Time) []domain.Session {
		return byDay[day.Format("2006-01-02")]
	}, nil
}

func oldestPeriodStart(def analytics.PeriodDef, now time.Time) time.Time {
	today := domain.Day(now)
	switch def.Unit {
	case analytics.UnitWeek:
		return today.AddDate(0, 0, -7*def.Offset-6)
	case analytics.UnitMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -def.Offset, 0)
	case analytics.UnitYear:
		return time.Date(now.Year()-def.Offset, time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return today.AddDate(0, 0, -def.Offset)
	}
}
