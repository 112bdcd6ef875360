package analytics

import (
	"testing"
	"time"

	"github.com/mbenedek/focal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		previous, current, want int
	}{
		{0, 0, 0},
		{0, 30, 100},
		{40, 20, -50},
		{30, 45, 50},
		{60, 60, 0},
		{3, 10, 233},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentChange(tt.previous, tt.current),
			"previous=%d current=%d", tt.previous, tt.current)
	}
}

func TestCompare_DayPeriods(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		"2026-03-15": {focusSession("2026-03-15", "09:00", "10:00")},
		"2026-03-14": {
			focusSession("2026-03-14", "09:00", "09:30"),
			focusSession("2026-03-14", "15:00", "16:30"),
		},
	})

	periods := Compare([]PeriodDef{
		{Unit: UnitDay, Offset: 0},
		{Unit: UnitDay, Offset: 1},
		{Unit: UnitDay, Offset: 2},
	}, now, lookup)
	require.Len(t, periods, 3)

	assert.Equal(t, "Today", periods[0].Label)
	assert.Equal(t, 60, periods[0].TotalMinutes)
	assert.Nil(t, periods[0].PartialMinutes, "current period has no partial")

	assert.Equal(t, "Yesterday", periods[1].Label)
	assert.Equal(t, 120, periods[1].TotalMinutes)
	assert.InDelta(t, 100.0, periods[1].PercentageOfMax, 1e-9)
	// Up to 10:30 yesterday only the 09:00-09:30 session had happened.
	require.NotNil(t, periods[1].PartialMinutes)
	assert.Equal(t, 30, *periods[1].PartialMinutes)
	require.NotNil(t, periods[1].PartialPercentage)
	assert.InDelta(t, 25.0, *periods[1].PartialPercentage, 1e-9)

	assert.Equal(t, "2 days ago", periods[2].Label)
	assert.Zero(t, periods[2].TotalMinutes, "missing data totals zero, not an error")
	assert.Zero(t, periods[2].PercentageOfMax)
}

func TestCompare_PartialClipsAtCutoff(t *testing.T) {
	// Yesterday's 10:00-11:00 session had run 30 minutes by the
	// equivalent of "now" (10:30); a session starting at the cutoff
	// does not count at all.
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		"2026-03-14": {
			focusSession("2026-03-14", "10:00", "11:00"),
			focusSession("2026-03-14", "10:30", "12:00"),
		},
	})

	periods := Compare([]PeriodDef{
		{Unit: UnitDay, Offset: 0},
		{Unit: UnitDay, Offset: 1},
	}, now, lookup)

	require.NotNil(t, periods[1].PartialMinutes)
	assert.Equal(t, 30, *periods[1].PartialMinutes)
}

func TestCompare_WeekPartialCountsFullDaysBeforeToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		// This week: 2026-03-09..15. Last week: 2026-03-02..08.
		"2026-03-15": {focusSession("2026-03-15", "09:00", "10:00")},
		"2026-03-02": {focusSession("2026-03-02", "09:00", "10:00")}, // full day of last week
		"2026-03-08": {focusSession("2026-03-08", "11:00", "13:00")}, // equivalent-of-today, clipped at 12:00
	})

	periods := Compare([]PeriodDef{
		{Unit: UnitWeek, Offset: 0},
		{Unit: UnitWeek, Offset: 1},
	}, now, lookup)

	assert.Equal(t, "This week", periods[0].Label)
	assert.Equal(t, 60, periods[0].TotalMinutes)

	assert.Equal(t, "Last week", periods[1].Label)
	assert.Equal(t, 180, periods[1].TotalMinutes)
	require.NotNil(t, periods[1].PartialMinutes)
	assert.Equal(t, 60+60, *periods[1].PartialMinutes)
}

func TestCompare_MonthBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		"2026-03-01": {focusSession("2026-03-01", "08:00", "09:00")},
		"2026-02-28": {focusSession("2026-02-28", "08:00", "09:00")},
		"2026-02-01": {focusSession("2026-02-01", "20:00", "21:00")},
	})

	periods := Compare([]PeriodDef{
		{Unit: UnitMonth, Offset: 0},
		{Unit: UnitMonth, Offset: 1},
	}, now, lookup)

	assert.Equal(t, "March", periods[0].Label)
	assert.Equal(t, 60, periods[0].TotalMinutes)
	assert.Equal(t, "February", periods[1].Label)
	assert.Equal(t, 120, periods[1].TotalMinutes)

	// Two days into March: February's partial covers Feb 1 in full
	// plus Feb 2 up to 09:00. The 20:00 session on Feb 1 counts whole.
	require.NotNil(t, periods[1].PartialMinutes)
	assert.Equal(t, 60, *periods[1].PartialMinutes)
}

func TestCompare_YearPeriods(t *testing.T) {
	now := time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		"2026-01-03": {focusSession("2026-01-03", "09:00", "10:00")},
		"2025-01-02": {focusSession("2025-01-02", "09:00", "10:00")},
		"2025-06-15": {focusSession("2025-06-15", "09:00", "11:00")},
	})

	periods := Compare([]PeriodDef{
		{Unit: UnitYear, Offset: 0},
		{Unit: UnitYear, Offset: 1},
	}, now, lookup)

	assert.Equal(t, "2026", periods[0].Label)
	assert.Equal(t, 60, periods[0].TotalMinutes)
	assert.Equal(t, "2025", periods[1].Label)
	assert.Equal(t, 180, periods[1].TotalMinutes)
	// Five days into the year only Jan 2 has landed; June has not.
	require.NotNil(t, periods[1].PartialMinutes)
	assert.Equal(t, 60, *periods[1].PartialMinutes)
}

func TestCompare_NoDataAnywhere(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	periods := Compare([]PeriodDef{
		{Unit: UnitWeek, Offset: 0},
		{Unit: UnitWeek, Offset: 1},
	}, now, byDay(nil))

	for _, p := range periods {
		assert.Zero(t, p.TotalMinutes)
		assert.Zero(t, p.PercentageOfMax, "max denominator floors at 1")
	}
}

func TestCompare_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	lookup := byDay(map[string][]domain.Session{
		"2026-03-14": {focusSession("2026-03-14", "09:00", "10:00")},
	})
	defs := []PeriodDef{{Unit: UnitDay, Offset: 0}, {Unit: UnitDay, Offset: 1}}

	first := Compare(defs, now, lookup)
	second := Compare(defs, now, lookup)
	assert.Equal(t, first, second)
}
