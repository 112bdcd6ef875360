package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

type PeriodUnit string

const (
	UnitDay   PeriodUnit = "day"
	UnitWeek  PeriodUnit = "week" // trailing 7 calendar days ending today
	UnitMonth PeriodUnit = "month"
	UnitYear  PeriodUnit = "year"
)

// ValidPeriodUnits is the canonical set of accepted period unit strings.
var ValidPeriodUnits = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
}

// PeriodDef names one period of a trend comparison: a calendar unit
// and how many periods back it lies (0 = current, 1 = previous, ...).
type PeriodDef struct {
	Unit   PeriodUnit
	Offset int
}

// TrendPeriod is one comparison row. PartialMinutes and
// PartialPercentage are set only for past periods: they restrict the
// period to the same elapsed fraction as the still-incomplete current
// period, so an in-progress day or week can be compared fairly
// against history. PercentageOfMax scales bar widths against the
// largest total in the comparison set; it is not a statistical
// percentage.
type TrendPeriod struct {
	Label             string
	TotalMinutes      int
	PercentageOfMax   float64
	PartialMinutes    *int
	PartialPercentage *float64
}

// Compare computes totals for each requested period plus up-to-now
// partials for the non-current ones. Periods with no sessions total
// zero; absence of data is valid input, never an error.
func Compare(defs []PeriodDef, now time.Time, lookup SessionsByDay) []TrendPeriod {
	totals := make([]int, len(defs))
	for i, def := range defs {
		totals[i] = periodTotal(periodDays(def, now), lookup)
	}

	maxTotal := 1
	for _, t := range totals {
		if t > maxTotal {
			maxTotal = t
		}
	}

	out := make([]TrendPeriod, len(defs))
	for i, def := range defs {
		p := TrendPeriod{
			Label:           periodLabel(def, now),
			TotalMinutes:    totals[i],
			PercentageOfMax: float64(totals[i]) / float64(maxTotal) * 100,
		}
		if def.Offset > 0 {
			partial := partialTotal(periodDays(def, now), elapsedIn(def.Unit, now), lookup)
			pct := float64(partial) / float64(maxTotal) * 100
			p.PartialMinutes = &partial
			p.PartialPercentage = &pct
		}
		out[i] = p
	}
	return out
}

// PercentChange returns the rounded percentage change from previous
// to current. A zero previous maps to 100 when there is any current
// activity and 0 otherwise, so "any activity beats none" survives
// without dividing by zero.
func PercentChange(previous, current int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// elapsed describes how far into the current period "now" is: the
// number of fully elapsed days since the period start, and the
// wall-clock position within the current day.
type elapsed struct {
	Days   int
	Cutoff int // minutes from midnight
}

func elapsedIn(unit PeriodUnit, now time.Time) elapsed {
	e := elapsed{Cutoff: now.Hour()*60 + now.Minute()}
	switch unit {
	case UnitWeek:
		e.Days = 6 // today is the last day of the trailing window
	case UnitMonth:
		e.Days = now.Day() - 1
	case UnitYear:
		e.Days = now.YearDay() - 1
	}
	return e
}

// periodDays returns the calendar days a period covers, oldest first.
func periodDays(def PeriodDef, now time.Time) []time.Time {
	today := domain.Day(now)
	switch def.Unit {
	case UnitWeek:
		return TrailingWindow(today.AddDate(0, 0, -7*def.Offset), 7)
	case UnitMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -def.Offset, 0)
		return MonthWindow(first.Year(), first.Month(), now.Location())
	case UnitYear:
		first := time.Date(now.Year()-def.Offset, time.January, 1, 0, 0, 0, 0, now.Location())
		days := make([]time.Time, 0, 366)
		for d := first; d.Year() == first.Year(); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	default: // UnitDay
		return []time.Time{today.AddDate(0, 0, -def.Offset)}
	}
}

func periodTotal(days []time.Time, lookup SessionsByDay) int {
	total := 0
	for _, day := range days {
		for _, s := range lookup(day) {
			if s.Type.Counted() {
				total += s.DurationMinutes
			}
		}
	}
	return total
}

// partialTotal restricts a past period to the same elapsed point as
// the current one: full days strictly before the equivalent offset
// count whole, and the day at the offset contributes only session
// minutes before the wall-clock cutoff.
func partialTotal(days []time.Time, e elapsed, lookup SessionsByDay) int {
	total := 0
	for i, day := range days {
		if i > e.Days {
			break
		}
		for _, s := range lookup(day) {
			if !s.Type.Counted() {
				continue
			}
			if i < e.Days {
				total += s.DurationMinutes
			} else {
				total += OverlapBefore(s.StartMinute, s.EndMinute, e.Cutoff)
			}
		}
	}
	return total
}

func periodLabel(def PeriodDef, now time.Time) string {
	switch def.Unit {
	case UnitWeek:
		switch def.Offset {
		case 0:
			return "This week"
		case 1:
			return "Last week"
		default:
			return fmt.Sprintf("%d weeks ago", def.Offset)
		}
	case UnitMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -def.Offset, 0)
		return first.Month().String()
	case UnitYear:
		return fmt.Sprintf("%d", now.Year()-def.Offset)
	default:
		switch def.Offset {
		case 0:
			return "Today"
		case 1:
			return "Yesterday"
		default:
			return fmt.Sprintf("%d days ago", def.Offset)
		}
	}
}
