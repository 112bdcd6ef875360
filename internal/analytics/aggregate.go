package analytics

import (
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// HourBuckets is the bucket count for hour-of-day series.
const HourBuckets = 24

// SessionsByDay supplies all sessions whose date equals the given
// calendar day. Implementations are expected to be cheap (in-memory
// or cached); the analytics never mutate the returned slice.
type SessionsByDay func(day time.Time) []domain.Session

// HourlyAverages is an hour-of-day distribution averaged over a
// multi-day window, with the peak bucket picked out.
type HourlyAverages struct {
	Averages  []float64 // 24 entries, minutes per hour
	PeakHour  int
	PeakValue float64
}

// AverageByHour decomposes every productive session in the window
// into hour buckets and averages the sums over the full window
// length. Days with no sessions still count in the denominator, so
// the result is a true daily average. The peak is the strictly
// greatest average; ties resolve to the earliest hour.
func AverageByHour(days []time.Time, lookup SessionsByDay) HourlyAverages {
	sums := make([]float64, HourBuckets)
	for _, day := range days {
		for _, s := range lookup(day) {
			if !s.Type.Counted() {
				continue
			}
			for hour, minutes := range BucketOverlaps(s.StartMinute, s.EndMinute, 60, HourBuckets) {
				sums[hour] += float64(minutes)
			}
		}
	}

	averages := make([]float64, HourBuckets)
	if n := len(days); n > 0 {
		for i, sum := range sums {
			averages[i] = sum / float64(n)
		}
	}

	peakHour, peakValue := 0, 0.0
	for i, avg := range averages {
		if avg > peakValue {
			peakHour, peakValue = i, avg
		}
	}
	return HourlyAverages{Averages: averages, PeakHour: peakHour, PeakValue: peakValue}
}

// TotalsByDay returns productive minutes per day of the window,
// indexed by window position. Used for day-of-month bar charts, where
// the window is a calendar month.
func TotalsByDay(days []time.Time, lookup SessionsByDay) []float64 {
	totals := make([]float64, len(days))
	for i, day := range days {
		for _, s := range lookup(day) {
			if s.Type.Counted() {
				totals[i] += float64(s.DurationMinutes)
			}
		}
	}
	return totals
}

// TrailingWindow returns the last n calendar days ending at (and
// including) today, in chronological order.
func TrailingWindow(today time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	start := domain.Day(today).AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// MonthWindow returns every day of the given calendar month, so the
// averaging divisor is the month's true length.
func MonthWindow(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	n := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}
