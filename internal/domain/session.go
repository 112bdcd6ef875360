package domain

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day. A session
// whose end lands exactly on midnight has EndMinute == MinutesPerDay.
const MinutesPerDay = 24 * 60

// Session is one focused-work (or break) interval within a single
// calendar day. StartMinute and EndMinute are minutes from midnight;
// DurationMinutes is the authoritative value for totals, while the
// start/end pair drives bucketization.
type Session struct {
	ID              string
	Date            time.Time // calendar day, truncated to midnight
	StartMinute     int
	EndMinute       int
	DurationMinutes int
	Type            SessionType
	TagIDs          []string
	CreatedAt       time.Time
}

// StartClock returns the session start as HH:MM.
func (s *Session) StartClock() string {
	return FormatClock(s.StartMinute)
}

// EndClock returns the session end as HH:MM.
func (s *Session) EndClock() string {
	return FormatClock(s.EndMinute)
}

// ParseClock parses an HH:MM wall-clock string into minutes from
// midnight. "24:00" is accepted as the end-of-day boundary.
func ParseClock(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", clock, err)
	}
	if m < 0 || m > 59 || h < 0 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as HH:MM.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
