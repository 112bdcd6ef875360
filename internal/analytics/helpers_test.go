package analytics

import (
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// byDay builds a SessionsByDay lookup from sessions keyed by
// YYYY-MM-DD date strings.
func byDay(days map[string][]domain.Session) SessionsByDay {
	return func(day time.Time) []domain.Session {
		return days[day.Format("2006-01-02")]
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func clock(s string) int {
	m, err := domain.ParseClock(s)
	if err != nil {
		panic(err)
	}
	return m
}

// focusSession builds a counted session; duration derives from the
// clock pair like the logging path does.
func focusSession(day, start, end string, tagIDs ...string) domain.Session {
	s, e := clock(start), clock(end)
	return domain.Session{
		ID:              day + "/" + start,
		Date:            date(day),
		StartMinute:     s,
		EndMinute:       e,
		DurationMinutes: e - s,
		Type:            domain.SessionFocus,
		TagIDs:          tagIDs,
	}
}

func breakSession(day, start, end string) domain.Session {
	s := focusSession(day, start, end)
	s.Type = domain.SessionBreak
	return s
}
