package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mbenedek/focal/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithType(t domain.SessionType) SessionOption {
	return func(s *domain.Session) {
		s.Type = t
	}
}

func WithTags(tagIDs ...string) SessionOption {
	return func(s *domain.Session) {
		s.TagIDs = tagIDs
	}
}

func WithDuration(minutes int) SessionOption {
	return func(s *domain.Session) {
		s.DurationMinutes = minutes
	}
}

// NewTestSession builds a focus session on the given day spanning the
// given HH:MM clocks. Duration derives from the clock pair unless
// overridden.
func NewTestSession(day time.Time, start, end string, opts ...SessionOption) *domain.Session {
	startMin, err := domain.ParseClock(start)
	if err != nil {
		panic(err)
	}
	endMin, err := domain.ParseClock(end)
	if err != nil {
		panic(err)
	}
	s := &domain.Session{
		ID:              uuid.New().String(),
		Date:            domain.Day(day),
		StartMinute:     startMin,
		EndMinute:       endMin,
		DurationMinutes: endMin - startMin,
		Type:            domain.SessionFocus,
		CreatedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tag options
type TagOption func(*domain.Tag)

func WithPosition(pos int) TagOption {
	return func(tag *domain.Tag) {
		tag.Position = pos
	}
}

func WithColor(color string) TagOption {
	return func(tag *domain.Tag) {
		tag.Color = color
	}
}

func NewTestTag(name string, opts ...TagOption) *domain.Tag {
	tag := &domain.Tag{
		ID:        uuid.New().String(),
		Name:      name,
		Icon:      "●",
		Color:     "#83a598",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(tag)
	}
	return tag
}

// MustDate parses a YYYY-MM-DD date or panics. Test-only convenience.
func MustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
