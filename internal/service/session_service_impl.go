package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbenedek/focal/internal/domain"
	"github.com/mbenedek/focal/internal/repository"
)

type sessionServiceImpl struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionServiceImpl{sessions: sessions}
}

// Log validates and persists a session. The analytics tolerate
// malformed records by clamping them to zero contribution, but new
// data is rejected at this boundary so clamped rows only ever come
// from pre-existing stores.
func (s *sessionServiceImpl) Log(ctx context.Context, session *domain.Session) error {
	if !domain.ValidSessionTypes[string(session.Type)] {
		return fmt.Errorf("invalid session type %q", session.Type)
	}
	if session.StartMinute < 0 || session.EndMinute > domain.MinutesPerDay {
		return fmt.Errorf("session clocks must fall within a single day")
	}
	if session.EndMinute <= session.StartMinute {
		return fmt.Errorf("session end %s must be after start %s",
			session.EndClock(), session.StartClock())
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = session.EndMinute - session.StartMinute
	}
	session.Date = domain.Day(session.Date)
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return s.sessions.Create(ctx, session)
}

func (s *sessionServiceImpl) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionServiceImpl) ListRange(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	return s.sessions.ListByRange(ctx, start, end)
}

func (s *sessionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
