package repository

import (
	"context"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// SessionRepo is the session store: it answers "all sessions whose
// day equals D" and persists edits. Implementations never hand back
// shared mutable state.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByDate(ctx context.Context, day time.Time) ([]domain.Session, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// TagRepo is the tag catalog, ordered by position.
type TagRepo interface {
	Create(ctx context.Context, tag *domain.Tag) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Delete(ctx context.Context, id string) error
}
