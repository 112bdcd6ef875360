package service

import (
	"context"
	"testing"

	"github.com/mbenedek/focal/internal/domain"
	"github.com/mbenedek/focal/internal/repository"
	"github.com/mbenedek/focal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) SessionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSessionService(repository.NewSQLiteSessionRepo(database))
}

func TestSessionService_LogAndList(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.MustDate("2026-03-10"), "09:00", "10:30")
	require.NoError(t, svc.Log(ctx, s))

	sessions, err := svc.ListRange(ctx, testutil.MustDate("2026-03-01"), testutil.MustDate("2026-03-31"))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 90, sessions[0].DurationMinutes)
}

func TestSessionService_LogDerivesDuration(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.MustDate("2026-03-10"), "09:00", "09:50", testutil.WithDuration(0))
	require.NoError(t, svc.Log(ctx, s))
	assert.Equal(t, 50, s.DurationMinutes)
}

func TestSessionService_LogRejectsInvertedClocks(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.MustDate("2026-03-10"), "10:00", "10:00")
	assert.Error(t, svc.Log(ctx, s), "zero-length session rejected")

	s = testutil.NewTestSession(testutil.MustDate("2026-03-10"), "10:00", "09:00")
	assert.Error(t, svc.Log(ctx, s), "end before start rejected, no midnight wrap")
}

func TestSessionService_LogRejectsInvalidType(t *testing.T) {
	svc := newSessionService(t)
	s := testutil.NewTestSession(testutil.MustDate("2026-03-10"), "09:00", "10:00",
		testutil.WithType(domain.SessionType("nap")))
	assert.Error(t, svc.Log(context.Background(), s))
}

func TestSessionService_Delete(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.MustDate("2026-03-10"), "09:00", "10:00")
	require.NoError(t, svc.Log(ctx, s))
	require.NoError(t, svc.Delete(ctx, s.ID))

	_, err := svc.GetByID(ctx, s.ID)
	assert.Error(t, err)
}
