package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

const dateFormat = "2006-01-02"

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting session insert transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO sessions (id, date, start_minute, end_minute, duration_minutes, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		s.ID,
		s.Date.Format(dateFormat),
		s.StartMinute,
		s.EndMinute,
		s.DurationMinutes,
		string(s.Type),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for seq, tagID := range s.TagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session_tags (session_id, tag_id, seq) VALUES (?, ?, ?)`,
			s.ID, tagID, seq,
		); err != nil {
			return fmt.Errorf("inserting session tag %s: %w", tagID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session insert: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, date, start_minute, end_minute, duration_minutes, type, created_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, []*domain.Session{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, day time.Time) ([]domain.Session, error) {
	query := `SELECT id, date, start_minute, end_minute, duration_minutes, type, created_at
		FROM sessions WHERE date = ? ORDER BY start_minute, id`
	rows, err := r.db.QueryContext(ctx, query, domain.Day(day).Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("listing sessions by date: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) ListByRange(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	query := `SELECT id, date, start_minute, end_minute, duration_minutes, type, created_at
		FROM sessions WHERE date >= ? AND date <= ? ORDER BY date, start_minute, id`
	rows, err := r.db.QueryContext(ctx, query,
		domain.Day(start).Format(dateFormat),
		domain.Day(end).Format(dateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var dateStr, typeStr, createdAtStr string
	err := row.Scan(&s.ID, &dateStr, &s.StartMinute, &s.EndMinute, &s.DurationMinutes, &typeStr, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	if err := r.hydrate(&s, dateStr, typeStr, createdAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSessionRepo) scanSessions(ctx context.Context, rows *sql.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		var dateStr, typeStr, createdAtStr string
		if err := rows.Scan(&s.ID, &dateStr, &s.StartMinute, &s.EndMinute, &s.DurationMinutes, &typeStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		if err := r.hydrate(&s, dateStr, typeStr, createdAtStr); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}

	ptrs := make([]*domain.Session, len(sessions))
	for i := range sessions {
		ptrs[i] = &sessions[i]
	}
	if err := r.loadTags(ctx, ptrs); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) hydrate(s *domain.Session, dateStr, typeStr, createdAtStr string) error {
	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return fmt.Errorf("parsing session date: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing session created_at: %w", err)
	}
	s.Date = date
	s.Type = domain.SessionType(typeStr)
	s.CreatedAt = createdAt
	return nil
}

// loadTags attaches ordered tag ids to the given sessions.
func (r *SQLiteSessionRepo) loadTags(ctx context.Context, sessions []*domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Session, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}

	args := make([]any, 0, len(sessions))
	placeholders := ""
	for i, s := range sessions {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, s.ID)
	}

	query := `SELECT session_id, tag_id FROM session_tags
		WHERE session_id IN (` + placeholders + `) ORDER BY session_id, seq`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading session tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID, tagID string
		if err := rows.Scan(&sessionID, &tagID); err != nil {
			return fmt.Errorf("scanning session tag row: %w", err)
		}
		if s, ok := byID[sessionID]; ok {
			s.TagIDs = append(s.TagIDs, tagID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session tag rows: %w", err)
	}
	return nil
}
