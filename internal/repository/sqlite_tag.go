package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// SQLiteTagRepo implements TagRepo using a SQLite database.
type SQLiteTagRepo struct {
	db *sql.DB
}

// NewSQLiteTagRepo creates a new SQLiteTagRepo.
func NewSQLiteTagRepo(db *sql.DB) *SQLiteTagRepo {
	return &SQLiteTagRepo{db: db}
}

func (r *SQLiteTagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	if tag.Position == 0 {
		// Append to the end of the catalog order by default.
		row := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM tags`)
		if err := row.Scan(&tag.Position); err != nil {
			return fmt.Errorf("allocating tag position: %w", err)
		}
	}

	query := `INSERT INTO tags (id, name, icon, color, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		tag.ID,
		tag.Name,
		tag.Icon,
		tag.Color,
		tag.Position,
		tag.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tag: %w", err)
	}
	return nil
}

func (r *SQLiteTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	query := `SELECT id, name, icon, color, position, created_at FROM tags WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var tag domain.Tag
	var createdAtStr string
	err := row.Scan(&tag.ID, &tag.Name, &tag.Icon, &tag.Color, &tag.Position, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tag not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning tag: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing tag created_at: %w", err)
	}
	tag.CreatedAt = createdAt
	return &tag, nil
}

func (r *SQLiteTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	query := `SELECT id, name, icon, color, position, created_at FROM tags ORDER BY position, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var tag domain.Tag
		var createdAtStr string
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Icon, &tag.Color, &tag.Position, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing tag created_at: %w", err)
		}
		tag.CreatedAt = createdAt
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag rows: %w", err)
	}
	return tags, nil
}

func (r *SQLiteTagRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	return nil
}
