// Package tags provides the PostgreSQL tag repository.
package tags

import (
	"context"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/models"
)

// PostgresRepository implements tag storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a tag and returns its id. A duplicate (user, name) pair
// yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, userID int64, name string) (int64, error) {
	query := `
		INSERT INTO tags (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&id); err != nil {
		if _, ok := dbx.UniqueViolation(err); ok {
			return 0, fmt.Errorf("%w: tag with this name already exists", common.ErrorAlreadyExists)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// List returns the user's tags ordered by id.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.Tag, error) {
	query := `SELECT id, user_id, name FROM tags
		WHERE user_id = $1
		ORDER BY id
		`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tags: %w", err)
	}
	defer rows.Close()

	result := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, tagID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tags WHERE id = $1 AND user_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, tagID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// Delete removes the tag when it belongs to userID, otherwise it returns
// common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, tagID int64) error {
	query := `DELETE FROM tags WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, tagID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: tag not found", common.ErrorNotFound)
	}
	return nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
