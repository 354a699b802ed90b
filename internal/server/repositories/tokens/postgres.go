package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID int64, key string) error {
	query := `
		INSERT INTO tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, key, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByUser(ctx context.Context, userID int64) (*models.Token, error) {
	query := `
		SELECT key, user_id, created_at
		FROM tokens
		WHERE user_id = $1
	`
	return r.findOne(ctx, query, userID)
}

func (r *PostgresRepository) Find(ctx context.Context, key string) (*models.Token, error) {
	query := `
		SELECT key, user_id, created_at
		FROM tokens
		WHERE key = $1
	`
	return r.findOne(ctx, query, key)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.Token, error) {
	t := &models.Token{}
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `
		DELETE FROM tokens
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
