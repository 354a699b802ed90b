// Package tasks provides the PostgreSQL task repository and the TaskView
// projection queries.
package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
)

const viewsQuery = `
	SELECT t.id, t.title, t.description, t.priority,
	       tg.id AS tag_id, tg.name AS tag_name,
	       t.date_created, t.is_completed
	FROM tasks t
	LEFT JOIN tags tg ON t.tag_id = tg.id
	WHERE t.user_id = $1`

const (
	orderByID   = "t.id ASC"
	orderByDate = "t.date_created ASC, t.id ASC"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func mapWriteError(err error) error {
	switch {
	case dbx.IsForeignKeyViolation(err):
		return common.Invalid("invalid tag ID")
	case dbx.IsCheckViolation(err):
		return common.Invalid("invalid priority value")
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

// Create inserts task and returns the new id.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (int64, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, priority, tag_id, date_created, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var tagID sql.NullInt64
	if task.TagID != nil {
		tagID = sql.NullInt64{Int64: *task.TagID, Valid: true}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, int(task.Priority), tagID,
		models.FormatDate(task.DateCreated), task.IsCompleted,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err)
	}
	task.ID = id
	return id, nil
}

// Update applies the non-nil fields of patch in a single statement. A task
// that does not exist or belongs to another user yields common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, userID, taskID int64, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Priority != nil {
		add("priority", int(*patch.Priority))
	}
	if patch.TagID != nil {
		var tagID sql.NullInt64
		if *patch.TagID != 0 {
			tagID = sql.NullInt64{Int64: *patch.TagID, Valid: true}
		}
		add("tag_id", tagID)
	}
	if patch.IsCompleted != nil {
		add("is_completed", *patch.IsCompleted)
	}

	args = append(args, taskID, userID)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(err)
	}
	return requireRow(res, "task not found")
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, taskID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res, "task not found")
}

func (r *PostgresRepository) DetachTag(ctx context.Context, userID, tagID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET tag_id = NULL WHERE tag_id = $1 AND user_id = $2`, tagID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns all tasks of the user ordered by id.
func (r *PostgresRepository) List(ctx context.Context, userID int64) ([]models.TaskView, error) {
	return r.selectViews(ctx, userID, filters.Predicate{}, orderByID)
}

// ListByDateRange returns the user's tasks whose date lies in [start, end].
func (r *PostgresRepository) ListByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.TaskView, error) {
	p := filters.NewPredicate(
		filters.Range(filters.ColumnDateCreated, models.FormatDate(start), models.FormatDate(end)),
	)
	return r.selectViews(ctx, userID, p, orderByDate)
}

// Filter returns the user's tasks matching p, ordered by date then id.
func (r *PostgresRepository) Filter(ctx context.Context, userID int64, p filters.Predicate) ([]models.TaskView, error) {
	return r.selectViews(ctx, userID, p, orderByDate)
}

// taskRow is a TaskView as scanned from the join.
type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Priority    int            `db:"priority"`
	TagID       sql.NullInt64  `db:"tag_id"`
	TagName     sql.NullString `db:"tag_name"`
	DateCreated time.Time      `db:"date_created"`
	IsCompleted bool           `db:"is_completed"`
}

func (row taskRow) view() models.TaskView {
	v := models.TaskView{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Priority:    models.Priority(row.Priority),
		TagName:     common.NoTagLabel,
		DateCreated: models.FormatDate(row.DateCreated),
		IsCompleted: row.IsCompleted,
	}
	if row.TagID.Valid {
		id := row.TagID.Int64
		v.TagID = &id
	}
	if row.TagName.Valid && row.TagName.String != "" {
		v.TagName = row.TagName.String
	}
	return v
}

func (r *PostgresRepository) selectViews(ctx context.Context, userID int64, p filters.Predicate, orderBy string) ([]models.TaskView, error) {
	query := viewsQuery
	args := []any{userID}
	if where, extra := p.SQL(2); where != "" {
		query += " AND " + where
		args = append(args, extra...)
	}
	query += " ORDER BY " + orderBy

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var scanned []taskRow
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("failed to scan tasks: %w", err)
	}

	result := make([]models.TaskView, 0, len(scanned))
	for _, row := range scanned {
		result = append(result, row.view())
	}
	return result, nil
}

func requireRow(res sql.Result, detail string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", common.ErrorNotFound, detail)
	}
	return nil
}
