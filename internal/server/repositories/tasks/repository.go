package tasks

import (
	"context"
	"time"

	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
)

// Repository stores tasks. Every method is scoped by the owning user id and
// never reads or writes rows of another user.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (int64, error)
	Update(ctx context.Context, userID, taskID int64, patch models.TaskPatch) error
	Exists(ctx context.Context, userID, taskID int64) (bool, error)
	Delete(ctx context.Context, userID, taskID int64) error

	// DetachTag clears tag_id on the user's tasks that reference tagID and
	// returns the number of tasks touched.
	DetachTag(ctx context.Context, userID, tagID int64) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) error

	List(ctx context.Context, userID int64) ([]models.TaskView, error)
	ListByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.TaskView, error)
	Filter(ctx context.Context, userID int64, p filters.Predicate) ([]models.TaskView, error)
}
