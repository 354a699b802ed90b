package tags

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/models"
)

// Repository is the per-user tag namespace. Every method is scoped by userID;
// a tag of another user is indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, userID int64, name string) (int64, error)
	List(ctx context.Context, userID int64) ([]models.Tag, error)
	Exists(ctx context.Context, userID, tagID int64) (bool, error)
	Delete(ctx context.Context, userID, tagID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
