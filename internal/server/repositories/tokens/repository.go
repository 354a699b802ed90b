// Package tokens declares the server-side repository contract for the
// per-user bearer credentials.
package tokens

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/models"
)

// Repository stores at most one token per user.
type Repository interface {
	// Create inserts the token unless the user already has one, in which case
	// nothing is written. Callers re-read with FindByUser.
	Create(ctx context.Context, userID int64, key string) error

	// FindByUser returns the user's token or common.ErrorNotFound.
	FindByUser(ctx context.Context, userID int64) (*models.Token, error)

	// Find looks a token up by its key; absent keys yield common.ErrorNotFound.
	Find(ctx context.Context, key string) (*models.Token, error)

	// DeleteByUser removes the user's token. Deleting a missing token is not an error.
	DeleteByUser(ctx context.Context, userID int64) error
}
