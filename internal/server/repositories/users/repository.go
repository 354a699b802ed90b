// Package users declares the identity store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/models"
)

// Repository persists users. Lookups of absent users return
// common.ErrorNotFound; uniqueness violations return common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, changes models.UserChanges) error
	Delete(ctx context.Context, id int64) error
}
