// Package services holds the business rules of the server: validation,
// ownership checks and the transactional boundaries around repositories.
package services

import (
	"context"

	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
)

// Users is the identity store as seen by the transports.
type Users interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Update(ctx context.Context, userID int64, patch UserPatch) error
	Delete(ctx context.Context, userID int64) error
}

// Tokens resolves bearer credentials to user ids.
type Tokens interface {
	Resolve(ctx context.Context, raw string) (int64, error)
}

type Tags interface {
	Create(ctx context.Context, userID int64, name string) (int64, error)
	List(ctx context.Context, userID int64) ([]models.Tag, error)
	Delete(ctx context.Context, userID, tagID int64) error
}

type Tasks interface {
	Create(ctx context.Context, userID int64, in CreateTaskInput) (int64, error)
	Update(ctx context.Context, userID, taskID int64, patch models.TaskPatch) error
	Delete(ctx context.Context, userID, taskID int64) error
	List(ctx context.Context, userID int64) ([]models.TaskView, error)
	ListByDateRange(ctx context.Context, userID int64, start, end string) ([]models.TaskView, error)
	Filter(ctx context.Context, userID int64, raw filters.RawCriteria) ([]models.TaskView, error)
}

// Set bundles the services handed to a transport.
type Set struct {
	Users  Users
	Tokens Tokens
	Tags   Tags
	Tasks  Tasks
}
