package client

import (
	"context"

	"github.com/taskhub/taskhub/internal/api"
)

type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error
	Register(ctx context.Context, req api.RegisterRequest) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	UpdateAccount(ctx context.Context, req api.UpdateAccountRequest) error
	DeleteAccount(ctx context.Context) error
	CreateTag(ctx context.Context, name string) (int64, error)
	ListTags(ctx context.Context) ([]api.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (int64, error)
	UpdateTask(ctx context.Context, req api.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, taskID int64) error
	ListTasks(ctx context.Context) ([]api.Task, error)
	ListTasksByDate(ctx context.Context, start, end string) ([]api.Task, error)
	FilterTasks(ctx context.Context, req api.FilterTasksRequest) ([]api.LabeledTask, error)
}
