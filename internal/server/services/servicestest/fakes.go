// Package servicestest provides in-memory service fakes for transport tests.
package servicestest

import (
	"context"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/auth"
	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/services"
)

var (
	_ services.Tokens = (*Tokens)(nil)
	_ services.Users  = (*Users)(nil)
	_ services.Tags   = (*Tags)(nil)
	_ services.Tasks  = (*Tasks)(nil)
)

// Fakes bundles one fake per service.
type Fakes struct {
	Tokens *Tokens
	Users  *Users
	Tags   *Tags
	Tasks  *Tasks
}

// New returns fakes where each token in tokens resolves to its user id.
func New(tokens map[string]int64) *Fakes {
	return &Fakes{
		Tokens: &Tokens{Users: tokens},
		Users:  &Users{},
		Tags:   &Tags{},
		Tasks:  &Tasks{},
	}
}

// Set exposes the fakes as a services.Set.
func (f *Fakes) Set() services.Set {
	return services.Set{Users: f.Users, Tokens: f.Tokens, Tags: f.Tags, Tasks: f.Tasks}
}

// Tokens resolves credentials from a fixed table.
type Tokens struct {
	Users map[string]int64
}

func (f *Tokens) Resolve(_ context.Context, raw string) (int64, error) {
	key := auth.ExtractToken(raw)
	if key == "" {
		return 0, common.ErrorMissingToken
	}
	id, ok := f.Users[key]
	if !ok {
		return 0, fmt.Errorf("%w: invalid or expired token", common.ErrorUnauthorized)
	}
	return id, nil
}

type Users struct {
	Token string
	Err   error

	GotRegister services.RegisterInput
	GotPatch    services.UserPatch
	Deleted     int64
}

func (f *Users) Register(_ context.Context, in services.RegisterInput) (string, error) {
	f.GotRegister = in
	return f.Token, f.Err
}
func (f *Users) Login(context.Context, string, string) (string, error) { return f.Token, f.Err }
func (f *Users) Update(_ context.Context, _ int64, patch services.UserPatch) error {
	f.GotPatch = patch
	return f.Err
}
func (f *Users) Delete(_ context.Context, userID int64) error {
	f.Deleted = userID
	return f.Err
}

type Tags struct {
	Tags []models.Tag
	ID   int64
	Err  error

	GotUser int64
	GotName string
}

func (f *Tags) Create(_ context.Context, userID int64, name string) (int64, error) {
	f.GotUser, f.GotName = userID, name
	return f.ID, f.Err
}
func (f *Tags) List(_ context.Context, userID int64) ([]models.Tag, error) {
	f.GotUser = userID
	return f.Tags, f.Err
}
func (f *Tags) Delete(_ context.Context, userID, _ int64) error {
	f.GotUser = userID
	return f.Err
}

type Tasks struct {
	Views []models.TaskView
	ID    int64
	Err   error

	GotUser   int64
	GotTaskID int64
	GotInput  services.CreateTaskInput
	GotPatch  models.TaskPatch
	GotRaw    filters.RawCriteria
}

func (f *Tasks) Create(_ context.Context, userID int64, in services.CreateTaskInput) (int64, error) {
	f.GotUser, f.GotInput = userID, in
	return f.ID, f.Err
}
func (f *Tasks) Update(_ context.Context, userID, taskID int64, patch models.TaskPatch) error {
	f.GotUser, f.GotTaskID, f.GotPatch = userID, taskID, patch
	return f.Err
}
func (f *Tasks) Delete(_ context.Context, userID, taskID int64) error {
	f.GotUser, f.GotTaskID = userID, taskID
	return f.Err
}
func (f *Tasks) List(_ context.Context, userID int64) ([]models.TaskView, error) {
	f.GotUser = userID
	return f.Views, f.Err
}
func (f *Tasks) ListByDateRange(_ context.Context, userID int64, _, _ string) ([]models.TaskView, error) {
	f.GotUser = userID
	return f.Views, f.Err
}
func (f *Tasks) Filter(_ context.Context, userID int64, raw filters.RawCriteria) ([]models.TaskView, error) {
	f.GotUser, f.GotRaw = userID, raw
	return f.Views, f.Err
}
