package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/config"
	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/tags"
	"github.com/taskhub/taskhub/internal/server/repositories/tasks"
	"github.com/taskhub/taskhub/internal/server/repositories/tokens"
	"github.com/taskhub/taskhub/internal/server/repositories/users"
)

// memStore is an in-memory stand-in for the database shared by the fake
// repositories. failOn makes the named operation return errFake.
type memStore struct {
	nextID int64
	users  map[int64]*models.User
	tokens map[int64]models.Token
	tags   map[int64]models.Tag
	tasks  map[int64]*models.Task
	calls  []string
	failOn string

	lastPredicate filters.Predicate
}

var errFake = fmt.Errorf("db error: fake failure")

func newMemStore() *memStore {
	return &memStore{
		users:  map[int64]*models.User{},
		tokens: map[int64]models.Token{},
		tags:   map[int64]models.Tag{},
		tasks:  map[int64]*models.Task{},
	}
}

func (s *memStore) call(name string) error {
	s.calls = append(s.calls, name)
	if s.failOn == name {
		return errFake
	}
	return nil
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return fakeUsers{m.s} }
func (m *fakeRepoManager) Tokens(dbx.DBTX) tokens.Repository           { return fakeTokens{m.s} }
func (m *fakeRepoManager) Tags(dbx.DBTX) tags.Repository               { return fakeTags{m.s} }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository             { return fakeTasks{m.s} }

type fakeUsers struct{ s *memStore }

func (f fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if err := f.s.call("users.Create"); err != nil {
		return nil, err
	}
	for _, other := range f.s.users {
		if other.Username == u.Username {
			return nil, fmt.Errorf("%w: username already taken", common.ErrorAlreadyExists)
		}
		if other.Email == u.Email {
			return nil, fmt.Errorf("%w: email already taken", common.ErrorAlreadyExists)
		}
	}
	u.ID = f.s.id()
	u.CreatedAt = time.Now()
	cp := *u
	f.s.users[u.ID] = &cp
	return u, nil
}

func (f fakeUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	if err := f.s.call("users.GetUserByLogin"); err != nil {
		return nil, err
	}
	for _, u := range f.s.users {
		if u.Username == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if err := f.s.call("users.GetByID"); err != nil {
		return nil, err
	}
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) Update(_ context.Context, id int64, c models.UserChanges) error {
	if err := f.s.call("users.Update"); err != nil {
		return err
	}
	u, ok := f.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	for _, other := range f.s.users {
		if other.ID != id && c.Username != nil && other.Username == *c.Username {
			return fmt.Errorf("%w: username already taken", common.ErrorAlreadyExists)
		}
	}
	if c.Username != nil {
		u.Username = *c.Username
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.PasswordHash != nil {
		u.PasswordHash = c.PasswordHash
	}
	return nil
}

func (f fakeUsers) Delete(_ context.Context, id int64) error {
	if err := f.s.call("users.Delete"); err != nil {
		return err
	}
	if _, ok := f.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.users, id)
	return nil
}

type fakeTokens struct{ s *memStore }

func (f fakeTokens) Create(_ context.Context, userID int64, key string) error {
	if err := f.s.call("tokens.Create"); err != nil {
		return err
	}
	if _, ok := f.s.tokens[userID]; !ok {
		f.s.tokens[userID] = models.Token{Key: key, UserID: userID, CreatedAt: time.Now()}
	}
	return nil
}

func (f fakeTokens) FindByUser(_ context.Context, userID int64) (*models.Token, error) {
	if err := f.s.call("tokens.FindByUser"); err != nil {
		return nil, err
	}
	t, ok := f.s.tokens[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (f fakeTokens) Find(_ context.Context, key string) (*models.Token, error) {
	if err := f.s.call("tokens.Find"); err != nil {
		return nil, err
	}
	for _, t := range f.s.tokens {
		if t.Key == key {
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeTokens) DeleteByUser(_ context.Context, userID int64) error {
	if err := f.s.call("tokens.DeleteByUser"); err != nil {
		return err
	}
	delete(f.s.tokens, userID)
	return nil
}

type fakeTags struct{ s *memStore }

func (f fakeTags) Create(_ context.Context, userID int64, name string) (int64, error) {
	if err := f.s.call("tags.Create"); err != nil {
		return 0, err
	}
	for _, t := range f.s.tags {
		if t.UserID == userID && t.Name == name {
			return 0, fmt.Errorf("%w: tag with this name already exists", common.ErrorAlreadyExists)
		}
	}
	id := f.s.id()
	f.s.tags[id] = models.Tag{ID: id, UserID: userID, Name: name}
	return id, nil
}

func (f fakeTags) List(_ context.Context, userID int64) ([]models.Tag, error) {
	if err := f.s.call("tags.List"); err != nil {
		return nil, err
	}
	out := make([]models.Tag, 0)
	for _, t := range f.s.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeTags) Exists(_ context.Context, userID, tagID int64) (bool, error) {
	if err := f.s.call("tags.Exists"); err != nil {
		return false, err
	}
	t, ok := f.s.tags[tagID]
	return ok && t.UserID == userID, nil
}

func (f fakeTags) Delete(_ context.Context, userID, tagID int64) error {
	if err := f.s.call("tags.Delete"); err != nil {
		return err
	}
	t, ok := f.s.tags[tagID]
	if !ok || t.UserID != userID {
		return fmt.Errorf("%w: tag not found", common.ErrorNotFound)
	}
	delete(f.s.tags, tagID)
	return nil
}

func (f fakeTags) DeleteByUser(_ context.Context, userID int64) error {
	if err := f.s.call("tags.DeleteByUser"); err != nil {
		return err
	}
	for id, t := range f.s.tags {
		if t.UserID == userID {
			delete(f.s.tags, id)
		}
	}
	return nil
}

type fakeTasks struct{ s *memStore }

func (f fakeTasks) owned(userID, taskID int64) (*models.Task, bool) {
	t, ok := f.s.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, false
	}
	return t, true
}

func (f fakeTasks) Create(_ context.Context, task *models.Task) (int64, error) {
	if err := f.s.call("tasks.Create"); err != nil {
		return 0, err
	}
	task.ID = f.s.id()
	cp := *task
	f.s.tasks[task.ID] = &cp
	return task.ID, nil
}

func (f fakeTasks) Update(_ context.Context, userID, taskID int64, p models.TaskPatch) error {
	if err := f.s.call("tasks.Update"); err != nil {
		return err
	}
	t, ok := f.owned(userID, taskID)
	if !ok {
		return fmt.Errorf("%w: task not found", common.ErrorNotFound)
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.TagID != nil {
		if *p.TagID == 0 {
			t.TagID = nil
		} else {
			id := *p.TagID
			t.TagID = &id
		}
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
	return nil
}

func (f fakeTasks) Exists(_ context.Context, userID, taskID int64) (bool, error) {
	if err := f.s.call("tasks.Exists"); err != nil {
		return false, err
	}
	_, ok := f.owned(userID, taskID)
	return ok, nil
}

func (f fakeTasks) Delete(_ context.Context, userID, taskID int64) error {
	if err := f.s.call("tasks.Delete"); err != nil {
		return err
	}
	if _, ok := f.owned(userID, taskID); !ok {
		return fmt.Errorf("%w: task not found", common.ErrorNotFound)
	}
	delete(f.s.tasks, taskID)
	return nil
}

func (f fakeTasks) DetachTag(_ context.Context, userID, tagID int64) (int64, error) {
	if err := f.s.call("tasks.DetachTag"); err != nil {
		return 0, err
	}
	var n int64
	for _, t := range f.s.tasks {
		if t.UserID == userID && t.TagID != nil && *t.TagID == tagID {
			t.TagID = nil
			n++
		}
	}
	return n, nil
}

func (f fakeTasks) DeleteByUser(_ context.Context, userID int64) error {
	if err := f.s.call("tasks.DeleteByUser"); err != nil {
		return err
	}
	for id, t := range f.s.tasks {
		if t.UserID == userID {
			delete(f.s.tasks, id)
		}
	}
	return nil
}

func (f fakeTasks) views(userID int64, keep func(*models.Task) bool) []models.TaskView {
	out := make([]models.TaskView, 0)
	for _, t := range f.s.tasks {
		if t.UserID != userID || !keep(t) {
			continue
		}
		v := models.TaskView{
			ID: t.ID, Title: t.Title, Description: t.Description, Priority: t.Priority,
			TagID: t.TagID, TagName: common.NoTagLabel, DateCreated: models.FormatDate(t.DateCreated),
			IsCompleted: t.IsCompleted,
		}
		if t.TagID != nil {
			v.TagName = f.s.tags[*t.TagID].Name
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f fakeTasks) List(_ context.Context, userID int64) ([]models.TaskView, error) {
	if err := f.s.call("tasks.List"); err != nil {
		return nil, err
	}
	return f.views(userID, func(*models.Task) bool { return true }), nil
}

func (f fakeTasks) ListByDateRange(_ context.Context, userID int64, start, end time.Time) ([]models.TaskView, error) {
	if err := f.s.call("tasks.ListByDateRange"); err != nil {
		return nil, err
	}
	return f.views(userID, func(t *models.Task) bool {
		return !t.DateCreated.Before(start) && !t.DateCreated.After(end)
	}), nil
}

func (f fakeTasks) Filter(_ context.Context, userID int64, p filters.Predicate) ([]models.TaskView, error) {
	if err := f.s.call("tasks.Filter"); err != nil {
		return nil, err
	}
	f.s.lastPredicate = p
	return f.views(userID, func(*models.Task) bool { return true }), nil
}

// --- harness ---

type harness struct {
	store  *memStore
	mock   sqlmock.Sqlmock
	db     *sql.DB
	tokens *TokenService
	users  *UserService
	tags   *TagService
	tasks  *TaskService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := newMemStore()
	rm := &fakeRepoManager{s: store}
	cfg := &config.Config{SecretKey: "test-secret"}
	ts := NewTokenService(db, rm, cfg)

	return &harness{
		store:  store,
		mock:   mock,
		db:     db,
		tokens: ts,
		users:  NewUserService(db, rm, ts),
		tags:   NewTagService(db, rm),
		tasks:  NewTaskService(db, rm),
	}
}

// expectTx registers a transaction that commits.
func (h *harness) expectTx() {
	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
}

// expectRollback registers a transaction that rolls back.
func (h *harness) expectRollback() {
	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
}

func (h *harness) addUser(t *testing.T, username string) int64 {
	t.Helper()
	u, err := fakeUsers{h.store}.Create(context.Background(), &models.User{Username: username, Email: username + "@x.io"})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	return u.ID
}

func (h *harness) addTag(t *testing.T, userID int64, name string) int64 {
	t.Helper()
	id, err := fakeTags{h.store}.Create(context.Background(), userID, name)
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}
	return id
}

func (h *harness) addTask(t *testing.T, userID int64, title string, tagID *int64) int64 {
	t.Helper()
	d, _ := models.ParseDate("2024-01-10")
	id, err := fakeTasks{h.store}.Create(context.Background(), &models.Task{
		UserID: userID, Title: title, Priority: models.PriorityMedium, DateCreated: d, TagID: tagID,
	})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return id
}

func ptr[T any](v T) *T { return &v }
