package cli

import (
	"context"
	"fmt"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/session"
)

type fakeClient struct {
	token string

	calls     []string
	register  api.RegisterRequest
	create    api.CreateTaskRequest
	update    api.UpdateTaskRequest
	filter    api.FilterTasksRequest
	tags      []api.Tag
	tasks     []api.Task
	labeled   []api.LabeledTask
	unauthErr bool
}

func (f *fakeClient) Close() error          { return nil }
func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Ping(context.Context) error {
	return nil
}

func (f *fakeClient) Register(_ context.Context, req api.RegisterRequest) (string, error) {
	f.calls = append(f.calls, "register")
	f.register = req
	return "tok-" + req.Username, nil
}
func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.calls = append(f.calls, "login")
	if password != "secret" {
		return "", fmt.Errorf("%w: invalid login credentials", client.ErrUnauthorized)
	}
	return "tok-" + username, nil
}
func (f *fakeClient) UpdateAccount(context.Context, api.UpdateAccountRequest) error { return nil }
func (f *fakeClient) DeleteAccount(context.Context) error {
	f.calls = append(f.calls, "deleteaccount")
	return nil
}
func (f *fakeClient) CreateTag(_ context.Context, name string) (int64, error) {
	f.calls = append(f.calls, "addtag:"+name)
	return 4, nil
}
func (f *fakeClient) ListTags(context.Context) ([]api.Tag, error) {
	if f.unauthErr {
		return nil, fmt.Errorf("%w: invalid or expired token", client.ErrUnauthorized)
	}
	return f.tags, nil
}
func (f *fakeClient) DeleteTag(_ context.Context, id int64) error {
	f.calls = append(f.calls, fmt.Sprintf("deltag:%d", id))
	return nil
}
func (f *fakeClient) CreateTask(_ context.Context, req api.CreateTaskRequest) (int64, error) {
	f.create = req
	return 12, nil
}
func (f *fakeClient) UpdateTask(_ context.Context, req api.UpdateTaskRequest) error {
	f.update = req
	return nil
}
func (f *fakeClient) DeleteTask(_ context.Context, id int64) error {
	f.calls = append(f.calls, fmt.Sprintf("deltask:%d", id))
	return nil
}
func (f *fakeClient) ListTasks(context.Context) ([]api.Task, error) { return f.tasks, nil }
func (f *fakeClient) ListTasksByDate(_ context.Context, start, end string) ([]api.Task, error) {
	f.calls = append(f.calls, "range:"+start+":"+end)
	return f.tasks, nil
}
func (f *fakeClient) FilterTasks(_ context.Context, req api.FilterTasksRequest) ([]api.LabeledTask, error) {
	f.filter = req
	return f.labeled, nil
}

type memSessions struct {
	saved  *session.Session
	closed bool
}

func (m *memSessions) Save(_ context.Context, s session.Session) error {
	m.saved = &s
	return nil
}
func (m *memSessions) Load(context.Context) (session.Session, error) {
	if m.saved == nil {
		return session.Session{}, session.ErrNoSession
	}
	return *m.saved, nil
}
func (m *memSessions) Clear(context.Context) error {
	m.saved = nil
	return nil
}
func (m *memSessions) Close() error {
	m.closed = true
	return nil
}
