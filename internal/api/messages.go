package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or a numeric string, as browser clients
// send either.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*i = FlexInt(n)
		return nil
	}

	var f json.Number
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if n, err := f.Int64(); err == nil {
		*i = FlexInt(n)
		return nil
	}
	v, err := f.Float64()
	if err != nil || v != math.Trunc(v) {
		return fmt.Errorf("invalid integer %s", f)
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("integer %s out of range", f)
	}
	*i = FlexInt(v)
	return nil
}

// OptionalID is a tri-state id: absent (Set false), explicitly cleared
// (Set true, ID nil) or set.
type OptionalID struct {
	Set bool
	ID  *int64
}

// SomeID returns an OptionalID carrying id.
func SomeID(id int64) OptionalID {
	return OptionalID{Set: true, ID: &id}
}

// NoID returns an OptionalID that explicitly clears the value.
func NoID() OptionalID {
	return OptionalID{Set: true}
}

func (o OptionalID) IsZero() bool { return !o.Set }

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.ID == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.ID)
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.ID = nil
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var v FlexInt
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	if v != 0 {
		id := int64(v)
		o.ID = &id
	}
	return nil
}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateAccountRequest carries only the fields to change.
type UpdateAccountRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type CreateTagResponse struct {
	Message string `json:"message,omitempty"`
	TagID   int64  `json:"tag_id"`
}

type ListTagsResponse struct {
	Tags []Tag `json:"tags"`
}

type DeleteTagRequest struct {
	TagID FlexInt `json:"tag_id"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    *FlexInt `json:"priority,omitempty"`
	TagID       *FlexInt `json:"tag_id,omitempty"`
	DateCreated string   `json:"date_created"`
}

type CreateTaskResponse struct {
	Message string `json:"message,omitempty"`
	TaskID  int64  `json:"task_id"`
}

// UpdateTaskRequest changes only the fields present. tag_id: null detaches
// the task from its tag.
type UpdateTaskRequest struct {
	TaskID      FlexInt    `json:"task_id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *FlexInt   `json:"priority,omitempty"`
	TagID       OptionalID `json:"tag_id,omitzero"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
}

type DeleteTaskRequest struct {
	TaskID FlexInt `json:"task_id"`
}

// Task is a task view with the numeric priority code.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	TagID       *int64 `json:"tag_id"`
	TagName     string `json:"tag_name"`
	DateCreated string `json:"date_created"`
	IsCompleted bool   `json:"is_completed"`
}

// LabeledTask is a task view with the priority rendered as Low, Medium or High.
type LabeledTask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	TagID       *int64 `json:"tag_id"`
	TagName     string `json:"tag_name"`
	DateCreated string `json:"date_created"`
	IsCompleted bool   `json:"is_completed"`
}

type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type ListTasksByDateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// FilterTasksRequest keeps tags raw so that the server can tell a list from
// any other JSON value.
type FilterTasksRequest struct {
	Tags      json.RawMessage `json:"tags,omitempty"`
	StartDate string          `json:"start_date,omitempty"`
	EndDate   string          `json:"end_date,omitempty"`
	Completed string          `json:"completed,omitempty"`
	Priority  string          `json:"priority,omitempty"`
}

type FilterTasksResponse struct {
	Tasks []LabeledTask `json:"tasks"`
}
