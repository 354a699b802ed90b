package models

import (
	"strings"
	"time"

	"github.com/taskhub/taskhub/internal/common"
)

const MaxTaskTitleLength = 50

// Priority is stored as a small integer: Low=1, Medium=2, High=3.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Label is the human readable name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ParsePriority maps "low", "medium" and "high" (any case) to a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return 0, false
	}
}

type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	DateCreated time.Time
	IsCompleted bool
	Priority    Priority
	TagID       *int64
}

// TaskView is a task joined with the name of its tag.
type TaskView struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	TagID       *int64
	TagName     string
	DateCreated string
	IsCompleted bool
}

// TaskPatch is a partial task update; nil fields are left untouched.
// TagID pointing at 0 detaches the task from its tag.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	TagID       *int64
	IsCompleted *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.TagID == nil && p.IsCompleted == nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(common.DateLayout, strings.TrimSpace(s))
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(common.DateLayout)
}
