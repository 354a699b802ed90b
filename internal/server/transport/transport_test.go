package transport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/models"
)

func TestClassifyAndMessage(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
		msg  string
	}{
		{common.Invalid("title is required"), KindInvalid, "title is required"},
		{common.ErrorMissingToken, KindMissingToken, "authorization token is required"},
		{fmt.Errorf("%w: invalid or expired token", common.ErrorUnauthorized), KindUnauthenticated, "invalid or expired token"},
		{fmt.Errorf("%w: username already taken", common.ErrorAlreadyExists), KindConflict, "username already taken"},
		{common.ErrorNotFound, KindNotFound, "not found"},
		{errors.New("db error: connection refused"), KindInternal, "internal error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Classify(tt.err), tt.err.Error())
		assert.Equal(t, tt.msg, Message(tt.err), tt.err.Error())
	}
}

func TestTasksAndLabeledTasks(t *testing.T) {
	tag := int64(4)
	views := []models.TaskView{
		{ID: 1, Title: "a", Priority: models.PriorityHigh, TagID: &tag, TagName: "work", DateCreated: "2024-01-01"},
	}

	plain := Tasks(views)
	require.Len(t, plain, 1)
	assert.Equal(t, 3, plain[0].Priority)
	assert.Equal(t, &tag, plain[0].TagID)

	labeled := LabeledTasks(views)
	require.Len(t, labeled, 1)
	assert.Equal(t, "High", labeled[0].Priority)

	assert.NotNil(t, Tasks(nil))
	assert.NotNil(t, LabeledTasks(nil))
	assert.NotNil(t, Tags(nil))
}

func TestTaskPatch(t *testing.T) {
	p := TaskPatch(&api.UpdateTaskRequest{})
	assert.True(t, p.IsEmpty())

	p = TaskPatch(&api.UpdateTaskRequest{TagID: api.NoID()})
	require.NotNil(t, p.TagID)
	assert.Equal(t, int64(0), *p.TagID)

	prio := api.FlexInt(1)
	p = TaskPatch(&api.UpdateTaskRequest{TagID: api.SomeID(5), Priority: &prio})
	assert.Equal(t, int64(5), *p.TagID)
	assert.Equal(t, models.PriorityLow, *p.Priority)
}

func TestCreateTaskInput(t *testing.T) {
	prio := api.FlexInt(3)
	tag := api.FlexInt(8)
	in := CreateTaskInput(&api.CreateTaskRequest{Title: "t", Priority: &prio, TagID: &tag, DateCreated: "2024-01-01"})

	assert.Equal(t, models.PriorityHigh, *in.Priority)
	assert.Equal(t, int64(8), *in.TagID)

	in = CreateTaskInput(&api.CreateTaskRequest{Title: "t"})
	assert.Nil(t, in.Priority)
	assert.Nil(t, in.TagID)
}
