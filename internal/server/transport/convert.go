// Package transport holds what the gRPC and HTTP front ends share: message
// conversion and the classification of service errors.
package transport

import (
	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/services"
)

func Tags(in []models.Tag) []api.Tag {
	out := make([]api.Tag, 0, len(in))
	for _, t := range in {
		out = append(out, api.Tag{ID: t.ID, Name: t.Name})
	}
	return out
}

// Tasks renders views with numeric priorities.
func Tasks(in []models.TaskView) []api.Task {
	out := make([]api.Task, 0, len(in))
	for _, v := range in {
		out = append(out, api.Task{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Priority:    int(v.Priority),
			TagID:       v.TagID,
			TagName:     v.TagName,
			DateCreated: v.DateCreated,
			IsCompleted: v.IsCompleted,
		})
	}
	return out
}

// LabeledTasks renders views with priority labels.
func LabeledTasks(in []models.TaskView) []api.LabeledTask {
	out := make([]api.LabeledTask, 0, len(in))
	for _, v := range in {
		out = append(out, api.LabeledTask{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Priority:    v.Priority.Label(),
			TagID:       v.TagID,
			TagName:     v.TagName,
			DateCreated: v.DateCreated,
			IsCompleted: v.IsCompleted,
		})
	}
	return out
}

func RegisterInput(req *api.RegisterRequest) services.RegisterInput {
	return services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
}

func UserPatch(req *api.UpdateAccountRequest) services.UserPatch {
	return services.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
}

func CreateTaskInput(req *api.CreateTaskRequest) services.CreateTaskInput {
	in := services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DateCreated: req.DateCreated,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		in.Priority = &p
	}
	if req.TagID != nil {
		id := int64(*req.TagID)
		in.TagID = &id
	}
	return in
}

// TaskPatch maps an update request; an explicit null or zero tag_id becomes
// a pointer to 0, which clears the tag.
func TaskPatch(req *api.UpdateTaskRequest) models.TaskPatch {
	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.TagID.Set {
		var id int64
		if req.TagID.ID != nil {
			id = *req.TagID.ID
		}
		patch.TagID = &id
	}
	return patch
}

func FilterCriteria(req *api.FilterTasksRequest) filters.RawCriteria {
	return filters.RawCriteria{
		Tags:      req.Tags,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Completed: req.Completed,
		Priority:  req.Priority,
	}
}
