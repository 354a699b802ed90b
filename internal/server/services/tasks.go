package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/dbx"
	"github.com/taskhub/taskhub/internal/server/filters"
	"github.com/taskhub/taskhub/internal/server/models"
	"github.com/taskhub/taskhub/internal/server/repositories/repomanager"
)

var errInvalidTag = common.Invalid("invalid tag ID")

// CreateTaskInput is a new task as submitted by a client. Nil Priority means
// Medium; nil or zero TagID means untagged.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    *models.Priority
	TagID       *int64
	DateCreated string
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func checkTitle(title string) error {
	if blank(title) {
		return common.Invalid("title must not be empty")
	}
	return checkLength("title", title, models.MaxTaskTitleLength)
}

func checkPriority(p models.Priority) error {
	if !p.Valid() {
		return common.Invalid("invalid priority value")
	}
	return nil
}

// checkTag verifies that tagID belongs to userID.
func (s *TaskService) checkTag(ctx context.Context, db dbx.DBTX, userID, tagID int64) error {
	if tagID < 0 {
		return errInvalidTag
	}
	ok, err := s.repomanager.Tags(db).Exists(ctx, userID, tagID)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidTag
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, userID int64, in CreateTaskInput) (int64, error) {
	if blank(in.Title) || blank(in.DateCreated) {
		return 0, common.Invalid("title and date_created are required")
	}
	if err := checkTitle(in.Title); err != nil {
		return 0, err
	}

	date, err := models.ParseDate(in.DateCreated)
	if err != nil {
		return 0, common.Invalid("invalid date_created, expected YYYY-MM-DD")
	}

	task := &models.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DateCreated: date,
		Priority:    models.PriorityMedium,
	}
	if in.Priority != nil {
		if err := checkPriority(*in.Priority); err != nil {
			return 0, err
		}
		task.Priority = *in.Priority
	}
	if in.TagID != nil && *in.TagID != 0 {
		id := *in.TagID
		task.TagID = &id
	}

	var id int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if task.TagID != nil {
			if err := s.checkTag(ctx, tx, userID, *task.TagID); err != nil {
				return err
			}
		}
		id, err = s.repomanager.Tasks(tx).Create(ctx, task)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies patch to a task owned by userID. Tasks of other users are
// reported as not found. An empty patch only checks that the task exists.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, patch models.TaskPatch) error {
	if taskID <= 0 {
		return common.Invalid("task ID is required")
	}

	if patch.Title != nil {
		if err := checkTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Priority != nil {
		if err := checkPriority(*patch.Priority); err != nil {
			return err
		}
	}

	if patch.IsEmpty() {
		ok, err := s.repomanager.Tasks(s.db).Exists(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: task not found", common.ErrorNotFound)
		}
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if patch.TagID != nil && *patch.TagID != 0 {
			if err := s.checkTag(ctx, tx, userID, *patch.TagID); err != nil {
				return err
			}
		}
		return s.repomanager.Tasks(tx).Update(ctx, userID, taskID, patch)
	})
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	if taskID <= 0 {
		return common.Invalid("task ID is required")
	}
	return s.repomanager.Tasks(s.db).Delete(ctx, userID, taskID)
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]models.TaskView, error) {
	return s.repomanager.Tasks(s.db).List(ctx, userID)
}

// ListByDateRange returns tasks dated within [start, end], both YYYY-MM-DD.
func (s *TaskService) ListByDateRange(ctx context.Context, userID int64, start, end string) ([]models.TaskView, error) {
	if blank(start) || blank(end) {
		return nil, common.Invalid("start date and end date are required")
	}

	from, err := models.ParseDate(start)
	if err != nil {
		return nil, common.Invalid("invalid start_date, expected YYYY-MM-DD")
	}
	to, err := models.ParseDate(end)
	if err != nil {
		return nil, common.Invalid("invalid end_date, expected YYYY-MM-DD")
	}

	return s.repomanager.Tasks(s.db).ListByDateRange(ctx, userID, from, to)
}

// Filter validates raw and returns the matching tasks of userID.
func (s *TaskService) Filter(ctx context.Context, userID int64, raw filters.RawCriteria) ([]models.TaskView, error) {
	criteria, err := filters.Parse(raw)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Tasks(s.db).Filter(ctx, userID, criteria.Predicate())
}

