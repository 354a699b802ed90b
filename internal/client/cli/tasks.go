package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taskhub/taskhub/internal/api"
	"github.com/taskhub/taskhub/internal/common"
)

// now is a test seam for the default task date.
var now = time.Now

func (a *App) listTasks(ctx context.Context, _ []string) error {
	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		return err
	}
	a.printTasks(tasks)
	return nil
}

func (a *App) listRange(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	tasks, err := a.client.ListTasksByDate(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.printTasks(tasks)
	return nil
}

func (a *App) printTasks(tasks []api.Task) {
	if len(tasks) == 0 {
		a.printf("No tasks\n")
		return
	}
	a.printf("%s\n", renderTasks(tasks))
}

func (a *App) filterTasks(ctx context.Context, _ []string) error {
	var req api.FilterTasksRequest

	rawTags, err := a.ask("Tag IDs, comma separated (empty for any)")
	if err != nil {
		return err
	}
	if req.Tags, err = tagList(rawTags); err != nil {
		return err
	}
	if req.StartDate, err = a.ask("Start date YYYY-MM-DD (empty for open)"); err != nil {
		return err
	}
	if req.EndDate, err = a.ask("End date YYYY-MM-DD (empty for open)"); err != nil {
		return err
	}
	if req.Completed, err = a.ask("Completed: all, true or false (empty for all)"); err != nil {
		return err
	}
	if req.Priority, err = a.ask("Priority: low, medium or high (empty for any)"); err != nil {
		return err
	}

	tasks, err := a.client.FilterTasks(ctx, req)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		a.printf("No tasks\n")
		return nil
	}
	a.printf("%s\n", renderLabeledTasks(tasks))
	return nil
}

// tagList turns "1, 2" into the JSON list [1,2]; empty input means no filter.
func tagList(s string) (json.RawMessage, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tag ID %q", strings.TrimSpace(part))
		}
		ids = append(ids, id)
	}
	return json.Marshal(ids)
}

func (a *App) addTask(ctx context.Context, _ []string) error {
	var req api.CreateTaskRequest
	var err error

	if req.Title, err = a.ask("Title"); err != nil {
		return err
	}
	if req.Description, err = a.ask("Description (optional)"); err != nil {
		return err
	}

	prio, err := a.ask("Priority 1=Low 2=Medium 3=High (empty for Low)")
	if err != nil {
		return err
	}
	if req.Priority, err = optionalInt(prio); err != nil {
		return fmt.Errorf("invalid priority %q", prio)
	}

	tag, err := a.ask("Tag ID (optional)")
	if err != nil {
		return err
	}
	if req.TagID, err = optionalInt(tag); err != nil {
		return fmt.Errorf("invalid tag ID %q", tag)
	}

	today := now().Format(common.DateLayout)
	if req.DateCreated, err = a.ask("Date YYYY-MM-DD (empty for " + today + ")"); err != nil {
		return err
	}
	if req.DateCreated == "" {
		req.DateCreated = today
	}

	id, err := a.client.CreateTask(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Task created with ID %d\n", id)
	return nil
}

func optionalInt(s string) (*api.FlexInt, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	v := api.FlexInt(n)
	return &v, nil
}

func (a *App) markDone(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, true)
}

func (a *App) markUndone(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, false)
}

func (a *App) setCompleted(ctx context.Context, args []string, done bool) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	if err := a.client.UpdateTask(ctx, api.UpdateTaskRequest{TaskID: api.FlexInt(id), IsCompleted: &done}); err != nil {
		return err
	}
	a.printf("Task %d updated\n", id)
	return nil
}

func (a *App) renameTask(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")
	if title == "" {
		return errUsage
	}
	if err := a.client.UpdateTask(ctx, api.UpdateTaskRequest{TaskID: api.FlexInt(id), Title: &title}); err != nil {
		return err
	}
	a.printf("Task %d renamed\n", id)
	return nil
}

func (a *App) deleteTask(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	a.printf("Task %d deleted\n", id)
	return nil
}
