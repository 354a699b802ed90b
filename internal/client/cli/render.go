package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/taskhub/taskhub/internal/api"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var priorityLabels = map[int]string{1: "Low", 2: "Medium", 3: "High"}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderTags(tags []api.Tag) string {
	t := newTable("ID", "Name")
	for _, tag := range tags {
		t.Row(strconv.FormatInt(tag.ID, 10), tag.Name)
	}
	return t.Render()
}

func renderTasks(tasks []api.Task) string {
	t := newTable("ID", "Title", "Description", "Priority", "Tag", "Date", "Done")
	for _, task := range tasks {
		label, ok := priorityLabels[task.Priority]
		if !ok {
			label = strconv.Itoa(task.Priority)
		}
		t.Row(strconv.FormatInt(task.ID, 10), task.Title, task.Description, label, task.TagName, task.DateCreated, yesNo(task.IsCompleted))
	}
	return t.Render()
}

func renderLabeledTasks(tasks []api.LabeledTask) string {
	t := newTable("ID", "Title", "Description", "Priority", "Tag", "Date", "Done")
	for _, task := range tasks {
		t.Row(strconv.FormatInt(task.ID, 10), task.Title, task.Description, task.Priority, task.TagName, task.DateCreated, yesNo(task.IsCompleted))
	}
	return t.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
