package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tdo-cli/tdo/internal/config"
	"github.com/tdo-cli/tdo/internal/output"
	"github.com/tdo-cli/tdo/internal/todoist"
)

// TaskListRow is a display-friendly projection of a task
type TaskListRow struct {
	Content  string
	Priority string
	Due      string
	Labels   string
	Project  string
	TaskID   string
}

func taskRows(tasks []todoist.Task) []TaskListRow {
	rows := make([]TaskListRow, len(tasks))
	for i, task := range tasks {
		rows[i] = TaskListRow{
			Content:  task.Content,
			Priority: formatPriority(task.Priority),
			Due:      formatDue(task.Due),
			Labels:   strings.Join(task.Labels, ","),
			Project:  task.ProjectID,
			TaskID:   task.ID,
		}
	}
	return rows
}

var taskColumns = []output.Column{
	{Name: "Content", Key: "Content"},
	{Name: "Pri", Key: "Priority"},
	{Name: "Due", Key: "Due"},
	{Name: "Labels", Key: "Labels"},
	{Name: "Project", Key: "Project"},
	{Name: "ID", Key: "TaskID"},
}

// resolveProject resolves a project name or ID to a project ID.
// Names are tried first; anything that doesn't match a name is
// passed through as an ID.
func resolveProject(ctx context.Context, svc todoist.Service, nameOrID string) string {
	project, err := svc.GetProjectByName(ctx, nameOrID)
	if err != nil {
		return nameOrID
	}
	return project.ID
}

// TasksListCmd lists active tasks
type TasksListCmd struct {
	Project  string `help:"Filter by project name or ID" short:"p"`
	Section  string `help:"Filter by section ID" short:"s"`
	Parent   string `help:"Filter by parent task ID"`
	Label    string `help:"Filter by label name"`
	Filter   string `help:"Raw Todoist filter query (e.g. 'today & p1')" short:"f"`
	Due      string `help:"Due filter expression (e.g. 'today', 'before: May 5')"`
	Search   string `help:"Full-text search term"`
	Priority []int  `help:"Filter by priority level 1-4 (repeatable)"`
	Limit    int    `help:"Maximum tasks to show" short:"l" default:"50"`
	All      bool   `help:"Fetch all tasks (no pagination limit)" short:"a"`
}

// usesFilter reports whether any filter-query flag was given. Filter
// flags route through the filter endpoint; plain listing uses /tasks.
func (cmd *TasksListCmd) usesFilter() bool {
	return cmd.Filter != "" || cmd.Due != "" || cmd.Search != "" || len(cmd.Priority) > 0
}

// Run executes the list tasks command
func (cmd *TasksListCmd) Run(cfg *config.Config, sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Default project from config applies when no explicit scope is given
	project := cmd.Project
	if project == "" && !cmd.usesFilter() && cmd.Section == "" && cmd.Parent == "" {
		project = cfg.DefaultProject
	}

	var fetch todoist.PageFunc[todoist.Task]

	if cmd.usesFilter() {
		filter := todoist.NewFilter()
		if cmd.Search != "" {
			filter.Search(cmd.Search)
		}
		if cmd.Due != "" {
			filter.Due(cmd.Due)
		}
		if len(cmd.Priority) > 0 {
			filter.Priorities(cmd.Priority...)
		}
		if cmd.Label != "" {
			filter.Label(cmd.Label)
		}
		if project != "" {
			filter.Project(project)
		}
		if cmd.Filter != "" {
			filter.Raw(cmd.Filter)
		}

		query := filter.Build()
		fetch = func(cursor string, limit int) ([]todoist.Task, string, error) {
			return svc.FilterTasks(ctx, query, cursor, limit)
		}
	} else {
		opts := todoist.ListTasksOptions{
			SectionID: cmd.Section,
			ParentID:  cmd.Parent,
			Label:     cmd.Label,
		}
		if project != "" {
			opts.ProjectID = resolveProject(ctx, svc, project)
		}
		fetch = func(cursor string, limit int) ([]todoist.Task, string, error) {
			opts.Cursor = cursor
			opts.Limit = limit
			return svc.ListTasks(ctx, opts)
		}
	}

	iterator := todoist.NewCursorIterator(fetch, 50)

	var tasks []todoist.Task
	if cmd.All {
		tasks, err = iterator.FetchAll()
	} else {
		tasks, err = iterator.FetchN(cmd.Limit)
	}
	if err != nil {
		return apiError("fetch tasks", err)
	}

	return fp.Formatter.PrintList(taskRows(tasks), taskColumns)
}

// TasksGetCmd gets full details for a specific task
type TasksGetCmd struct {
	TaskID string `arg:"" help:"Task ID to retrieve"`
}

// Run executes the get task command
func (cmd *TasksGetCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	task, err := svc.GetTask(context.Background(), cmd.TaskID)
	if err != nil {
		return apiError("fetch task", err)
	}

	return fp.Formatter.Print(task)
}

// TasksAddCmd creates a new task
type TasksAddCmd struct {
	Content     string   `arg:"" help:"Task content (title)"`
	Description string   `help:"Task description" short:"d"`
	Project     string   `help:"Project name or ID" short:"p"`
	Section     string   `help:"Section ID" short:"s"`
	Parent      string   `help:"Parent task ID (creates a subtask)"`
	Label       []string `help:"Label name (repeatable)"`
	Priority    int      `help:"Priority 1 (normal) to 4 (urgent)" default:"1"`
	Due         string   `help:"Due expression in natural language (e.g. 'tomorrow at 9am')"`
	DueDate     string   `help:"Due date (YYYY-MM-DD)" name:"due-date"`
}

// Run executes the add task command
func (cmd *TasksAddCmd) Run(cfg *config.Config, sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would create task: %s (priority=%d, due=%s)\n", cmd.Content, cmd.Priority, cmd.Due)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	project := cmd.Project
	if project == "" {
		project = cfg.DefaultProject
	}

	req := todoist.CreateTaskRequest{
		Content:     cmd.Content,
		Description: cmd.Description,
		SectionID:   cmd.Section,
		ParentID:    cmd.Parent,
		Labels:      cmd.Label,
		Priority:    cmd.Priority,
		DueString:   cmd.Due,
		DueDate:     cmd.DueDate,
	}
	if project != "" {
		req.ProjectID = resolveProject(ctx, svc, project)
	}

	task, err := svc.CreateTask(ctx, req)
	if err != nil {
		return apiError("create task", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Task created: %s\n", task.ID)

	return fp.Formatter.Print(task)
}

// TasksUpdateCmd updates an existing task
type TasksUpdateCmd struct {
	TaskID      string   `arg:"" help:"Task ID to update"`
	Content     string   `help:"New content (title)" short:"c"`
	Description string   `help:"New description" short:"d"`
	Label       []string `help:"Replace labels (repeatable)"`
	Priority    int      `help:"New priority 1-4"`
	Due         string   `help:"New due expression"`
	DueDate     string   `help:"New due date (YYYY-MM-DD)" name:"due-date"`
}

// Run executes the update task command
func (cmd *TasksUpdateCmd) Run(sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	req := todoist.UpdateTaskRequest{}
	if cmd.Content != "" {
		req.Content = &cmd.Content
	}
	if cmd.Description != "" {
		req.Description = &cmd.Description
	}
	if len(cmd.Label) > 0 {
		req.Labels = &cmd.Label
	}
	if cmd.Priority != 0 {
		req.Priority = &cmd.Priority
	}
	if cmd.Due != "" {
		req.DueString = &cmd.Due
	}
	if cmd.DueDate != "" {
		req.DueDate = &cmd.DueDate
	}

	if req.IsEmpty() {
		return &output.CLIError{
			Message:  "Nothing to update: provide at least one field flag",
			ExitCode: output.ExitUsage,
		}
	}

	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would update task: %s\n", cmd.TaskID)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	task, err := svc.UpdateTask(context.Background(), cmd.TaskID, req)
	if err != nil {
		return apiError("update task", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Task updated: %s\n", task.ID)

	return fp.Formatter.Print(task)
}

// TasksDoneCmd marks a task as completed
type TasksDoneCmd struct {
	TaskID string `arg:"" help:"Task ID to complete"`
}

// Run executes the done command
func (cmd *TasksDoneCmd) Run(sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would complete task: %s\n", cmd.TaskID)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	if err := svc.CloseTask(context.Background(), cmd.TaskID); err != nil {
		return apiError("complete task", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Task completed: %s\n", cmd.TaskID)
	return nil
}

// TasksReopenCmd reopens a completed task
type TasksReopenCmd struct {
	TaskID string `arg:"" help:"Task ID to reopen"`
}

// Run executes the reopen command
func (cmd *TasksReopenCmd) Run(sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would reopen task: %s\n", cmd.TaskID)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	if err := svc.ReopenTask(context.Background(), cmd.TaskID); err != nil {
		return apiError("reopen task", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Task reopened: %s\n", cmd.TaskID)
	return nil
}

// TasksDeleteCmd permanently deletes a task
type TasksDeleteCmd struct {
	TaskID  string `arg:"" help:"Task ID to delete"`
	Confirm bool   `help:"Confirm permanent deletion"`
}

// Run executes the delete task command
func (cmd *TasksDeleteCmd) Run(sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	// Check confirmation requirement (unless --force or --dry-run)
	if !cmd.Confirm && !globals.Force && !globals.DryRun {
		return &output.CLIError{
			Message:  "Deletion requires --confirm or --force flag",
			ExitCode: output.ExitUsage,
		}
	}

	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would permanently delete task: %s\n", cmd.TaskID)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	if err := svc.DeleteTask(context.Background(), cmd.TaskID); err != nil {
		return apiError("delete task", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Task deleted permanently: %s\n", cmd.TaskID)
	return nil
}
