package todoist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasks fetches one page of active tasks matching the options.
// Returns the tasks and the cursor for the next page ("" on the last page).
func (c *Client) ListTasks(ctx context.Context, opts ListTasksOptions) ([]Task, string, error) {
	q := url.Values{}
	if opts.ProjectID != "" {
		q.Set("project_id", opts.ProjectID)
	}
	if opts.SectionID != "" {
		q.Set("section_id", opts.SectionID)
	}
	if opts.ParentID != "" {
		q.Set("parent_id", opts.ParentID)
	}
	if opts.Label != "" {
		q.Set("label", opts.Label)
	}
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listResp TaskListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}

// FilterTasks fetches one page of tasks matching a filter query
// (Todoist filter syntax, e.g. "today&(p1|p2)").
func (c *Client) FilterTasks(ctx context.Context, query string, cursor string, limit int) ([]Task, string, error) {
	q := url.Values{}
	q.Set("query", query)
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var listResp TaskListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/filter?"+q.Encode(), nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}

// GetTask fetches a single task by ID
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/"+url.PathEscape(taskID), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task and returns it
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("task content required")
	}
	if req.Priority != 0 && (req.Priority < 1 || req.Priority > 4) {
		return nil, fmt.Errorf("priority must be between 1 and 4, got %d", req.Priority)
	}

	var task Task
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies the given changes to a task and returns the updated task
func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("nothing to update")
	}
	if req.Priority != nil && (*req.Priority < 1 || *req.Priority > 4) {
		return nil, fmt.Errorf("priority must be between 1 and 4, got %d", *req.Priority)
	}

	var task Task
	if err := c.doJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CloseTask marks a task as completed. Recurring tasks are rescheduled
// by the service rather than closed for good.
func (c *Client) CloseTask(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/close", nil, nil)
}

// ReopenTask reopens a previously completed task
func (c *Client) ReopenTask(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/reopen", nil, nil)
}

// DeleteTask permanently deletes a task
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(taskID), nil, nil)
}
