package todoist

import "context"

// Service defines the interface for Todoist operations.
type Service interface {
	// Task operations
	ListTasks(ctx context.Context, opts ListTasksOptions) ([]Task, string, error)
	FilterTasks(ctx context.Context, query string, cursor string, limit int) ([]Task, string, error)
	GetTask(ctx context.Context, taskID string) (*Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error)
	UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (*Task, error)
	CloseTask(ctx context.Context, taskID string) error
	ReopenTask(ctx context.Context, taskID string) error
	DeleteTask(ctx context.Context, taskID string) error

	// Project, section and label operations
	ListProjects(ctx context.Context, cursor string, limit int) ([]Project, string, error)
	GetProject(ctx context.Context, projectID string) (*Project, error)
	GetProjectByName(ctx context.Context, name string) (*Project, error)
	ListSections(ctx context.Context, projectID, cursor string, limit int) ([]Section, string, error)
	ListLabels(ctx context.Context, cursor string, limit int) ([]Label, string, error)

	// Comment operations
	ListComments(ctx context.Context, taskID, cursor string, limit int) ([]Comment, string, error)
	AddComment(ctx context.Context, taskID, content string) (*Comment, error)
}

// Compile-time interface compliance check
var _ Service = (*Client)(nil)
