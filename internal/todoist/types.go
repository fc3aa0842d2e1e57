package todoist

// Due describes when a task is due.
type Due struct {
	Date        string `json:"date"`
	Timezone    string `json:"timezone,omitempty"`
	String      string `json:"string"`
	Lang        string `json:"lang,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// Task represents a Todoist task.
type Task struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
	Priority    int      `json:"priority"` // 1 (normal) to 4 (urgent)
	Due         *Due     `json:"due,omitempty"`
	IsCompleted bool     `json:"is_completed"`
	Order       int      `json:"order,omitempty"`
	CreatorID   string   `json:"creator_id,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
	CreatedAt   string   `json:"created_at"`
	URL         string   `json:"url,omitempty"`
}

// DueDate returns the task's due date (YYYY-MM-DD) or "" when no due is set.
func (t *Task) DueDate() string {
	if t.Due == nil {
		return ""
	}
	return t.Due.Date
}

// TaskListResponse is the response from GET /tasks and GET /tasks/filter
type TaskListResponse struct {
	Results    []Task `json:"results"`
	NextCursor string `json:"next_cursor"`
}

// CreateTaskRequest is the request body for POST /tasks
type CreateTaskRequest struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	DueDatetime string   `json:"due_datetime,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest is the request body for POST /tasks/{id}
// Nil pointer fields are omitted so the remote value is left untouched.
type UpdateTaskRequest struct {
	Content     *string   `json:"content,omitempty"`
	Description *string   `json:"description,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
	DueString   *string   `json:"due_string,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	DueDatetime *string   `json:"due_datetime,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
}

// IsEmpty returns true when no field is set, i.e. the update is a no-op.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Content == nil && r.Description == nil && r.Labels == nil &&
		r.Priority == nil && r.DueString == nil && r.DueDate == nil &&
		r.DueDatetime == nil && r.AssigneeID == nil
}

// ListTasksOptions are the query parameters for GET /tasks
type ListTasksOptions struct {
	ProjectID string
	SectionID string
	ParentID  string
	Label     string
	Cursor    string
	Limit     int
}

// Project represents a Todoist project.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color,omitempty"`
	ParentID       string `json:"parent_id,omitempty"`
	Order          int    `json:"order,omitempty"`
	IsFavorite     bool   `json:"is_favorite"`
	IsInboxProject bool   `json:"is_inbox_project"`
	IsShared       bool   `json:"is_shared"`
	ViewStyle      string `json:"view_style,omitempty"`
	URL            string `json:"url,omitempty"`
}

// ProjectListResponse is the response from GET /projects
type ProjectListResponse struct {
	Results    []Project `json:"results"`
	NextCursor string    `json:"next_cursor"`
}

// Section represents a section inside a project.
type Section struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Order     int    `json:"order,omitempty"`
}

// SectionListResponse is the response from GET /sections
type SectionListResponse struct {
	Results    []Section `json:"results"`
	NextCursor string    `json:"next_cursor"`
}

// Label represents a personal label.
type Label struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Order      int    `json:"order,omitempty"`
	IsFavorite bool   `json:"is_favorite"`
}

// LabelListResponse is the response from GET /labels
type LabelListResponse struct {
	Results    []Label `json:"results"`
	NextCursor string  `json:"next_cursor"`
}

// Comment represents a comment on a task or project.
type Comment struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Content   string `json:"content"`
	PostedAt  string `json:"posted_at"`
}

// CommentListResponse is the response from GET /comments
type CommentListResponse struct {
	Results    []Comment `json:"results"`
	NextCursor string    `json:"next_cursor"`
}

// CreateCommentRequest is the request body for POST /comments
type CreateCommentRequest struct {
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
}
