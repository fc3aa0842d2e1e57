package todoist

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasksQueryParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(TaskListResponse{
			Results:    []Task{{ID: "1", Content: "Buy milk"}},
			NextCursor: "next-page",
		})
	}))

	tasks, cursor, err := client.ListTasks(context.Background(), ListTasksOptions{
		ProjectID: "p1",
		Label:     "chore",
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, "/tasks", gotPath)
	assert.Equal(t, []string{"p1"}, gotQuery["project_id"])
	assert.Equal(t, []string{"chore"}, gotQuery["label"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "section_id")

	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Content)
	assert.Equal(t, "next-page", cursor)
}

func TestFilterTasksSendsQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/filter", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		json.NewEncoder(w).Encode(TaskListResponse{})
	}))

	query := NewFilter().Due("today").Priorities(1, 2).Build()
	_, _, err := client.FilterTasks(context.Background(), query, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "today&(p1|p2)", gotQuery)
}

func TestCreateTask(t *testing.T) {
	var gotMethod string
	var gotBody CreateTaskRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Task{ID: "42", Content: gotBody.Content, Priority: gotBody.Priority})
	}))

	task, err := client.CreateTask(context.Background(), CreateTaskRequest{
		Content:     "Buy milk",
		Description: "2 liters",
		DueDate:     "2026-09-01",
		Priority:    4,
		Labels:      []string{"chore", "shopping"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Buy milk", gotBody.Content)
	assert.Equal(t, "2 liters", gotBody.Description)
	assert.Equal(t, "2026-09-01", gotBody.DueDate)
	assert.Equal(t, []string{"chore", "shopping"}, gotBody.Labels)
	assert.Equal(t, "42", task.ID)
}

func TestCreateTaskValidation(t *testing.T) {
	client, err := NewClient("test-token")
	require.NoError(t, err)

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := client.CreateTask(context.Background(), CreateTaskRequest{})
		assert.ErrorContains(t, err, "content required")
	})

	t.Run("priority out of range rejected", func(t *testing.T) {
		_, err := client.CreateTask(context.Background(), CreateTaskRequest{Content: "x", Priority: 9})
		assert.ErrorContains(t, err, "priority")
	})
}

func TestUpdateTaskOmitsUnsetFields(t *testing.T) {
	var raw map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(Task{ID: "42"})
	}))

	content := "New title"
	_, err := client.UpdateTask(context.Background(), "42", UpdateTaskRequest{
		Content: &content,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"content": "New title"}, raw)
}

func TestUpdateTaskRejectsEmptyUpdate(t *testing.T) {
	client, err := NewClient("test-token")
	require.NoError(t, err)

	_, err = client.UpdateTask(context.Background(), "42", UpdateTaskRequest{})
	assert.ErrorContains(t, err, "nothing to update")
}

func TestTaskLifecycleEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name:       "close",
			call:       func(c *Client) error { return c.CloseTask(context.Background(), "42") },
			wantMethod: http.MethodPost,
			wantPath:   "/tasks/42/close",
		},
		{
			name:       "reopen",
			call:       func(c *Client) error { return c.ReopenTask(context.Background(), "42") },
			wantMethod: http.MethodPost,
			wantPath:   "/tasks/42/reopen",
		},
		{
			name:       "delete",
			call:       func(c *Client) error { return c.DeleteTask(context.Background(), "42") },
			wantMethod: http.MethodDelete,
			wantPath:   "/tasks/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			}))

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestGetProjectByName(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ProjectListResponse{
			Results: []Project{
				{ID: "1", Name: "Inbox", IsInboxProject: true},
				{ID: "2", Name: "Work"},
			},
		})
	}))

	t.Run("case-insensitive match", func(t *testing.T) {
		project, err := client.GetProjectByName(context.Background(), "work")
		require.NoError(t, err)
		assert.Equal(t, "2", project.ID)
	})

	t.Run("missing project is a not found error", func(t *testing.T) {
		_, err := client.GetProjectByName(context.Background(), "Garden")
		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}
