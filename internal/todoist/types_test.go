package todoist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskDueDate(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected string
	}{
		{
			name:     "returns date when due is set",
			task:     Task{Due: &Due{Date: "2026-09-01", String: "Sep 1"}},
			expected: "2026-09-01",
		},
		{
			name:     "returns empty when no due",
			task:     Task{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.DueDate())
		})
	}
}

func TestUpdateTaskRequestIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateTaskRequest{}).IsEmpty())

	priority := 2
	assert.False(t, (&UpdateTaskRequest{Priority: &priority}).IsEmpty())

	labels := []string{}
	assert.False(t, (&UpdateTaskRequest{Labels: &labels}).IsEmpty())
}

func TestTaskJSONUnmarshal(t *testing.T) {
	t.Run("full task with recurring due", func(t *testing.T) {
		raw := `{
			"id": "2995104339",
			"project_id": "2203306141",
			"content": "Buy milk",
			"description": "2 liters",
			"labels": ["chore", "shopping"],
			"priority": 4,
			"due": {
				"date": "2026-09-01",
				"string": "every monday",
				"is_recurring": true
			},
			"is_completed": false,
			"created_at": "2026-08-01T10:00:00.000000Z",
			"url": "https://app.todoist.com/app/task/2995104339"
		}`

		var task Task
		require.NoError(t, json.Unmarshal([]byte(raw), &task))

		assert.Equal(t, "2995104339", task.ID)
		assert.Equal(t, "Buy milk", task.Content)
		assert.Equal(t, []string{"chore", "shopping"}, task.Labels)
		assert.Equal(t, 4, task.Priority)
		require.NotNil(t, task.Due)
		assert.True(t, task.Due.IsRecurring)
		assert.Equal(t, "2026-09-01", task.DueDate())
		assert.False(t, task.IsCompleted)
	})

	t.Run("list envelope with cursor", func(t *testing.T) {
		raw := `{"results": [{"id": "1", "content": "a"}], "next_cursor": "abc"}`

		var listResp TaskListResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &listResp))
		require.Len(t, listResp.Results, 1)
		assert.Equal(t, "abc", listResp.NextCursor)
	})

	t.Run("null next_cursor on last page", func(t *testing.T) {
		raw := `{"results": [], "next_cursor": null}`

		var listResp TaskListResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &listResp))
		assert.Empty(t, listResp.NextCursor)
	})
}
