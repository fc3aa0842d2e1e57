package todoist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListComments fetches one page of comments for a task
func (c *Client) ListComments(ctx context.Context, taskID, cursor string, limit int) ([]Comment, string, error) {
	q := url.Values{}
	q.Set("task_id", taskID)
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var listResp CommentListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/comments?"+q.Encode(), nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}

// AddComment posts a comment on a task
func (c *Client) AddComment(ctx context.Context, taskID, content string) (*Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("comment content required")
	}

	req := CreateCommentRequest{
		TaskID:  taskID,
		Content: content,
	}

	var comment Comment
	if err := c.doJSON(ctx, http.MethodPost, "/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
