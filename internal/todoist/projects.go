package todoist

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListProjects fetches one page of projects
func (c *Client) ListProjects(ctx context.Context, cursor string, limit int) ([]Project, string, error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/projects"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listResp ProjectListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}

// GetProject fetches a single project by ID
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjectByName finds a project by name (case-insensitive).
// This iterates through all projects until a match is found.
func (c *Client) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	iterator := NewCursorIterator(func(cursor string, limit int) ([]Project, string, error) {
		return c.ListProjects(ctx, cursor, limit)
	}, 50)

	projects, err := iterator.FetchAll()
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		if strings.EqualFold(project.Name, name) {
			return &project, nil
		}
	}

	return nil, &NotFoundError{Message: "project " + name}
}

// ListSections fetches one page of sections, optionally scoped to a project
func (c *Client) ListSections(ctx context.Context, projectID, cursor string, limit int) ([]Section, string, error) {
	q := url.Values{}
	if projectID != "" {
		q.Set("project_id", projectID)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/sections"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listResp SectionListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}

// ListLabels fetches one page of personal labels
func (c *Client) ListLabels(ctx context.Context, cursor string, limit int) ([]Label, string, error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/labels"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listResp LabelListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &listResp); err != nil {
		return nil, "", err
	}

	return listResp.Results, listResp.NextCursor, nil
}
