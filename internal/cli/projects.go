package cli

import (
	"context"
	"strconv"

	"github.com/tdo-cli/tdo/internal/output"
	"github.com/tdo-cli/tdo/internal/todoist"
)

// ProjectListRow is a display-friendly projection of a project
type ProjectListRow struct {
	Name      string
	Favorite  string
	Shared    string
	Inbox     string
	ProjectID string
}

// ProjectsListCmd lists projects
type ProjectsListCmd struct {
	Limit int  `help:"Maximum projects to show" short:"l" default:"50"`
	All   bool `help:"Fetch all projects (no pagination limit)" short:"a"`
}

// Run executes the list projects command
func (cmd *ProjectsListCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	iterator := todoist.NewCursorIterator(func(cursor string, limit int) ([]todoist.Project, string, error) {
		return svc.ListProjects(ctx, cursor, limit)
	}, 50)

	var projects []todoist.Project
	if cmd.All {
		projects, err = iterator.FetchAll()
	} else {
		projects, err = iterator.FetchN(cmd.Limit)
	}
	if err != nil {
		return apiError("fetch projects", err)
	}

	rows := make([]ProjectListRow, len(projects))
	for i, project := range projects {
		rows[i] = ProjectListRow{
			Name:      project.Name,
			Favorite:  formatBool(project.IsFavorite),
			Shared:    formatBool(project.IsShared),
			Inbox:     formatBool(project.IsInboxProject),
			ProjectID: project.ID,
		}
	}

	columns := []output.Column{
		{Name: "Name", Key: "Name"},
		{Name: "Favorite", Key: "Favorite"},
		{Name: "Shared", Key: "Shared"},
		{Name: "Inbox", Key: "Inbox"},
		{Name: "ID", Key: "ProjectID"},
	}

	return fp.Formatter.PrintList(rows, columns)
}

// ProjectsGetCmd gets details for a specific project
type ProjectsGetCmd struct {
	Project string `arg:"" help:"Project name or ID"`
}

// Run executes the get project command
func (cmd *ProjectsGetCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Try by name first, fall back to ID lookup
	project, err := svc.GetProjectByName(ctx, cmd.Project)
	if err != nil {
		project, err = svc.GetProject(ctx, cmd.Project)
		if err != nil {
			return apiError("fetch project", err)
		}
	}

	return fp.Formatter.Print(project)
}

// SectionsListCmd lists sections, optionally scoped to a project
type SectionsListCmd struct {
	Project string `help:"Project name or ID" short:"p"`
	Limit   int    `help:"Maximum sections to show" short:"l" default:"50"`
	All     bool   `help:"Fetch all sections" short:"a"`
}

// Run executes the list sections command
func (cmd *SectionsListCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	projectID := ""
	if cmd.Project != "" {
		projectID = resolveProject(ctx, svc, cmd.Project)
	}

	iterator := todoist.NewCursorIterator(func(cursor string, limit int) ([]todoist.Section, string, error) {
		return svc.ListSections(ctx, projectID, cursor, limit)
	}, 50)

	var sections []todoist.Section
	if cmd.All {
		sections, err = iterator.FetchAll()
	} else {
		sections, err = iterator.FetchN(cmd.Limit)
	}
	if err != nil {
		return apiError("fetch sections", err)
	}

	columns := []output.Column{
		{Name: "Name", Key: "Name"},
		{Name: "Project", Key: "ProjectID"},
		{Name: "Order", Key: "Order"},
		{Name: "ID", Key: "ID"},
	}

	return fp.Formatter.PrintList(sections, columns)
}

// LabelListRow is a display-friendly projection of a label
type LabelListRow struct {
	Name     string
	Color    string
	Favorite string
	Order    string
	LabelID  string
}

// LabelsListCmd lists personal labels
type LabelsListCmd struct {
	Limit int  `help:"Maximum labels to show" short:"l" default:"50"`
	All   bool `help:"Fetch all labels" short:"a"`
}

// Run executes the list labels command
func (cmd *LabelsListCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	iterator := todoist.NewCursorIterator(func(cursor string, limit int) ([]todoist.Label, string, error) {
		return svc.ListLabels(ctx, cursor, limit)
	}, 50)

	var labels []todoist.Label
	if cmd.All {
		labels, err = iterator.FetchAll()
	} else {
		labels, err = iterator.FetchN(cmd.Limit)
	}
	if err != nil {
		return apiError("fetch labels", err)
	}

	rows := make([]LabelListRow, len(labels))
	for i, label := range labels {
		rows[i] = LabelListRow{
			Name:     label.Name,
			Color:    label.Color,
			Favorite: formatBool(label.IsFavorite),
			Order:    strconv.Itoa(label.Order),
			LabelID:  label.ID,
		}
	}

	columns := []output.Column{
		{Name: "Name", Key: "Name"},
		{Name: "Color", Key: "Color"},
		{Name: "Favorite", Key: "Favorite"},
		{Name: "Order", Key: "Order"},
		{Name: "ID", Key: "LabelID"},
	}

	return fp.Formatter.PrintList(rows, columns)
}
