package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tdo-cli/tdo/internal/output"
	"github.com/tdo-cli/tdo/internal/todoist"
)

// CommentsListCmd lists comments on a task
type CommentsListCmd struct {
	TaskID string `arg:"" help:"Task ID"`
	Limit  int    `help:"Maximum comments to show" short:"l" default:"50"`
	All    bool   `help:"Fetch all comments" short:"a"`
}

// Run executes the list comments command
func (cmd *CommentsListCmd) Run(sp *ServiceProvider, fp *FormatterProvider) error {
	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	ctx := context.Background()

	iterator := todoist.NewCursorIterator(func(cursor string, limit int) ([]todoist.Comment, string, error) {
		return svc.ListComments(ctx, cmd.TaskID, cursor, limit)
	}, 50)

	var comments []todoist.Comment
	if cmd.All {
		comments, err = iterator.FetchAll()
	} else {
		comments, err = iterator.FetchN(cmd.Limit)
	}
	if err != nil {
		return apiError("fetch comments", err)
	}

	columns := []output.Column{
		{Name: "Posted", Key: "PostedAt"},
		{Name: "Content", Key: "Content"},
		{Name: "ID", Key: "ID"},
	}

	return fp.Formatter.PrintList(comments, columns)
}

// CommentsAddCmd adds a comment to a task
type CommentsAddCmd struct {
	TaskID  string `arg:"" help:"Task ID"`
	Content string `arg:"" help:"Comment text"`
}

// Run executes the add comment command
func (cmd *CommentsAddCmd) Run(sp *ServiceProvider, fp *FormatterProvider, globals *Globals) error {
	// Dry-run preview
	if globals.DryRun {
		fmt.Fprintf(os.Stderr, "[DRY RUN] Would comment on task %s: %s\n", cmd.TaskID, cmd.Content)
		return nil
	}

	svc, err := sp.Todoist()
	if err != nil {
		return err
	}

	comment, err := svc.AddComment(context.Background(), cmd.TaskID, cmd.Content)
	if err != nil {
		return apiError("add comment", err)
	}

	// Print confirmation to stderr
	fmt.Fprintf(os.Stderr, "Comment added: %s\n", comment.ID)

	return fp.Formatter.Print(comment)
}
