package cli

import (
	"fmt"

	"github.com/tdo-cli/tdo/internal/todoist"
)

// formatPriority converts an API priority (1 normal .. 4 urgent) to the
// p-level users see in the Todoist apps, where p1 is urgent.
func formatPriority(priority int) string {
	switch priority {
	case 4:
		return "p1"
	case 3:
		return "p2"
	case 2:
		return "p3"
	case 1:
		return "p4"
	default:
		return fmt.Sprintf("%d", priority)
	}
}

// formatDue renders a due struct for list output
func formatDue(due *todoist.Due) string {
	if due == nil {
		return ""
	}
	if due.IsRecurring {
		return due.Date + " (recurring)"
	}
	return due.Date
}

// formatBool converts bool to string
func formatBool(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

// maskSecret masks sensitive values, showing only last 4 characters
func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
