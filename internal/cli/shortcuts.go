package cli

// LsCmd provides desire-path shortcuts for listing resources
// These are aliases to full command paths for faster interactive use
type LsCmd struct {
	Tasks    TasksListCmd    `cmd:"" help:"List tasks (shortcut for tasks list)"`
	Projects ProjectsListCmd `cmd:"" help:"List projects (shortcut for projects list)"`
	Sections SectionsListCmd `cmd:"" help:"List sections (shortcut for sections list)"`
	Labels   LabelsListCmd   `cmd:"" help:"List labels (shortcut for labels list)"`
}
