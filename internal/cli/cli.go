package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/tdo-cli/tdo/internal/config"
	"github.com/tdo-cli/tdo/internal/output"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure
type CLI struct {
	Globals

	Auth     AuthCmd     `cmd:"" help:"Authentication commands"`
	Config   ConfigCmd   `cmd:"" help:"Configuration commands"`
	Tasks    TasksCmd    `cmd:"" help:"Manage tasks"`
	Projects ProjectsCmd `cmd:"" help:"Manage projects"`
	Sections SectionsCmd `cmd:"" help:"Manage sections"`
	Labels   LabelsCmd   `cmd:"" help:"Manage labels"`
	Comments CommentsCmd `cmd:"" help:"Manage task comments"`
	Ls       LsCmd       `cmd:"" help:"List resources (shortcuts)"`
	Schema   SchemaCmd   `cmd:"" help:"Output machine-readable command tree as JSON"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// BeforeApply hook runs before any command execution
// It loads config, creates the formatter, and binds dependencies
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	// Load config from XDG path (returns defaults if missing)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Config default_output applies when the flag is left on auto
	if c.Output == "auto" && cfg.DefaultOutput != "" {
		c.Output = cfg.DefaultOutput
	}

	formatter := &FormatterProvider{
		Formatter: output.New(c.ResolvedOutput()),
	}

	// Bind dependencies to kong context
	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(&c.Globals)
	ctx.Bind(NewServiceProvider(cfg))

	return nil
}

// AuthCmd holds authentication subcommands
type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Log in via OAuth"`
	Token  AuthTokenCmd  `cmd:"" help:"Store a personal API token"`
	Status AuthStatusCmd `cmd:"" help:"Show authentication status"`
	Logout AuthLogoutCmd `cmd:"" help:"Log out and remove stored credentials"`
}

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Get   ConfigGetCmd        `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd        `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd      `cmd:"" help:"Remove a configuration value"`
	List  ConfigListConfigCmd `cmd:"" name:"list" help:"List all configuration values"`
	Path  ConfigPathCmd       `cmd:"" help:"Show config file path"`
}

// TasksCmd holds task subcommands
type TasksCmd struct {
	List   TasksListCmd   `cmd:"" help:"List active tasks"`
	Get    TasksGetCmd    `cmd:"" help:"Get task details"`
	Add    TasksAddCmd    `cmd:"" help:"Create a new task"`
	Update TasksUpdateCmd `cmd:"" help:"Update a task"`
	Done   TasksDoneCmd   `cmd:"" help:"Complete a task"`
	Reopen TasksReopenCmd `cmd:"" help:"Reopen a completed task"`
	Delete TasksDeleteCmd `cmd:"" help:"Delete a task permanently"`
}

// ProjectsCmd holds project subcommands
type ProjectsCmd struct {
	List ProjectsListCmd `cmd:"" help:"List projects"`
	Get  ProjectsGetCmd  `cmd:"" help:"Get project details"`
}

// SectionsCmd holds section subcommands
type SectionsCmd struct {
	List SectionsListCmd `cmd:"" help:"List sections"`
}

// LabelsCmd holds label subcommands
type LabelsCmd struct {
	List LabelsListCmd `cmd:"" help:"List personal labels"`
}

// CommentsCmd holds comment subcommands
type CommentsCmd struct {
	List CommentsListCmd `cmd:"" help:"List comments on a task"`
	Add  CommentsAddCmd  `cmd:"" help:"Add a comment to a task"`
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("tdo version " + version)
	return nil
}
