package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tdo-cli/tdo/internal/auth"
	"github.com/tdo-cli/tdo/internal/config"
	"github.com/tdo-cli/tdo/internal/output"
	"github.com/tdo-cli/tdo/internal/secrets"
	"github.com/tdo-cli/tdo/internal/todoist"
)

// newSecretsStore creates the secrets store wrapped into a CLIError on failure
func newSecretsStore() (secrets.Store, error) {
	store, err := secrets.NewStore()
	if err != nil {
		return nil, &output.CLIError{
			Message:  fmt.Sprintf("Failed to initialize secrets store: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}
	return store, nil
}

// storageBackend names the backend credentials land in
func storageBackend() string {
	if secrets.IsWSL() || secrets.IsHeadless() {
		return "encrypted file"
	}
	return "keyring"
}

// AuthLoginCmd implements the auth login command
type AuthLoginCmd struct {
	Manual bool `help:"Manual paste mode (no browser)" short:"m"`
}

// Run executes the login command
func (cmd *AuthLoginCmd) Run(cfg *config.Config, fp *FormatterProvider, globals *Globals) error {
	// OAuth needs an app registration; personal tokens skip this entirely
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return &output.CLIError{
			Message: "Client ID and Client Secret required for OAuth login.\n\n" +
				"Run: tdo config set client_id YOUR_CLIENT_ID\n" +
				"Run: tdo config set client_secret YOUR_CLIENT_SECRET\n\n" +
				"Register an app at: https://developer.todoist.com/appconsole.html\n\n" +
				"Or skip OAuth and store a personal token: tdo auth token",
			ExitCode: output.ExitConfigError,
		}
	}

	if globals.NoInput && !cmd.Manual {
		return &output.CLIError{
			Message:  "Interactive login requires a browser; use --manual or tdo auth token with --no-input",
			ExitCode: output.ExitUsage,
		}
	}

	store, err := newSecretsStore()
	if err != nil {
		return err
	}

	// Execute login flow
	ctx := context.Background()
	var token string

	if cmd.Manual {
		oauthToken, err := auth.ManualLogin(ctx, cfg)
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Login failed: %v", err),
				ExitCode: output.ExitAuth,
			}
		}
		token = oauthToken.AccessToken
	} else {
		oauthToken, err := auth.InteractiveLogin(ctx, cfg)
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Login failed: %v", err),
				ExitCode: output.ExitAuth,
			}
		}
		token = oauthToken.AccessToken
	}

	if err := auth.SaveToken(store, token); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to save token: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	// Output success
	fmt.Fprintf(os.Stderr, "Authenticated successfully\n")
	fmt.Fprintf(os.Stderr, "Credentials stored in %s\n", storageBackend())

	return nil
}

// AuthTokenCmd stores a personal API token directly
type AuthTokenCmd struct {
	Token string `arg:"" optional:"" help:"API token (prompted securely when omitted)"`
}

// Run executes the token command
func (cmd *AuthTokenCmd) Run(fp *FormatterProvider, globals *Globals) error {
	token := cmd.Token

	if token == "" {
		if globals.NoInput {
			return &output.CLIError{
				Message:  "Token argument required with --no-input",
				ExitCode: output.ExitUsage,
			}
		}

		// Read without echo so the token stays out of the terminal scrollback
		fmt.Fprint(os.Stderr, "API token (from https://app.todoist.com/app/settings/integrations/developer): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to read token: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}
		token = strings.TrimSpace(string(raw))
	}

	if token == "" {
		return &output.CLIError{
			Message:  "Empty token",
			ExitCode: output.ExitUsage,
		}
	}

	store, err := newSecretsStore()
	if err != nil {
		return err
	}

	if err := auth.SaveToken(store, token); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to save token: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	fmt.Fprintf(os.Stderr, "Token stored in %s\n", storageBackend())
	return nil
}

// AuthStatusCmd shows where the active token comes from
type AuthStatusCmd struct {
	Check bool `help:"Validate the token against the API" short:"c"`
}

// Run executes the status command
func (cmd *AuthStatusCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	store, err := newSecretsStore()
	if err != nil {
		return err
	}

	source := ""
	if strings.TrimSpace(os.Getenv(auth.TokenEnvVar)) != "" {
		source = "environment (" + auth.TokenEnvVar + ")"
	} else if auth.HasStoredToken(store) {
		source = "secrets store (" + storageBackend() + ")"
	}

	if source == "" {
		return &output.CLIError{
			Message:  "Not authenticated",
			ExitCode: output.ExitAuth,
			Hint:     "Set " + auth.TokenEnvVar + " or run: tdo auth login",
		}
	}

	fmt.Fprintf(os.Stderr, "Token source: %s\n", source)

	if cmd.Check {
		token, err := auth.LoadToken(store)
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to load token: %v", err),
				ExitCode: output.ExitAuth,
			}
		}

		client, err := todoist.NewClient(token, todoist.WithBaseURL(cfg.APIBaseURL()))
		if err != nil {
			return &output.CLIError{
				Message:  fmt.Sprintf("Failed to create client: %v", err),
				ExitCode: output.ExitGeneral,
			}
		}

		if _, _, err := client.ListProjects(context.Background(), "", 1); err != nil {
			return apiError("validate token", err)
		}
		fmt.Fprintf(os.Stderr, "Token valid\n")
	}

	return nil
}

// AuthLogoutCmd implements the auth logout command
type AuthLogoutCmd struct{}

// Run executes the logout command
func (cmd *AuthLogoutCmd) Run(fp *FormatterProvider) error {
	store, err := newSecretsStore()
	if err != nil {
		return err
	}

	if err := auth.ClearToken(store); err != nil {
		return &output.CLIError{
			Message:  fmt.Sprintf("Failed to clear token: %v", err),
			ExitCode: output.ExitGeneral,
		}
	}

	fmt.Fprintf(os.Stderr, "Credentials removed\n")

	if strings.TrimSpace(os.Getenv(auth.TokenEnvVar)) != "" {
		fmt.Fprintf(os.Stderr, "Note: %s is still set and takes precedence\n", auth.TokenEnvVar)
	}
	return nil
}
