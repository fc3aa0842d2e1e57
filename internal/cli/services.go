package cli

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tdo-cli/tdo/internal/auth"
	"github.com/tdo-cli/tdo/internal/config"
	"github.com/tdo-cli/tdo/internal/output"
	"github.com/tdo-cli/tdo/internal/secrets"
	"github.com/tdo-cli/tdo/internal/todoist"
)

// ServiceProvider lazily creates and caches the Todoist client.
type ServiceProvider struct {
	cfg *config.Config

	once sync.Once
	svc  todoist.Service
	err  error
}

// NewServiceProvider creates a ServiceProvider with the given config.
func NewServiceProvider(cfg *config.Config) *ServiceProvider {
	return &ServiceProvider{cfg: cfg}
}

// Todoist returns the Service, creating it on first call.
// Token resolution and client construction happen here so commands that
// never touch the API (config, schema, auth token) work without credentials.
func (sp *ServiceProvider) Todoist() (todoist.Service, error) {
	sp.once.Do(func() {
		store, err := secrets.NewStore()
		if err != nil {
			sp.err = &output.CLIError{
				ExitCode: output.ExitGeneral,
				Message:  fmt.Sprintf("Failed to initialize secrets store: %v", err),
			}
			return
		}

		token, err := auth.LoadToken(store)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				sp.err = &output.CLIError{
					ExitCode: output.ExitAuth,
					Message:  err.Error(),
					Hint:     "Set " + auth.TokenEnvVar + " or run: tdo auth login",
				}
				return
			}
			sp.err = &output.CLIError{
				ExitCode: output.ExitGeneral,
				Message:  fmt.Sprintf("Failed to load token: %v", err),
			}
			return
		}

		client, err := todoist.NewClient(token, todoist.WithBaseURL(sp.cfg.APIBaseURL()))
		if err != nil {
			sp.err = &output.CLIError{
				ExitCode: output.ExitGeneral,
				Message:  fmt.Sprintf("Failed to create client: %v", err),
			}
			return
		}

		sp.svc = client
	})
	return sp.svc, sp.err
}

// apiError converts a client error into a CLIError with the right exit code.
func apiError(action string, err error) error {
	msg := fmt.Sprintf("Failed to %s: %v", action, err)

	var authErr *todoist.AuthenticationError
	var notFoundErr *todoist.NotFoundError
	var clientErr *todoist.ClientError
	var svcErr *todoist.ServiceError

	switch {
	case errors.As(err, &authErr):
		return &output.CLIError{
			ExitCode: output.ExitAuth,
			Message:  msg,
			Hint:     "Run: tdo auth login",
		}
	case errors.As(err, &notFoundErr):
		return &output.CLIError{
			ExitCode: output.ExitNotFound,
			Message:  msg,
		}
	case errors.As(err, &clientErr):
		if clientErr.IsRateLimited() {
			return &output.CLIError{
				ExitCode: output.ExitRateLimit,
				Message:  msg,
			}
		}
		return &output.CLIError{
			ExitCode: output.ExitUsage,
			Message:  msg,
		}
	case errors.As(err, &svcErr):
		if svcErr.StatusCode == 0 {
			return &output.CLIError{
				ExitCode: output.ExitNetworkError,
				Message:  msg,
			}
		}
		return &output.CLIError{
			ExitCode: output.ExitAPIError,
			Message:  msg,
		}
	}

	return &output.CLIError{
		ExitCode: output.ExitAPIError,
		Message:  msg,
	}
}
