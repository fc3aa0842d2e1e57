package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"

	"github.com/tdo-cli/tdo/internal/secrets"
)

// TokenEnvVar is the environment variable holding the API token.
// It takes precedence over any stored credential.
const TokenEnvVar = "TODOIST_API_TOKEN"

// tokenKey is the key under which the API token is stored in the secrets store.
const tokenKey = "api_token"

// ErrMissingToken is returned when no API token can be found in the
// environment or the secrets store. Fatal; the caller exits non-zero.
var ErrMissingToken = errors.New("no API token found: set " + TokenEnvVar + " or run: tdo auth login")

// LoadToken resolves the API token: TODOIST_API_TOKEN first, then the
// secrets store. The token is returned exactly as provided; an unset or
// empty environment value falls through to the store.
func LoadToken(store secrets.Store) (string, error) {
	if token := os.Getenv(TokenEnvVar); strings.TrimSpace(token) != "" {
		return token, nil
	}

	token, err := store.Get(tokenKey)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return "", ErrMissingToken
		}
		return "", fmt.Errorf("read token from store: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// SaveToken persists the API token in the secrets store. A file lock
// serializes writes from concurrent invocations sharing a file-backed store.
func SaveToken(store secrets.Store, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("refusing to store an empty token")
	}

	unlock, err := lockStore()
	if err != nil {
		return err
	}
	defer unlock()

	if err := store.Set(tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// ClearToken removes the stored API token. Missing tokens are not an error.
func ClearToken(store secrets.Store) error {
	unlock, err := lockStore()
	if err != nil {
		return err
	}
	defer unlock()

	if err := store.Delete(tokenKey); err != nil && !errors.Is(err, secrets.ErrNotFound) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// HasStoredToken reports whether a token is present in the secrets store,
// ignoring the environment.
func HasStoredToken(store secrets.Store) bool {
	token, err := store.Get(tokenKey)
	return err == nil && strings.TrimSpace(token) != ""
}

// lockStore acquires the store write lock and returns its release func.
func lockStore() (func(), error) {
	lockPath := filepath.Join(xdg.CacheHome, "tdo", "store.lock")
	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !locked {
		cancel()
		return nil, errors.New("acquire store lock: timeout")
	}

	return func() {
		lock.Unlock()
		cancel()
	}, nil
}
