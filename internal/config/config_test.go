package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigGet(t *testing.T) {
	cfg := &Config{
		ClientID:       "abc123",
		DefaultProject: "Inbox",
	}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "client_id", key: "client_id", expected: "abc123"},
		{name: "default_project", key: "default_project", expected: "Inbox"},
		{name: "unset key returns empty", key: "client_secret", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}

	t.Run("unknown key is an error", func(t *testing.T) {
		_, err := cfg.Get("region")
		assert.Error(t, err)
	})
}

func TestConfigAPIBaseURL(t *testing.T) {
	t.Run("defaults to the public endpoint", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, APIBase, cfg.APIBaseURL())
	})

	t.Run("base_url overrides", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:8123"}
		assert.Equal(t, "http://localhost:8123", cfg.APIBaseURL())
	})
}
