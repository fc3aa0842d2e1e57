package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdo-cli/tdo/internal/todoist"
)

func TestFormatPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		expected string
	}{
		{name: "urgent", priority: 4, expected: "p1"},
		{name: "high", priority: 3, expected: "p2"},
		{name: "medium", priority: 2, expected: "p3"},
		{name: "normal", priority: 1, expected: "p4"},
		{name: "unknown", priority: 7, expected: "7"},
		{name: "zero", priority: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPriority(tt.priority))
		})
	}
}

func TestFormatDue(t *testing.T) {
	assert.Equal(t, "", formatDue(nil))
	assert.Equal(t, "2026-09-01", formatDue(&todoist.Due{Date: "2026-09-01"}))
	assert.Equal(t, "2026-09-01 (recurring)", formatDue(&todoist.Due{Date: "2026-09-01", IsRecurring: true}))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "Yes", formatBool(true))
	assert.Equal(t, "No", formatBool(false))
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty string", value: "", expected: ""},
		{name: "1 char", value: "a", expected: "****"},
		{name: "4 chars", value: "abcd", expected: "****"},
		{name: "5 chars", value: "abcde", expected: "****bcde"},
		{name: "long string", value: "secret-key-12345", expected: "****2345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskSecret(tt.value))
		})
	}
}
