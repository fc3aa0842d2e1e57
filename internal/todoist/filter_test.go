package todoist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterIsEmpty(t *testing.T) {
	f := NewFilter()
	assert.True(t, f.IsEmpty())

	f.Due("today")
	assert.False(t, f.IsEmpty())
}

func TestFilterBuild(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Filter
		expected string
	}{
		{
			name:     "empty filter",
			build:    func() *Filter { return NewFilter() },
			expected: "",
		},
		{
			name: "search term",
			build: func() *Filter {
				return NewFilter().Search("groceries")
			},
			expected: "search: groceries",
		},
		{
			name: "search term with operator characters escaped",
			build: func() *Filter {
				return NewFilter().Search("milk & eggs (2l)")
			},
			expected: `search: milk\ \&\ eggs\ \(2l\)`,
		},
		{
			name: "due date passthrough",
			build: func() *Filter {
				return NewFilter().Due("due before: today")
			},
			expected: "due before: today",
		},
		{
			name: "single priority",
			build: func() *Filter {
				return NewFilter().Priorities(1)
			},
			expected: "(p1)",
		},
		{
			name: "priority set",
			build: func() *Filter {
				return NewFilter().Priorities(1, 2, 3, 4)
			},
			expected: "(p1|p2|p3|p4)",
		},
		{
			name: "out of range priorities ignored",
			build: func() *Filter {
				return NewFilter().Priorities(0, 2, 7)
			},
			expected: "(p2)",
		},
		{
			name: "all priorities out of range adds nothing",
			build: func() *Filter {
				return NewFilter().Priorities(0, 5)
			},
			expected: "",
		},
		{
			name: "label fragment",
			build: func() *Filter {
				return NewFilter().Label("chore")
			},
			expected: "@chore",
		},
		{
			name: "project fragment",
			build: func() *Filter {
				return NewFilter().Project("Work")
			},
			expected: "#Work",
		},
		{
			name: "raw fragment untouched",
			build: func() *Filter {
				return NewFilter().Raw("(#Work | #School) & @chore")
			},
			expected: "(#Work | #School) & @chore",
		},
		{
			name: "fragments joined with ampersand",
			build: func() *Filter {
				return NewFilter().
					Search("report").
					Due("today").
					Priorities(1, 2).
					Raw("@work")
			},
			expected: "search: report&today&(p1|p2)&@work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build().Build())
		})
	}
}

func TestEscapeOperators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text untouched", input: "buy-milk", expected: "buy-milk"},
		{name: "pipe escaped", input: "a|b", expected: `a\|b`},
		{name: "ampersand escaped", input: "a&b", expected: `a\&b`},
		{name: "bang escaped", input: "not!this", expected: `not\!this`},
		{name: "parens escaped", input: "(x)", expected: `\(x\)`},
		{name: "spaces escaped", input: "two words", expected: `two\ words`},
		{name: "backslash escaped", input: `a\b`, expected: `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeOperators(tt.input))
		})
	}
}
