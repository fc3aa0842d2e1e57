package todoist

import (
	"fmt"
	"strings"
	"unicode"
)

// Filter builds Todoist filter query syntax.
// Fragments are AND-ed together with "&" when built.
type Filter struct {
	parts []string
}

// NewFilter creates an empty filter builder
func NewFilter() *Filter {
	return &Filter{
		parts: []string{},
	}
}

// Search adds a free-text search term. Filter operator characters
// (| & ! ( ) and whitespace) are escaped so the term is matched literally.
func (f *Filter) Search(query string) *Filter {
	if query == "" {
		return f
	}
	f.parts = append(f.parts, "search: "+escapeOperators(query))
	return f
}

// Due adds a due-date fragment. Accepts a formatted date (2025-12-31),
// natural language ("today", "tomorrow", "Friday"), or a "due before:" /
// "due after:" prefixed expression. Passed through verbatim.
func (f *Filter) Due(expr string) *Filter {
	if expr == "" {
		return f
	}
	f.parts = append(f.parts, expr)
	return f
}

// Priorities restricts results to the given priority levels, rendered as
// an OR group in filter syntax: (p1|p2). Values outside 1..4 are ignored.
// In filter syntax p1 is the most urgent; this is the inverse of the API
// priority field where 4 is urgent.
func (f *Filter) Priorities(levels ...int) *Filter {
	var ps []string
	for _, p := range levels {
		if p >= 1 && p <= 4 {
			ps = append(ps, fmt.Sprintf("p%d", p))
		}
	}
	if len(ps) == 0 {
		return f
	}
	f.parts = append(f.parts, "("+strings.Join(ps, "|")+")")
	return f
}

// Label adds a @label fragment
func (f *Filter) Label(name string) *Filter {
	f.parts = append(f.parts, "@"+name)
	return f
}

// Project adds a #project fragment
func (f *Filter) Project(name string) *Filter {
	f.parts = append(f.parts, "#"+name)
	return f
}

// Raw appends a raw filter fragment (labels, projects, boolean operators,
// parentheses) without any escaping.
func (f *Filter) Raw(fragment string) *Filter {
	if fragment == "" {
		return f
	}
	f.parts = append(f.parts, fragment)
	return f
}

// Build returns the complete filter query string
func (f *Filter) Build() string {
	return strings.Join(f.parts, "&")
}

// IsEmpty returns true if no fragments have been added
func (f *Filter) IsEmpty() bool {
	return len(f.parts) == 0
}

// escapeOperators backslash-escapes filter operator characters and spaces
// so a search term containing them is treated as literal text.
func escapeOperators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '|' || r == '&' || r == '!' || r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
