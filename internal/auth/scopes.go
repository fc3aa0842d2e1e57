package auth

import "strings"

// DefaultScopes defines the OAuth2 scopes requested at login.
// Todoist uses comma-separated scopes (not space-separated like standard OAuth2).
// Scope reference: https://developer.todoist.com/guides/#oauth
var DefaultScopes = []string{
	"data:read_write",
	"data:delete",
}

// ScopeString returns scopes as a comma-separated string.
// Todoist requires the comma separator, not the space separator used by
// standard OAuth2.
func ScopeString() string {
	return strings.Join(DefaultScopes, ",")
}
