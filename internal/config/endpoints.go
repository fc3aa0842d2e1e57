package config

// Todoist service endpoints. Unlike multi-region services there is a single
// global deployment; base_url in the config file exists only so tests and
// proxies can point elsewhere.
const (
	// APIBase is the unified API v1 root
	APIBase = "https://api.todoist.com/api/v1"

	// AuthURL is the OAuth2 authorization endpoint
	AuthURL = "https://todoist.com/oauth/authorize"

	// TokenURL is the OAuth2 token exchange endpoint
	TokenURL = "https://todoist.com/oauth/access_token"
)
