package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Todoist unified API v1 endpoint.
const DefaultBaseURL = "https://api.todoist.com/api/v1"

// requestTimeout bounds every API call. Expiry surfaces as a ServiceError.
const requestTimeout = 30 * time.Second

// Client is the authenticated HTTP client for the Todoist API.
// The token is injected at construction time and immutable afterwards.
// The client is stateless per call apart from the rate limiter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used for testing against mock servers.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client with the given API token.
// Todoist allows roughly 1000 requests per 15 minutes per user; the
// client-side limiter stays comfortably below that while permitting
// short bursts.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("API token required")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do issues an authenticated request to the API and returns the raw response.
// The caller owns the response body. Non-2xx statuses are returned as-is;
// use classifyResponse (or the typed helpers in this package) to map them.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures are transient from the caller's
		// point of view.
		return nil, &ServiceError{Message: err.Error()}
	}

	return resp, nil
}

// doJSON issues a request and decodes a 2xx JSON response into out.
// Pass nil out for endpoints that return no useful body.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// classifyResponse maps a non-2xx response to the error taxonomy.
// 401/403 -> AuthenticationError, 404 -> NotFoundError,
// other 4xx -> ClientError, 5xx -> ServiceError.
func classifyResponse(resp *http.Response) error {
	msg := readErrorMessage(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: msg}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		ce := &ClientError{StatusCode: resp.StatusCode, Message: msg}
		if resp.StatusCode == http.StatusTooManyRequests {
			if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
				ce.RetryAfter = secs
			}
		}
		return ce
	default:
		return &ServiceError{StatusCode: resp.StatusCode, Message: msg}
	}
}

// readErrorMessage extracts a human-readable message from an error response.
// Todoist returns either {"error": "...", "error_code": N} or plain text.
func readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return ""
	}

	var apiErr struct {
		Error     string `json:"error"`
		ErrorCode int    `json:"error_code"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return apiErr.Error
	}

	return string(bytes.TrimSpace(body))
}
