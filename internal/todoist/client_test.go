package todoist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-token", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	var out struct{}
	err := client.doJSON(context.Background(), http.MethodGet, "/tasks/1", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestClientReturnsBodyUnmodified(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "1", "content": "Buy milk"}`))
	}))

	task, err := client.GetTask(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", task.ID)
	assert.Equal(t, "Buy milk", task.Content)
}

func TestClientErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 is an authentication error",
			status: http.StatusUnauthorized,
			body:   `{"error": "Invalid token", "error_code": 401}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, 401, authErr.StatusCode)
				assert.Contains(t, authErr.Error(), "Invalid token")
			},
		},
		{
			name:   "403 is an authentication error",
			status: http.StatusForbidden,
			body:   `{"error": "Forbidden"}`,
			check: func(t *testing.T, err error) {
				var authErr *AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, 403, authErr.StatusCode)
			},
		},
		{
			name:   "404 is a not found error",
			status: http.StatusNotFound,
			body:   `{"error": "Task not found"}`,
			check: func(t *testing.T, err error) {
				var nfErr *NotFoundError
				require.ErrorAs(t, err, &nfErr)
				assert.Contains(t, nfErr.Error(), "Task not found")
			},
		},
		{
			name:   "400 is a client error",
			status: http.StatusBadRequest,
			body:   `{"error": "Content is required"}`,
			check: func(t *testing.T, err error) {
				var clErr *ClientError
				require.ErrorAs(t, err, &clErr)
				assert.Equal(t, 400, clErr.StatusCode)
				assert.False(t, clErr.IsRateLimited())
			},
		},
		{
			name:   "500 is a transient service error",
			status: http.StatusInternalServerError,
			body:   `{"error": "Internal error"}`,
			check: func(t *testing.T, err error) {
				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, 500, svcErr.StatusCode)
			},
		},
		{
			name:   "503 is a transient service error",
			status: http.StatusServiceUnavailable,
			body:   "upstream unavailable",
			check: func(t *testing.T, err error) {
				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, 503, svcErr.StatusCode)
				assert.Contains(t, svcErr.Error(), "upstream unavailable")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.GetTask(context.Background(), "1")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientRateLimitCarriesRetryAfter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "Too many requests"}`))
	}))

	_, err := client.GetTask(context.Background(), "1")
	var clErr *ClientError
	require.ErrorAs(t, err, &clErr)
	assert.True(t, clErr.IsRateLimited())
	assert.Equal(t, 42, clErr.RetryAfter)
}

func TestClientTransportFailureIsServiceError(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient("test-token", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.GetTask(context.Background(), "1")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 0, svcErr.StatusCode)
}

func TestClientDoesNotRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetTask(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClientContextCancellation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetTask(ctx, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
