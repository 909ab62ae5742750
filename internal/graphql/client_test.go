package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blognode/hashnode-mcp/internal/config"
)

// ---------------------------------------------------------------------------
// Compile-time interface satisfaction check
// ---------------------------------------------------------------------------

var _ Client = (*HTTPClient)(nil)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// newTestConfig returns a HashnodeConfig pointing at the given URL with
// reasonable defaults for testing.
func newTestConfig(t *testing.T, url, token string) config.HashnodeConfig {
	t.Helper()
	return config.HashnodeConfig{
		Endpoint: url,
		Token:    token,
		Timeout:  5,
	}
}

// requestBody is the expected shape of a GraphQL HTTP request body.
type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// ---------------------------------------------------------------------------
// NewHTTPClient
// ---------------------------------------------------------------------------

func Test_NewHTTPClient_Defaults(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.HashnodeConfig
		wantEndpoint string
		wantTimeout  time.Duration
	}{
		{
			name:         "empty endpoint uses public API",
			cfg:          config.HashnodeConfig{Timeout: 10},
			wantEndpoint: DefaultEndpoint,
			wantTimeout:  10 * time.Second,
		},
		{
			name:         "trailing slash is trimmed",
			cfg:          config.HashnodeConfig{Endpoint: "http://localhost:9999/", Timeout: 10},
			wantEndpoint: "http://localhost:9999",
			wantTimeout:  10 * time.Second,
		},
		{
			name:         "zero timeout uses default",
			cfg:          config.HashnodeConfig{Endpoint: "http://localhost:9999"},
			wantEndpoint: "http://localhost:9999",
			wantTimeout:  30 * time.Second,
		},
		{
			name:         "negative timeout uses default",
			cfg:          config.HashnodeConfig{Endpoint: "http://localhost:9999", Timeout: -5},
			wantEndpoint: "http://localhost:9999",
			wantTimeout:  30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHTTPClient(tt.cfg)
			if c.endpoint != tt.wantEndpoint {
				t.Errorf("endpoint = %q, want %q", c.endpoint, tt.wantEndpoint)
			}
			if c.httpClient.Timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, tt.wantTimeout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Execute: request shaping
// ---------------------------------------------------------------------------

func Test_Execute_SendsJSONRequestWithHeaders(t *testing.T) {
	var gotBody requestBody
	var gotContentType, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"data": {"ok": true}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, "pat-token"))
	vars := map[string]any{"host": "blog.example.com"}

	data, err := c.Execute(context.Background(), "query { x }", vars)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if string(data) != `{"ok": true}` {
		t.Errorf("data = %s", data)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "pat-token" {
		t.Errorf("Authorization = %q, want the configured token", gotAuth)
	}
	if gotBody.Query != "query { x }" {
		t.Errorf("query = %q", gotBody.Query)
	}
	if gotBody.Variables["host"] != "blog.example.com" {
		t.Errorf("variables = %+v", gotBody.Variables)
	}
}

func Test_Execute_NilVariablesOmitted(t *testing.T) {
	var rawBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rawBody = string(raw)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	if _, err := c.Execute(context.Background(), "query { x }", nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if strings.Contains(rawBody, "variables") {
		t.Errorf("request body should omit variables, got %s", rawBody)
	}
}

func Test_Execute_NoTokenNoAuthorizationHeader(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	if _, err := c.Execute(context.Background(), "query { x }", nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if sawAuthHeader {
		t.Error("Authorization header must be absent when no token is configured")
	}
}

// ---------------------------------------------------------------------------
// Execute: failure modes
// ---------------------------------------------------------------------------

func Test_Execute_NonOKStatus_ReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	_, err := c.Execute(context.Background(), "query { x }", nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("got %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Status, "502") {
		t.Errorf("Status = %q", httpErr.Status)
	}
	if httpErr.Body != "upstream exploded" {
		t.Errorf("Body = %q", httpErr.Body)
	}
}

func Test_Execute_EnvelopeErrors_ReturnsResponseError(t *testing.T) {
	// Data is present alongside errors; it must still be discarded.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"x": 1}, "errors": [{"message": "first"}, {"message": "second"}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	_, err := c.Execute(context.Background(), "query { x }", nil)

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("got %v, want *ResponseError", err)
	}
	if len(respErr.Messages) != 2 {
		t.Fatalf("Messages = %v", respErr.Messages)
	}
	if got := respErr.Error(); !strings.Contains(got, "first; second") {
		t.Errorf("Error() = %q, want joined messages", got)
	}
}

func Test_Execute_MissingData_ReturnsErrMissingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null data", body: `{"data": null}`},
		{name: "absent data", body: `{}`},
		{name: "empty error list and null data", body: `{"data": null, "errors": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
			_, err := c.Execute(context.Background(), "query { x }", nil)
			if !errors.Is(err, ErrMissingData) {
				t.Errorf("got %v, want ErrMissingData", err)
			}
		})
	}
}

func Test_Execute_MalformedJSON_ReturnsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	_, err := c.Execute(context.Background(), "query { x }", nil)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Errorf("got %v, want decode error", err)
	}
}

func Test_Execute_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(newTestConfig(t, srv.URL, ""))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Execute(ctx, "query { x }", nil)
	if err == nil || !strings.Contains(err.Error(), "request failed") {
		t.Errorf("got %v, want request failure", err)
	}
}

func Test_Execute_ConnectionRefused(t *testing.T) {
	// A server that is immediately closed leaves a port nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(newTestConfig(t, url, ""))
	_, err := c.Execute(context.Background(), "query { x }", nil)
	if err == nil || !strings.Contains(err.Error(), "request failed") {
		t.Errorf("got %v, want request failure", err)
	}
}
