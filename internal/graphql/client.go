package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blognode/hashnode-mcp/internal/config"
)

// DefaultEndpoint is the public Hashnode GraphQL endpoint.
const DefaultEndpoint = "https://gql.hashnode.com"

const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a non-2xx response body is captured into an
// HTTPError.
const maxErrorBody = 4 << 10

// HTTPClient is a concrete implementation of the Client interface that sends
// GraphQL requests over HTTP using the standard library net/http package.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	authToken  string
}

// NewHTTPClient constructs an HTTPClient from the provided HashnodeConfig.
// An empty cfg.Endpoint means DefaultEndpoint; a zero or negative
// cfg.Timeout means a default of 30 seconds. The auth token is optional:
// public queries work without one, while drafts and webhook mutations
// require it.
func NewHTTPClient(cfg config.HashnodeConfig) *HTTPClient {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		authToken:  cfg.Token,
	}
}

// request is the JSON body shape for a GraphQL HTTP request.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// response is the JSON body shape for a GraphQL HTTP response.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Execute sends a GraphQL query to the configured endpoint and returns the
// raw JSON bytes of the "data" field on success. Variables may be nil, in
// which case the "variables" key is omitted from the request body.
//
// Execute returns an error if:
//   - the HTTP request cannot be created or sent (including timeouts)
//   - the server responds with a non-2xx status code (*HTTPError)
//   - the response body cannot be decoded as JSON
//   - the response envelope contains one or more errors (*ResponseError)
//   - the envelope has no errors but also no data (ErrMissingData)
func (c *HTTPClient) Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	reqBody := request{
		Query:     query,
		Variables: variables,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("graphql: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("graphql: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best-effort body read for diagnostics; a read failure leaves
		// Body empty rather than masking the status error.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var gqlResp response
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			msgs[i] = e.Message
		}
		return nil, &ResponseError{Messages: msgs}
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return nil, ErrMissingData
	}

	return []byte(gqlResp.Data), nil
}
