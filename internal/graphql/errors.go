package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingData is returned when a response carries neither errors nor a
// usable data payload. The remote violated the GraphQL envelope contract.
var ErrMissingData = errors.New("graphql: response contains no data")

// HTTPError is returned when the endpoint responds with a non-2xx status.
// Body holds a best-effort read of the raw response body and may be empty.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("graphql: unexpected HTTP status %s", e.Status)
	}
	return fmt.Sprintf("graphql: unexpected HTTP status %s: %s", e.Status, e.Body)
}

// ResponseError is returned when the GraphQL envelope carries a non-empty
// error list. Any data in the same response must be treated as unusable.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}
