// Package graphql provides a GraphQL HTTP client for communicating with the
// Hashnode GraphQL API.
package graphql

import "context"

// Error represents a single error returned in a GraphQL response envelope.
type Error struct {
	Message string `json:"message"`
}

// Client defines the interface for executing GraphQL queries.
type Client interface {
	Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error)
}
