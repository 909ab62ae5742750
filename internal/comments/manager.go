package comments

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/queries"
)

// maxPageSize is the fixed ceiling for a single comments page. Unlike the
// other list operations this does not come from configuration.
const maxPageSize = 50

// defaultPageSize is used when the requested count is zero or negative.
const defaultPageSize = 25

// Compile-time interface check.
var _ CommentManager = (*Manager)(nil)

// Manager implements CommentManager using a GraphQL client. Comments are
// addressed by post id, not by publication host.
type Manager struct {
	client graphql.Client
}

// NewManager returns a Manager backed by the provided GraphQL client.
func NewManager(client graphql.Client) *Manager {
	if client == nil {
		panic("graphql client must not be nil")
	}
	return &Manager{client: client}
}

// clamp maps a requested page size onto [1, maxPageSize], treating zero or
// negative values as "use the default".
func clamp(requested int) int {
	size := requested
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return size
}

// listResponse is the JSON wrapper for a comments query response.
type listResponse struct {
	Post struct {
		Comments struct {
			Edges []struct {
				Node Comment `json:"node"`
			} `json:"edges"`
		} `json:"comments"`
	} `json:"post"`
}

// List retrieves up to first comments for the given post id, capped at 50. A
// blank post id returns an empty slice immediately; failures are logged and
// yield an empty slice, never an error.
func (m *Manager) List(ctx context.Context, postID string, first int) ([]Comment, error) {
	if strings.TrimSpace(postID) == "" {
		return []Comment{}, nil
	}

	data, err := m.client.Execute(ctx, queries.Comments(), map[string]any{
		"id":    postID,
		"first": clamp(first),
	})
	if err != nil {
		log.Printf("comments list: %v", err)
		return []Comment{}, nil
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("comments list: parse response: %v", err)
		return []Comment{}, nil
	}

	result := make([]Comment, 0, len(resp.Post.Comments.Edges))
	for _, edge := range resp.Post.Comments.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}
