package drafts

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/blognode/hashnode-mcp/internal/config"
	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/queries"
)

// Compile-time interface check.
var _ DraftManager = (*Manager)(nil)

// Manager implements DraftManager using a GraphQL client.
type Manager struct {
	client     graphql.Client
	host       string
	pagination config.PaginationConfig
}

// NewManager returns a Manager backed by the provided GraphQL client. The
// client must carry a personal access token for draft queries to succeed;
// without one the remote rejects the call and List degrades to empty.
func NewManager(client graphql.Client, host string, pagination config.PaginationConfig) *Manager {
	if client == nil {
		panic("graphql client must not be nil")
	}
	return &Manager{client: client, host: host, pagination: pagination}
}

func (m *Manager) resolveHost(host string) string {
	if strings.TrimSpace(host) == "" {
		return m.host
	}
	return host
}

// listResponse is the JSON wrapper for a drafts query response.
type listResponse struct {
	Publication struct {
		Drafts struct {
			Edges []struct {
				Node Draft `json:"node"`
			} `json:"edges"`
		} `json:"drafts"`
	} `json:"publication"`
}

// List retrieves up to first unpublished drafts. The requested count is
// clamped to the configured ceiling. Failures, including authentication
// rejections, are logged and yield an empty slice, never an error.
func (m *Manager) List(ctx context.Context, host string, first int) ([]Draft, error) {
	data, err := m.client.Execute(ctx, queries.Drafts(), map[string]any{
		"host":  m.resolveHost(host),
		"first": m.pagination.Clamp(first),
	})
	if err != nil {
		log.Printf("drafts list: %v", err)
		return []Draft{}, nil
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("drafts list: parse response: %v", err)
		return []Draft{}, nil
	}

	result := make([]Draft, 0, len(resp.Publication.Drafts.Edges))
	for _, edge := range resp.Publication.Drafts.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}
