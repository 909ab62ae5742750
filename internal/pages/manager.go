package pages

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
var _ PageManager = (*Manager)(nil)

// Manager implements PageManager using a GraphQL client.
type Manager struct {
	client     graphql.Client
	host       string
	pagination config.PaginationConfig
}

// NewManager returns a Manager backed by the provided GraphQL client.
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

// listResponse is the JSON wrapper for a static pages list query response.
type listResponse struct {
	Publication struct {
		StaticPages struct {
			Edges []struct {
				Node StaticPage `json:"node"`
			} `json:"edges"`
		} `json:"staticPages"`
	} `json:"publication"`
}

// List retrieves up to first static pages from the publication. The requested
// count is clamped to the configured ceiling. Failures are logged and yield
// an empty slice, never an error.
func (m *Manager) List(ctx context.Context, host string, first int) ([]StaticPage, error) {
	data, err := m.client.Execute(ctx, queries.StaticPages(), map[string]any{
		"host":  m.resolveHost(host),
		"first": m.pagination.Clamp(first),
	})
	if err != nil {
		log.Printf("pages list: %v", err)
		return []StaticPage{}, nil
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("pages list: parse response: %v", err)
		return []StaticPage{}, nil
	}

	result := make([]StaticPage, 0, len(resp.Publication.StaticPages.Edges))
	for _, edge := range resp.Publication.StaticPages.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}

// getResponse is the JSON wrapper for a single static page query response.
type getResponse struct {
	Publication struct {
		StaticPage *StaticPage `json:"staticPage"`
	} `json:"publication"`
}

// GetBySlug retrieves a single static page by slug, including its content
// block. A blank slug returns nil immediately, and any failure is logged and
// yields nil rather than an error.
func (m *Manager) GetBySlug(ctx context.Context, host, slug string) (*StaticPage, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}

	data, err := m.client.Execute(ctx, queries.StaticPage(), map[string]any{
		"host": m.resolveHost(host),
		"slug": slug,
	})
	if err != nil {
		log.Printf("pages get: %v", err)
		return nil, nil
	}

	var resp getResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("pages get: parse response: %v", err)
		return nil, nil
	}
	return resp.Publication.StaticPage, nil
}
