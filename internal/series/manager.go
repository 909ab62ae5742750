package series

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
var _ SeriesManager = (*Manager)(nil)

// Manager implements SeriesManager using a GraphQL client.
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

// listResponse is the JSON wrapper for a series list query response.
type listResponse struct {
	Publication struct {
		SeriesList struct {
			Edges []struct {
				Node Series `json:"node"`
			} `json:"edges"`
		} `json:"seriesList"`
	} `json:"publication"`
}

// List retrieves up to first series from the publication. The requested count
// is clamped to the configured ceiling. Failures are logged and yield an
// empty slice, never an error.
func (m *Manager) List(ctx context.Context, host string, first int) ([]Series, error) {
	data, err := m.client.Execute(ctx, queries.SeriesList(), map[string]any{
		"host":  m.resolveHost(host),
		"first": m.pagination.Clamp(first),
	})
	if err != nil {
		log.Printf("series list: %v", err)
		return []Series{}, nil
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("series list: parse response: %v", err)
		return []Series{}, nil
	}

	result := make([]Series, 0, len(resp.Publication.SeriesList.Edges))
	for _, edge := range resp.Publication.SeriesList.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}

// getResponse is the JSON wrapper for a single series query response.
type getResponse struct {
	Publication struct {
		Series *Series `json:"series"`
	} `json:"publication"`
}

// GetBySlug retrieves a single series by slug. A blank slug returns nil
// immediately, and any failure is logged and yields nil rather than an error.
func (m *Manager) GetBySlug(ctx context.Context, host, slug string) (*Series, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}

	data, err := m.client.Execute(ctx, queries.Series(), map[string]any{
		"host": m.resolveHost(host),
		"slug": slug,
	})
	if err != nil {
		log.Printf("series get: %v", err)
		return nil, nil
	}

	var resp getResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("series get: parse response: %v", err)
		return nil, nil
	}
	return resp.Publication.Series, nil
}

// postsResponse is the JSON wrapper for a series posts query response.
type postsResponse struct {
	Publication struct {
		Series struct {
			Posts struct {
				Edges []struct {
					Node Post `json:"node"`
				} `json:"edges"`
			} `json:"posts"`
		} `json:"series"`
	} `json:"publication"`
}

// Posts retrieves the posts belonging to one series. A blank series slug
// returns an empty slice immediately; failures are logged and yield an empty
// slice, never an error.
func (m *Manager) Posts(ctx context.Context, host, slug string, first int) ([]Post, error) {
	if strings.TrimSpace(slug) == "" {
		return []Post{}, nil
	}

	data, err := m.client.Execute(ctx, queries.SeriesPosts(), map[string]any{
		"host":  m.resolveHost(host),
		"slug":  slug,
		"first": m.pagination.Clamp(first),
	})
	if err != nil {
		log.Printf("series posts: %v", err)
		return []Post{}, nil
	}

	var resp postsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("series posts: parse response: %v", err)
		return []Post{}, nil
	}

	result := make([]Post, 0, len(resp.Publication.Series.Posts.Edges))
	for _, edge := range resp.Publication.Series.Posts.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}
