package publication

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/queries"
)

// Compile-time interface check.
var _ PublicationManager = (*Manager)(nil)

// Manager implements PublicationManager using a GraphQL client.
type Manager struct {
	client graphql.Client
	host   string
}

// NewManager returns a Manager backed by the provided GraphQL client. host is
// the default publication host.
func NewManager(client graphql.Client, host string) *Manager {
	if client == nil {
		panic("graphql client must not be nil")
	}
	return &Manager{client: client, host: host}
}

func (m *Manager) resolveHost(host string) string {
	if strings.TrimSpace(host) == "" {
		return m.host
	}
	return host
}

// getResponse is the JSON wrapper for a publication query response.
type getResponse struct {
	Publication *Publication `json:"publication"`
}

// Get retrieves the publication's metadata. Get never returns an error: any
// failure is logged and yields nil, and an unknown host also yields nil.
func (m *Manager) Get(ctx context.Context, host string) (*Publication, error) {
	data, err := m.client.Execute(ctx, queries.Publication(), map[string]any{
		"host": m.resolveHost(host),
	})
	if err != nil {
		log.Printf("publication get: %v", err)
		return nil, nil
	}

	var resp getResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("publication get: parse response: %v", err)
		return nil, nil
	}
	return resp.Publication, nil
}

// recommendationsResponse is the JSON wrapper for a recommended-publications
// query response.
type recommendationsResponse struct {
	Publication struct {
		RecommendedPublications []struct {
			Node Recommended `json:"node"`
		} `json:"recommendedPublications"`
	} `json:"publication"`
}

// Recommendations retrieves the publications recommended by this one.
// Failures are logged and yield an empty slice, never an error.
func (m *Manager) Recommendations(ctx context.Context, host string) ([]Recommended, error) {
	data, err := m.client.Execute(ctx, queries.RecommendedPublications(), map[string]any{
		"host": m.resolveHost(host),
	})
	if err != nil {
		log.Printf("publication recommendations: %v", err)
		return []Recommended{}, nil
	}

	var resp recommendationsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("publication recommendations: parse response: %v", err)
		return []Recommended{}, nil
	}

	result := make([]Recommended, 0, len(resp.Publication.RecommendedPublications))
	for _, edge := range resp.Publication.RecommendedPublications {
		result = append(result, edge.Node)
	}
	return result, nil
}
