package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/blognode/hashnode-mcp/internal/config"
	"github.com/blognode/hashnode-mcp/internal/graphql"
	"github.com/blognode/hashnode-mcp/internal/queries"
)

// ErrEmptySlug is returned by GetBySlug when the slug argument is empty or
// whitespace-only. The check runs before any network call.
var ErrEmptySlug = errors.New("posts: slug must be a non-empty string")

// Compile-time interface check.
var _ PostManager = (*Manager)(nil)

// Manager implements PostManager using a GraphQL client. It is read-only
// after construction.
type Manager struct {
	client     graphql.Client
	host       string
	pagination config.PaginationConfig
}

// NewManager returns a Manager backed by the provided GraphQL client. host is
// the default publication host used when an operation is called with an empty
// host override.
func NewManager(client graphql.Client, host string, pagination config.PaginationConfig) *Manager {
	if client == nil {
		panic("graphql client must not be nil")
	}
	return &Manager{client: client, host: host, pagination: pagination}
}

// resolveHost returns the override host when non-blank, the default host
// otherwise.
func (m *Manager) resolveHost(host string) string {
	if strings.TrimSpace(host) == "" {
		return m.host
	}
	return host
}

// listResponse is the JSON wrapper for a post list query response.
type listResponse struct {
	Publication struct {
		Posts struct {
			Edges []struct {
				Node Post `json:"node"`
			} `json:"edges"`
		} `json:"posts"`
	} `json:"publication"`
}

// List retrieves up to first posts from the publication, newest first. The
// requested count is clamped to the configured ceiling; zero means the
// configured default.
//
// List attempts the extended field set (with tags) and retries once with the
// basic field set if that attempt fails. List never returns an error: when
// both attempts fail the failure is logged and an empty slice is returned, so
// rendering paths degrade instead of hard-failing.
func (m *Manager) List(ctx context.Context, host string, first int) ([]Post, error) {
	vars := map[string]any{
		"host":  m.resolveHost(host),
		"first": m.pagination.Clamp(first),
	}

	data, err := m.client.Execute(ctx, queries.Posts(queries.FieldSetExtended), vars)
	if err != nil {
		// Retry once with the basic projection. Some schema versions
		// reject the tag selection for team publications.
		data, err = m.client.Execute(ctx, queries.Posts(queries.FieldSetBasic), vars)
		if err != nil {
			log.Printf("posts list: %v", err)
			return []Post{}, nil
		}
	}

	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("posts list: parse response: %v", err)
		return []Post{}, nil
	}

	result := make([]Post, 0, len(resp.Publication.Posts.Edges))
	for _, edge := range resp.Publication.Posts.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}

// postResponse is the JSON wrapper for a single post query response.
type postResponse struct {
	Publication struct {
		Post *PostDetail `json:"post"`
	} `json:"publication"`
}

// GetBySlug retrieves a single post, including its content block. It returns
// ErrEmptySlug for a blank slug without touching the network, and (nil, nil)
// when the publication has no post with the given slug.
//
// Like List it attempts the extended field set first and retries once with
// the basic one, but unlike List it does not swallow a double failure: the
// error from the first (extended) attempt is returned so direct callers can
// distinguish an outage from a missing post.
func (m *Manager) GetBySlug(ctx context.Context, host, slug string) (*PostDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrEmptySlug
	}

	vars := map[string]any{
		"host": m.resolveHost(host),
		"slug": slug,
	}

	data, firstErr := m.client.Execute(ctx, queries.Post(queries.FieldSetExtended), vars)
	if firstErr != nil {
		var retryErr error
		data, retryErr = m.client.Execute(ctx, queries.Post(queries.FieldSetBasic), vars)
		if retryErr != nil {
			return nil, firstErr
		}
	}

	var resp postResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("posts get: parse response: %w", err)
	}
	return resp.Publication.Post, nil
}

// publicationIDResponse is the JSON wrapper for the publication-id lookup.
type publicationIDResponse struct {
	Publication struct {
		ID string `json:"id"`
	} `json:"publication"`
}

// publicationID resolves the publication id for host. The search operation
// filters by publication id rather than host.
func (m *Manager) publicationID(ctx context.Context, host string) (string, error) {
	data, err := m.client.Execute(ctx, queries.PublicationID(), map[string]any{"host": host})
	if err != nil {
		return "", err
	}

	var resp publicationIDResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parse publication id: %w", err)
	}
	if resp.Publication.ID == "" {
		return "", fmt.Errorf("no publication found for host %q", host)
	}
	return resp.Publication.ID, nil
}

// searchResponse is the JSON wrapper for a search query response.
type searchResponse struct {
	SearchPostsOfPublication struct {
		Edges []struct {
			Node Post `json:"node"`
		} `json:"edges"`
	} `json:"searchPostsOfPublication"`
}

// Search performs a full-text search over the publication's posts. A blank
// query returns an empty slice immediately. Search never returns an error:
// failures in either the publication-id lookup or the search itself are
// logged and yield an empty slice.
func (m *Manager) Search(ctx context.Context, host, query string, first int) ([]Post, error) {
	if strings.TrimSpace(query) == "" {
		return []Post{}, nil
	}

	resolvedHost := m.resolveHost(host)
	pubID, err := m.publicationID(ctx, resolvedHost)
	if err != nil {
		log.Printf("posts search: %v", err)
		return []Post{}, nil
	}

	vars := map[string]any{
		"first": m.pagination.Clamp(first),
		"filter": map[string]any{
			"publicationId": pubID,
			"query":         query,
		},
	}

	data, err := m.client.Execute(ctx, queries.SearchPosts(), vars)
	if err != nil {
		log.Printf("posts search: %v", err)
		return []Post{}, nil
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Printf("posts search: parse response: %v", err)
		return []Post{}, nil
	}

	result := make([]Post, 0, len(resp.SearchPostsOfPublication.Edges))
	for _, edge := range resp.SearchPostsOfPublication.Edges {
		result = append(result, edge.Node)
	}
	return result, nil
}
