package pages

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a PageManager with the never-fails contract.
type Safe struct {
	mgr PageManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr PageManager) Safe {
	return Safe{mgr: mgr}
}

// List returns the publication's static pages, or an empty slice on any
// failure.
func (s Safe) List(ctx context.Context, host string, first int) []StaticPage {
	return safecall.List(func() ([]StaticPage, error) {
		return s.mgr.List(ctx, host, first)
	})
}

// GetBySlug returns the static page with the given slug, or nil on any
// failure.
func (s Safe) GetBySlug(ctx context.Context, host, slug string) *StaticPage {
	return safecall.Item(func() (*StaticPage, error) {
		return s.mgr.GetBySlug(ctx, host, slug)
	})
}
