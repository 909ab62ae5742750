package posts

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a PostManager with the never-fails contract: every method
// returns its documented safe default instead of an error, so callers such as
// page-rendering code never need an error branch.
type Safe struct {
	mgr PostManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr PostManager) Safe {
	return Safe{mgr: mgr}
}

// List returns the publication's posts, or an empty slice on any failure.
func (s Safe) List(ctx context.Context, host string, first int) []Post {
	return safecall.List(func() ([]Post, error) {
		return s.mgr.List(ctx, host, first)
	})
}

// GetBySlug returns the post with the given slug, or nil on any failure —
// including the validation and propagated-transport errors that the
// underlying manager surfaces.
func (s Safe) GetBySlug(ctx context.Context, host, slug string) *PostDetail {
	return safecall.Item(func() (*PostDetail, error) {
		return s.mgr.GetBySlug(ctx, host, slug)
	})
}

// Search returns matching posts, or an empty slice on any failure.
func (s Safe) Search(ctx context.Context, host, query string, first int) []Post {
	return safecall.List(func() ([]Post, error) {
		return s.mgr.Search(ctx, host, query, first)
	})
}
