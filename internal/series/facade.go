package series

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a SeriesManager with the never-fails contract.
type Safe struct {
	mgr SeriesManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr SeriesManager) Safe {
	return Safe{mgr: mgr}
}

// List returns the publication's series, or an empty slice on any failure.
func (s Safe) List(ctx context.Context, host string, first int) []Series {
	return safecall.List(func() ([]Series, error) {
		return s.mgr.List(ctx, host, first)
	})
}

// GetBySlug returns the series with the given slug, or nil on any failure.
func (s Safe) GetBySlug(ctx context.Context, host, slug string) *Series {
	return safecall.Item(func() (*Series, error) {
		return s.mgr.GetBySlug(ctx, host, slug)
	})
}

// Posts returns the posts of one series, or an empty slice on any failure.
func (s Safe) Posts(ctx context.Context, host, slug string, first int) []Post {
	return safecall.List(func() ([]Post, error) {
		return s.mgr.Posts(ctx, host, slug, first)
	})
}
