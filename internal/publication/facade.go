package publication

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a PublicationManager with the never-fails contract.
type Safe struct {
	mgr PublicationManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr PublicationManager) Safe {
	return Safe{mgr: mgr}
}

// Get returns the publication's metadata, or nil on any failure.
func (s Safe) Get(ctx context.Context, host string) *Publication {
	return safecall.Item(func() (*Publication, error) {
		return s.mgr.Get(ctx, host)
	})
}

// Recommendations returns the recommended publications, or an empty slice on
// any failure.
func (s Safe) Recommendations(ctx context.Context, host string) []Recommended {
	return safecall.List(func() ([]Recommended, error) {
		return s.mgr.Recommendations(ctx, host)
	})
}
