package drafts

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a DraftManager with the never-fails contract.
type Safe struct {
	mgr DraftManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr DraftManager) Safe {
	return Safe{mgr: mgr}
}

// List returns the publication's drafts, or an empty slice on any failure.
func (s Safe) List(ctx context.Context, host string, first int) []Draft {
	return safecall.List(func() ([]Draft, error) {
		return s.mgr.List(ctx, host, first)
	})
}
