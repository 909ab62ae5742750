package comments

import (
	"context"

	"github.com/blognode/hashnode-mcp/internal/safecall"
)

// Safe wraps a CommentManager with the never-fails contract.
type Safe struct {
	mgr CommentManager
}

// NewSafe returns a Safe wrapper around mgr.
func NewSafe(mgr CommentManager) Safe {
	return Safe{mgr: mgr}
}

// List returns the comments on a post, or an empty slice on any failure.
func (s Safe) List(ctx context.Context, postID string, first int) []Comment {
	return safecall.List(func() ([]Comment, error) {
		return s.mgr.List(ctx, postID, first)
	})
}
