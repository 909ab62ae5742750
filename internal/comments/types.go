// Package comments provides comment listing for posts against the Hashnode
// GraphQL API.
package comments

import "context"

// Author identifies the writer of a comment.
type Author struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// Content holds the rendered variants of a comment body.
type Content struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Comment is the flat projection of a single comment on a post.
type Comment struct {
	ID             string  `json:"id"`
	DateAdded      string  `json:"dateAdded"`
	TotalReactions int     `json:"totalReactions"`
	Content        Content `json:"content"`
	Author         Author  `json:"author"`
}

// CommentManager defines the interface for comment operations.
type CommentManager interface {
	List(ctx context.Context, postID string, first int) ([]Comment, error)
}
