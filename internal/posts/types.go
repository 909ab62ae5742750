// Package posts provides post listing, lookup, and search against the
// Hashnode GraphQL API.
package posts

import "context"

// Author identifies the writer of a post.
type Author struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// Tag is a single tag attached to a post. Tags are only populated by the
// extended field set.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CoverImage holds the cover image URL of a post.
type CoverImage struct {
	URL string `json:"url"`
}

// Post is the flat projection of a published post.
type Post struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Brief             string      `json:"brief"`
	Slug              string      `json:"slug"`
	URL               string      `json:"url"`
	CoverImage        *CoverImage `json:"coverImage"`
	PublishedAt       string      `json:"publishedAt"`
	ReadTimeInMinutes int         `json:"readTimeInMinutes"`
	Author            Author      `json:"author"`
	Tags              []Tag       `json:"tags,omitempty"`
}

// Content holds the rendered variants of a post body.
type Content struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// PostDetail extends Post with the full content block.
type PostDetail struct {
	Post
	Content Content `json:"content"`
}

// PostManager defines the interface for post operations.
type PostManager interface {
	List(ctx context.Context, host string, first int) ([]Post, error)
	GetBySlug(ctx context.Context, host, slug string) (*PostDetail, error)
	Search(ctx context.Context, host, query string, first int) ([]Post, error)
}
