// Package series provides series listing and lookup against the Hashnode
// GraphQL API.
package series

import "context"

// Description holds the free-form description of a series.
type Description struct {
	Text string `json:"text"`
}

// Series is the flat projection of a post series.
type Series struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	CoverImage  string      `json:"coverImage"`
	CreatedAt   string      `json:"createdAt"`
	Description Description `json:"description"`
}

// Author identifies the writer of a post inside a series.
type Author struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// CoverImage holds the cover image URL of a post.
type CoverImage struct {
	URL string `json:"url"`
}

// Post is the basic projection of a post inside a series.
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
}

// SeriesManager defines the interface for series operations.
type SeriesManager interface {
	List(ctx context.Context, host string, first int) ([]Series, error)
	GetBySlug(ctx context.Context, host, slug string) (*Series, error)
	Posts(ctx context.Context, host, slug string, first int) ([]Post, error)
}
