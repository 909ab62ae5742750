// Package pages provides static page listing and lookup against the Hashnode
// GraphQL API.
package pages

import "context"

// Content holds the rendered variants of a static page body.
type Content struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// StaticPage is the flat projection of a publication's static page. The
// content block is only populated by the single-page lookup.
type StaticPage struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	Hidden  bool    `json:"hidden"`
	Content Content `json:"content"`
}

// PageManager defines the interface for static page operations.
type PageManager interface {
	List(ctx context.Context, host string, first int) ([]StaticPage, error)
	GetBySlug(ctx context.Context, host, slug string) (*StaticPage, error)
}
