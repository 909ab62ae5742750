// Package drafts provides draft listing against the Hashnode GraphQL API.
// Draft queries require a personal access token on the transport.
package drafts

import "context"

// Author identifies the writer of a draft.
type Author struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// Draft is the flat projection of an unpublished draft.
type Draft struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
	Author    Author `json:"author"`
}

// DraftManager defines the interface for draft operations.
type DraftManager interface {
	List(ctx context.Context, host string, first int) ([]Draft, error)
}
