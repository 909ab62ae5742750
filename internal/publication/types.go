// Package publication provides publication metadata and recommendation
// lookups against the Hashnode GraphQL API.
package publication

import "context"

// Author identifies the owner of a publication.
type Author struct {
	Name           string `json:"name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// About holds the free-form description of a publication.
type About struct {
	Text string `json:"text"`
}

// Publication is the flat projection of a publication's metadata.
type Publication struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	DisplayTitle   string `json:"displayTitle"`
	URL            string `json:"url"`
	Favicon        string `json:"favicon"`
	IsTeam         bool   `json:"isTeam"`
	FollowersCount int    `json:"followersCount"`
	About          About  `json:"about"`
	Author         Author `json:"author"`
}

// Recommended is one publication recommended by another.
type Recommended struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	Favicon        string `json:"favicon"`
	FollowersCount int    `json:"followersCount"`
}

// PublicationManager defines the interface for publication operations.
type PublicationManager interface {
	Get(ctx context.Context, host string) (*Publication, error)
	Recommendations(ctx context.Context, host string) ([]Recommended, error)
}
