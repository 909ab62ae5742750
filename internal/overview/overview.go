// Package overview aggregates a site snapshot by fanning out across the
// never-fails wrappers of the other resource packages.
package overview

import (
	"context"
	"sync"

	"github.com/blognode/hashnode-mcp/internal/pages"
	"github.com/blognode/hashnode-mcp/internal/posts"
	"github.com/blognode/hashnode-mcp/internal/publication"
	"github.com/blognode/hashnode-mcp/internal/series"
)

// Snapshot is the combined view of a publication: metadata, recent posts,
// series, and static pages. Legs that failed are simply empty or nil.
type Snapshot struct {
	Publication *publication.Publication `json:"publication"`
	RecentPosts []posts.Post             `json:"recentPosts"`
	Series      []series.Series          `json:"series"`
	StaticPages []pages.StaticPage       `json:"staticPages"`
}

// Aggregator fans out across the safe wrappers concurrently. Each leg uses
// the never-fails contract, so one failing leg never poisons the snapshot.
type Aggregator struct {
	publication publication.Safe
	posts       posts.Safe
	series      series.Safe
	pages       pages.Safe
}

// NewAggregator returns an Aggregator over the given safe wrappers.
func NewAggregator(pub publication.Safe, po posts.Safe, se series.Safe, pa pages.Safe) *Aggregator {
	return &Aggregator{
		publication: pub,
		posts:       po,
		series:      se,
		pages:       pa,
	}
}

// Snapshot collects the four views concurrently and returns the combined
// result. first bounds the post/series/page counts per leg.
func (a *Aggregator) Snapshot(ctx context.Context, host string, first int) *Snapshot {
	var snap Snapshot

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		snap.Publication = a.publication.Get(ctx, host)
	}()
	go func() {
		defer wg.Done()
		snap.RecentPosts = a.posts.List(ctx, host, first)
	}()
	go func() {
		defer wg.Done()
		snap.Series = a.series.List(ctx, host, first)
	}()
	go func() {
		defer wg.Done()
		snap.StaticPages = a.pages.List(ctx, host, first)
	}()
	wg.Wait()

	return &snap
}
