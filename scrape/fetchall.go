package scrape

import (
	"context"

	"github.com/fwojciec/frontpage"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel site fetches in FetchAll.
const defaultConcurrency = 4

// NamedSource pairs a site label with its headline source, which may be a
// Pipeline or any other frontpage.HeadlineSource (e.g. a feed reader).
type NamedSource struct {
	Site   frontpage.Site
	Source frontpage.HeadlineSource
}

// SiteResult holds the outcome of fetching one site's headlines.
type SiteResult struct {
	Site  frontpage.Site
	Items []frontpage.NewsItem
	Err   error
}

// FetchAll fetches headlines from every source concurrently and returns
// one result per source, in input order. A site's failure is recorded in
// its result and does not abort the other sites.
func FetchAll(ctx context.Context, sources []NamedSource, limit int) []SiteResult {
	results := make([]SiteResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			items, err := src.Source.Headlines(gctx, limit)
			results[i] = SiteResult{Site: src.Site, Items: items, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
