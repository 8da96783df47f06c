// Package scrape provides headline scraping orchestration.
// It composes fetching, extraction and post-processing into a
// frontpage.HeadlineSource, and fans out across multiple sites.
package scrape

import (
	"context"
	"net/url"
	"sort"
	"time"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.HeadlineSource = (*Pipeline)(nil)

// Pipeline produces the headline list for one site by fetching its front
// page and extracting items from the markup. Fetcher, Extractor and
// Source must be set; the remaining fields are optional.
type Pipeline struct {
	Fetcher   frontpage.Fetcher
	Extractor frontpage.Extractor
	Source    frontpage.SourceConfig

	// Limiter, when set, paces requests to the site's host.
	Limiter frontpage.HostLimiter

	// Snapshots, when set, receives the markup whenever no selector
	// strategy matches it, so stale selectors can be debugged offline.
	Snapshots frontpage.SnapshotStore

	// RetryDelays, when non-empty, layers retry with these backoff
	// delays over the single-fetch contract. Nil means one attempt.
	RetryDelays []time.Duration
}

// Headlines fetches the site's front page and returns up to limit items
// in page order. When the source is configured to rank by score, the
// final list is reordered by score descending; the sort is stable so page
// order still breaks ties.
func (p *Pipeline) Headlines(ctx context.Context, limit int) ([]frontpage.NewsItem, error) {
	if limit <= 0 {
		return nil, frontpage.Errorf(frontpage.EINVALID, "limit must be positive, got %d", limit)
	}
	if err := p.Source.Validate(); err != nil {
		return nil, err
	}

	if p.Limiter != nil {
		home, err := url.Parse(p.Source.HomeURL)
		if err != nil {
			return nil, frontpage.Errorf(frontpage.EINVALID, "invalid home URL %q", p.Source.HomeURL)
		}
		if err := p.Limiter.Wait(ctx, home.Host); err != nil {
			return nil, err
		}
	}

	res, err := p.fetch(ctx)
	if err != nil {
		return nil, err
	}

	items, err := p.Extractor.Extract(res.HTML, res.FinalURL, limit)
	if err != nil {
		if p.Snapshots != nil && frontpage.ErrorCode(err) == frontpage.ESTRUCTURE {
			if path, serr := p.Snapshots.Save(res.HTML); serr == nil {
				return nil, frontpage.Errorf(frontpage.ESTRUCTURE, "%s (page saved to %s)", frontpage.ErrorMessage(err), path)
			}
		}
		return nil, err
	}

	for i := range items {
		if items[i].Author == "" {
			items[i].Author = p.authorDefault()
		}
	}

	if p.Source.RankByScore {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score > items[j].Score
		})
	}

	return items, nil
}

func (p *Pipeline) authorDefault() string {
	if p.Source.AuthorDefault != "" {
		return p.Source.AuthorDefault
	}
	return frontpage.AuthorUnknown
}

// fetch runs a single fetch, or fetch-with-retry when delays are set.
func (p *Pipeline) fetch(ctx context.Context) (*frontpage.FetchResult, error) {
	if len(p.RetryDelays) == 0 {
		return p.Fetcher.Fetch(ctx, p.Source.HomeURL)
	}
	return FetchWithRetryDelays(ctx, p.Source.HomeURL, p.Fetcher.Fetch, nil, p.RetryDelays)
}
