// Package feed provides a syndication-backed implementation of
// frontpage.HeadlineSource, an alternative to homepage scraping when a
// site publishes RSS or Atom.
package feed

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/frontpage"
	"github.com/mmcdole/gofeed"
)

// Ensure Source implements the interface.
var _ frontpage.HeadlineSource = (*Source)(nil)

// Source reads a site's headlines from its RSS or Atom feed. The feed
// document is retrieved through Fetcher, so transport errors carry the
// same classification as homepage fetches.
type Source struct {
	Fetcher frontpage.Fetcher
	Config  frontpage.SourceConfig
}

// Headlines fetches and parses the configured feed and maps its entries
// to news items in feed order.
func (s *Source) Headlines(ctx context.Context, limit int) ([]frontpage.NewsItem, error) {
	if limit <= 0 {
		return nil, frontpage.Errorf(frontpage.EINVALID, "limit must be positive, got %d", limit)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	if s.Config.FeedURL == "" {
		return nil, frontpage.Errorf(frontpage.EINVALID, "source %q has no feed URL", s.Config.Site)
	}

	res, err := s.Fetcher.Fetch(ctx, s.Config.FeedURL)
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().ParseString(res.HTML)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EPARSE, "parse feed at %s: %s", s.Config.FeedURL, err)
	}

	base, err := url.Parse(res.FinalURL)
	if err != nil || !base.IsAbs() {
		return nil, frontpage.Errorf(frontpage.EINVALID, "invalid base URL %q", res.FinalURL)
	}

	items := make([]frontpage.NewsItem, 0, limit)
	seen := make(map[string]bool)
	for _, entry := range parsed.Items {
		if len(items) >= limit {
			break
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}

		link := resolveLink(base, entry.Link)
		if link == "" || seen[link] {
			continue
		}

		item := frontpage.NewsItem{
			Title:         title,
			URL:           link,
			Author:        entryAuthor(entry, s.authorDefault()),
			TimeIndicator: entryTime(entry),
		}
		if err := item.Validate(); err != nil {
			continue
		}

		seen[link] = true
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, frontpage.Errorf(frontpage.ESTRUCTURE, "feed at %s has no usable entries", s.Config.FeedURL)
	}
	return items, nil
}

func (s *Source) authorDefault() string {
	if s.Config.AuthorDefault != "" {
		return s.Config.AuthorDefault
	}
	return frontpage.AuthorUnknown
}

// resolveLink resolves an entry link against the feed URL. Feed links are
// normally absolute already, but some feeds emit site-relative paths.
func resolveLink(base *url.URL, link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = "" // Strip fragment for deduplication
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// entryAuthor picks the entry's author name, falling back to the source
// default. gofeed leaves Author nil when the feed omits it.
func entryAuthor(entry *gofeed.Item, fallback string) string {
	if entry.Author != nil && strings.TrimSpace(entry.Author.Name) != "" {
		return strings.TrimSpace(entry.Author.Name)
	}
	for _, a := range entry.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	return fallback
}

// entryTime uses the feed's published string verbatim. When only the
// parsed form is present it is rendered in RFC 1123.
func entryTime(entry *gofeed.Item) string {
	if t := strings.TrimSpace(entry.Published); t != "" {
		return t
	}
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.Format(time.RFC1123)
	}
	return ""
}
