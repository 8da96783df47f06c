package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/frontpage"
)

var _ frontpage.ItemSelector = (*HeadlineSelector)(nil)

// HeadlineSelector is the shared fallback strategy. It treats any anchor
// wrapped in a heading element as a headline candidate, which survives
// most layout drift at the cost of metadata: author and time are not
// recoverable without site knowledge.
type HeadlineSelector struct{}

// NewHeadlineSelector creates a new HeadlineSelector.
func NewHeadlineSelector() *HeadlineSelector {
	return &HeadlineSelector{}
}

// Name returns the selector's identifier.
func (s *HeadlineSelector) Name() string {
	return "headline-anchors"
}

// ExtractItems parses HTML and returns heading-wrapped links in page
// order, deduplicated by URL.
func (s *HeadlineSelector) ExtractItems(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var items []frontpage.NewsItem

	doc.Find("h1 a[href], h2 a[href], h3 a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(items) >= limit {
			return false
		}

		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		resolved := resolveItemURL(base, href)
		if title == "" || resolved == "" {
			return true
		}
		if _, ok := seen[resolved]; ok {
			return true
		}

		item := frontpage.NewsItem{
			Title:  title,
			URL:    resolved,
			Author: frontpage.AuthorUnknown,
		}
		if err := item.Validate(); err != nil {
			return true
		}

		seen[resolved] = struct{}{}
		items = append(items, item)
		return true
	})

	return items, nil
}
