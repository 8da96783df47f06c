package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.ItemSelector = (*YahooSelector)(nil)

// YahooSelector extracts headlines from the Yahoo News homepage stream.
// Validated against the stream markup that tags nodes with
// data-test-locator attributes:
// - li.stream-item for each story card
// - stream-item-title for the headline link
// - stream-item-publisher and stream-read-time for metadata
type YahooSelector struct{}

// NewYahooSelector creates a new YahooSelector.
func NewYahooSelector() *YahooSelector {
	return &YahooSelector{}
}

// Name returns the selector's identifier.
func (s *YahooSelector) Name() string {
	return "yahoo-stream"
}

// ExtractItems parses HTML and returns the stream headlines in page order,
// deduplicated by URL. Stories without a publisher label are attributed to
// Yahoo News itself.
func (s *YahooSelector) ExtractItems(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	cfg := ListConfig{
		Container:     "li.stream-item",
		Link:          "h3[data-test-locator='stream-item-title'] a",
		Author:        "span[data-test-locator='stream-item-publisher']",
		Time:          "span[data-test-locator='stream-read-time']",
		AuthorDefault: "Yahoo News",
		URLFilter:     isYahooStory,
	}
	return ExtractListItems(html, baseURL, limit, cfg)
}

// isYahooStory keeps only article links; the stream mixes in category hubs
// and video carousels that are not stories.
func isYahooStory(u *url.URL) bool {
	return strings.Contains(u.Path, "/news/") || strings.Contains(u.Path, "/articles/")
}
