package goquery

import (
	"github.com/fwojciec/frontpage"
)

var _ frontpage.ItemSelector = (*LobstersSelector)(nil)

// LobstersSelector extracts stories from the Lobsters front page.
// It targets the h-entry microformat markup:
// - li.story for each story
// - .link a.u-url for the story link
// - .byline a.u-author and the byline age span for metadata
// - .voters .score for the vote count
type LobstersSelector struct{}

// NewLobstersSelector creates a new LobstersSelector.
func NewLobstersSelector() *LobstersSelector {
	return &LobstersSelector{}
}

// Name returns the selector's identifier.
func (s *LobstersSelector) Name() string {
	return "lobsters-stories"
}

// ExtractItems parses HTML and returns the stories in page order,
// deduplicated by URL.
func (s *LobstersSelector) ExtractItems(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	cfg := ListConfig{
		Container:     "li.story",
		Link:          ".link a.u-url",
		Author:        ".byline a.u-author",
		Time:          ".byline span[title]",
		Score:         ".voters .score",
		AuthorDefault: frontpage.AuthorUnknown,
	}
	return ExtractListItems(html, baseURL, limit, cfg)
}
