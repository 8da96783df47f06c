package frontpage

import (
	"context"
	"net/url"
)

// AuthorUnknown is the author label applied when a page exposes no author
// or publisher for an item. Sites may override it via SourceConfig.
const AuthorUnknown = "Unknown"

// DefaultLimit caps the number of extracted items when the caller does not
// choose a limit.
const DefaultLimit = 20

// NewsItem represents a single headline extracted from a front page.
type NewsItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Author        string `json:"author"`
	TimeIndicator string `json:"timeIndicator"`
	Score         int    `json:"score,omitempty"`
}

// Validate returns an error if the item violates the extraction contract:
// a non-empty title and an absolute URL. Author, time indicator and score
// are optional.
func (n *NewsItem) Validate() error {
	if n.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	u, err := url.Parse(n.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "item URL must be absolute, got %q", n.URL)
	}
	return nil
}

// HeadlineSource produces the current headline list for one site.
// Implementations compose fetch and extraction, or read a syndication feed.
type HeadlineSource interface {
	// Headlines returns up to limit items in page order.
	// Fewer than limit items is not an error.
	Headlines(ctx context.Context, limit int) ([]NewsItem, error)
}
