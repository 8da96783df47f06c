package goquery

import (
	"strings"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor implements frontpage.Extractor over an ordered list of
// selector strategies. The first strategy yielding at least one item wins
// the whole pass; candidates are never mixed across strategies, which
// would break page order.
type Extractor struct {
	selectors []frontpage.ItemSelector
}

// NewExtractor creates an Extractor that tries selectors in the given
// order. The list usually comes from a Registry: site-specific strategies
// first, the generic fallback last.
func NewExtractor(selectors ...frontpage.ItemSelector) *Extractor {
	return &Extractor{selectors: selectors}
}

// Extract parses the markup and returns up to limit items in page order.
// Returns EPARSE for markup with no content, ESTRUCTURE when every
// strategy comes back empty, and EINVALID for a non-positive limit.
func (e *Extractor) Extract(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	if limit <= 0 {
		return nil, frontpage.Errorf(frontpage.EINVALID, "limit must be positive, got %d", limit)
	}
	if strings.TrimSpace(html) == "" {
		return nil, frontpage.Errorf(frontpage.EPARSE, "empty markup")
	}

	for _, sel := range e.selectors {
		items, err := sel.ExtractItems(html, baseURL, limit)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return items, nil
		}
	}

	return nil, frontpage.Errorf(frontpage.ESTRUCTURE, "no selector strategy matched the page; its layout may have changed")
}
