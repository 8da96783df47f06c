package frontpage

// Extractor turns front-page markup into an ordered headline list.
type Extractor interface {
	// Extract parses the markup and returns up to limit items in page
	// order, with relative links resolved against baseURL. Selector
	// strategies are tried in order and the first one yielding at least
	// one item is used for the whole pass. Returns ESTRUCTURE when the
	// markup parses but no strategy yields an item.
	Extract(html string, baseURL string, limit int) ([]NewsItem, error)
}
