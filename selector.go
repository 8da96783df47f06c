package frontpage

// ItemSelector extracts headline items from markup using one selector
// strategy.
type ItemSelector interface {
	// ExtractItems parses HTML and returns the items the strategy
	// recognizes, in document order, up to limit. Candidates with no
	// usable title or link are skipped rather than reported.
	ExtractItems(html string, baseURL string, limit int) ([]NewsItem, error)

	// Name returns the selector's identifier (e.g., "yahoo-stream").
	Name() string
}

// SelectorRegistry manages per-site selector strategies.
type SelectorRegistry interface {
	// Selectors returns the strategies for a site in priority order,
	// ending with the shared fallback chain. Unregistered sites get the
	// fallback chain alone.
	Selectors(site Site) []ItemSelector

	// Register appends strategies for a site.
	Register(site Site, selectors ...ItemSelector)

	// List returns all registered sites.
	List() []Site
}
