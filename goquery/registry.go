package goquery

import "github.com/fwojciec/frontpage"

var _ frontpage.SelectorRegistry = (*Registry)(nil)

// Registry manages site-specific selector strategies. Each site maps to an
// ordered strategy list and the shared fallback chain is appended for
// every site, so layout drift degrades to generic extraction instead of
// failing outright.
type Registry struct {
	fallback  []frontpage.ItemSelector
	selectors map[frontpage.Site][]frontpage.ItemSelector
}

// NewRegistry creates a new Registry with the given fallback chain.
// The fallback runs after a site's own strategies, and alone for sites
// with no registered strategies.
func NewRegistry(fallback ...frontpage.ItemSelector) *Registry {
	return &Registry{
		fallback:  fallback,
		selectors: make(map[frontpage.Site][]frontpage.ItemSelector),
	}
}

// Selectors returns the strategies for a site in priority order, ending
// with the fallback chain.
func (r *Registry) Selectors(site frontpage.Site) []frontpage.ItemSelector {
	specific := r.selectors[site]
	out := make([]frontpage.ItemSelector, 0, len(specific)+len(r.fallback))
	out = append(out, specific...)
	out = append(out, r.fallback...)
	return out
}

// Register appends strategies for a site.
func (r *Registry) Register(site frontpage.Site, selectors ...frontpage.ItemSelector) {
	r.selectors[site] = append(r.selectors[site], selectors...)
}

// List returns all registered sites.
func (r *Registry) List() []frontpage.Site {
	sites := make([]frontpage.Site, 0, len(r.selectors))
	for s := range r.selectors {
		sites = append(sites, s)
	}
	return sites
}
