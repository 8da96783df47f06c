package mock

import "github.com/fwojciec/frontpage"

var _ frontpage.ItemSelector = (*ItemSelector)(nil)

// ItemSelector is a mock implementation of frontpage.ItemSelector.
type ItemSelector struct {
	ExtractItemsFn func(html string, baseURL string, limit int) ([]frontpage.NewsItem, error)
	NameFn         func() string
}

func (s *ItemSelector) ExtractItems(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	return s.ExtractItemsFn(html, baseURL, limit)
}

func (s *ItemSelector) Name() string {
	if s.NameFn != nil {
		return s.NameFn()
	}
	return "mock"
}

var _ frontpage.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of frontpage.SelectorRegistry.
type SelectorRegistry struct {
	SelectorsFn func(site frontpage.Site) []frontpage.ItemSelector
	RegisterFn  func(site frontpage.Site, selectors ...frontpage.ItemSelector)
	ListFn      func() []frontpage.Site
}

func (r *SelectorRegistry) Selectors(site frontpage.Site) []frontpage.ItemSelector {
	return r.SelectorsFn(site)
}

func (r *SelectorRegistry) Register(site frontpage.Site, selectors ...frontpage.ItemSelector) {
	r.RegisterFn(site, selectors...)
}

func (r *SelectorRegistry) List() []frontpage.Site {
	return r.ListFn()
}
