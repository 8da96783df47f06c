package mock

import "github.com/fwojciec/frontpage"

var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of frontpage.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string, limit int) ([]frontpage.NewsItem, error)
}

func (e *Extractor) Extract(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
	return e.ExtractFn(html, baseURL, limit)
}

var _ frontpage.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of frontpage.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*frontpage.Article, error)
}

func (e *ArticleExtractor) Extract(html string) (*frontpage.Article, error) {
	return e.ExtractFn(html)
}

var _ frontpage.Converter = (*Converter)(nil)

// Converter is a mock implementation of frontpage.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
