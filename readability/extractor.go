package readability

import (
	"strings"

	"github.com/fwojciec/frontpage"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements frontpage.ArticleExtractor at compile time.
var _ frontpage.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a story page and returns its readable content.
func (e *Extractor) Extract(rawHTML string) (*frontpage.Article, error) {
	if rawHTML == "" {
		return nil, frontpage.Errorf(frontpage.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EPARSE, "extract article: %s", err)
	}

	return &frontpage.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
