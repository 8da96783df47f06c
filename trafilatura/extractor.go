package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/frontpage"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements frontpage.ArticleExtractor at compile time.
var _ frontpage.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EPARSE, "extract article: %s", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &frontpage.Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
