package goquery_test

import (
	"testing"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlineSelector_Name(t *testing.T) {
	t.Parallel()

	s := goquery.NewHeadlineSelector()
	assert.Equal(t, "headline-anchors", s.Name())
}

func TestHeadlineSelector_ExtractItems(t *testing.T) {
	t.Parallel()

	t.Run("extracts heading-wrapped links in page order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><h2><a href="/2025/08/fed-rates">Fed cuts rates</a></h2><p>teaser</p></article>
<article><h3><a href="https://news.example.com/2025/08/storm">Storm makes landfall</a></h3></article>
<div class="promo"><h2><a href="mailto:tips@example.com">Send us tips</a></h2></div>
<article><h2><a href="/2025/08/fed-rates">Fed cuts rates</a></h2></article>
</body></html>`

		s := goquery.NewHeadlineSelector()
		items, err := s.ExtractItems(html, "https://news.example.com/", 20)

		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Fed cuts rates", items[0].Title)
		assert.Equal(t, "https://news.example.com/2025/08/fed-rates", items[0].URL)
		assert.Equal(t, frontpage.AuthorUnknown, items[0].Author)
		assert.Empty(t, items[0].TimeIndicator)

		assert.Equal(t, "Storm makes landfall", items[1].Title)
	})

	t.Run("stops at the limit", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2><a href="/a">A</a></h2>
<h2><a href="/b">B</a></h2>
<h2><a href="/c">C</a></h2>
</body></html>`

		s := goquery.NewHeadlineSelector()
		items, err := s.ExtractItems(html, "https://news.example.com/", 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("returns empty result for a page without headline anchors", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewHeadlineSelector()
		items, err := s.ExtractItems("<html><body><p>plain text</p></body></html>", "https://news.example.com/", 20)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
