package frontpage_test

import (
	"testing"

	"github.com/fwojciec/frontpage"
	"github.com/stretchr/testify/assert"
)

func TestFormatItems(t *testing.T) {
	t.Parallel()

	t.Run("formats single item with full metadata", func(t *testing.T) {
		t.Parallel()

		items := []frontpage.NewsItem{
			{
				Title:         "Go 1.25 released",
				URL:           "https://news.example.com/go-1-25",
				Author:        "gopher",
				TimeIndicator: "2 hours ago",
				Score:         312,
			},
		}

		result := frontpage.FormatItems(items)

		expected := "1. Go 1.25 released\n" +
			"   https://news.example.com/go-1-25\n" +
			"   gopher | 2 hours ago | 312 points"
		assert.Equal(t, expected, result)
	})

	t.Run("omits metadata line when item has none", func(t *testing.T) {
		t.Parallel()

		items := []frontpage.NewsItem{
			{Title: "Headline", URL: "https://news.example.com/story"},
		}

		result := frontpage.FormatItems(items)

		expected := "1. Headline\n   https://news.example.com/story"
		assert.Equal(t, expected, result)
	})

	t.Run("separates items with blank lines and numbers them", func(t *testing.T) {
		t.Parallel()

		items := []frontpage.NewsItem{
			{Title: "First", URL: "https://news.example.com/a"},
			{Title: "Second", URL: "https://news.example.com/b"},
		}

		result := frontpage.FormatItems(items)

		expected := "1. First\n   https://news.example.com/a\n\n" +
			"2. Second\n   https://news.example.com/b"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, frontpage.FormatItems([]frontpage.NewsItem{}))
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, frontpage.FormatItems(nil))
	})
}
