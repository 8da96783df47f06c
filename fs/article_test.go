package fs_test

import (
	"os"
	"testing"
	"time"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "story path",
			url:  "https://news.example.com/stories/first",
			want: "news.example.com-stories-first.md",
		},
		{
			name: "trailing slash dropped",
			url:  "https://news.example.com/stories/first/",
			want: "news.example.com-stories-first.md",
		},
		{
			name: "bare host",
			url:  "https://news.example.com",
			want: "news.example.com.md",
		},
		{
			name: "query and fragment ignored",
			url:  "https://news.example.com/a?ref=rss#top",
			want: "news.example.com-a.md",
		},
		{
			name:    "unparsable URL",
			url:     "https://news.example.com/%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.ArticleFilename(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	t.Run("formats article with frontmatter", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatArticle(
			"https://news.example.com/stories/first",
			"Markets Rally on Rate Cut Hopes",
			"# Markets Rally\n\nStocks climbed on Monday.",
			time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		)

		want := `---
source: https://news.example.com/stories/first
title: Markets Rally on Rate Cut Hopes
fetched: 2026-08-17
---

# Markets Rally

Stocks climbed on Monday.`

		assert.Equal(t, want, got)
	})
}

func TestArticleWriter_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file named after the URL", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewArticleWriter(dir)

		path, err := writer.Save(
			"https://news.example.com/stories/first",
			"Markets Rally",
			"# Markets Rally\n\nBody.",
		)

		require.NoError(t, err)
		assert.Contains(t, path, "news.example.com-stories-first.md")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://news.example.com/stories/first")
		assert.Contains(t, string(content), "title: Markets Rally")
		assert.Contains(t, string(content), "# Markets Rally")
	})

	t.Run("rejects an unparsable URL", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewArticleWriter(t.TempDir())

		_, err := writer.Save("https://news.example.com/%zz", "Title", "body")

		require.Error(t, err)
		assert.Equal(t, frontpage.EINVALID, frontpage.ErrorCode(err))
	})
}
