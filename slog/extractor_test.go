package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/mock"
	frontpageslog "github.com/fwojciec/frontpage/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs base URL and item count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, baseURL string, limit int) ([]frontpage.NewsItem, error) {
				return []frontpage.NewsItem{
					{Title: "A", URL: "https://news.example.com/a", Author: "x"},
				}, nil
			},
		}

		extractor := frontpageslog.NewLoggingExtractor(inner, logger)
		items, err := extractor.Extract("<html></html>", "https://news.example.com/", 20)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "base=https://news.example.com/")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html, baseURL string, limit int) ([]frontpage.NewsItem, error) {
				return nil, frontpage.Errorf(frontpage.EPARSE, "empty markup")
			},
		}

		extractor := frontpageslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("", "https://news.example.com/", 20)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "empty markup")
	})
}
