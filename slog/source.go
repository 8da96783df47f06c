package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/frontpage"
)

// Ensure LoggingSource implements frontpage.HeadlineSource.
var _ frontpage.HeadlineSource = (*LoggingSource)(nil)

// LoggingSource wraps a HeadlineSource with debug logging.
type LoggingSource struct {
	next   frontpage.HeadlineSource
	site   frontpage.Site
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. The site label is attached
// to every log line so concurrent multi-site runs stay readable.
func NewLoggingSource(next frontpage.HeadlineSource, site frontpage.Site, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, site: site, logger: logger}
}

// Headlines delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Headlines(ctx context.Context, limit int) (items []frontpage.NewsItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("headlines",
			"site", s.site,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Headlines(ctx, limit)
}
