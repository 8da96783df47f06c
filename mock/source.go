package mock

import (
	"context"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.HeadlineSource = (*HeadlineSource)(nil)

// HeadlineSource is a mock implementation of frontpage.HeadlineSource.
type HeadlineSource struct {
	HeadlinesFn func(ctx context.Context, limit int) ([]frontpage.NewsItem, error)
}

func (s *HeadlineSource) Headlines(ctx context.Context, limit int) ([]frontpage.NewsItem, error) {
	return s.HeadlinesFn(ctx, limit)
}
