package mock

import (
	"context"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of frontpage.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}

var _ frontpage.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of frontpage.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(markup string) (string, error)
}

func (s *SnapshotStore) Save(markup string) (string, error) {
	return s.SaveFn(markup)
}
