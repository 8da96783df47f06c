package frontpage

import "context"

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// SnapshotStore persists markup that defeated every selector strategy,
// for offline inspection when a site's layout changes.
type SnapshotStore interface {
	// Save writes the markup and returns the path it was written to.
	Save(markup string) (string, error)
}
