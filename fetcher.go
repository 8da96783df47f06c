package frontpage

import "context"

// FetchResult holds the markup retrieved from a URL.
type FetchResult struct {
	// HTML is the response body decoded to UTF-8.
	HTML string

	// FinalURL is the effective URL after any redirects. Relative links
	// in the markup are resolved against it.
	FinalURL string
}

// Fetcher retrieves page markup from URLs.
// Implementations may use plain HTTP or browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch performs a single GET of the URL and returns the markup.
	// The context controls timeout and cancellation. No retries are
	// attempted; callers layer a retry policy if they want one.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases underlying resources (e.g. a browser).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
