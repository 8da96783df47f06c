// Package http provides an HTTP-based implementation of frontpage.Fetcher
// for fetching pages that don't require JavaScript rendering.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/frontpage"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client as a desktop browser. News sites
// serve reduced or empty markup to unidentified clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// maxBodyBytes caps how much of a response body is read. Front pages sit
// comfortably below this; the cap guards against pathological responses.
const maxBodyBytes = 10 << 20

// Ensure Fetcher implements frontpage.Fetcher at compile time.
var _ frontpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for server-rendered pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	headers   map[string]string
	insecure  bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithHeader sets an additional request header, replacing any default of
// the same name.
func WithHeader(name, value string) Option {
	return func(f *Fetcher) {
		if f.headers == nil {
			f.headers = make(map[string]string)
		}
		f.headers[name] = value
	}
}

// WithInsecureTLS disables certificate verification for sites with broken
// certificate chains. Verification stays on unless the caller asks for
// this explicitly.
func WithInsecureTLS() Option {
	return func(f *Fetcher) {
		f.insecure = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	if f.insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		f.client.Transport = transport
	}

	return f
}

// Fetch performs a single GET of the URL and returns the markup together
// with the effective URL after redirects. Failures are classified:
// ETIMEOUT when the deadline elapsed, ECONNECTION for transport failures,
// non-2xx statuses, and responses whose body cannot be read or decoded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*frontpage.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "invalid URL %q: %s", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for name, value := range f.headers {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.classify(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, frontpage.Errorf(frontpage.ECONNECTION, "HTTP %d for %s", resp.StatusCode, url)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, f.classify(err, url)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, f.classify(err, url)
	}

	return &frontpage.FetchResult{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// classify maps transport errors onto application error codes. Context
// cancellation is caller-driven and passes through unclassified.
func (f *Fetcher) classify(err error, url string) error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return frontpage.Errorf(frontpage.ETIMEOUT, "request to %s timed out after %s", url, f.timeout)
	case errors.As(err, &nerr) && nerr.Timeout():
		return frontpage.Errorf(frontpage.ETIMEOUT, "request to %s timed out after %s", url, f.timeout)
	default:
		return frontpage.Errorf(frontpage.ECONNECTION, "fetch %s: %s", url, err)
	}
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
