// Package http provides an HTTP-based implementation of docsearch.Fetcher
// used to download published search indexes.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/docsearch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies docsearch to documentation hosts.
const DefaultUserAgent = "docsearch/1.0"

// Ensure Fetcher implements docsearch.Fetcher at compile time.
var _ docsearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using plain HTTP GET requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	limiter     docsearch.DomainLimiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter throttles requests per host.
func WithLimiter(l docsearch.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
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

	return f
}

// Fetch retrieves the body at rawURL. Transport failures and non-2xx
// responses return EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, docsearch.Errorf(docsearch.EFETCH, "invalid url %q", rawURL)
	}

	return withRetry(ctx, f.retryDelays, func() ([]byte, *attemptError) {
		return f.fetchOnce(ctx, u.Hostname(), rawURL)
	})
}

func (f *Fetcher) fetchOnce(ctx context.Context, host, rawURL string) ([]byte, *attemptError) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, host); err != nil {
			return nil, &attemptError{err: docsearch.Errorf(docsearch.EFETCH, "rate limit wait for %s: %v", host, err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &attemptError{err: docsearch.Errorf(docsearch.EFETCH, "invalid request for %s: %v", rawURL, err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &attemptError{
			err:       docsearch.Errorf(docsearch.EFETCH, "fetch %s: %v", rawURL, err),
			retryable: ctx.Err() == nil,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &attemptError{
			err:       docsearch.Errorf(docsearch.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL),
			retryable: retryableStatus(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &attemptError{
			err:       docsearch.Errorf(docsearch.EFETCH, "read body of %s: %v", rawURL, err),
			retryable: ctx.Err() == nil,
		}
	}

	return body, nil
}
