package docsearch

import "context"

// Fetcher retrieves raw documents over the network.
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body.
	// Returns EFETCH for transport failures and non-2xx responses.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
