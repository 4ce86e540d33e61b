package http

import (
	"context"
	"net/http"
	"time"
)

// DefaultRetryDelays returns the backoff delays used by the CLI: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// WithRetryDelays retries failed fetches once per delay, waiting the delay
// before each attempt. Only transport errors, 429, and 5xx are retried.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// attemptError is a failed attempt and whether another one may succeed.
type attemptError struct {
	err       error
	retryable bool
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// withRetry runs attempt until it succeeds, fails permanently, runs out of
// delays, or ctx is done.
func withRetry(ctx context.Context, delays []time.Duration, attempt func() ([]byte, *attemptError)) ([]byte, error) {
	for i := 0; ; i++ {
		body, aerr := attempt()
		if aerr == nil {
			return body, nil
		}
		if !aerr.retryable || i >= len(delays) {
			return nil, aerr.err
		}

		select {
		case <-ctx.Done():
			return nil, aerr.err
		case <-time.After(delays[i]):
		}
	}
}
