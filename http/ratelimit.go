package http

import (
	"context"
	"sync"

	"github.com/fwojciec/docsearch"
	"golang.org/x/time/rate"
)

var _ docsearch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles requests per host with one token bucket each.
// Requests to different hosts never wait on each other.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	perSec  rate.Limit
	burst   int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host, with a burst of 1. A non-positive rps disables throttling.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		perSec:  limit,
		burst:   1,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(host).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[host]
	if !ok {
		b = rate.NewLimiter(d.perSec, d.burst)
		d.buckets[host] = b
	}
	return b
}
