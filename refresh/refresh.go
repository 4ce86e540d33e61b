// Package refresh keeps local indexes current by rebuilding them on a
// fixed schedule.
package refresh

import (
	"context"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Defaults applied to zero-valued Refresher fields.
const (
	DefaultInterval    = 24 * time.Hour
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 2
)

// Refresher rebuilds the index of every local-index docset once per
// Interval. Each docset is indexed under its own timeout and a failure
// never affects the other docsets or the schedule.
type Refresher struct {
	Docsets     docsearch.DocsetService
	Indexer     docsearch.Indexer
	Interval    time.Duration
	Timeout     time.Duration
	Concurrency int

	// Report, if set, receives every cycle completed by Run.
	Report func(Cycle)
}

// Cycle is the outcome of one pass over the docsets.
type Cycle struct {
	ID       string
	Started  time.Time
	Duration time.Duration
	Indexed  []string
	Failures []Failure
}

// Failure records why a docset could not be indexed.
type Failure struct {
	Key string
	Err error
}

// Failed returns the number of docsets that could not be indexed.
func (c Cycle) Failed() int {
	return len(c.Failures)
}

// outcome holds the result of indexing a single docset.
type outcome struct {
	key string
	err error
}

// RunOnce indexes the given docsets, or every local-index docset when no
// keys are given. Unknown keys and docsets served by another provider are
// recorded as ECONFIG failures.
func (r *Refresher) RunOnce(ctx context.Context, keys ...string) Cycle {
	cycle := Cycle{ID: uuid.NewString(), Started: time.Now()}

	docsets, failures := r.resolve(keys)
	cycle.Failures = failures

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]outcome, len(docsets))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, d := range docsets {
		g.Go(func() error {
			outcomes[i] = outcome{key: d.Key, err: r.index(ctx, d)}
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		if o.err != nil {
			cycle.Failures = append(cycle.Failures, Failure{Key: o.key, Err: o.err})
			continue
		}
		cycle.Indexed = append(cycle.Indexed, o.key)
	}

	cycle.Duration = time.Since(cycle.Started)
	return cycle
}

// Run performs one cycle immediately and then one per Interval until ctx
// is canceled. It always returns ctx.Err().
func (r *Refresher) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	for {
		cycle := r.RunOnce(ctx)
		if r.Report != nil {
			r.Report(cycle)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Refresher) resolve(keys []string) ([]*docsearch.Docset, []Failure) {
	if len(keys) == 0 {
		return r.Docsets.DocsetsByProvider(docsearch.ProviderLocalIndex), nil
	}

	var (
		docsets  []*docsearch.Docset
		failures []Failure
	)
	for _, key := range keys {
		d, ok := r.Docsets.FindDocset(key)
		switch {
		case !ok:
			failures = append(failures, Failure{Key: key, Err: docsearch.Errorf(docsearch.ECONFIG, "unknown docset %q", key)})
		case d.Provider != docsearch.ProviderLocalIndex:
			failures = append(failures, Failure{Key: key, Err: docsearch.Errorf(docsearch.ECONFIG, "docset %q is not served by a local index", key)})
		default:
			docsets = append(docsets, d)
		}
	}
	return docsets, failures
}

// index runs the indexer for one docset under its own deadline. An indexer
// that ignores the deadline is abandoned so it cannot hold up the cycle.
func (r *Refresher) index(ctx context.Context, d *docsearch.Docset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- r.Indexer.Index(ctx, d.Key, d)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return docsearch.Errorf(docsearch.EFETCH, "indexing docset %q: %v", d.Key, ctx.Err())
	}
}
