package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/refresh"
)

// Ensure LoggingIndexer implements docsearch.Indexer.
var _ docsearch.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   docsearch.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next docsearch.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs the operation.
func (i *LoggingIndexer) Index(ctx context.Context, key string, docset *docsearch.Docset) (err error) {
	defer func(begin time.Time) {
		i.logger.Log(ctx, levelFor(err), "index",
			"docset", key,
			"url", docset.SearchIndexURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Index(ctx, key, docset)
}

// CycleReporter returns a refresh.Refresher Report func that logs one
// summary line per cycle and one line per failed docset.
func CycleReporter(logger *slog.Logger) func(refresh.Cycle) {
	return func(c refresh.Cycle) {
		for _, f := range c.Failures {
			logger.Warn("refresh docset failed",
				"cycle", c.ID,
				"docset", f.Key,
				"err", f.Err,
			)
		}
		logger.Info("refresh cycle",
			"cycle", c.ID,
			"indexed", len(c.Indexed),
			"failed", c.Failed(),
			"duration", c.Duration,
		)
	}
}
