package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingSearcher implements docsearch.Searcher.
var _ docsearch.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   docsearch.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docsearch.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, key string, term string) (results []*docsearch.Result, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err), "search",
			"docset", key,
			"term", term,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, key, term)
}

// Ensure LoggingProvider implements docsearch.Provider.
var _ docsearch.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with logging. Errors are logged with
// their code and returned unchanged.
type LoggingProvider struct {
	next   docsearch.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next docsearch.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Name delegates to the wrapped provider.
func (p *LoggingProvider) Name() docsearch.ProviderType {
	return p.next.Name()
}

// Search delegates to the wrapped provider and logs the operation.
func (p *LoggingProvider) Search(ctx context.Context, key string, docset *docsearch.Docset, term string) (results []*docsearch.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"provider", string(p.next.Name()),
			"docset", key,
			"term", term,
			"count", len(results),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", docsearch.ErrorCode(err))
		}
		attrs = append(attrs, "err", err)
		p.logger.Log(ctx, levelFor(err), "provider search", attrs...)
	}(time.Now())
	return p.next.Search(ctx, key, docset, term)
}
