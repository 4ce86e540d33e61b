package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/algolia"
	"github.com/fwojciec/docsearch/catalog"
	"github.com/fwojciec/docsearch/fs"
	dshttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/lru"
	"github.com/fwojciec/docsearch/mapper"
	"github.com/fwojciec/docsearch/mkdocs"
	"github.com/fwojciec/docsearch/refresh"
	"github.com/fwojciec/docsearch/registry"
	"github.com/fwojciec/docsearch/search"
	dsslog "github.com/fwojciec/docsearch/slog"
	"github.com/fwojciec/docsearch/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config holds the defaults that the config file and flags override.
	Config docsearch.Config

	// Catalog is the built-in docset catalog.
	Catalog []byte
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config:  docsearch.DefaultConfig(),
		Catalog: catalog.Builtin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search popular documentation sites from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.resolveConfig(m.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	// Command() includes positional placeholders, e.g. "index <docsets>".
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cmd == "refresh" {
		level = slog.LevelInfo
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	docsets, err := registry.Load(m.Catalog,
		registry.WithUserDir(cfg.UserDir),
		registry.WithDefaultIcon(cfg.DefaultIcon),
		registry.WithWarnFunc(func(err error) {
			logger.Warn("skipping user docset catalog", "dir", cfg.UserDir, "err", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to load docsets: %w", err)
	}
	deps.Docsets = docsets

	// Local indexes: written by the indexer, read through the memo cache.
	store := fs.NewIndexStore(cfg.CacheDir)
	cache := lru.NewIndexCache(store, cfg.CacheSize, cfg.CacheTTL)

	hosted := algolia.NewProvider(
		algolia.NewClient(algolia.WithTimeout(cfg.SearchTimeout)),
		mapper.NewRegistry(),
	)
	local := mkdocs.NewProvider(cache)
	deps.Searcher = dsslog.NewLoggingSearcher(
		search.NewDispatcher(docsets,
			dsslog.NewLoggingProvider(hosted, logger),
			dsslog.NewLoggingProvider(local, logger),
		),
		logger,
	)

	if cmd == "index" || cmd == "refresh" {
		fetcher := dshttp.NewFetcher(
			dshttp.WithTimeout(cfg.IndexTimeout),
			dshttp.WithLimiter(dshttp.NewDomainLimiter(cfg.RequestsPerSecond)),
			dshttp.WithRetryDelays(dshttp.DefaultRetryDelays()),
		)
		indexer := mkdocs.NewIndexer(dsslog.NewLoggingFetcher(fetcher, logger), cache.Writer(store))

		deps.Refresher = &refresh.Refresher{
			Docsets:     docsets,
			Indexer:     dsslog.NewLoggingIndexer(indexer, logger),
			Interval:    cfg.RefreshInterval,
			Timeout:     cfg.IndexTimeout,
			Concurrency: cfg.Concurrency,
			Report:      dsslog.CycleReporter(logger),
		}
	}

	return kongCtx.Run(deps)
}

// resolveConfig layers the config file and flags over base.
func (c *CLI) resolveConfig(base docsearch.Config) (docsearch.Config, error) {
	cfg := base
	if c.UserDir != "" {
		cfg.UserDir = c.UserDir
	}

	path := c.Config
	if path == "" {
		path = toml.DefaultPath(cfg.UserDir)
	}
	cfg, err := toml.LoadConfig(path, cfg)
	if err != nil {
		return base, err
	}

	if c.UserDir != "" {
		cfg.UserDir = c.UserDir
	}
	if c.CacheDir != "" {
		cfg.CacheDir = c.CacheDir
	}
	if c.Interval > 0 {
		cfg.RefreshInterval = c.Interval
		cfg.CacheTTL = c.Interval
	}
	if c.IndexTimeout > 0 {
		cfg.IndexTimeout = c.IndexTimeout
	}
	if c.SearchTimeout > 0 {
		cfg.SearchTimeout = c.SearchTimeout
	}
	if c.CacheSize > 0 {
		cfg.CacheSize = c.CacheSize
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	return cfg, nil
}
