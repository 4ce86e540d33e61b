package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/refresh"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    docsearch.Config
	Logger    *slog.Logger
	Docsets   docsearch.DocsetService
	Searcher  docsearch.Searcher
	Refresher *refresh.Refresher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config        string        `help:"Path to config file (default: <user-dir>/config.toml)" type:"path"`
	CacheDir      string        `help:"Directory holding local indexes" env:"DOCSEARCH_CACHE_DIR" type:"path"`
	UserDir       string        `help:"Directory holding the user docset catalog and icons" env:"DOCSEARCH_USER_DIR" type:"path"`
	Interval      time.Duration `help:"Delay between index rebuilds"`
	IndexTimeout  time.Duration `help:"Timeout for indexing a single docset"`
	SearchTimeout time.Duration `help:"Timeout for a hosted search request"`
	CacheSize     int           `help:"Number of local indexes kept in memory"`
	Concurrency   int           `help:"Number of docsets indexed in parallel"`
	Verbose       bool          `short:"v" help:"Enable debug logging"`

	List    ListCmd    `cmd:"" help:"List available docsets"`
	Search  SearchCmd  `cmd:"" help:"Search a docset"`
	Query   QueryCmd   `cmd:"" help:"Search or list docsets from a single free-form query"`
	Index   IndexCmd   `cmd:"" help:"Build local indexes now"`
	Refresh RefreshCmd `cmd:"" help:"Rebuild local indexes on a schedule until interrupted"`
}

// DefaultLimit is the number of results shown when --limit is not set.
const DefaultLimit = 8

// MinTermLength is the shortest term the query command searches for.
const MinTermLength = 3

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter string `arg:"" optional:"" help:"Only show docsets whose name contains this text"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Docset string   `arg:"" help:"Docset key"`
	Term   []string `arg:"" help:"Search term"`
	Limit  int      `short:"n" default:"8" help:"Maximum number of results"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Input []string `arg:"" optional:"" help:"Docset key followed by a search term, or a docset filter"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Docsets []string `arg:"" optional:"" help:"Docset keys (default: all local-index docsets)"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct{}
