package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the refresh command. It blocks until SIGINT or SIGTERM.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Logger.Info("refresh started",
		"interval", deps.Config.RefreshInterval,
		"cache_dir", deps.Config.CacheDir,
	)
	err := deps.Refresher.Run(ctx)
	if errors.Is(err, context.Canceled) {
		deps.Logger.Info("refresh stopped")
		return nil
	}
	return err
}
