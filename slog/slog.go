// Package slog provides logging decorators for docsearch services.
package slog

import "log/slog"

// levelFor logs failures at Error and everything else at Info.
func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelError
	}
	return slog.LevelInfo
}
