// Package slog provides logging decorators for clickscribe services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clickscribe"
)

// Ensure LoggingOpener implements clickscribe.Opener.
var _ clickscribe.Opener = (*LoggingOpener)(nil)

// LoggingOpener wraps an Opener with logging. The Interceptor does not look
// at open errors, so this is where a blocked tab becomes visible.
type LoggingOpener struct {
	next   clickscribe.Opener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next clickscribe.Opener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open delegates to the wrapped opener and logs the outcome.
func (o *LoggingOpener) Open(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		o.logger.Log(ctx, level, "open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Open(ctx, url)
}
