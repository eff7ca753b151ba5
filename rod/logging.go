package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clickscribe"
)

// Ensure LoggingWatcher implements clickscribe.Watcher.
var _ clickscribe.Watcher = (*LoggingWatcher)(nil)

// LoggingWatcher wraps a Watcher with logging of the watch session.
type LoggingWatcher struct {
	next   clickscribe.Watcher
	logger *slog.Logger
}

// NewLoggingWatcher creates a new LoggingWatcher.
func NewLoggingWatcher(next clickscribe.Watcher, logger *slog.Logger) *LoggingWatcher {
	return &LoggingWatcher{next: next, logger: logger}
}

// Watch logs the watched URL and how the session ended.
func (w *LoggingWatcher) Watch(ctx context.Context, url string) (err error) {
	w.logger.Info("watch started", "url", url)
	defer func(begin time.Time) {
		w.logger.Info("watch stopped",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Watch(ctx, url)
}

// Close delegates to the wrapped watcher.
func (w *LoggingWatcher) Close() error {
	return w.next.Close()
}
