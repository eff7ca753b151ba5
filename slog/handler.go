package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clickscribe"
)

// Ensure LoggingClickHandler implements clickscribe.ClickHandler.
var _ clickscribe.ClickHandler = (*LoggingClickHandler)(nil)

// LoggingClickHandler wraps a ClickHandler with debug logging of every
// reported click, including rejected ones.
type LoggingClickHandler struct {
	next   clickscribe.ClickHandler
	logger *slog.Logger
}

// NewLoggingClickHandler creates a new LoggingClickHandler.
func NewLoggingClickHandler(next clickscribe.ClickHandler, logger *slog.Logger) *LoggingClickHandler {
	return &LoggingClickHandler{next: next, logger: logger}
}

// HandleClick delegates to the wrapped handler and logs the result.
func (h *LoggingClickHandler) HandleClick(ctx context.Context, ev *clickscribe.ClickEvent) (res clickscribe.Result) {
	defer func(begin time.Time) {
		h.logger.Debug("click",
			"click", ev.ID,
			"ctrl", ev.CtrlKey,
			"meta", ev.MetaKey,
			"outcome", res.Outcome,
			"suppressed", ev.DefaultPrevented(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return h.next.HandleClick(ctx, ev)
}
