package mock

import (
	"context"

	"github.com/fwojciec/clickscribe"
)

var _ clickscribe.ClickHandler = (*ClickHandler)(nil)

// ClickHandler is a mock implementation of clickscribe.ClickHandler.
type ClickHandler struct {
	HandleClickFn func(ctx context.Context, ev *clickscribe.ClickEvent) clickscribe.Result
}

func (h *ClickHandler) HandleClick(ctx context.Context, ev *clickscribe.ClickEvent) clickscribe.Result {
	return h.HandleClickFn(ctx, ev)
}
