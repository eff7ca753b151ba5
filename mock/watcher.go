package mock

import (
	"context"

	"github.com/fwojciec/clickscribe"
)

var _ clickscribe.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of clickscribe.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, url string) error
	CloseFn func() error
}

func (w *Watcher) Watch(ctx context.Context, url string) error {
	return w.WatchFn(ctx, url)
}

func (w *Watcher) Close() error {
	return w.CloseFn()
}
