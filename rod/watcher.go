package rod

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/fwojciec/clickscribe"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Watcher implements clickscribe.Watcher at compile time.
var _ clickscribe.Watcher = (*Watcher)(nil)

// Watcher installs the click hook into pages of a browser and dispatches
// reported clicks to a ClickHandler.
type Watcher struct {
	manager *BrowserManager
	handler clickscribe.ClickHandler
	binding string
	logger  *slog.Logger
	closed  atomic.Bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithBinding sets the runtime binding name the hook reports through.
// Defaults to clickscribe.DefaultBinding.
func WithBinding(name string) WatcherOption {
	return func(w *Watcher) {
		w.binding = name
	}
}

// WithLogger sets the logger for dropped or handled clicks.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher returns a Watcher for pages of the managed browser.
// Closing the Watcher closes the manager.
func NewWatcher(manager *BrowserManager, handler clickscribe.ClickHandler, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		manager: manager,
		handler: handler,
		binding: clickscribe.DefaultBinding,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// Watch opens url in a new tab with the hook installed and blocks until ctx
// is done.
func (w *Watcher) Watch(ctx context.Context, url string) error {
	if w.closed.Load() {
		return clickscribe.Errorf(clickscribe.EINVALID, "watcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	browser := w.manager.Browser()
	if browser == nil {
		return clickscribe.Errorf(clickscribe.EINVALID, "browser is closed")
	}

	tab, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	// Closed without ctx, which is already done by then.
	defer func() { _ = tab.Close() }()
	page := tab.Context(ctx)

	wait, err := w.Install(page)
	if err != nil {
		return err
	}

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	wait()
	return ctx.Err()
}

// Install registers the binding and the hook on page, covering the current
// and every later document. Clicks are dispatched until the page's context
// is done; the returned wait blocks until then.
func (w *Watcher) Install(page *rod.Page) (wait func(), err error) {
	script, err := clickscribe.HookScript(w.binding)
	if err != nil {
		return nil, err
	}

	if err := (proto.RuntimeAddBinding{Name: w.binding}).Call(page); err != nil {
		return nil, fmt.Errorf("adding binding %s: %w", w.binding, err)
	}
	if _, err := page.EvalOnNewDocument(script); err != nil {
		return nil, fmt.Errorf("registering hook: %w", err)
	}

	ctx := page.GetContext()
	wait = page.EachEvent(func(e *proto.RuntimeBindingCalled) {
		if e.Name != w.binding {
			return
		}
		w.dispatch(ctx, e.Payload)
	})

	// The document that is already loaded did not see EvalOnNewDocument.
	if _, err := page.Evaluate(rod.Eval("() => {\n" + script + "\n}").ByUser()); err != nil {
		return nil, fmt.Errorf("installing hook: %w", err)
	}

	return wait, nil
}

func (w *Watcher) dispatch(ctx context.Context, payload string) {
	ev, err := clickscribe.DecodeSnapshot(payload)
	if err != nil {
		w.logger.Warn("dropping click report", "err", err)
		return
	}

	res := w.handler.HandleClick(ctx, ev)
	w.logger.Debug("click handled",
		"click", ev.ID,
		"outcome", res.Outcome,
		"url", res.URL,
	)
}

// Close releases browser resources. Close is safe to call multiple times.
func (w *Watcher) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	return w.manager.Close()
}
