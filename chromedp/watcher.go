package chromedp

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/fwojciec/clickscribe"
)

// Ensure Watcher implements clickscribe.Watcher at compile time.
var _ clickscribe.Watcher = (*Watcher)(nil)

// Watcher installs the click hook into tabs of a Browser and dispatches
// reported clicks to a ClickHandler.
type Watcher struct {
	browser *Browser
	handler clickscribe.ClickHandler
	binding string
	logger  *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithBinding sets the runtime binding name the hook reports through.
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

// NewWatcher returns a Watcher for tabs of b. Closing the Watcher closes b.
func NewWatcher(b *Browser, handler clickscribe.ClickHandler, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		browser: b,
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
// is done. The tab is closed when Watch returns.
func (w *Watcher) Watch(ctx context.Context, url string) error {
	if err := w.browser.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tabCtx, cancel := chromedp.NewContext(w.browser.Context())
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := w.Attach(ctx, tabCtx); err != nil {
		return err
	}
	if err := chromedp.Run(tabCtx, chromedp.Navigate(url)); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	<-tabCtx.Done()
	if err := ctx.Err(); err != nil {
		return err
	}
	return clickscribe.Errorf(clickscribe.EINTERNAL, "tab closed")
}

// Attach registers the binding and the hook on the tab behind tabCtx,
// covering the current and every later document. Clicks are handled with
// ctx until tabCtx is done.
func (w *Watcher) Attach(ctx, tabCtx context.Context) error {
	script, err := clickscribe.HookScript(w.binding)
	if err != nil {
		return err
	}

	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if b, ok := ev.(*runtime.EventBindingCalled); ok && b.Name == w.binding {
			// Listeners run on the event loop; handling may issue CDP calls.
			go w.dispatch(ctx, b.Payload)
		}
	})

	return chromedp.Run(tabCtx,
		runtime.AddBinding(w.binding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if _, err := page.AddScriptToEvaluateOnNewDocument(script).Do(ctx); err != nil {
				return fmt.Errorf("registering hook: %w", err)
			}
			return nil
		}),
		chromedp.Evaluate(script, nil),
	)
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

// Close shuts the browser down. Close is safe to call multiple times.
func (w *Watcher) Close() error {
	return w.browser.Close()
}
