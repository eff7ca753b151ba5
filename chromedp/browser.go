// Package chromedp implements the clickscribe browser contracts on top of
// chromedp. It mirrors the rod package for setups that already run chromedp.
package chromedp

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/chromedp/chromedp"
	"github.com/fwojciec/clickscribe"
)

// Browser owns a chromedp allocator and the browser context derived from it.
type Browser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	headless    bool
	remoteURL   string
	closed      atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithHeadless controls whether a launched browser has a window.
func WithHeadless(headless bool) BrowserOption {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithRemoteURL attaches to a running browser's DevTools websocket URL
// instead of launching one.
func WithRemoteURL(u string) BrowserOption {
	return func(b *Browser) {
		b.remoteURL = u
	}
}

// NewBrowser starts (or attaches to) a browser.
// Close must be called when the Browser is no longer needed.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{}
	for _, opt := range opts {
		opt(b)
	}

	var allocCtx context.Context
	if b.remoteURL != "" {
		allocCtx, b.allocCancel = chromedp.NewRemoteAllocator(context.Background(), b.remoteURL)
	} else {
		allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.NoFirstRun,
			chromedp.NoDefaultBrowserCheck,
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-renderer-backgrounding", true),
			chromedp.Flag("headless", b.headless),
		)
		allocCtx, b.allocCancel = chromedp.NewExecAllocator(context.Background(), allocOpts...)
	}

	b.ctx, b.cancel = chromedp.NewContext(allocCtx)

	// Running no actions starts the browser and its first tab.
	if err := chromedp.Run(b.ctx); err != nil {
		b.cancel()
		b.allocCancel()
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	return b, nil
}

// Context returns the browser's chromedp context. New tabs are created with
// chromedp.NewContext(b.Context()).
func (b *Browser) Context() context.Context {
	return b.ctx
}

// Close shuts the browser down. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	b.cancel()
	b.allocCancel()
	return nil
}

func (b *Browser) checkOpen() error {
	if b.closed.Load() {
		return clickscribe.Errorf(clickscribe.EINVALID, "browser is closed")
	}
	return nil
}
