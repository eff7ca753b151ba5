package chromedp

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/fwojciec/clickscribe"
)

// Ensure Opener implements clickscribe.Opener at compile time.
var _ clickscribe.Opener = (*Opener)(nil)

// Opener opens URLs in new tabs of a Browser.
type Opener struct {
	browser *Browser
}

// NewOpener returns an Opener for b.
func NewOpener(b *Browser) *Opener {
	return &Opener{browser: b}
}

// Open creates a new target on url through the browser-level executor.
// The tab is not attached to and stays open after the browser context ends.
func (o *Opener) Open(ctx context.Context, url string) error {
	if err := o.browser.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c := chromedp.FromContext(o.browser.Context())
	if c == nil || c.Browser == nil {
		return clickscribe.Errorf(clickscribe.EINVALID, "browser is not started")
	}

	if _, err := target.CreateTarget(url).Do(cdp.WithExecutor(ctx, c.Browser)); err != nil {
		return fmt.Errorf("opening tab: %w", err)
	}
	return nil
}
