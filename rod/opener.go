package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/clickscribe"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Opener implements clickscribe.Opener at compile time.
var _ clickscribe.Opener = (*Opener)(nil)

// Opener opens URLs in new tabs of a browser.
// Opener is safe for concurrent use by multiple goroutines.
type Opener struct {
	browser *rod.Browser
}

// NewOpener returns an Opener that creates tabs in browser.
func NewOpener(browser *rod.Browser) *Opener {
	return &Opener{browser: browser}
}

// Open creates a new target on url. It does not wait for the page to load
// and leaves the tab open for the user.
func (o *Opener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := o.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url}); err != nil {
		return fmt.Errorf("opening tab: %w", err)
	}
	return nil
}
