// Package http provides an HTTP-based implementation of clickscribe.Opener
// that delivers labels to the local service without a browser.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/clickscribe"
)

// DefaultTimeout is the default timeout for delivering a label.
const DefaultTimeout = 10 * time.Second

// Ensure Opener implements clickscribe.Opener at compile time.
var _ clickscribe.Opener = (*Opener)(nil)

// Opener issues the GET a new tab would make, and discards the response.
// Unlike rod.Opener, nothing is shown to the user; it suits scripted or
// offline captures.
type Opener struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures an Opener.
type Option func(*Opener)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *Opener) {
		o.timeout = d
	}
}

// NewOpener creates a new HTTP-based Opener.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.client = &http.Client{
		Timeout: o.timeout,
	}

	return o
}

// Open requests url and drains the response.
// A status outside 2xx is an error.
func (o *Opener) Open(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return clickscribe.Errorf(clickscribe.EINVALID, "invalid url %q: %v", url, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return nil
}
