package mock

import (
	"context"

	"github.com/fwojciec/clickscribe"
)

var _ clickscribe.Opener = (*Opener)(nil)

// Opener is a mock implementation of clickscribe.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, url string) error
}

func (o *Opener) Open(ctx context.Context, url string) error {
	return o.OpenFn(ctx, url)
}
