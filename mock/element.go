package mock

import "github.com/fwojciec/clickscribe"

var _ clickscribe.Element = (*Element)(nil)

// Element is a mock implementation of clickscribe.Element.
type Element struct {
	RenderedTextFn func() string
	ParentFn       func() clickscribe.Element
}

func (e *Element) RenderedText() string {
	return e.RenderedTextFn()
}

func (e *Element) Parent() clickscribe.Element {
	return e.ParentFn()
}
