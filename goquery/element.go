package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clickscribe"
)

// Ensure Element implements clickscribe.Element at compile time.
var _ clickscribe.Element = (*Element)(nil)

// Element is a single element of a Document.
type Element struct {
	sel *goquery.Selection
}

// RenderedText approximates the element's innerText. Elements outside the
// HTML namespace (SVG, MathML) have no innerText and return "".
func (e *Element) RenderedText() string {
	n := e.sel.Get(0)
	if n.Namespace != "" {
		return ""
	}
	return renderedText(n)
}

// Parent returns the immediate parent element, or nil for the root.
func (e *Element) Parent() clickscribe.Element {
	parent := e.sel.Parent()
	if parent.Length() == 0 {
		return nil
	}
	return &Element{sel: parent}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}
