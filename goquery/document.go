// Package goquery resolves click targets in static HTML. It lets a label be
// computed for a saved page without a browser.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/clickscribe"
)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML from r.
//
// Returns EINVALID if the HTML cannot be read.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, clickscribe.Errorf(clickscribe.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// NewDocumentFromString parses html.
func NewDocumentFromString(html string) (*Document, error) {
	return NewDocument(strings.NewReader(html))
}

// Find returns the first element matching selector in document order.
//
// Returns EINVALID for a malformed selector and ENOTFOUND if nothing matches.
func (d *Document) Find(selector string) (*Element, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, clickscribe.Errorf(clickscribe.EINVALID, "invalid selector %q: %v", selector, err)
	}

	sel := d.doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, clickscribe.Errorf(clickscribe.ENOTFOUND, "no element matches %q", selector)
	}
	return &Element{sel: sel}, nil
}
