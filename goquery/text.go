package goquery

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements never contribute rendered text.
var skipped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Input:    true,
	atom.Select:   true,
	atom.Textarea: true,
}

// blocks maps block-level elements to the number of line breaks required
// around them.
var blocks = map[atom.Atom]int{
	atom.Address: 1, atom.Article: 1, atom.Aside: 1, atom.Blockquote: 1,
	atom.Caption: 1, atom.Dd: 1, atom.Details: 1, atom.Dialog: 1,
	atom.Div: 1, atom.Dl: 1, atom.Dt: 1, atom.Fieldset: 1,
	atom.Figcaption: 1, atom.Figure: 1, atom.Footer: 1, atom.Form: 1,
	atom.H1: 1, atom.H2: 1, atom.H3: 1, atom.H4: 1, atom.H5: 1, atom.H6: 1,
	atom.Header: 1, atom.Hgroup: 1, atom.Hr: 1, atom.Li: 1, atom.Main: 1,
	atom.Nav: 1, atom.Ol: 1, atom.Pre: 1, atom.Section: 1, atom.Summary: 1,
	atom.Table: 1, atom.Tr: 1, atom.Ul: 1,
	atom.P: 2,
}

// renderedText approximates innerText for n: hidden and non-rendered
// subtrees are dropped, whitespace collapses as under white-space: normal
// (except in <pre>), <br> becomes a newline, block boundaries become
// newlines and table cells are separated by tabs.
func renderedText(n *html.Node) string {
	var w textWriter
	w.walk(n, false)
	return w.b.String()
}

type textWriter struct {
	b       strings.Builder
	breaks  int  // required line breaks not yet written
	space   bool // collapsed whitespace not yet written
	started bool // text has been written
	newline bool // last byte written was a newline
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.ElementNode:
	case html.DocumentNode:
		w.children(n, pre)
		return
	default:
		return
	}

	if skipped[n.DataAtom] || isHidden(n) {
		return
	}

	switch n.DataAtom {
	case atom.Br:
		w.hardBreak()
		return
	case atom.Td, atom.Th:
		if hasPrevCell(n) {
			w.tab()
		}
	}

	br := blocks[n.DataAtom]
	w.requireBreaks(br)
	w.children(n, pre || n.DataAtom == atom.Pre)
	w.requireBreaks(br)
}

func (w *textWriter) children(n *html.Node, pre bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}
}

func (w *textWriter) text(s string, pre bool) {
	if s == "" {
		return
	}
	if pre {
		w.flush()
		w.b.WriteString(s)
		w.newline = strings.HasSuffix(s, "\n")
		return
	}

	fields := strings.FieldsFunc(s, isCollapsible)
	if len(fields) == 0 {
		w.space = true
		return
	}
	if isCollapsible(rune(s[0])) {
		w.space = true
	}
	w.flush()
	w.b.WriteString(strings.Join(fields, " "))
	w.newline = false
	w.space = isCollapsible(rune(s[len(s)-1]))
}

// flush writes pending breaks, or a pending space, before new text.
// Breaks and spaces at the very start are dropped.
func (w *textWriter) flush() {
	switch {
	case !w.started:
	case w.breaks > 0:
		w.b.WriteString(strings.Repeat("\n", w.breaks))
		w.newline = true
	case w.space && !w.newline:
		w.b.WriteByte(' ')
	}
	w.breaks = 0
	w.space = false
	w.started = true
}

func (w *textWriter) requireBreaks(n int) {
	if n > w.breaks {
		w.breaks = n
	}
}

func (w *textWriter) hardBreak() {
	if w.started && w.breaks > 0 {
		w.b.WriteString(strings.Repeat("\n", w.breaks))
	}
	w.b.WriteByte('\n')
	w.breaks = 0
	w.space = false
	w.started = true
	w.newline = true
}

func (w *textWriter) tab() {
	w.flush()
	w.b.WriteByte('\t')
	w.newline = false
}

// isCollapsible reports whether r is whitespace collapsed by CSS.
// Non-breaking spaces are kept.
func isCollapsible(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsSpace(r)
}

func isHidden(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden":
			return true
		case "style":
			style := strings.ToLower(strings.Join(strings.Fields(a.Val), ""))
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return true
			}
		}
	}
	return false
}

func hasPrevCell(n *html.Node) bool {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && (s.DataAtom == atom.Td || s.DataAtom == atom.Th) {
			return true
		}
	}
	return false
}
