package clickscribe

import (
	"strings"
	"unicode"
)

// ExtractLabel derives a label from the clicked element.
//
// The element's own rendered text is used when it is non-blank; otherwise the
// immediate parent's rendered text is used. No further ancestors are
// consulted. The second return value is false when neither yields text.
//
// Blank means empty after TrimJS, the same test the page hook applies.
func ExtractLabel(target Element) (string, bool) {
	if target == nil {
		return "", false
	}

	candidate := target.RenderedText()
	if TrimJS(candidate) == "" {
		candidate = ""
		if parent := target.Parent(); parent != nil {
			candidate = parent.RenderedText()
		}
	}

	label := NormalizeLabel(candidate)
	return label, label != ""
}

// NormalizeLabel replaces every newline with a single space and trims
// surrounding whitespace with TrimJS. Runs of other whitespace are left as
// they are.
func NormalizeLabel(s string) string {
	return TrimJS(strings.ReplaceAll(s, "\n", " "))
}

// TrimJS trims s the way String.prototype.trim does in the page: ECMAScript
// WhiteSpace and LineTerminator code points. Unlike strings.TrimSpace it
// removes U+FEFF and keeps U+0085.
func TrimJS(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
