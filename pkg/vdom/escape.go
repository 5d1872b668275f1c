package vdom

import (
	"strings"

	"golang.org/x/net/html"
)

// escapeHTML escapes inner text. It must agree with the escaping the
// hydration parser undoes, so it delegates to x/net/html.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// attrWhitespace escapes whitespace that would otherwise be normalized
// inside a quoted attribute.
var attrWhitespace = strings.NewReplacer(
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeAttr escapes a quoted attribute value.
func escapeAttr(s string) string {
	return attrWhitespace.Replace(html.EscapeString(s))
}
