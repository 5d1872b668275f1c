// Package vdom is the in-memory node tree used for server-side rendering.
//
// A Node carries a tag, attributes, a class list, an inline style map, an
// optional inner text and children. Every node created during an SSR pass
// is stamped with its creation ordinal, which is serialized as a data-id
// attribute so the hydration pass can find the same node again.
//
// # Serialization
//
//	<tag data-id="{id}" {attrs} class="{classes}" style="{p}:{v};...">{text}{children}</tag>
//
// Attribute, class and style fragments are omitted when empty. Text is
// HTML-escaped; attribute values are attribute-escaped.
//
// # Comment anchors
//
// A comment node renders as a placeholder element (<comment data-id="N">)
// because the hydration pass must be able to find it by ordinal before
// swapping it for a real comment node.
package vdom
