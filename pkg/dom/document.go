package dom

import (
	"github.com/FifthTry/ftd/pkg/vdom"
)

// Mode is the rendering mode of a document.
type Mode uint8

const (
	ModeLive    Mode = iota // mutate a live document
	ModeSSR                 // build a tree for string rendering
	ModeHydrate             // re-attach to server-rendered markup
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeSSR:
		return "ssr"
	case ModeHydrate:
		return "hydrate"
	default:
		return "unknown"
	}
}

// Special tags understood by every document.
const (
	TagBody    = "body"
	TagComment = vdom.CommentTag
)

// CommentText is the data of comment anchor nodes.
const CommentText = "ftd"

// Node is a host node.
type Node interface {
	AppendChild(child Node)
	InsertBefore(child, ref Node)
	Remove()

	AddClass(name string)
	RemoveClass(name string)
	Classes() []string

	SetStyle(property, value string)
	RemoveStyle(property string)
	Style(property string) (string, bool)

	SetAttribute(key, value string)
	RemoveAttribute(key string)
	Attribute(key string) (string, bool)

	SetText(text string)
	Text() string

	// SetEventHandler installs fn for event, replacing any previous one.
	SetEventHandler(event string, fn func())
	// Dispatch runs the handler for event and reports whether one ran.
	Dispatch(event string) bool
}

// Document creates host nodes.
type Document interface {
	Mode() Mode
	Body() Node
	CreateElement(tag string) Node
	// AppendStyle appends a rendered CSS rule to the live stylesheet.
	AppendStyle(rule string)
	Counter() *vdom.Counter
}
