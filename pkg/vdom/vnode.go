package vdom

import "strings"

// CommentTag is the tag used for comment anchor placeholders.
const CommentTag = "comment"

// Attr is one attribute. Order of first assignment is preserved.
type Attr struct {
	Key   string
	Value string
}

// StyleDecl is one inline style declaration.
type StyleDecl struct {
	Property string
	Value    string
}

// Node is a virtual DOM node.
type Node struct {
	id       int
	tag      string
	attrs    []Attr
	classes  ClassList
	style    []StyleDecl
	text     string
	children []*Node
	parent   *Node
}

// NewNode creates a node with the given hydration id and tag. An id of zero
// means the node is not addressable (the document body) and renders without
// a data-id attribute.
func NewNode(id int, tag string) *Node {
	return &Node{id: id, tag: tag}
}

// NewComment creates a comment anchor placeholder.
func NewComment(id int) *Node {
	return NewNode(id, CommentTag)
}

// ID returns the hydration id.
func (n *Node) ID() int { return n.id }

// Tag returns the element tag.
func (n *Node) Tag() string { return n.tag }

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Text returns the inner text.
func (n *Node) Text() string { return n.text }

// SetText replaces the inner text.
func (n *Node) SetText(s string) { n.text = s }

// ClassList returns the node's class list.
func (n *Node) ClassList() *ClassList { return &n.classes }

// AppendChild appends c, detaching it from any previous parent.
func (n *Node) AppendChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// InsertBefore inserts c before ref. A nil or foreign ref appends.
func (n *Node) InsertBefore(c, ref *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	idx := n.indexOf(ref)
	if idx < 0 {
		n.AppendChild(c)
		return
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
}

// RemoveChild detaches c if it is a child of n.
func (n *Node) RemoveChild(c *Node) {
	idx := n.indexOf(c)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	c.parent = nil
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) indexOf(c *Node) int {
	if c == nil {
		return -1
	}
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// SetAttribute sets or replaces an attribute.
func (n *Node) SetAttribute(key, value string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
}

// Attribute returns an attribute value.
func (n *Node) Attribute(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.attrs {
		if a.Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns the attributes in assignment order.
func (n *Node) Attributes() []Attr { return n.attrs }

// SetStyle sets an inline style declaration.
func (n *Node) SetStyle(property, value string) {
	for i := range n.style {
		if n.style[i].Property == property {
			n.style[i].Value = value
			return
		}
	}
	n.style = append(n.style, StyleDecl{Property: property, Value: value})
}

// Style returns an inline style value.
func (n *Node) Style(property string) (string, bool) {
	for _, d := range n.style {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// RemoveStyle deletes an inline style declaration.
func (n *Node) RemoveStyle(property string) {
	for i, d := range n.style {
		if d.Property == property {
			n.style = append(n.style[:i], n.style[i+1:]...)
			return
		}
	}
}

// Styles returns the inline declarations in assignment order.
func (n *Node) Styles() []StyleDecl { return n.style }

// ClassList is an ordered set of class names.
type ClassList struct {
	classes []string
}

// Add appends name unless already present.
func (c *ClassList) Add(name string) {
	if c.Contains(name) {
		return
	}
	c.classes = append(c.classes, name)
}

// Remove deletes name if present.
func (c *ClassList) Remove(name string) {
	for i, existing := range c.classes {
		if existing == name {
			c.classes = append(c.classes[:i], c.classes[i+1:]...)
			return
		}
	}
}

// Contains reports whether name is in the list.
func (c *ClassList) Contains(name string) bool {
	for _, existing := range c.classes {
		if existing == name {
			return true
		}
	}
	return false
}

// Values returns a copy of the class names.
func (c *ClassList) Values() []string {
	out := make([]string, len(c.classes))
	copy(out, c.classes)
	return out
}

// Len returns the number of classes.
func (c *ClassList) Len() int { return len(c.classes) }

// String joins the classes with single spaces.
func (c *ClassList) String() string {
	return strings.Join(c.classes, " ")
}
