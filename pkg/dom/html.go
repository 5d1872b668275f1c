package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlNode adapts *html.Node to Node. Handlers live on the owning
// document because x/net/html nodes have nowhere to keep them.
type htmlNode struct {
	n        *html.Node
	handlers *handlerTable
}

// HTMLNode returns the underlying x/net/html node of a live or hydrated
// host node.
func HTMLNode(n Node) (*html.Node, bool) {
	h, ok := n.(*htmlNode)
	if !ok {
		return nil, false
	}
	return h.n, true
}

// AppendChild appends child. A child already attached to this parent keeps
// its position, so hydrated nodes stay where the server rendered them.
func (h *htmlNode) AppendChild(child Node) {
	c, ok := child.(*htmlNode)
	if !ok || c.n.Parent == h.n {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	h.n.AppendChild(c.n)
}

func (h *htmlNode) InsertBefore(child, ref Node) {
	c, ok := child.(*htmlNode)
	if !ok {
		return
	}
	r, _ := ref.(*htmlNode)
	if r == nil || r.n.Parent != h.n {
		if c.n.Parent != nil {
			c.n.Parent.RemoveChild(c.n)
		}
		h.n.AppendChild(c.n)
		return
	}
	if c.n == r.n {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	h.n.InsertBefore(c.n, r.n)
}

func (h *htmlNode) Remove() {
	if h.n.Parent != nil {
		h.n.Parent.RemoveChild(h.n)
	}
	h.handlers.drop(h.n)
}

func (h *htmlNode) AddClass(name string) {
	if h.n.Type != html.ElementNode {
		return
	}
	classes := h.Classes()
	for _, c := range classes {
		if c == name {
			return
		}
	}
	setAttribute(h.n, "class", strings.Join(append(classes, name), " "))
}

func (h *htmlNode) RemoveClass(name string) {
	classes := h.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		removeAttribute(h.n, "class")
		return
	}
	setAttribute(h.n, "class", strings.Join(kept, " "))
}

func (h *htmlNode) Classes() []string {
	v, _ := getAttribute(h.n, "class")
	return strings.Fields(v)
}

func (h *htmlNode) SetStyle(property, value string) {
	if h.n.Type != html.ElementNode {
		return
	}
	decls := parseStyle(h.n)
	for i := range decls {
		if decls[i][0] == property {
			decls[i][1] = value
			writeStyle(h.n, decls)
			return
		}
	}
	writeStyle(h.n, append(decls, [2]string{property, value}))
}

func (h *htmlNode) RemoveStyle(property string) {
	decls := parseStyle(h.n)
	for i := range decls {
		if decls[i][0] == property {
			writeStyle(h.n, append(decls[:i], decls[i+1:]...))
			return
		}
	}
}

func (h *htmlNode) Style(property string) (string, bool) {
	for _, d := range parseStyle(h.n) {
		if d[0] == property {
			return d[1], true
		}
	}
	return "", false
}

func (h *htmlNode) SetAttribute(key, value string) {
	if h.n.Type == html.ElementNode {
		setAttribute(h.n, key, value)
	}
}

func (h *htmlNode) RemoveAttribute(key string) { removeAttribute(h.n, key) }

func (h *htmlNode) Attribute(key string) (string, bool) { return getAttribute(h.n, key) }

// SetText replaces the node's own text children and keeps element
// children in place.
func (h *htmlNode) SetText(text string) {
	if h.n.Type != html.ElementNode {
		return
	}
	for c := h.n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode {
			h.n.RemoveChild(c)
		}
		c = next
	}
	if text == "" {
		return
	}
	h.n.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, h.n.FirstChild)
}

func (h *htmlNode) Text() string {
	var b strings.Builder
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func (h *htmlNode) SetEventHandler(event string, fn func()) {
	h.handlers.set(h.n, event, fn)
}

func (h *htmlNode) Dispatch(event string) bool {
	fn := h.handlers.get(h.n, event)
	if fn == nil {
		return false
	}
	fn()
	return true
}

// handlerTable maps nodes to their event handlers.
type handlerTable struct {
	byNode map[*html.Node]map[string]func()
}

func newHandlerTable() *handlerTable {
	return &handlerTable{byNode: make(map[*html.Node]map[string]func())}
}

func (t *handlerTable) set(n *html.Node, event string, fn func()) {
	m := t.byNode[n]
	if m == nil {
		m = make(map[string]func())
		t.byNode[n] = m
	}
	if fn == nil {
		delete(m, event)
		return
	}
	m[event] = fn
}

func (t *handlerTable) get(n *html.Node, event string) func() {
	return t.byNode[n][event]
}

// drop forgets the handlers of n and its descendants.
func (t *handlerTable) drop(n *html.Node) {
	delete(t.byNode, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.drop(c)
	}
}

func getAttribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttribute(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func removeAttribute(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// parseStyle splits a style attribute into ordered declarations.
func parseStyle(n *html.Node) [][2]string {
	raw, _ := getAttribute(n, "style")
	var decls [][2]string
	for _, part := range strings.Split(raw, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, strings.TrimSpace(val)})
	}
	return decls
}

func writeStyle(n *html.Node, decls [][2]string) {
	if len(decls) == 0 {
		removeAttribute(n, "style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ":" + d[1]
	}
	setAttribute(n, "style", strings.Join(parts, ";"))
}

// findElement returns the first element in document order matching pred.
func findElement(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func isTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func hasID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := getAttribute(n, "id")
		return ok && v == id
	}
}
