package dom

import (
	"github.com/FifthTry/ftd/pkg/vdom"
)

// SSRDocument builds a vdom tree.
type SSRDocument struct {
	counter *vdom.Counter
	body    *ssrNode
}

// NewSSR creates an SSR document drawing ordinals from counter.
func NewSSR(counter *vdom.Counter) *SSRDocument {
	return &SSRDocument{
		counter: counter,
		body:    &ssrNode{n: vdom.NewNode(0, TagBody)},
	}
}

// Mode implements Document.
func (d *SSRDocument) Mode() Mode { return ModeSSR }

// Body implements Document.
func (d *SSRDocument) Body() Node { return d.body }

// Root returns the body's vdom node.
func (d *SSRDocument) Root() *vdom.Node { return d.body.n }

// Counter implements Document.
func (d *SSRDocument) Counter() *vdom.Counter { return d.counter }

// CreateElement implements Document.
func (d *SSRDocument) CreateElement(tag string) Node {
	if tag == TagBody {
		return d.body
	}
	id := d.counter.Next()
	if tag == TagComment {
		return &ssrNode{n: vdom.NewComment(id)}
	}
	return &ssrNode{n: vdom.NewNode(id, tag)}
}

// AppendStyle implements Document. The SSR stylesheet is serialized once
// at the end of the pass, so incremental writes are dropped.
func (d *SSRDocument) AppendStyle(string) {}

// ssrNode adapts *vdom.Node to Node.
type ssrNode struct {
	n *vdom.Node
}

// VNode returns the underlying vdom node of an SSR host node.
func VNode(n Node) (*vdom.Node, bool) {
	s, ok := n.(*ssrNode)
	if !ok {
		return nil, false
	}
	return s.n, true
}

func (s *ssrNode) AppendChild(child Node) {
	if c, ok := child.(*ssrNode); ok {
		s.n.AppendChild(c.n)
	}
}

func (s *ssrNode) InsertBefore(child, ref Node) {
	c, ok := child.(*ssrNode)
	if !ok {
		return
	}
	var r *vdom.Node
	if rn, ok := ref.(*ssrNode); ok {
		r = rn.n
	}
	s.n.InsertBefore(c.n, r)
}

func (s *ssrNode) Remove() { s.n.Remove() }

func (s *ssrNode) AddClass(name string) { s.n.ClassList().Add(name) }
func (s *ssrNode) RemoveClass(name string) { s.n.ClassList().Remove(name) }
func (s *ssrNode) Classes() []string { return s.n.ClassList().Values() }

func (s *ssrNode) SetStyle(property, value string) { s.n.SetStyle(property, value) }
func (s *ssrNode) RemoveStyle(property string) { s.n.RemoveStyle(property) }
func (s *ssrNode) Style(property string) (string, bool) { return s.n.Style(property) }

func (s *ssrNode) SetAttribute(key, value string) { s.n.SetAttribute(key, value) }
func (s *ssrNode) RemoveAttribute(key string) { s.n.RemoveAttribute(key) }
func (s *ssrNode) Attribute(key string) (string, bool) { return s.n.Attribute(key) }

func (s *ssrNode) SetText(text string) { s.n.SetText(text) }
func (s *ssrNode) Text() string { return s.n.Text() }

// Event handlers are not serialized; the hydration pass installs them.
func (s *ssrNode) SetEventHandler(string, func()) {}
func (s *ssrNode) Dispatch(string) bool { return false }
