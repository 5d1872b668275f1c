package element

import (
	"fmt"
	"strings"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/css"
	"github.com/FifthTry/ftd/pkg/dom"
	"github.com/FifthTry/ftd/pkg/reactive"
)

// Container is anything nodes can be created under.
type Container interface {
	// MountPoint returns the node new children attach to.
	MountPoint() *Node
}

// Event names a host event.
type Event string

const EventClick Event = "click"

// Node wraps one host node. It owns the host node and every subscription
// it registers, and it tracks the nodes created under it so Destroy can
// release the whole subtree.
type Node struct {
	rt       *Runtime
	kind     ElementKind
	host     dom.Node
	parent   *Node
	children []*Node
	subs     reactive.Subscriptions

	root      bool
	destroyed bool
}

// New creates a node of kind and appends it to parent.
func New(parent Container, kind ElementKind) *Node {
	p := parent.MountPoint()
	p.mustLive("New")

	tag, classes := kind.host()
	host := p.rt.doc.CreateElement(tag)
	for _, c := range classes {
		host.AddClass(c)
	}

	n := &Node{rt: p.rt, kind: kind, host: host, parent: p}
	p.host.AppendChild(host)
	p.children = append(p.children, n)
	return n
}

// MountPoint implements Container.
func (n *Node) MountPoint() *Node { return n }

// Kind returns the element kind.
func (n *Node) Kind() ElementKind { return n.kind }

// Host returns the host node, or nil after Destroy.
func (n *Node) Host() dom.Node { return n.host }

// Parent returns the node this one was created under.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the nodes created under n, in creation order.
func (n *Node) Children() []*Node { return n.children }

// Runtime returns the runtime n renders into.
func (n *Node) Runtime() *Runtime { return n.rt }

// Destroyed reports whether Destroy has run.
func (n *Node) Destroyed() bool { return n.destroyed }

// SubscriptionCount returns the number of live subscriptions n holds.
func (n *Node) SubscriptionCount() int { return n.subs.Len() }

// Own hands a subscription to n; it is released by Destroy.
func (n *Node) Own(sub reactive.Subscription) {
	n.mustLive("Own")
	n.subs.Add(sub)
}

// Destroy destroys the subtree under n, releases n's subscriptions and
// detaches its host node. Destroying the body clears it but keeps the
// host body in place. Destroy is idempotent.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyChildren()
	n.subs.Dispose()
	if n.root {
		return
	}

	n.destroyed = true
	n.host.Remove()
	if n.parent != nil {
		n.parent.forget(n)
	}
	n.host = nil
	n.parent = nil
	n.rt = nil
}

func (n *Node) destroyChildren() {
	children := n.children
	n.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Destroy()
	}
}

func (n *Node) forget(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) mustLive(op string) {
	if n.destroyed {
		panic(errors.New("E104").WithDetailf("%s on destroyed %s node", op, n.kind))
	}
}

// AttachCSS applies value for a CSS property and returns the class name it
// computed.
//
// A nil value removes every class carrying the property's short-code
// prefix and any inline declaration of the property; clearing "role" also
// removes each typography property. With explicitClass set, the rule is registered under that
// selector verbatim and the node is left alone; this is how dark and
// mobile variants are added. Otherwise classes with the same prefix are
// removed and the value is applied as a class, or as an inline style when
// rendering live, forceClass is false and no rule exists for it yet.
func (n *Node) AttachCSS(property string, value any, forceClass bool, explicitClass string) string {
	n.mustLive("AttachCSS")
	prefix := css.Prefix(property)

	if isNil(value) {
		n.removeClassesWithPrefix(prefix)
		n.host.RemoveStyle(property)
		if property == "role" {
			for k := range (Type{}).Declarations() {
				n.host.RemoveStyle(k)
			}
		}
		return explicitClass
	}

	cls := explicitClass
	selector := explicitClass
	if cls == "" {
		cls = n.rt.names.ClassName(property, value)
		selector = "." + cls
	}
	decl := declaration(property, value)

	if explicitClass != "" {
		n.rt.register(selector, decl)
		return cls
	}

	n.removeClassesWithPrefix(prefix)
	if forceClass || n.rt.doc.Mode() != dom.ModeLive || n.rt.registry.Has(selector) {
		n.rt.register(selector, decl)
		n.removeInline(property, decl)
		n.host.AddClass(cls)
		return cls
	}

	n.setInline(property, decl)
	return cls
}

// AttachColorCSS applies a light/dark color pair. Differing colors put the
// light class on the node and register the dark value under
// "body.dark .{lightClass}".
func (n *Node) AttachColorCSS(property string, c Color) {
	c = c.normalized()
	if c.Light == c.Dark {
		n.AttachCSS(property, c.Light, false, "")
		return
	}
	light := n.AttachCSS(property, c.Light, true, "")
	n.AttachCSS(property, c.Dark, true, "body.dark ."+light)
}

// AttachRoleCSS applies a typography preset. Differing presets put the
// desktop class on the node and register the mobile one under
// "body.mobile .{desktopClass}".
func (n *Node) AttachRoleCSS(t ResponsiveType) {
	if t.Desktop == t.Mobile {
		n.AttachCSS("role", t.Desktop.Declarations(), true, "")
		return
	}
	desktop := n.AttachCSS("role", t.Desktop.Declarations(), true, "")
	n.AttachCSS("role", t.Mobile.Declarations(), true, "body.mobile ."+desktop)
}

func (n *Node) removeClassesWithPrefix(prefix string) {
	for _, c := range n.host.Classes() {
		if strings.HasPrefix(c, prefix) {
			n.host.RemoveClass(c)
		}
	}
}

func (n *Node) setInline(property string, d css.Declaration) {
	if !d.IsBundle() {
		n.host.SetStyle(property, d.Value)
		return
	}
	for k, v := range d.Bundle {
		if v == "" {
			n.host.RemoveStyle(k)
			continue
		}
		n.host.SetStyle(k, v)
	}
}

func (n *Node) removeInline(property string, d css.Declaration) {
	n.host.RemoveStyle(property)
	for k := range d.Bundle {
		n.host.RemoveStyle(k)
	}
}

// SetProperty applies a static value, or binds a reactive one.
func (n *Node) SetProperty(kind PropertyKind, v Value) {
	if v.IsReactive() {
		src := v.Source()
		n.SetDynamicProperty(kind, []Value{v}, src.Value)
		return
	}
	n.SetStaticProperty(kind, v.Get())
}

// SetDynamicProperty applies compute() now and again whenever any reactive
// dependency changes. Static dependencies are skipped.
func (n *Node) SetDynamicProperty(kind PropertyKind, deps []Value, compute func() any) {
	n.mustLive("SetDynamicProperty")
	apply := func() { n.SetStaticProperty(kind, compute()) }
	for _, d := range deps {
		if src := d.Source(); src != nil {
			n.subs.Add(src.Subscribe(apply))
		}
	}
	apply()
}

// AddEventHandler installs fn for event on the host node. Handlers only
// run on live and hydrated documents.
func (n *Node) AddEventHandler(event Event, fn func()) {
	n.mustLive("AddEventHandler")
	n.host.SetEventHandler(string(event), fn)
}

// declaration builds the registry entry for a value.
func declaration(property string, value any) css.Declaration {
	if m, ok := value.(map[string]string); ok {
		return css.Bundle(property, m)
	}
	return css.Single(property, cssValue(value))
}

// cssValue renders a property value as CSS text.
func cssValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case float64:
		return number(x)
	case float32:
		return number(float64(x))
	default:
		return fmt.Sprint(v)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case *Color:
		return x == nil
	case *ResponsiveType:
		return x == nil
	case *Type:
		return x == nil
	case map[string]string:
		return x == nil
	}
	return false
}
