package element

import (
	"github.com/FifthTry/ftd/pkg/css"
	"github.com/FifthTry/ftd/pkg/dom"
)

// Runtime is the per-pass context: the host document with its identity
// counter, the class registry and the class namer. A Runtime is not safe
// for concurrent use; independent renders use independent runtimes.
type Runtime struct {
	doc      dom.Document
	registry *css.Registry
	names    *css.Namer
	body     *Node
}

// NewRuntime creates a runtime rendering into doc.
func NewRuntime(doc dom.Document) *Runtime {
	rt := &Runtime{
		doc:      doc,
		registry: css.NewRegistry(),
		names:    css.NewNamer(),
	}
	rt.body = &Node{rt: rt, kind: Div, host: doc.Body(), root: true}
	return rt
}

// Document returns the host document.
func (rt *Runtime) Document() dom.Document { return rt.doc }

// Registry returns the class registry.
func (rt *Runtime) Registry() *css.Registry { return rt.registry }

// Body returns the root container.
func (rt *Runtime) Body() *Node { return rt.body }

// Stylesheet renders the registry as a <style> element.
func (rt *Runtime) Stylesheet() string { return rt.registry.Stylesheet() }

// Reset destroys everything mounted under the body and returns the
// counter, registry and namer to their initial state.
func (rt *Runtime) Reset() {
	rt.body.destroyChildren()
	rt.body.subs.Dispose()
	rt.doc.Counter().Reset()
	rt.registry.Reset()
	rt.names.Reset()
}

// register adds a rule and mirrors it into the document stylesheet when it
// is new.
func (rt *Runtime) register(selector string, d css.Declaration) {
	if rt.registry.Register(selector, d) {
		rt.doc.AppendStyle(css.Rule(selector, d))
	}
}
