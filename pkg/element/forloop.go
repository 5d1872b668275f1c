package element

import (
	"github.com/FifthTry/ftd/pkg/reactive"
)

// ItemBuilder builds the nodes for one list entry under parent. index
// tracks the entry's position and changes when earlier entries are
// inserted or removed.
type ItemBuilder func(parent Container, item any, index *reactive.Cell[int])

// ForLoop mounts one group of nodes per list entry inside a Div wrapper.
// Changes are reconciled by position: an insert builds one entry, a remove
// destroys one, a set rebuilds one in place and a reset rebuilds all.
type ForLoop struct {
	wrapper *Node
	list    reactive.ListSource
	build   ItemBuilder
	entries []*loopEntry
}

type loopEntry struct {
	nodes []*Node
	index *reactive.Cell[int]
}

// NewForLoop builds an entry for every item of list and keeps the mount in
// step with later changes.
func NewForLoop(parent Container, list reactive.ListSource, build ItemBuilder) *ForLoop {
	f := &ForLoop{
		wrapper: New(parent, Div),
		list:    list,
		build:   build,
	}
	for i := 0; i < list.Len(); i++ {
		f.CreateNode(i)
	}
	f.wrapper.Own(list.Watch(f.apply))
	return f
}

// CreateNode builds the entry for list index i and places it at position
// i among the existing entries.
func (f *ForLoop) CreateNode(i int) {
	start := len(f.wrapper.children)
	index := reactive.NewCell(i)
	f.build(f.wrapper, f.list.ItemAt(i), index)

	e := &loopEntry{
		nodes: append([]*Node(nil), f.wrapper.children[start:]...),
		index: index,
	}
	if ref := f.firstHostFrom(i); ref != nil {
		for _, n := range e.nodes {
			f.wrapper.host.InsertBefore(n.host, ref.host)
		}
	}

	f.entries = append(f.entries, nil)
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = e
}

// firstHostFrom returns the first node of the first non-empty entry at or
// after position i.
func (f *ForLoop) firstHostFrom(i int) *Node {
	for ; i < len(f.entries); i++ {
		if len(f.entries[i].nodes) > 0 {
			return f.entries[i].nodes[0]
		}
	}
	return nil
}

func (f *ForLoop) apply(change reactive.ListChange) {
	switch change.Op {
	case reactive.ListInsert:
		f.CreateNode(change.Index)
		f.reindex(change.Index + 1)
	case reactive.ListRemove:
		f.destroyEntry(change.Index)
		f.reindex(change.Index)
	case reactive.ListSet:
		f.destroyEntry(change.Index)
		f.CreateNode(change.Index)
	case reactive.ListReset:
		for len(f.entries) > 0 {
			f.destroyEntry(len(f.entries) - 1)
		}
		for i := 0; i < f.list.Len(); i++ {
			f.CreateNode(i)
		}
	}
}

func (f *ForLoop) destroyEntry(i int) {
	e := f.entries[i]
	for j := len(e.nodes) - 1; j >= 0; j-- {
		e.nodes[j].Destroy()
	}
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
}

func (f *ForLoop) reindex(from int) {
	for i := from; i < len(f.entries); i++ {
		f.entries[i].index.Set(i)
	}
}

// MountPoint implements Container.
func (f *ForLoop) MountPoint() *Node { return f.wrapper }

// Wrapper returns the wrapper node.
func (f *ForLoop) Wrapper() *Node { return f.wrapper }

// Len returns the number of mounted entries.
func (f *ForLoop) Len() int { return len(f.entries) }

// Destroy releases the list subscription and every entry.
func (f *ForLoop) Destroy() {
	f.wrapper.Destroy()
	f.entries = nil
}
