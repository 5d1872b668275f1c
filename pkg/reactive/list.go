package reactive

import "sync"

// ListOp identifies the kind of list mutation.
type ListOp uint8

const (
	ListInsert ListOp = iota // an item was inserted at Index
	ListRemove               // the item at Index was removed
	ListSet                  // the item at Index was replaced
	ListReset                // the whole list was replaced
)

// String returns the string representation of the ListOp.
func (op ListOp) String() string {
	switch op {
	case ListInsert:
		return "insert"
	case ListRemove:
		return "remove"
	case ListSet:
		return "set"
	case ListReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ListChange describes one mutation of a List.
type ListChange struct {
	Op    ListOp
	Index int
}

// List is a reactive ordered collection. Watchers receive a ListChange
// per mutation; plain subscribers are told only that something changed.
type List[T any] struct {
	id       uint64
	watchers subscribers[func(ListChange)]

	mu    sync.RWMutex
	items []T
}

// NewList creates a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{id: nextID()}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index i.
func (l *List[T]) At(i int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[i]
}

// ItemAt implements ListSource.
func (l *List[T]) ItemAt(i int) any {
	return l.At(i)
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Value implements Source.
func (l *List[T]) Value() any {
	return l.Items()
}

// Push appends v.
func (l *List[T]) Push(v T) {
	l.mu.Lock()
	l.items = append(l.items, v)
	idx := len(l.items) - 1
	l.mu.Unlock()

	l.emit(ListChange{Op: ListInsert, Index: idx})
}

// Insert places v at index i, shifting later items right.
func (l *List[T]) Insert(i int, v T) {
	l.mu.Lock()
	if i < 0 || i > len(l.items) {
		l.mu.Unlock()
		panic("reactive: list insert index out of range")
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	l.mu.Unlock()

	l.emit(ListChange{Op: ListInsert, Index: i})
}

// Remove deletes the item at index i.
func (l *List[T]) Remove(i int) {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		panic("reactive: list remove index out of range")
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.mu.Unlock()

	l.emit(ListChange{Op: ListRemove, Index: i})
}

// Set replaces the item at index i.
func (l *List[T]) Set(i int, v T) {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		panic("reactive: list set index out of range")
	}
	l.items[i] = v
	l.mu.Unlock()

	l.emit(ListChange{Op: ListSet, Index: i})
}

// Reset replaces every item.
func (l *List[T]) Reset(items ...T) {
	l.mu.Lock()
	l.items = append([]T(nil), items...)
	l.mu.Unlock()

	l.emit(ListChange{Op: ListReset, Index: -1})
}

// Watch implements ListSource.
func (l *List[T]) Watch(fn func(ListChange)) Subscription {
	return l.watchers.add(fn)
}

// Subscribe implements Source.
func (l *List[T]) Subscribe(fn func()) Subscription {
	return l.watchers.add(func(ListChange) { fn() })
}

// ID returns the unique identifier for this list.
func (l *List[T]) ID() uint64 {
	return l.id
}

func (l *List[T]) emit(change ListChange) {
	l.watchers.each(func(fn func(ListChange)) { fn(change) })
}
