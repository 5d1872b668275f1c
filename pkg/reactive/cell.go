package reactive

import (
	"reflect"
	"sync"
)

// Cell is a mutable reactive value.
type Cell[T any] struct {
	id   uint64
	subs subscribers[func()]

	mu    sync.RWMutex
	value T

	// equal decides whether Set changed the value. Nil uses defaultEquals.
	equal func(T, T) bool
}

// NewCell creates a cell with the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		id:    nextID(),
		value: initial,
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Value implements Source.
func (c *Cell[T]) Value() any {
	return c.Get()
}

// Set updates the value and notifies subscribers if it changed.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	changed := !c.equals(c.value, value)
	if changed {
		c.value = value
	}
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// Update atomically reads and replaces the value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	old := c.value
	next := fn(old)
	changed := !c.equals(old, next)
	if changed {
		c.value = next
	}
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// SetAny assigns v if it has the cell's type. It reports whether the
// assignment was possible.
func (c *Cell[T]) SetAny(v any) bool {
	tv, ok := v.(T)
	if !ok {
		return false
	}
	c.Set(tv)
	return true
}

// Subscribe implements Source.
func (c *Cell[T]) Subscribe(fn func()) Subscription {
	return c.subs.add(fn)
}

// SubscriberCount returns the number of live subscriptions.
func (c *Cell[T]) SubscriberCount() int {
	return c.subs.count()
}

// WithEquals configures a custom equality function.
func (c *Cell[T]) WithEquals(fn func(T, T) bool) *Cell[T] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this cell.
func (c *Cell[T]) ID() uint64 {
	return c.id
}

func (c *Cell[T]) notify() {
	c.subs.each(func(fn func()) { fn() })
}

func (c *Cell[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable types and reflect.DeepEqual
// for everything else. Values of different dynamic types are unequal.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
