package reactive

import "sync"

// Formula is a value derived from one or more sources. It recomputes
// eagerly whenever a dependency changes and notifies its own subscribers
// when the result differs from the previous one.
type Formula[T any] struct {
	id   uint64
	subs subscribers[func()]

	mu      sync.RWMutex
	value   T
	compute func() T

	deps Subscriptions
}

// NewFormula computes the initial value and subscribes to deps.
func NewFormula[T any](compute func() T, deps ...Source) *Formula[T] {
	f := &Formula[T]{
		id:      nextID(),
		compute: compute,
		value:   compute(),
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		f.deps.Add(dep.Subscribe(f.recompute))
	}
	return f
}

// Get returns the last computed value.
func (f *Formula[T]) Get() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Value implements Source.
func (f *Formula[T]) Value() any {
	return f.Get()
}

// Subscribe implements Source.
func (f *Formula[T]) Subscribe(fn func()) Subscription {
	return f.subs.add(fn)
}

// ID returns the unique identifier for this formula.
func (f *Formula[T]) ID() uint64 {
	return f.id
}

// Dispose unsubscribes the formula from its dependencies.
func (f *Formula[T]) Dispose() {
	f.deps.Dispose()
}

func (f *Formula[T]) recompute() {
	next := f.compute()

	f.mu.Lock()
	changed := !defaultEquals(f.value, next)
	f.value = next
	f.mu.Unlock()

	if changed {
		f.subs.each(func(fn func()) { fn() })
	}
}
