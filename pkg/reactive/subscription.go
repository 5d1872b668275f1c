package reactive

import (
	"sync"
	"sync/atomic"
)

// Subscription is a disposable handle for one registered callback.
type Subscription interface {
	// Unsubscribe stops further notifications. Calling it more than once
	// is a no-op.
	Unsubscribe()
}

// Source is a type-erased reactive value.
type Source interface {
	// Value returns the current value.
	Value() any

	// Subscribe registers fn to run after every change.
	Subscribe(fn func()) Subscription
}

// ListSource is a type-erased reactive list.
type ListSource interface {
	Len() int
	ItemAt(i int) any
	Watch(fn func(ListChange)) Subscription
}

// SubscriptionFunc adapts a release function to a Subscription.
func SubscriptionFunc(release func()) Subscription {
	return &funcSubscription{release: release}
}

type funcSubscription struct {
	once    sync.Once
	release func()
}

func (s *funcSubscription) Unsubscribe() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// Subscriptions aggregates handles so an owner can release them together.
type Subscriptions struct {
	mu   sync.Mutex
	subs []Subscription
}

// Add records a handle. Nil handles are ignored.
func (s *Subscriptions) Add(sub Subscription) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// Len returns the number of live handles.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Dispose releases every handle in registration order and empties the set.
func (s *Subscriptions) Dispose() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

// subscriber is one registered callback.
type subscriber[F any] struct {
	id    uint64
	fn    F
	alive atomic.Bool
}

// subscribers provides callback bookkeeping shared by Cell, Formula and List.
type subscribers[F any] struct {
	mu   sync.RWMutex
	subs []*subscriber[F]
}

// add registers fn and returns a handle that removes it.
func (s *subscribers[F]) add(fn F) Subscription {
	sub := &subscriber[F]{id: nextID(), fn: fn}
	sub.alive.Store(true)

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return SubscriptionFunc(func() { s.remove(sub) })
}

// remove drops sub, preserving the order of the others. A removed
// subscriber is also skipped by a notification already in flight.
func (s *subscribers[F]) remove(sub *subscriber[F]) {
	sub.alive.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.subs {
		if existing.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// each calls visit for every live subscriber. The list is copied first so
// callbacks may subscribe or unsubscribe without holding the lock.
func (s *subscribers[F]) each(visit func(F)) {
	s.mu.RLock()
	subs := make([]*subscriber[F], len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, sub := range subs {
		if sub.alive.Load() {
			visit(sub.fn)
		}
	}
}

// count returns the number of registered callbacks.
func (s *subscribers[F]) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
