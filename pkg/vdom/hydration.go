package vdom

import "sync"

// Counter assigns creation ordinals. The SSR pass and the hydration pass
// each reset it and then draw one ordinal per created node, so the Nth node
// of both passes shares an id.
type Counter struct {
	mu      sync.Mutex
	current int
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next ordinal (1, 2, 3, ...).
func (c *Counter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current++
	return c.current
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = 0
}

// Current returns the last ordinal handed out without incrementing.
func (c *Counter) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Count returns the number of addressable nodes in the tree. Nodes
// destroyed during a pass drew an ordinal but are not counted.
func Count(node *Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.id > 0 {
		count = 1
	}
	for _, child := range node.children {
		count += Count(child)
	}
	return count
}
