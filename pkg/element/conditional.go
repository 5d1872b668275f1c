package element

// Conditional mounts a child while a condition holds. The child lives in a
// Div wrapper that stays in place for the mount's lifetime, so toggling
// never disturbs sibling order.
type Conditional struct {
	wrapper   *Node
	condition func() bool
	build     func(parent Container)
	mounted   bool
}

// NewConditional creates the wrapper under parent, evaluates condition
// once and re-evaluates it whenever a reactive dependency changes.
func NewConditional(parent Container, deps []Value, condition func() bool, build func(parent Container)) *Conditional {
	c := &Conditional{
		wrapper:   New(parent, Div),
		condition: condition,
		build:     build,
	}
	c.update()
	for _, d := range deps {
		if src := d.Source(); src != nil {
			c.wrapper.Own(src.Subscribe(c.update))
		}
	}
	return c
}

func (c *Conditional) update() {
	switch show := c.condition(); {
	case show && !c.mounted:
		c.build(c.wrapper)
		c.mounted = true
	case !show && c.mounted:
		c.wrapper.destroyChildren()
		c.mounted = false
	}
}

// MountPoint implements Container.
func (c *Conditional) MountPoint() *Node { return c.wrapper }

// Wrapper returns the wrapper node.
func (c *Conditional) Wrapper() *Node { return c.wrapper }

// Mounted reports whether the child is currently built.
func (c *Conditional) Mounted() bool { return c.mounted }

// Destroy releases the subscription, the child and the wrapper.
func (c *Conditional) Destroy() {
	c.wrapper.Destroy()
	c.mounted = false
}
