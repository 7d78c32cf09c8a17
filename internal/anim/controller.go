package anim

// Controller walks the "current" pointer along a chain, one completed node
// step at a time, bouncing off either end.
type Controller struct {
	chain     *Chain
	current   int
	direction int
}

// NewController starts at the head of chain, moving forward.
func NewController(chain *Chain) *Controller {
	return &Controller{chain: chain, direction: 1}
}

// StartUpdating starts the current node's step. It returns false if the node
// is already animating.
func (c *Controller) StartUpdating() bool {
	return c.chain.Node(c.current).StartUpdating()
}

// Tick advances the current node by one tick. When the node completes its
// step the pointer moves to the neighbour in the traversal direction, or the
// direction reverses if the pointer sits on a boundary, and Tick returns true.
func (c *Controller) Tick() bool {
	if !c.chain.Node(c.current).Update() {
		return false
	}
	c.current = c.chain.Neighbor(c.current, c.direction, func() {
		c.direction *= -1
		Logger().Debug("direction reversed", "node", c.current, "direction", c.direction)
	})
	return true
}

// Current returns the index of the active node.
func (c *Controller) Current() int { return c.current }

// Direction returns the traversal direction, -1 or 1.
func (c *Controller) Direction() int { return c.direction }

// Animating reports whether the current node has a step in flight.
func (c *Controller) Animating() bool { return !c.chain.Node(c.current).State.Idle() }
