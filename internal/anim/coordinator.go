package anim

import (
	"fmt"
	"time"
)

// StepEvent describes a completed node step.
type StepEvent struct {
	From      int
	To        int
	Direction int // traversal direction after the step
	Bounced   bool
}

// Snapshot is a read-only view of the engine state.
type Snapshot struct {
	Current   int
	Direction int
	Animating bool
	Progress  float64 // current node's progress through its step
	Scales    []float64
}

// Coordinator wires a chain, its controller and the tick timer together and
// is the only entry point hosts need.
type Coordinator struct {
	chain      *Chain
	controller *Controller
	timer      *Timer

	// OnStep, if set, is called after a node completes a step.
	OnStep func(StepEvent)
}

// NewCoordinator builds a chain of the given size driven at period.
func NewCoordinator(nodes int, period time.Duration) (*Coordinator, error) {
	chain, err := NewChain(nodes)
	if err != nil {
		return nil, fmt.Errorf("new coordinator: %w", err)
	}
	return &Coordinator{
		chain:      chain,
		controller: NewController(chain),
		timer:      NewTimer(period),
	}, nil
}

// Trigger starts one step of the current node. A trigger while a step is in
// flight is absorbed and returns false. redraw may be nil.
func (c *Coordinator) Trigger(redraw func()) bool {
	if redraw == nil {
		redraw = func() {}
	}
	if !c.controller.StartUpdating() {
		return false
	}
	from, dir := c.controller.Current(), c.controller.Direction()
	Logger().Debug("step started", "node", from, "direction", dir)
	c.timer.Start(func() {
		redraw()
		if c.controller.Tick() {
			c.timer.Stop()
			c.stepped(from, dir)
		}
		redraw()
	})
	return true
}

func (c *Coordinator) stepped(from, dir int) {
	ev := StepEvent{
		From:      from,
		To:        c.controller.Current(),
		Direction: c.controller.Direction(),
		Bounced:   c.controller.Direction() != dir,
	}
	Logger().Debug("step completed", "from", ev.From, "to", ev.To, "bounced", ev.Bounced)
	if c.OnStep != nil {
		c.OnStep(ev)
	}
}

// Advance feeds host time to the tick timer.
func (c *Coordinator) Advance(dt time.Duration) {
	c.timer.Advance(dt)
}

// Period returns the tick period.
func (c *Coordinator) Period() time.Duration { return c.timer.Period() }

// Render draws the whole chain onto s.
func (c *Coordinator) Render(s Surface) {
	c.chain.Draw(s)
}

// Animating reports whether a step is in flight.
func (c *Coordinator) Animating() bool { return c.timer.Active() }

// Snapshot returns a copy of the current engine state.
func (c *Coordinator) Snapshot() Snapshot {
	scales := make([]float64, c.chain.Len())
	for i := range scales {
		scales[i] = c.chain.Node(i).State.Scale()
	}
	return Snapshot{
		Current:   c.controller.Current(),
		Direction: c.controller.Direction(),
		Animating: c.timer.Active(),
		Progress:  c.chain.Node(c.controller.Current()).State.Progress(),
		Scales:    scales,
	}
}
