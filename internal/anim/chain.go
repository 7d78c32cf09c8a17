package anim

import (
	"errors"
	"fmt"
)

// ErrEmptyChain is returned when a chain is requested with no nodes.
var ErrEmptyChain = errors.New("anim: chain needs at least one node")

// Node is one animated unit of the chain.
type Node struct {
	Index int
	State ScaleState
}

// Update forwards to the node's scale state.
func (n *Node) Update() bool { return n.State.Update() }

// StartUpdating forwards to the node's scale state.
func (n *Node) StartUpdating() bool { return n.State.StartUpdating() }

// Chain is a fixed-length sequence of nodes. Neighbours are adjacent indices.
type Chain struct {
	nodes []Node
}

// NewChain builds a chain of n nodes, indexed 0..n-1.
func NewChain(n int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("new chain of %d nodes: %w", n, ErrEmptyChain)
	}
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i].Index = i
	}
	return &Chain{nodes: nodes}, nil
}

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Node returns the node at index i. It panics if i is out of range.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// Neighbor returns the index next to i in direction dir (-1 or 1). At a
// boundary it calls onBoundary and returns i itself.
func (c *Chain) Neighbor(i, dir int, onBoundary func()) int {
	j := i + dir
	if dir == 0 || j < 0 || j >= len(c.nodes) {
		if onBoundary != nil {
			onBoundary()
		}
		return i
	}
	return j
}

// Draw renders every node onto s in index order.
func (c *Chain) Draw(s Surface) {
	for i := range c.nodes {
		DrawNode(s, i, len(c.nodes), c.nodes[i].State.Scale())
	}
}
