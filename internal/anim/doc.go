// Package anim sequences the ladder animation: a fixed chain of nodes, each
// with a two-phase scale state, stepped one node per tap by a controller and
// driven at a fixed tick period.
//
// The engine is single-threaded. Hosts call Trigger, Advance and Render from
// one goroutine; Advance is how host time reaches the tick timer.
package anim
