// Package core owns the doubles that answer peripheral calls on a
// development host.
//
// A single Context holds one generation of doubles: at most one per
// Category, created the first time the category is asked for. Reset ends the
// generation; everything obtained from it must be looked up again. Resolve
// maps a concrete peripheral object (a board singleton, or a double itself)
// back onto the instance of its category, whatever interface the caller
// holds it through.
//
// The context is process-wide mutable state without locking. Tests that use
// it must not run in parallel.
package core

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// Context owns the Instances and doubles of the current generation.
type Context struct {
	Instances *Instances

	doubles    *bank
	generation uint64
}

var (
	current     *Context
	currentOnce sync.Once
)

// Get returns the process-wide context, creating it on first call.
func Get() *Context {
	currentOnce.Do(func() {
		current = &Context{
			Instances: &Instances{},
			doubles:   newBank(nil),
		}
		debugf("context created")
	})
	return current
}

// Reset starts a new generation on the process-wide context.
func Reset() {
	Get().Reset()
}

// Reset discards every double and instance and starts an empty generation.
// Instances obtained before Reset must not be used afterwards; nothing
// checks this. Reset is not safe to call while another goroutine is using
// the context.
//
// While a test is bound by Setup, the expectations of the outgoing doubles
// are asserted against it before they are dropped.
func (c *Context) Reset() {
	t := c.doubles.t
	if t != nil {
		c.doubles.assertExpectations(t)
	}
	c.Instances = &Instances{}
	c.doubles = newBank(t)
	c.generation++
	debugf("reset, generation %d", c.generation)
}

// Generation counts the resets of c. Doubles obtained under different
// generations are never the same object.
func (c *Context) Generation() uint64 {
	return c.generation
}

// TB is the part of *testing.T that Setup needs.
type TB interface {
	mock.TestingT
	Helper()
	Cleanup(func())
}

// Setup starts a new generation for the test t. Failures of doubles used
// during the test are reported to t. Expectations are asserted for each
// generation the test leaves, at a Reset or when t finishes.
func Setup(t TB) *Context {
	t.Helper()

	c := Get()
	c.Reset()
	c.doubles.bind(t)

	t.Cleanup(func() {
		c.doubles.assertExpectations(t)
		c.doubles.bind(nil)
	})

	return c
}
