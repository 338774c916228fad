package walker

import "github.com/hupe1980/graphapi/graph"

// Context is one link of the context chain attached to elements as they
// flow through a walk.
//
// PushContext adds a link whose parent is the previous context; links are
// never rewritten by pushes. MutateContext and Reduce change the value of
// the current link in place via Set.
type Context struct {
	value  any
	parent *Context
}

// NewContext creates a context link.
func NewContext(value any, parent *Context) *Context {
	return &Context{value: value, parent: parent}
}

// Value returns the value held by this link. A nil Context holds nil.
func (c *Context) Value() any {
	if c == nil {
		return nil
	}
	return c.value
}

// Parent returns the previous link, or nil at the root.
func (c *Context) Parent() *Context {
	if c == nil {
		return nil
	}
	return c.parent
}

// Set replaces the value of this link.
func (c *Context) Set(value any) {
	c.value = value
}

// Depth returns the number of links up to and including the root.
func (c *Context) Depth() int {
	n := 0
	for ; c != nil; c = c.parent {
		n++
	}
	return n
}

// ContextValue returns the value of c as a T.
func ContextValue[T any](c *Context) (T, bool) {
	v, ok := c.Value().(T)
	return v, ok
}

// DefaultVertexContext is pushed by VertexBuilder.PushDefaultContext.
type DefaultVertexContext[V any] struct {
	ID     graph.VertexID
	Vertex V
}

// DefaultEdgeContext is pushed by EdgeBuilder.PushDefaultContext.
type DefaultEdgeContext[E any] struct {
	ID   graph.EdgeID
	Edge E
}
