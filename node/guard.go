package node

import (
	"errors"
	"fmt"
	"reflect"
)

// DefaultMaxDepth is the deepest node a Guard admits by default.
const DefaultMaxDepth = 32

var (
	ErrCycle    = errors.New("value graph refers back to an enclosing value")
	ErrMaxDepth = errors.New("value graph is nested too deeply")
)

// visit identifies a referenced value; the type tells apart a struct pointer
// from a pointer to its first field.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// Guard fails the walk on reference cycles and on excessive nesting. It only
// tracks the references of the nodes being walked, so values shared by
// siblings are walked once per reference without error.
type Guard struct {
	maxDepth int
	active   map[visit]struct{}
}

// NewGuard creates a new Guard. A non-positive maxDepth selects DefaultMaxDepth.
func NewGuard(maxDepth int) *Guard {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Guard{maxDepth: maxDepth}
}

// Enter registers n as being walked. The returned leave function must be
// called once the walk of n and its descendants is over.
func (g *Guard) Enter(n *Node) (leave func(), err error) {
	if n.Depth() > g.maxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrMaxDepth, n.Depth(), g.maxDepth)
	}

	key, ok := reference(n.Value)
	if !ok {
		return func() {}, nil
	}

	if g.active == nil {
		g.active = make(map[visit]struct{})
	}

	if _, exists := g.active[key]; exists {
		return nil, fmt.Errorf("%w: %v at %s", ErrCycle, key.typ, n.Trail())
	}

	g.active[key] = struct{}{}
	return func() { delete(g.active, key) }, nil
}

// Active returns the number of references currently being walked.
func (g *Guard) Active() int {
	return len(g.active)
}

// reference returns the identity of the value v refers to, if any.
func reference(v reflect.Value) (visit, bool) {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return visit{}, false
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map:
		if v.IsNil() {
			return visit{}, false
		}
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return visit{}, false
		}
	default:
		return visit{}, false
	}

	return visit{ptr: v.Pointer(), typ: v.Type()}, true
}
