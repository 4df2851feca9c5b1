// Released under an MIT license. See LICENSE.

// Package vector provides jl's vector type.
package vector

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
)

const name = "vector"

// T (vector) is a fixed length, mutable, 0-indexed sequence of cells.
type T struct {
	v []cell.I
}

type vector = T

// New creates a vector holding elements.
func New(elements ...cell.I) *vector {
	v := make([]cell.I, len(elements))
	copy(v, elements)

	return &vector{v: v}
}

// Make creates a vector of length n with every element set to fill.
func Make(n int, fill cell.I) *vector {
	v := make([]cell.I, n)
	for i := range v {
		v[i] = fill
	}

	return &vector{v: v}
}

// Elements returns the elements of the vector v. The slice is shared.
func (v *vector) Elements() []cell.I {
	return v.v
}

// Equal returns true if c is a vector with elements equal to v's.
func (v *vector) Equal(c cell.I) bool {
	return cell.Equal(v, c)
}

// EqualSeen compares the elements of v and c.
func (v *vector) EqualSeen(c cell.I, s cell.Seen) bool {
	o, ok := c.(*vector)
	if !ok || len(o.v) != len(v.v) {
		return false
	}

	for i, e := range v.v {
		if !cell.EqualSeen(e, o.v[i], s) {
			return false
		}
	}

	return true
}

// Get returns the element at index i. The index must be in range.
func (v *vector) Get(i int) cell.I {
	return v.v[i]
}

// Kind returns cell.Vector.
func (v *vector) Kind() cell.Kind {
	return cell.Vector
}

// Len returns the number of elements in the vector v.
func (v *vector) Len() int {
	return len(v.v)
}

// Name returns the name of the vector type.
func (v *vector) Name() string {
	return name
}

// Set replaces the element at index i. The index must be in range.
func (v *vector) Set(i int, c cell.I) {
	v.v[i] = c
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type holds other cells.
	_ = cell.Container(&t)
}
