// Released under an MIT license. See LICENSE.

// Package scope defines the interface for jl's environments.
package scope

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/reference"
)

// I (scope) is a chain of frames mapping symbol names to values.
type I interface {
	cell.I

	Enclosing() I
	Extend() I

	Assign(k cell.I, v cell.I) error
	Define(k cell.I, v cell.I)
	Lookup(k cell.I) (cell.I, error)
	Resolve(k string) reference.I

	Names() []string
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; Otherwise it returns false.
func To(c cell.I) (scope, bool) {
	t, ok := c.(scope)

	return t, ok
}
