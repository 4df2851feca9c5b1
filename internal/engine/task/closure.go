// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
)

const closure = "lambda"

// Closure is a procedure written in jl. It captures, by reference, the
// scope it was created in.
type Closure struct {
	Params cell.I
	Body   cell.I
	Scope  scope.I

	label string
}

// Equal returns true if c is the same closure.
func (c *Closure) Equal(v cell.I) bool {
	return cell.I(c) == v
}

// Kind returns cell.Closure.
func (c *Closure) Kind() cell.Kind {
	return cell.Closure
}

// Label returns the name the closure was defined with, if any.
func (c *Closure) Label() string {
	return c.label
}

// Name returns the name of the closure type.
func (c *Closure) Name() string {
	return closure
}

// String returns the printed representation of the closure.
func (c *Closure) String() string {
	if c.label == "" {
		return "#<" + closure + ">"
	}

	return "#<" + closure + " " + c.label + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Closure

	// The type closure is a cell.
	_ = cell.I(&t)

	var p Primitive

	// The type primitive is a cell.
	_ = cell.I(&p)
}
