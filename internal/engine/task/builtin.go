// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/type/pair"
)

const primitive = "primitive"

// Command is a primitive that only needs its arguments.
type Command func(args cell.I) (cell.I, error)

// Builtin is a primitive that needs the task it is running in.
type Builtin func(t *T, args cell.I) (cell.I, error)

type action func(t *T, r *registers, args cell.I) (cell.I, error)

// Primitive is a procedure implemented in Go.
type Primitive struct {
	fn    action
	label string
}

// NewBuiltin creates a primitive named label from fn.
func NewBuiltin(label string, fn Builtin) *Primitive {
	return &Primitive{
		fn: func(t *T, _ *registers, args cell.I) (cell.I, error) {
			return value(fn(t, args))
		},
		label: label,
	}
}

// NewPrimitive creates a primitive named label from fn.
func NewPrimitive(label string, fn Command) *Primitive {
	return &Primitive{
		fn: func(_ *T, _ *registers, args cell.I) (cell.I, error) {
			return value(fn(args))
		},
		label: label,
	}
}

// Equal returns true if c is the same primitive.
func (p *Primitive) Equal(c cell.I) bool {
	return cell.I(p) == c
}

// Kind returns cell.Primitive.
func (p *Primitive) Kind() cell.Kind {
	return cell.Primitive
}

// Label returns the name of the primitive.
func (p *Primitive) Label() string {
	return p.label
}

// Name returns the name of the primitive type.
func (p *Primitive) Name() string {
	return primitive
}

// String returns the printed representation of the primitive.
func (p *Primitive) String() string {
	return "#<" + primitive + " " + p.label + ">"
}

func special(label string, fn action) *Primitive {
	return &Primitive{fn: fn, label: label}
}

// A primitive never finishes evaluation with a nil value.
func value(v cell.I, err error) (cell.I, error) {
	if err == nil && v == nil {
		v = pair.Null
	}

	return v, err
}
