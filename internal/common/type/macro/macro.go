// Released under an MIT license. See LICENSE.

// Package macro provides jl's macro type.
package macro

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
)

const name = "macro"

// T (macro) wraps a transformer procedure. The transformer is called with
// the unevaluated argument forms and its result is evaluated in place of
// the macro call.
type T struct {
	fn    cell.I
	label string
}

type macro = T

// New creates a macro with the transformer fn. The label may be empty.
func New(fn cell.I, label string) *macro {
	return &macro{fn: fn, label: label}
}

// Equal returns true if c is the same macro as m.
func (m *macro) Equal(c cell.I) bool {
	return Is(c) && m == To(c)
}

// Function returns the transformer for the macro m.
func (m *macro) Function() cell.I {
	return m.fn
}

// Kind returns cell.Macro.
func (m *macro) Kind() cell.Kind {
	return cell.Macro
}

// Label returns the macro's name, or the empty string if it has none.
func (m *macro) Label() string {
	return m.label
}

// Name returns the type name for the macro m.
func (m *macro) Name() string {
	return name
}

// String returns a non-readable representation of the macro m.
func (m *macro) String() string {
	if m.label == "" {
		return "#<macro>"
	}

	return "#<macro " + m.label + ">"
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
	var t macro

	// The macro type is a cell.
	_ = cell.I(&t)
}
