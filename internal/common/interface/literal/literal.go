// Released under an MIT license. See LICENSE.

// Package literal defines the interface for jl types that can be expressed as literals.
package literal

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
)

// I (literal) is any atom that can be expressed as readable text.
type I interface {
	Literal() string
}

// Is returns true if c has a literal representation.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		// Containers and procedures are rendered by the printer.
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
