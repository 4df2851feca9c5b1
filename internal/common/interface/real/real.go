// Released under an MIT license. See LICENSE.

// Package real defines the interface for jl's numeric type.
package real

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
)

// I (real) is anything with a float64 value.
type I interface {
	Float() float64
}

// Is returns true if c has a numeric value.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// Number returns the value of c and true, or 0 and false if c is not a number.
func Number(c cell.I) (float64, bool) {
	r, ok := c.(I)
	if !ok {
		return 0, false
	}

	return r.Float(), true
}
