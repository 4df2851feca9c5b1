// Released under an MIT license. See LICENSE.

// Package integer converts a jl cell to an int64 value, if possible.
package integer

import (
	"math"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/real"
)

// Is returns true if c is a number that truncates to itself.
func Is(c cell.I) bool {
	f, ok := real.Number(c)

	return ok && f == math.Trunc(f) && !math.IsInf(f, 0)
}

// Value returns the int64 value for a cell and true, if it has one.
func Value(c cell.I) (int64, bool) {
	if !Is(c) {
		return 0, false
	}

	f, _ := real.Number(c)
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}

	return int64(f), true
}

// Index returns the value of c if it is a non-negative integer.
func Index(c cell.I) (int, bool) {
	i, ok := Value(c)
	if !ok || i < 0 || i > math.MaxInt32 {
		return 0, false
	}

	return int(i), true
}
