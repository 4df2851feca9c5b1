// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/validate"
)

// Build a numeric comparison that holds for every adjacent pair of
// arguments.
func compare(ok func(a, b float64) bool) Command {
	return func(args cell.I) (cell.I, error) {
		_, _, err := validate.Variadic(args, 1, 1)
		if err != nil {
			return nil, err
		}

		v, err := numbers(args)
		if err != nil {
			return nil, err
		}

		for i := 1; i < len(v); i++ {
			if !ok(v[i-1], v[i]) {
				return boolean.False, nil
			}
		}

		return boolean.True, nil
	}
}

// Numbers and strings are values so eq? compares them by value.
func eq(args cell.I) (cell.I, error) {
	return eqv(args)
}

func equal(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(cell.Equal(v[0], v[1])), nil
}

func eqv(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(cell.Eqv(v[0], v[1])), nil
}
