// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to primitives.
package validate

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/pair"
)

// Variadic returns the first min to max arguments in actual followed by
// the remaining arguments. Fewer than min arguments is a missing-arg
// condition naming the first missing position.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if !pair.Is(actual) {
			if i < min {
				return nil, nil, throw.MissingArg(i)
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed returns between min and max arguments. Extra arguments are an
// invalid-arg condition naming the first extra argument.
func Fixed(actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if pair.Is(rest) {
		return nil, throw.InvalidArg(pair.Car(rest))
	}

	return expected, nil
}
