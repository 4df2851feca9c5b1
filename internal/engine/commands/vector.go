// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/vector"
	"github.com/jlisp/jl/internal/common/validate"
)

func isVector(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(vector.Is(v[0])), nil
}

func makeVector(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	n, err := index(v[0])
	if err != nil {
		return nil, err
	}

	var fill cell.I = pair.Null
	if len(v) > 1 {
		fill = v[1]
	}

	return vector.Make(n, fill), nil
}

func makeVectorOf(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	return vector.New(v...), nil
}

// Return the vector and a valid index into it.
func slot(vec, i cell.I) (*vector.T, int, error) {
	if !vector.Is(vec) {
		return nil, 0, throw.InvalidArg(vec)
	}

	t := vector.To(vec)

	n, err := index(i)
	if err != nil || n >= t.Len() {
		return nil, 0, throw.InvalidArg(i)
	}

	return t, n, nil
}

func vectorLength(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !vector.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return integerValue(int64(vector.To(v[0]).Len())), nil
}

func vectorRef(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	t, i, err := slot(v[0], v[1])
	if err != nil {
		return nil, err
	}

	return t.Get(i), nil
}

func vectorSet(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 3, 3)
	if err != nil {
		return nil, err
	}

	t, i, err := slot(v[0], v[1])
	if err != nil {
		return nil, err
	}

	t.Set(i, v[2])

	return v[2], nil
}
