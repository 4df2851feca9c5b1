// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/validate"
)

// The car of the empty list is the empty list.
func car(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return first(v[0])
}

func cdr(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return rest(v[0])
}

func cons(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return pair.Cons(v[0], v[1]), nil
}

// Compose car and cdr. The rightmost accessor is applied first.
func cxr(accessors ...Command) Command {
	return func(args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 1, 1)
		if err != nil {
			return nil, err
		}

		c := v[0]

		for i := len(accessors) - 1; i >= 0; i-- {
			c, err = accessors[i](pair.Cons(c, pair.Null))
			if err != nil {
				return nil, err
			}
		}

		return c, nil
	}
}

func first(c cell.I) (cell.I, error) {
	if c == pair.Null {
		return pair.Null, nil
	}

	if !pair.Is(c) {
		return nil, throw.InvalidArg(c)
	}

	return pair.Car(c), nil
}

func isNull(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(v[0] == pair.Null), nil
}

func isPair(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(pair.Is(v[0])), nil
}

func rest(c cell.I) (cell.I, error) {
	if c == pair.Null {
		return pair.Null, nil
	}

	if !pair.Is(c) {
		return nil, throw.InvalidArg(c)
	}

	return pair.Cdr(c), nil
}

func setCar(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	if !pair.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	pair.SetCar(v[0], v[1])

	return v[1], nil
}

func setCdr(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	if !pair.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	pair.SetCdr(v[0], v[1])

	return v[1], nil
}
