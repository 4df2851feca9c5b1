// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/validate"
)

func atan(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	f, err := numbers(argList(v))
	if err != nil {
		return nil, err
	}

	if len(f) == 2 {
		return num.New(math.Atan2(f[0], f[1])), nil
	}

	return num.New(math.Atan(f[0])), nil
}

func decrement(args cell.I) (cell.I, error) {
	return fixed1(args, func(a float64) (float64, error) { return a - 1, nil })
}

func divide(args cell.I) (cell.I, error) {
	return fold(args, 1, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, divideByZero()
		}

		return a / b, nil
	})
}

func divideByZero() error {
	return throw.ArithError("Divide by zero")
}

func domainError() error {
	return throw.ArithError("Domain error")
}

func expt(args cell.I) (cell.I, error) {
	return fixed2(args, func(a, b float64) (float64, error) { return math.Pow(a, b), nil })
}

func increment(args cell.I) (cell.I, error) {
	return fixed1(args, func(a float64) (float64, error) { return a + 1, nil })
}

func logarithm(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	f, err := numbers(argList(v))
	if err != nil {
		return nil, err
	}

	for _, n := range f {
		if n < 0 {
			return nil, domainError()
		}
	}

	if len(f) == 2 {
		return num.New(math.Log(f[0]) / math.Log(f[1])), nil
	}

	return num.New(math.Log(f[0])), nil
}

func maximum(args cell.I) (cell.I, error) {
	return extreme(args, func(a, b float64) bool { return b > a })
}

func minimum(args cell.I) (cell.I, error) {
	return extreme(args, func(a, b float64) bool { return b < a })
}

func minus(args cell.I) (cell.I, error) {
	return fold(args, 0, func(a, b float64) (float64, error) { return a - b, nil })
}

// The result has the sign of the divisor.
func mod(args cell.I) (cell.I, error) {
	return fixed2(args, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, divideByZero()
		}

		c := math.Mod(a, b)
		if (b < 0 && c > 0) || (b > 0 && c < 0) {
			c += b
		}

		return c, nil
	})
}

func plus(args cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, f := range v {
		sum += f
	}

	return num.New(sum), nil
}

func product(args cell.I) (cell.I, error) {
	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	p := 1.0
	for _, f := range v {
		p *= f
	}

	return num.New(p), nil
}

func quotient(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	i, err := integers(argList(v))
	if err != nil {
		return nil, err
	}

	if i[1] == 0 {
		return nil, divideByZero()
	}

	return integerValue(i[0] / i[1]), nil
}

// The result has the sign of the dividend.
func remainder(args cell.I) (cell.I, error) {
	return fixed2(args, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, divideByZero()
		}

		return math.Mod(a, b), nil
	})
}

// Halves round away from zero.
func round(f float64) float64 {
	return math.Round(f)
}

func squareRoot(args cell.I) (cell.I, error) {
	return fixed1(args, func(a float64) (float64, error) {
		if a < 0 {
			return 0, domainError()
		}

		return math.Sqrt(a), nil
	})
}

func unary(op func(float64) float64) Command {
	return func(args cell.I) (cell.I, error) {
		return fixed1(args, func(a float64) (float64, error) { return op(a), nil })
	}
}

// Return the argument that wins every comparison with better.
func extreme(args cell.I, better func(a, b float64) bool) (cell.I, error) {
	_, _, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	best := v[0]
	for _, f := range v[1:] {
		if better(best, f) {
			best = f
		}
	}

	return num.New(best), nil
}

func fixed1(args cell.I, op func(float64) (float64, error)) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	a, err := number(v[0])
	if err != nil {
		return nil, err
	}

	f, err := op(a)
	if err != nil {
		return nil, err
	}

	return num.New(f), nil
}

func fixed2(args cell.I, op func(a, b float64) (float64, error)) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	f, err := numbers(argList(v))
	if err != nil {
		return nil, err
	}

	r, err := op(f[0], f[1])
	if err != nil {
		return nil, err
	}

	return num.New(r), nil
}

// Fold op over the arguments from left to right. A single argument is
// combined with identity first, so (- x) is 0 - x and (/ x) is 1 / x.
func fold(args cell.I, identity float64, op func(a, b float64) (float64, error)) (cell.I, error) {
	_, _, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	v, err := numbers(args)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		v = []float64{identity, v[0]}
	}

	acc := v[0]

	for _, f := range v[1:] {
		acc, err = op(acc, f)
		if err != nil {
			return nil, err
		}
	}

	return num.New(acc), nil
}
