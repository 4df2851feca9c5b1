// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/validate"
)

// Shift left for a positive count and right for a negative one.
func ash(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	i, err := integers(argList(v))
	if err != nil {
		return nil, err
	}

	if i[1] < 0 {
		return integerValue(i[0] >> uint64(-i[1])), nil
	}

	n, shift := i[0], uint64(i[1])
	if n == 0 {
		return integerValue(0), nil
	}

	// Bits shifted out of an int64 are an overflow, not a wrap.
	if r := n << shift; shift < 64 && r>>shift == n {
		return integerValue(r), nil
	}

	return nil, throw.ArithError("Integer overflow")
}

func gcd(args cell.I) (cell.I, error) {
	i, err := integers(args)
	if err != nil {
		return nil, err
	}

	var g int64

	for _, n := range i {
		if n < 0 {
			n = -n
		}

		for n != 0 {
			g, n = n, g%n
		}
	}

	return integerValue(g), nil
}

func logand(args cell.I) (cell.I, error) {
	return bitwise(args, -1, func(a, b int64) int64 { return a & b })
}

func logior(args cell.I) (cell.I, error) {
	return bitwise(args, 0, func(a, b int64) int64 { return a | b })
}

func lognot(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	i, err := integers(argList(v))
	if err != nil {
		return nil, err
	}

	return integerValue(^i[0]), nil
}

func logxor(args cell.I) (cell.I, error) {
	return bitwise(args, 0, func(a, b int64) int64 { return a ^ b })
}

func bitwise(args cell.I, identity int64, op func(a, b int64) int64) (cell.I, error) {
	i, err := integers(args)
	if err != nil {
		return nil, err
	}

	acc := identity
	for _, n := range i {
		acc = op(acc, n)
	}

	return integerValue(acc), nil
}
