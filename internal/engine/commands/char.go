// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode/utf8"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/char"
	"github.com/jlisp/jl/internal/common/validate"
)

func charToInteger(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !char.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return integerValue(int64(char.To(v[0]).Rune())), nil
}

func compareChars(ok func(a, b rune) bool) Command {
	return func(args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, err
		}

		for _, c := range v {
			if !char.Is(c) {
				return nil, throw.InvalidArg(c)
			}
		}

		return boolean.Bool(ok(char.To(v[0]).Rune(), char.To(v[1]).Rune())), nil
	}
}

func integerToChar(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	i, err := index(v[0])
	if err != nil || !utf8.ValidRune(rune(i)) {
		return nil, throw.InvalidArg(v[0])
	}

	return char.New(rune(i)), nil
}

func isChar(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(char.Is(v[0])), nil
}
