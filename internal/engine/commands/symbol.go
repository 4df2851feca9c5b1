// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/validate"
)

// Keywords are symbols too.
func isSymbol(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(sym.Is(v[0])), nil
}

func isKeyword(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(sym.IsKeyword(v[0])), nil
}

func stringToKeyword(args cell.I) (cell.I, error) {
	return intern(args, sym.Keyword)
}

func stringToSymbol(args cell.I) (cell.I, error) {
	return intern(args, sym.New)
}

func symbolToString(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !sym.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return strValue(sym.To(v[0]).String()), nil
}

func intern(args cell.I, create func(string) *sym.T) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	s, err := text(v[0])
	if err != nil {
		return nil, err
	}

	return create(s), nil
}
