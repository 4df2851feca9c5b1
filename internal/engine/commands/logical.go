// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/truth"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/validate"
)

func isBoolean(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(boolean.Is(v[0])), nil
}

func not(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(!truth.Value(v[0])), nil
}
