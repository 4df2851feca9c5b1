// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/vector"
	"github.com/jlisp/jl/internal/common/validate"
)

// Lists are copied down the spine. Strings are immutable and returned
// as they are.
func copySequence(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	switch c := v[0]; c.Kind() {
	case cell.Null, cell.String:
		return c, nil
	case cell.Pair:
		if !list.Proper(c) {
			return nil, throw.InvalidArg(c)
		}

		return list.Copy(c), nil
	case cell.Vector:
		return vector.New(vector.To(c).Elements()...), nil
	}

	return nil, throw.InvalidArg(v[0])
}

func elt(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	switch v[0].Kind() {
	case cell.Null, cell.Pair:
		return listRef(args)
	case cell.String:
		return stringRef(args)
	case cell.Vector:
		return vectorRef(args)
	}

	return nil, throw.InvalidArg(v[0])
}

func length(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	switch v[0].Kind() {
	case cell.Null, cell.Pair:
		return listLength(args)
	case cell.String:
		return stringLength(args)
	case cell.Vector:
		return vectorLength(args)
	}

	return nil, throw.InvalidArg(v[0])
}
