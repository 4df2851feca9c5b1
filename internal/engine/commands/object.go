// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/obj"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/validate"
)

func isObject(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(obj.Is(v[0])), nil
}

// Create an object from alternating keys and values.
func makeObject(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	if len(v)%2 != 0 {
		return nil, throw.MissingArg(len(v))
	}

	o := obj.New()

	for i := 0; i < len(v); i += 2 {
		k, ok := obj.Key(v[i])
		if !ok {
			return nil, throw.InvalidArg(v[i])
		}

		o.Set(k, v[i+1])
	}

	return o, nil
}

// Return the object and key named by the first two arguments.
func property(v []cell.I) (*obj.T, string, error) {
	if !obj.Is(v[0]) {
		return nil, "", throw.InvalidArg(v[0])
	}

	k, ok := obj.Key(v[1])
	if !ok {
		return nil, "", throw.InvalidArg(v[1])
	}

	return obj.To(v[0]), k, nil
}

func objectDefines(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	o, k, err := property(v)
	if err != nil {
		return nil, err
	}

	_, ok := o.Get(k)

	return boolean.Bool(ok), nil
}

func objectDelete(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	o, k, err := property(v)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(o.Del(k)), nil
}

func objectKeys(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !obj.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	keys := obj.To(v[0]).Keys()
	l := make([]cell.I, len(keys))

	for i, k := range keys {
		l[i] = strValue(k)
	}

	return list.New(l...), nil
}

// Missing keys have the value dflt, or the empty list.
func objectRef(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 3)
	if err != nil {
		return nil, err
	}

	o, k, err := property(v)
	if err != nil {
		return nil, err
	}

	if c, ok := o.Get(k); ok {
		return c, nil
	}

	if len(v) > 2 {
		return v[2], nil
	}

	return pair.Null, nil
}

func objectSet(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 3, 3)
	if err != nil {
		return nil, err
	}

	o, k, err := property(v)
	if err != nil {
		return nil, err
	}

	o.Set(k, v[2])

	return v[2], nil
}
