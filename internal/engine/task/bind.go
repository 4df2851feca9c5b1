// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
)

// Parameter list states. Markers only move the binder forward.
const (
	required = iota
	optional
	key
	rest
	done
)

//nolint:gochecknoglobals
var (
	markOptional = sym.New("#!optional")
	markKey      = sym.New("#!key")
	markRest     = sym.New("#!rest")
)

type binder struct {
	*T

	spec  cell.I
	frame scope.I
	args  []cell.I
	used  map[int]bool

	i     int
	state int
}

// Bind creates a frame extending c's scope with c's parameters bound to
// the values in args.
func (t *T) bind(c *Closure, args cell.I) (scope.I, error) {
	actual, _ := list.ToSlice(args)

	b := &binder{
		T:     t,
		spec:  c.Params,
		frame: c.Scope.Extend(),
		args:  actual,
		used:  map[int]bool{},
	}

	params := c.Params
	for ; pair.Is(params); params = pair.Cdr(params) {
		err := b.param(pair.Car(params))
		if err != nil {
			return nil, err
		}
	}

	if b.state == rest {
		return nil, b.invalid(markRest)
	}

	if params != pair.Null {
		if s, ok := params.(*sym.T); ok && !s.IsKeyword() && b.state < done {
			b.frame.Define(s, b.remaining())
		} else {
			return nil, b.invalid(params)
		}
	}

	if t.trace {
		t.debug("bind", c.Params, "label", c.label)
	}

	return b.frame, nil
}

func (b *binder) invalid(param cell.I) error {
	return throw.InvalidLambda(b.spec, param)
}

// Advance the state for a marker. Markers may not repeat or go back.
func (b *binder) mark(param *sym.T) (bool, error) {
	next := -1

	switch param {
	case markOptional:
		next = optional
	case markKey:
		next = key
	case markRest:
		next = rest
	default:
		return false, nil
	}

	if b.state >= rest || next <= b.state {
		return true, b.invalid(param)
	}

	b.state = next

	return true, nil
}

func (b *binder) param(param cell.I) error {
	name, dflt, err := b.split(param)
	if err != nil {
		return err
	}

	if dflt == nil {
		ok, err := b.mark(name)
		if ok || err != nil {
			return err
		}
	}

	switch b.state {
	case required:
		if dflt != nil {
			return b.invalid(param)
		}

		if b.i >= len(b.args) {
			return throw.MissingArg(b.i)
		}

		b.frame.Define(name, b.args[b.i])
		b.i++

	case optional:
		if b.i < len(b.args) {
			b.frame.Define(name, b.args[b.i])
			b.i++

			return nil
		}

		return b.fallback(name, dflt)

	case key:
		k := sym.Keyword(name.String())

		for j := b.i; j < len(b.args)-1; j++ {
			if b.used[j] || b.args[j] != cell.I(k) {
				continue
			}

			b.used[j] = true
			b.used[j+1] = true

			b.frame.Define(name, b.args[j+1])

			return nil
		}

		return b.fallback(name, dflt)

	case rest:
		if dflt != nil {
			return b.invalid(param)
		}

		b.frame.Define(name, b.remaining())
		b.state = done

	default:
		return b.invalid(param)
	}

	return nil
}

// Bind name to the value of dflt evaluated in the frame built so far.
func (b *binder) fallback(name *sym.T, dflt cell.I) error {
	if dflt == nil || dflt == pair.Null {
		b.frame.Define(name, pair.Null)

		return nil
	}

	v, err := b.Eval(pair.Car(dflt), b.frame)
	if err != nil {
		return err
	}

	b.frame.Define(name, v)

	return nil
}

// The arguments from the current position that were not consumed as
// keyword arguments.
func (b *binder) remaining() cell.I {
	var l []cell.I

	for j := b.i; j < len(b.args); j++ {
		if !b.used[j] {
			l = append(l, b.args[j])
		}
	}

	return list.New(l...)
}

// Split a parameter into its name and, for (name default) parameters,
// the list holding the default expression.
func (b *binder) split(param cell.I) (*sym.T, cell.I, error) {
	if s, ok := param.(*sym.T); ok && !s.IsKeyword() {
		return s, nil, nil
	}

	if !pair.Is(param) {
		return nil, nil, b.invalid(param)
	}

	s, ok := pair.Car(param).(*sym.T)
	if !ok || s.IsKeyword() {
		return nil, nil, b.invalid(param)
	}

	return s, pair.Cdr(param), nil
}
