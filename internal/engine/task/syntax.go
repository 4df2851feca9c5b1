// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/type/vector"
	"github.com/jlisp/jl/internal/common/validate"
)

// Syntax is a special form. It either finishes evaluation with a value
// or an error, or returns nil, nil after updating r to continue.
type Syntax func(t *T, r *registers) (cell.I, error)

//nolint:gochecknoglobals
var (
	forms map[*sym.T]Syntax

	symBackquote = sym.New("backquote")
	symMacro     = sym.New("macro")
	symSplice    = sym.New("backquote-splice")
	symUnquote   = sym.New("backquote-unquote")
)

// IsSpecial returns true if s names a special form.
func IsSpecial(s cell.I) bool {
	k, ok := s.(*sym.T)
	if !ok {
		return false
	}

	_, ok = forms[k]

	return ok
}

func backquote(t *T, r *registers) (cell.I, error) {
	v, err := validate.Fixed(pair.Cdr(r.code), 1, 1)
	if err != nil {
		return nil, err
	}

	return t.template(v[0], r.scope)
}

func cond(t *T, r *registers) (cell.I, error) {
	for clauses := pair.Cdr(r.code); pair.Is(clauses); clauses = pair.Cdr(clauses) {
		clause := pair.Car(clauses)
		if !pair.Is(clause) {
			return nil, throw.InvalidArg(clause)
		}

		v, err := t.Eval(pair.Car(clause), r.scope)
		if err != nil {
			return nil, err
		}

		if !truthy(v) {
			continue
		}

		body := pair.Cdr(clause)
		if !pair.Is(body) {
			return v, nil
		}

		return t.sequence(body, r)
	}

	return boolean.False, nil
}

func define(t *T, r *registers) (cell.I, error) {
	v, rest, err := validate.Variadic(pair.Cdr(r.code), 1, 1)
	if err != nil {
		return nil, err
	}

	target := v[0]

	var value cell.I

	if pair.Is(target) {
		c := &Closure{
			Params: pair.Cdr(target),
			Body:   rest,
			Scope:  r.scope,
		}

		target = pair.Car(target)

		if s, ok := target.(*sym.T); ok {
			c.label = s.String()
		}

		value = c
	} else {
		v, err := validate.Fixed(rest, 0, 1)
		if err != nil {
			return nil, err
		}

		value = pair.Null

		if len(v) > 0 {
			value, err = t.Eval(v[0], r.scope)
			if err != nil {
				return nil, err
			}
		}

		if c, ok := value.(*Closure); ok && c.label == "" {
			if s, ok := target.(*sym.T); ok {
				c.label = s.String()
			}
		}
	}

	s, ok := target.(*sym.T)
	if !ok || s.IsKeyword() {
		return nil, throw.InvalidArg(target)
	}

	r.scope.Define(s, value)

	return s, nil
}

func conditional(t *T, r *registers) (cell.I, error) {
	v, rest, err := validate.Variadic(pair.Cdr(r.code), 2, 2)
	if err != nil {
		return nil, err
	}

	test, err := t.Eval(v[0], r.scope)
	if err != nil {
		return nil, err
	}

	if truthy(test) {
		r.code = v[1]

		return nil, nil
	}

	return t.sequence(rest, r)
}

func lambda(t *T, r *registers) (cell.I, error) {
	v, body, err := validate.Variadic(pair.Cdr(r.code), 1, 1)
	if err != nil {
		return nil, err
	}

	return &Closure{Params: v[0], Body: body, Scope: r.scope}, nil
}

func progn(t *T, r *registers) (cell.I, error) {
	return t.sequence(pair.Cdr(r.code), r)
}

func quote(_ *T, r *registers) (cell.I, error) {
	v, err := validate.Fixed(pair.Cdr(r.code), 1, 1)
	if err != nil {
		return nil, err
	}

	return v[0], nil
}

func set(t *T, r *registers) (cell.I, error) {
	v, err := validate.Fixed(pair.Cdr(r.code), 2, 2)
	if err != nil {
		return nil, err
	}

	s, ok := v[0].(*sym.T)
	if !ok || s.IsKeyword() {
		return nil, throw.InvalidArg(v[0])
	}

	value, err := t.Eval(v[1], r.scope)
	if err != nil {
		return nil, err
	}

	err = r.scope.Assign(s, value)
	if err != nil {
		return nil, err
	}

	return value, nil
}

func while(t *T, r *registers) (cell.I, error) {
	v, body, err := validate.Variadic(pair.Cdr(r.code), 1, 1)
	if err != nil {
		return nil, err
	}

	for {
		if err := t.interrupted(); err != nil {
			return nil, err
		}

		test, err := t.Eval(v[0], r.scope)
		if err != nil {
			return nil, err
		}

		if !truthy(test) {
			return test, nil
		}

		_, err = t.Progn(body, r.scope)
		if err != nil {
			return nil, err
		}
	}
}

// Expand a backquote template. Unquoted forms are evaluated in s and
// spliced forms are appended in place. Nested backquotes are not
// expanded.
func (t *T) template(c cell.I, s scope.I) (cell.I, error) {
	switch c.Kind() {
	case cell.Pair:
	case cell.Vector:
		l, err := t.template(list.New(vector.To(c).Elements()...), s)
		if err != nil {
			return nil, err
		}

		elements, _ := list.ToSlice(l)

		return vector.New(elements...), nil
	default:
		return c, nil
	}

	if pair.Car(c) == cell.I(symUnquote) {
		return t.Eval(pair.Cadr(c), s)
	}

	head := pair.Cons(pair.Null, pair.Null)
	last := head

	for ; pair.Is(c); c = pair.Cdr(c) {
		// A dotted unquote: (a . ,b) reads as (a backquote-unquote b).
		if pair.Car(c) == cell.I(symUnquote) {
			v, err := t.Eval(pair.Cadr(c), s)
			if err != nil {
				return nil, err
			}

			pair.SetCdr(last, v)

			return pair.Cdr(head), nil
		}

		e := pair.Car(c)

		if pair.Is(e) && pair.Car(e) == cell.I(symSplice) {
			v, err := t.Eval(pair.Cadr(e), s)
			if err != nil {
				return nil, err
			}

			if list.Cyclic(v) {
				return nil, throw.InvalidArg(v)
			}

			for ; pair.Is(v); v = pair.Cdr(v) {
				next := pair.Cons(pair.Car(v), pair.Null)
				pair.SetCdr(last, next)
				last = next
			}

			continue
		}

		v, err := t.template(e, s)
		if err != nil {
			return nil, err
		}

		next := pair.Cons(v, pair.Null)
		pair.SetCdr(last, next)
		last = next
	}

	pair.SetCdr(last, c)

	return pair.Cdr(head), nil
}

func truthy(c cell.I) bool {
	return c != pair.Null && c != boolean.False
}

func init() { //nolint:gochecknoinits
	forms = map[*sym.T]Syntax{
		symBackquote:      backquote,
		sym.New("cond"):   cond,
		sym.New("define"): define,
		sym.New("if"):     conditional,
		sym.New("lambda"): lambda,
		sym.New("progn"):  progn,
		sym.New("quote"):  quote,
		sym.New("set!"):   set,
		sym.New("while"):  while,
	}
}
