// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/errsys"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
)

// The registers for the evaluation loop. When fn is set the loop applies
// it to args. Otherwise it evaluates code in scope.
type registers struct {
	code  cell.I
	scope scope.I

	fn   cell.I
	args cell.I
}

// Tail arranges for fn to be applied to args by the evaluation loop.
func (r *registers) tail(fn, args cell.I) {
	r.fn, r.args = fn, args
}

// Resume arranges for code to be evaluated in s by the evaluation loop.
func (r *registers) resume(code cell.I, s scope.I) {
	r.code, r.scope = code, s
}

// Evaluate each element of the list args in the scope s.
func (t *T) evlis(args cell.I, s scope.I) (cell.I, error) {
	head := pair.Cons(pair.Null, pair.Null)
	last := head

	for ; pair.Is(args); args = pair.Cdr(args) {
		v, err := t.Eval(pair.Car(args), s)
		if err != nil {
			return nil, err
		}

		next := pair.Cons(v, pair.Null)
		pair.SetCdr(last, next)
		last = next
	}

	if args != pair.Null {
		return nil, throw.InvalidArg(args)
	}

	return pair.Cdr(head), nil
}

// Evaluate all but the last form in body and leave the last in r.code so
// that it is evaluated in tail position. An empty body is the empty list.
func (t *T) sequence(body cell.I, r *registers) (cell.I, error) {
	if !pair.Is(body) {
		return pair.Null, nil
	}

	for pair.Is(pair.Cdr(body)) {
		_, err := t.Eval(pair.Car(body), r.scope)
		if err != nil {
			return nil, err
		}

		body = pair.Cdr(body)
	}

	r.code = pair.Car(body)

	return nil, nil
}

// Convert a recovered panic into an invalid-arg condition. A Go error
// rides in the payload as an errsys value.
func fault(p any) error {
	if err, ok := p.(error); ok {
		if _, ok := throw.As(err); ok {
			return err
		}

		return throw.Signal("invalid-arg", errsys.New(err))
	}

	return throw.Signal("invalid-arg", str.New(fmt.Sprint(p)))
}
