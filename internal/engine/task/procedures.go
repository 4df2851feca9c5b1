// Released under an MIT license. See LICENSE.

package task

import (
	"context"
	"fmt"

	"github.com/jlisp/jl/internal/common"
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/errsys"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/macro"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/validate"
	"github.com/jlisp/jl/internal/printer"
)

// Register defines the primitives that need access to the evaluator in s.
func Register(s scope.I) {
	for _, p := range procedures() {
		s.Define(sym.New(p.label), p)
	}
}

func procedures() []*Primitive {
	return []*Primitive{
		special("apply", apply),
		special("call-with-catch", callWithCatch),
		special("call-with-error-handlers", callWithErrorHandlers),
		special("call-with-unwind-protect", callWithUnwindProtect),
		special("environment", environment),
		special("eval", eval),
		special("funcall", funcall),

		NewBuiltin("display", output(printer.Display, false)),
		NewBuiltin("gensym", gensym),
		NewBuiltin("newline", newline),
		NewBuiltin("print", output(printer.Write, true)),
		NewBuiltin("write", output(printer.Write, false)),

		NewPrimitive("macro-function", macroFunction),
		NewPrimitive("macro-name", macroName),
		NewPrimitive("macro?", isMacro),
		NewPrimitive("make-macro", makeMacro),
		NewPrimitive("procedure?", isProcedure),
		NewPrimitive("signal", signal),
		NewPrimitive("throw", throwTo),
	}
}

func apply(_ *T, r *registers, args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 2, 2)
	if err != nil {
		return nil, err
	}

	fn := v[0]

	spread, _ := list.ToSlice(pair.Cons(v[1], rest))
	last := spread[len(spread)-1]

	if !list.Proper(last) {
		return nil, throw.InvalidArg(last)
	}

	r.tail(fn, list.Star(last, spread[:len(spread)-1]...))

	return nil, nil
}

// Apply thunk, returning the value of any throw to tag.
func callWithCatch(t *T, _ *registers, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	tag, thunk := v[0], v[1]

	result, err := t.Apply(thunk, pair.Null)
	if err == nil {
		return result, nil
	}

	e, ok := throw.As(err)
	if !ok || t.ctx.Err() != nil || !cell.Eqv(e.Tag, tag) {
		return nil, err
	}

	return e.Value, nil
}

// Apply thunk. A condition is passed to the first handler whose type
// spec matches the condition's type.
func callWithErrorHandlers(t *T, r *registers, args cell.I) (cell.I, error) {
	v, handlers, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	result, err := t.Apply(v[0], pair.Null)
	if err == nil {
		return result, nil
	}

	e, ok := throw.As(err)
	if !ok || !e.IsCondition() || t.ctx.Err() != nil {
		return nil, err
	}

	kind := e.Type()

	for ; pair.Is(handlers); handlers = pair.Cdr(handlers) {
		h := pair.Car(handlers)
		if !pair.Is(h) {
			return nil, throw.InvalidArg(h)
		}

		if !handles(pair.Car(h), kind) {
			continue
		}

		r.tail(pair.Cdr(h), list.New(e.Value))

		return nil, nil
	}

	return nil, err
}

// Apply thunk and then cleanup. Cleanup runs even when evaluation has
// been cancelled. An error from cleanup replaces the outcome of thunk.
func callWithUnwindProtect(t *T, _ *registers, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	result, err := t.Apply(v[0], pair.Null)

	saved := t.ctx
	t.ctx = context.WithoutCancel(saved)

	_, cerr := t.Apply(v[1], pair.Null)

	t.ctx = saved

	if cerr != nil {
		return nil, cerr
	}

	return result, err
}

func display(t *T, c cell.I, render func(cell.I) string) error {
	_, err := fmt.Fprint(t.out, render(c))
	if err != nil {
		return throw.Signal("file-error", errsys.New(err))
	}

	return nil
}

func environment(_ *T, r *registers, args cell.I) (cell.I, error) {
	_, err := validate.Fixed(args, 0, 0)
	if err != nil {
		return nil, err
	}

	return r.scope, nil
}

// Evaluate form in env, or the global scope, in tail position.
func eval(t *T, r *registers, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	s := t.global

	if len(v) > 1 {
		e, ok := scope.To(v[1])
		if !ok {
			return nil, throw.InvalidArg(v[1])
		}

		s = e
	}

	r.resume(v[0], s)

	return nil, nil
}

func funcall(_ *T, r *registers, args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	r.tail(v[0], rest)

	return nil, nil
}

// Create a symbol that is not already interned.
func gensym(t *T, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	prefix := "g"

	if len(v) > 0 {
		s, ok := common.String(v[0])
		if !ok {
			return nil, throw.InvalidArg(v[0])
		}

		prefix = s
	}

	for {
		t.gensym++

		name := fmt.Sprintf("%s%d", prefix, t.gensym)
		if !sym.Interned(name) {
			return sym.New(name), nil
		}
	}
}

// Does the handler type spec match the condition type kind?
func handles(spec, kind cell.I) bool {
	if spec == cell.I(throw.Error) || spec == kind {
		return true
	}

	if list.Cyclic(spec) {
		return false
	}

	for ; pair.Is(spec); spec = pair.Cdr(spec) {
		e := pair.Car(spec)
		if e == kind || e == cell.I(throw.Error) {
			return true
		}
	}

	return false
}

func isMacro(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(macro.Is(v[0])), nil
}

func isProcedure(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(IsProcedure(v[0])), nil
}

func macroFunction(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !macro.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return macro.To(v[0]).Function(), nil
}

func macroName(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !macro.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	label := macro.To(v[0]).Label()
	if label == "" {
		return boolean.False, nil
	}

	return sym.New(label), nil
}

func makeMacro(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	if !IsProcedure(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	label := ""

	if len(v) > 1 {
		s, ok := common.String(v[1])
		if !ok {
			return nil, throw.InvalidArg(v[1])
		}

		label = s
	}

	return macro.New(v[0], label), nil
}

func newline(t *T, args cell.I) (cell.I, error) {
	_, err := validate.Fixed(args, 0, 0)
	if err != nil {
		return nil, err
	}

	return pair.Null, display(t, pair.Null, func(cell.I) string { return "\n" })
}

func output(render func(cell.I) string, nl bool) Builtin {
	return func(t *T, args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 1, 1)
		if err != nil {
			return nil, err
		}

		err = display(t, v[0], render)
		if err == nil && nl {
			_, err = newline(t, pair.Null)
		}

		return v[0], err
	}
}

func signal(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return nil, throw.New(throw.Error, v[0])
}

func throwTo(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return nil, throw.New(v[0], v[1])
}
