// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate jl code.
//
// Evaluation is a loop over a small set of registers. A form in tail
// position replaces the registers' code rather than being evaluated by a
// nested call, so tail calls run in constant Go stack space.
package task

import (
	"context"
	"io"
	"log/slog"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/macro"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/printer"
)

// T (task) encapsulates a thread of evaluation.
type T struct {
	ctx    context.Context //nolint:containedctx
	global scope.I
	log    *slog.Logger
	out    io.Writer
	trace  bool

	gensym int
}

// New creates a new task that evaluates code in global and writes output
// to out. A nil logger discards log records.
func New(global scope.I, out io.Writer, log *slog.Logger) *T {
	if log == nil {
		log = slog.New(discard{})
	}

	return &T{
		ctx:    context.Background(),
		global: global,
		log:    log,
		out:    out,
		trace:  log.Enabled(context.Background(), slog.LevelDebug),
	}
}

// Apply calls the procedure fn with the already evaluated arguments args.
func (t *T) Apply(fn, args cell.I) (cell.I, error) {
	return t.run(&registers{fn: fn, args: args, scope: t.global})
}

// Define binds the name k to v in the global scope.
func (t *T) Define(k string, v cell.I) {
	t.global.Define(sym.New(k), v)
}

// Eval evaluates the form code in the scope s.
func (t *T) Eval(code cell.I, s scope.I) (cell.I, error) {
	return t.run(&registers{code: code, scope: s})
}

// EvalContext evaluates code in the scope s. Evaluation stops with an
// interrupted condition once ctx is done.
func (t *T) EvalContext(ctx context.Context, code cell.I, s scope.I) (v cell.I, err error) {
	err = t.Within(ctx, func() error {
		v, err = t.Eval(code, s)

		return err
	})

	return v, err
}

// Global returns the task's global scope.
func (t *T) Global() scope.I {
	return t.global
}

// Logger returns the task's logger.
func (t *T) Logger() *slog.Logger {
	return t.log
}

// Progn evaluates each form in body in the scope s and returns the value
// of the last. An empty body evaluates to the empty list.
func (t *T) Progn(body cell.I, s scope.I) (cell.I, error) {
	r := &registers{scope: s}

	v, err := t.sequence(body, r)
	if err != nil || v != nil {
		return v, err
	}

	return t.run(r)
}

// Apply fn to args. Closures continue with their body in r.
func (t *T) call(fn, args cell.I, r *registers) (cell.I, error) {
	switch fn := fn.(type) {
	case *Closure:
		s, err := t.bind(fn, args)
		if err != nil {
			return nil, err
		}

		if t.trace {
			t.debug("call", fn, "args", form{args})
		}

		r.scope = s

		return t.sequence(fn.Body, r)

	case *Primitive:
		return fn.fn(t, r, args)
	}

	return nil, throw.Signal("invalid-function", fn)
}

// Log msg about c at debug level. Cells passed in args should be wrapped
// in form so they are only rendered when the record is handled.
func (t *T) debug(msg string, c cell.I, args ...any) {
	if !t.trace {
		return
	}

	args = append(args, slog.Any("form", form{c}))

	t.log.Debug(msg, args...)
}

func (t *T) interrupted() error {
	if t.ctx.Err() == nil {
		return nil
	}

	return throw.Signal("interrupted")
}

// The run loop. Each iteration either finishes with a value or error, or
// updates the registers and continues.
func (t *T) run(r *registers) (v cell.I, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, fault(p)
		}
	}()

	for {
		if err := t.interrupted(); err != nil {
			return nil, err
		}

		if r.fn != nil {
			fn, args := r.fn, r.args
			r.fn, r.args = nil, nil

			v, err := t.call(fn, args, r)
			if err != nil || v != nil {
				return v, err
			}

			continue
		}

		switch r.code.Kind() {
		case cell.Symbol:
			return r.scope.Lookup(r.code)
		case cell.Pair:
		default:
			return r.code, nil
		}

		head := pair.Car(r.code)

		if s, ok := head.(*sym.T); ok {
			if form, ok := forms[s]; ok {
				v, err := form(t, r)
				if err != nil || v != nil {
					return v, err
				}

				continue
			}
		}

		fn, err := t.Eval(head, r.scope)
		if err != nil {
			return nil, err
		}

		m, err := transformer(fn)
		if err != nil {
			return nil, err
		}

		if m != nil {
			t.debug("expand", r.code)

			expansion, err := t.Apply(m, pair.Cdr(r.code))
			if err != nil {
				return nil, err
			}

			r.code = expansion

			continue
		}

		args, err := t.evlis(pair.Cdr(r.code), r.scope)
		if err != nil {
			return nil, err
		}

		r.fn, r.args = fn, args
	}
}

// Return the transformer procedure if fn is a macro.
func transformer(fn cell.I) (cell.I, error) {
	var m cell.I

	switch {
	case macro.Is(fn):
		m = macro.To(fn).Function()
	case pair.Is(fn) && pair.Car(fn) == cell.I(symMacro):
		m = pair.Cdr(fn)
	default:
		return nil, nil
	}

	if !IsProcedure(m) {
		return nil, throw.Signal("invalid-macro", fn)
	}

	return m, nil
}

// IsProcedure returns true if c can be applied.
func IsProcedure(c cell.I) bool {
	switch c.(type) {
	case *Closure, *Primitive:
		return true
	}

	return false
}

// Within calls fn with the task evaluating under ctx.
func (t *T) Within(ctx context.Context, fn func() error) error {
	saved := t.ctx
	t.ctx = ctx

	defer func() {
		t.ctx = saved
	}()

	return fn()
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

// A cell rendered for a log record.
type form struct {
	cell.I
}

func (f form) LogValue() slog.Value {
	return slog.StringValue(printer.Display(f.I))
}
