// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed jl code.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/type/env"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/engine/boot"
	"github.com/jlisp/jl/internal/engine/commands"
	"github.com/jlisp/jl/internal/engine/loader"
	"github.com/jlisp/jl/internal/engine/task"
)

// T (engine) is a facade in front of the machinery for evaluating jl code.
type T struct {
	global scope.I
	task   *task.T
}

// New creates a new engine that writes output to out. The primitives
// live in the outermost frame. The boot script and user code are
// evaluated in the global frame in front of it.
func New(out io.Writer, log *slog.Logger) (*T, error) {
	primitives := env.New(nil)

	for name, fn := range commands.Functions() {
		primitives.Define(sym.New(name), task.NewPrimitive(name, fn))
	}

	task.Register(primitives)
	loader.Register(primitives)

	global := primitives.Extend()

	e := &T{
		global: global,
		task:   task.New(global, out, log),
	}

	_, err := loader.String(e.task, boot.Name, boot.Script(), global)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", boot.Name, err)
	}

	return e, nil
}

// Args binds *args* to the list of strings in args.
func (e *T) Args(args []string) {
	l := make([]cell.I, len(args))
	for i, a := range args {
		l[i] = str.New(a)
	}

	e.task.Define("*args*", list.New(l...))
}

// Evaluate evaluates c in the global scope. Evaluation is abandoned with
// an interrupted condition when ctx is done.
func (e *T) Evaluate(ctx context.Context, c cell.I) (cell.I, error) {
	return e.task.EvalContext(ctx, c, e.global)
}

// Load evaluates the files matching pattern in the global scope.
func (e *T) Load(ctx context.Context, pattern string) (cell.I, error) {
	var v cell.I

	err := e.under(ctx, func() (err error) {
		v, err = loader.Load(e.task, pattern, e.global)

		return err
	})

	return v, err
}

// Names returns the names visible in the global scope.
func (e *T) Names() []string {
	return e.global.Names()
}

// Read evaluates every form read from r in the global scope.
func (e *T) Read(ctx context.Context, name string, r io.Reader) (cell.I, error) {
	var v cell.I

	err := e.under(ctx, func() (err error) {
		v, err = loader.Read(e.task, name, r, e.global)

		return err
	})

	return v, err
}

// Run fn with the task evaluating under ctx.
func (e *T) under(ctx context.Context, fn func() error) error {
	return e.task.Within(ctx, fn)
}
