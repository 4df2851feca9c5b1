// Released under an MIT license. See LICENSE.

/*
Jl is a small Lisp. Forms typed at the prompt are evaluated and the
result is printed:

	jl> (defun fact (n) (if (= n 0) 1 (* n (fact (- n 1)))))
	fact
	jl> (fact 10)
	3628800

A script and its arguments can be named on the command line. The
arguments are bound to *args*. See jl -h for other options.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/jlisp/jl/internal/engine"
	"github.com/jlisp/jl/internal/printer"
	"github.com/jlisp/jl/internal/system/config"
	"github.com/jlisp/jl/internal/system/options"
	"github.com/jlisp/jl/internal/ui"
)

func main() {
	options.Parse()

	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func logger() *slog.Logger {
	if !options.Debug() {
		return nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func run() error {
	c, err := config.Load(options.Config())
	if err != nil {
		return err
	}

	e, err := engine.New(os.Stdout, logger())
	if err != nil {
		return err
	}

	e.Args(options.Args())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, pattern := range c.Preload {
		_, err = e.Load(ctx, pattern)
		if err != nil {
			return err
		}
	}

	switch {
	case options.Script() != "":
		return script(ctx, e, options.Script())

	case options.Expression() != "":
		o, err := c.Options()
		if err != nil {
			return err
		}

		v, err := e.Read(ctx, "expression", strings.NewReader(options.Expression()))
		if err != nil {
			return err
		}

		fmt.Println(printer.Render(v, o))

	case options.Interactive():
		// The REPL installs its own interrupt handling.
		stop()

		return ui.Run(e, c)

	case options.Stdin():
		_, err = e.Read(ctx, "stdin", os.Stdin)

		return err
	}

	return nil
}

func script(ctx context.Context, e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = e.Read(ctx, path, f)

	return err
}
