// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for jl.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/printer"
	"github.com/jlisp/jl/internal/reader"
	"github.com/jlisp/jl/internal/system/config"
	"github.com/jlisp/jl/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(ctx context.Context, c cell.I) (cell.I, error)
	Names() []string
}

// T (ui) is a read-eval-print session.
type T struct {
	eval    Evaluator
	options printer.Options
	out     io.Writer
	prompts [2]string
	reader  *reader.T
}

type ui = T

// New creates a session that evaluates with e and prints to out.
func New(e Evaluator, c *config.T, out io.Writer) (*T, error) {
	o, err := c.Options()
	if err != nil {
		return nil, err
	}

	return &T{
		eval:    e,
		options: o,
		out:     out,
		prompts: [2]string{c.Prompt, c.Continuation},
		reader:  reader.New("stdin"),
	}, nil
}

// Run launches the UI. It returns when input ends.
func Run(e Evaluator, c *config.T) error {
	u, err := New(e, c, os.Stdout)
	if err != nil {
		return err
	}

	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	err = history.Load(c.History, cli.ReadHistory)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.Complete)

	for {
		merr := uncooked.ApplyMode()
		if merr != nil {
			return merr
		}

		line, err := cli.Prompt(u.Prompt())

		merr = cooked.ApplyMode()
		if merr != nil {
			return merr
		}

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			u.reader.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(u.out)

			return history.Save(c.History, cli.WriteHistory)
		default:
			return err
		}

		u.Line(line)
	}
}

// Complete returns completions for the symbol ending at pos in line.
func (u *ui) Complete(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]

	start := strings.LastIndexAny(head, " \t\n()'`,\"") + 1
	prefix := head[start:]

	if prefix == "" {
		return head, nil, tail
	}

	head = head[:start]

	for _, name := range u.eval.Names() {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}

	sort.Strings(completions)

	return head, completions, tail
}

// Line evaluates every form completed by line and prints the results.
// SIGINT cancels the evaluation in progress.
func (u *ui) Line(line string) {
	forms, err := u.reader.Scan(line + "\n")

	for _, c := range forms {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

		v, eerr := u.eval.Evaluate(ctx, c)

		stop()

		if eerr != nil {
			fmt.Fprintln(u.out, eerr.Error())

			continue
		}

		fmt.Fprintln(u.out, printer.Render(v, u.options))
	}

	if err != nil {
		fmt.Fprintln(u.out, err.Error())
	}
}

// Prompt returns the prompt for the next line of input.
func (u *ui) Prompt() string {
	if u.reader.Incomplete() {
		return u.prompts[1]
	}

	return u.prompts[0]
}
