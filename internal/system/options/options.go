// Released under an MIT license. See LICENSE.

// Package options parses the jl command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "jl 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	config      string
	debug       bool
	expression  string
	interactive bool
	script      string
	stdin       bool
	usage       = `jl

Usage:
  jl [-d] [-c FILE] SCRIPT [ARGUMENTS...]
  jl [-d] [-c FILE] -e EXPRESSION
  jl [-d] [-c FILE] [-i] [-s]
  jl -h
  jl -v

Arguments:
  ARGUMENTS  Bound, as a list of strings, to *args*.
  SCRIPT     Path to jl script.

Options:
  -c, --config=FILE            Read configuration from FILE.
  -d, --debug                  Log evaluator activity to stderr.
  -e, --evaluate=EXPRESSION    Evaluate EXPRESSION and print the result.
  -i, --interactive            Invert interactive mode.
  -s, --stdin                  Read forms from stdin.
  -h, --help                   Display this help.
  -v, --version                Print jl version.

If jl's stdin is a TTY, and jl was invoked with no script or expression,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Args returns the script arguments.
func Args() []string {
	return args
}

// Config returns the path given with -c, if any.
func Config() string {
	return config
}

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Expression returns the expression given with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if the REPL should prompt and edit lines.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Help and version requests exit.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	config, _ = opts.String("--config")
	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("--evaluate")
	stdin, _ = opts.Bool("--stdin")

	script, _ = opts.String("SCRIPT")
	if script == "" && expression == "" {
		interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	args, _ = opts["ARGUMENTS"].([]string)
	if script != "" {
		args = append([]string{script}, args...)
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Stdin returns true if forms should be read from stdin.
func Stdin() bool {
	return stdin || (script == "" && expression == "")
}
