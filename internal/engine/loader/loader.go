// Released under an MIT license. See LICENSE.

// Package loader reads and evaluates jl source files.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/validate"
	"github.com/jlisp/jl/internal/engine/task"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/parser"
	"github.com/michaelmacinnis/adapted"
)

const noSuchFile = "No such file"

// Expand returns the files matching the glob pattern, in lexical order.
// A pattern without wildcards is returned as is, whether or not the file
// exists. A malformed pattern wraps adapted.ErrBadPattern.
func Expand(pattern string) ([]string, error) {
	if !hasMeta(pattern) {
		return []string{pattern}, nil
	}

	matches, err := adapted.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pattern, err)
	}

	return matches, nil
}

// Load evaluates every form in each file matching pattern in the scope s
// and returns the value of the last form evaluated.
func Load(t *task.T, pattern string, s scope.I) (cell.I, error) {
	paths, err := Expand(pattern)
	if err != nil {
		return nil, throw.InvalidArg(str.New(pattern))
	}

	if len(paths) == 0 {
		return nil, throw.FileError(noSuchFile, pattern)
	}

	var v cell.I = pair.Null

	for _, path := range paths {
		v, err = file(t, path, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Read evaluates every form read from r in the scope s. The name is used
// in the location of read conditions. Reading stops cleanly at the end of
// the stream. Any other read condition aborts the load.
func Read(t *task.T, name string, r io.Reader, s scope.I) (cell.I, error) {
	t.Logger().Debug("load", "name", name)

	p := parser.New(input.New(name, r))

	var v cell.I = pair.Null

	for {
		c, err := p.Read()
		if throw.Is(err, parser.EndOfStream) {
			return v, nil
		} else if err != nil {
			return nil, err
		}

		v, err = t.Eval(c, s)
		if err != nil {
			return nil, err
		}
	}
}

// Register defines the load primitive in s.
func Register(s scope.I) {
	s.Define(sym.New("load"), task.NewBuiltin("load", load))
}

// String evaluates every form in text in the scope s.
func String(t *task.T, name, text string, s scope.I) (cell.I, error) {
	return Read(t, name, strings.NewReader(text), s)
}

func file(t *task.T, path string, s scope.I) (cell.I, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, throw.FileError(noSuchFile, path)
	}
	defer f.Close()

	return Read(t, path, f, s)
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}

// Load into the global scope or the environment passed as the second
// argument.
func load(t *task.T, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	if !str.Is(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	s := t.Global()

	if len(v) > 1 {
		e, ok := scope.To(v[1])
		if !ok {
			return nil, throw.InvalidArg(v[1])
		}

		s = e
	}

	return Load(t, str.To(v[0]).String(), s)
}
