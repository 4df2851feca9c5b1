// Released under an MIT license. See LICENSE.

// Package reader turns lines of interactive input into jl forms.
package reader

import (
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/parser"
)

// T (reader) accumulates lines until they hold complete forms.
type T struct {
	name    string
	pending string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Incomplete returns true if the reader holds part of a form.
func (r *reader) Incomplete() bool {
	return strings.TrimSpace(r.pending) != ""
}

// Reset discards any partial form.
func (r *reader) Reset() {
	r.pending = ""
}

// Scan adds line to any pending input and returns every complete form.
// Input that ends inside a form is kept until the next call. Any other
// read condition discards the pending input and is returned with the
// forms read before it.
func (r *reader) Scan(line string) ([]cell.I, error) {
	text := r.pending + line
	in := input.String(r.name, text)

	r.pending = ""

	var forms []cell.I

	for {
		start := in.Offset()

		c, err := parser.Read(in)
		if err == nil {
			forms = append(forms, c)

			continue
		}

		switch {
		case throw.Is(err, parser.EndOfStream):
			return forms, nil
		case throw.Is(err, parser.PrematureEndOfStream):
			r.pending = text[start:]

			return forms, nil
		}

		return forms, err
	}
}
