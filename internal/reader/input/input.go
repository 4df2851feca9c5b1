// Released under an MIT license. See LICENSE.

// Package input provides character streams over strings and readers.
package input

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/stream"
	"github.com/jlisp/jl/internal/common/struct/loc"
)

// T (input) is a character stream that tracks its location.
type T struct {
	r io.RuneReader

	err    error
	last   rune
	size   int
	back   bool
	ended  bool
	offset int

	current  loc.T
	previous loc.T
}

type input = T

// New creates a stream named name that reads from r.
func New(name string, r io.Reader) *input {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}

	return &input{
		r:       rr,
		current: loc.T{Char: 1, Line: 1, Name: name},
	}
}

// String creates a stream named name over the text s.
func String(name, s string) *input {
	return New(name, strings.NewReader(s))
}

// Err returns the first error, other than io.EOF, from the underlying reader.
func (i *input) Err() error {
	return i.err
}

// GetChar returns the next character, or false at the end of the stream.
func (i *input) GetChar() (rune, bool) {
	if i.back {
		i.back = false

		if i.ended {
			return 0, false
		}

		i.advance()

		return i.last, true
	}

	if i.ended && i.err != nil {
		return 0, false
	}

	r, size, err := i.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			i.err = err
		}

		i.ended = true

		return 0, false
	}

	i.ended = false
	i.last = r
	i.size = size

	i.advance()

	return r, true
}

// Loc returns the location of the next character.
func (i *input) Loc() loc.T {
	return i.current
}

// Offset returns the number of bytes consumed so far.
func (i *input) Offset() int {
	return i.offset
}

// UngetChar pushes back the last character returned by GetChar.
func (i *input) UngetChar() {
	if i.back {
		return
	}

	i.back = true

	if !i.ended {
		i.current = i.previous
		i.offset -= i.size
	}
}

func (i *input) advance() {
	i.previous = i.current
	i.offset += i.size

	if i.last == '\n' {
		i.current.Line++
		i.current.Char = 1
	} else {
		i.current.Char++
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t input

	// The input type is a stream.
	_ = stream.I(&t)
}
