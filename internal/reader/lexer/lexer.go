// Released under an MIT license. See LICENSE.

// Package lexer scans jl atoms: numbers and symbols.
//
// The scanner adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
// Each state consumes one character and returns the next state. A token
// stays a candidate number only while it follows the numeric grammar:
// an optional sign, optional #b #o #d #x #e #i prefixes, then digits with
// one '.', one '/' or one exponent.
package lexer

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jlisp/jl/internal/common/interface/stream"
)

var (
	// ErrPremature is returned when the stream ends inside an escape.
	ErrPremature = errors.New("premature end of stream")

	// ErrSyntax is returned for an empty token.
	ErrSyntax = errors.New("invalid read syntax")
)

// T holds the state of the scanner.
type T struct {
	pending []rune // Characters consumed before scanning started.
	s       stream.I
	state   action

	text  []rune // Token text, with escapes removed.
	first int    // Index of the first digit, after any sign or prefix.
	radix int    // -1 while undecided, 0 if not a number.
	sign  float64

	escaped  bool
	exact    bool
	rational bool
	signed   bool
}

type action func(*T, rune) action

// Delimiter returns true if r ends an atom.
func Delimiter(r rune) bool {
	return Whitespace(r) || strings.ContainsRune("()[]{}\";',`", r)
}

// Whitespace returns true if r is a whitespace character.
func Whitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}

	return false
}

// Scan scans an atom from s. The characters in pending were consumed by
// the caller and are scanned first. If numeric is false, the atom is
// always a symbol.
func Scan(s stream.I, pending []rune, numeric bool) (*T, error) {
	l := &T{
		pending: pending,
		s:       s,
		state:   leading,
		radix:   -1,
		sign:    1,
		exact:   true,
	}

	if !numeric {
		l.word()
	}

	for {
		r, ok := l.get()
		if !ok {
			break
		}

		if Delimiter(r) {
			s.UngetChar()

			break
		}

		switch r {
		case '\\':
			l.word()
			l.escaped = true

			r, ok = l.get()
			if !ok {
				return nil, ErrPremature
			}

			l.text = append(l.text, r)

			continue

		case '|':
			l.word()
			l.escaped = true

			for r, ok = l.get(); ok && r != '|'; r, ok = l.get() {
				l.text = append(l.text, r)
			}

			if !ok {
				return nil, ErrPremature
			}

			continue

		case '#':
			if l.radix == 0 && len(l.text) > 0 {
				s.UngetChar()

				return l, nil
			}
		}

		l.state = l.state(l, r)
		l.text = append(l.text, r)
	}

	if len(l.text) == 0 && !l.escaped {
		return nil, ErrSyntax
	}

	return l, nil
}

// Number returns the value of the token and true if it is a number.
func (l *T) Number() (float64, bool) {
	if l.radix <= 0 || l.first >= len(l.text) {
		return 0, false
	}

	digits := string(l.text[l.first:])

	var (
		f   float64
		err error
	)

	switch {
	case l.rational:
		f, err = l.ratio(digits)
	case !l.exact:
		f, err = strconv.ParseFloat(digits, 64)
	default:
		f, err = l.integer(digits)
	}

	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return l.sign * f, true
}

// Text returns the text of the token.
func (l *T) Text() string {
	return string(l.text)
}

func (l *T) digit(r rune) bool {
	radix := l.radix
	if radix < 0 {
		radix = 10
	}

	v := -1

	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'f':
		v = int(r-'a') + 10 //nolint:gomnd
	case r >= 'A' && r <= 'F':
		v = int(r-'A') + 10 //nolint:gomnd
	}

	return v >= 0 && v < radix
}

func (l *T) get() (rune, bool) {
	if len(l.pending) > 0 {
		r := l.pending[0]
		l.pending = l.pending[1:]

		return r, true
	}

	return l.s.GetChar()
}

func (l *T) integer(digits string) (float64, error) {
	if l.radix == 10 { //nolint:gomnd
		return strconv.ParseFloat(digits, 64)
	}

	u, err := strconv.ParseUint(digits, l.radix, 64)

	return float64(u), err
}

func (l *T) ratio(digits string) (float64, error) {
	i := strings.IndexByte(digits, '/')

	n, err := l.integer(digits[:i])
	if err != nil {
		return 0, err
	}

	d, err := l.integer(digits[i+1:])
	if err != nil {
		return 0, err
	}

	return n / d, nil
}

func (l *T) word() {
	l.radix = 0
	l.state = word
}

// States.

func digits(l *T, r rune) action {
	switch {
	case l.digit(r):
		return digits
	case r == '.' && l.radix == 10:
		l.exact = false

		return fraction
	case r == '/':
		l.rational = true

		return rational
	case (r == 'e' || r == 'E') && l.radix == 10:
		l.exact = false

		return exponent
	}

	return word(l, r)
}

func exponent(l *T, r rune) action {
	if (r >= '0' && r <= '9') || r == '+' || r == '-' {
		return exponent
	}

	return word(l, r)
}

func fraction(l *T, r rune) action {
	switch {
	case r >= '0' && r <= '9':
		return fraction
	case r == 'e' || r == 'E':
		return exponent
	}

	return word(l, r)
}

func leading(l *T, r rune) action {
	switch {
	case (r == '+' || r == '-') && !l.signed:
		l.signed = true
		if r == '-' {
			l.sign = -1
		}

		l.first = len(l.text) + 1

		return leading

	case r == '#' && !l.signed:
		return prefix

	case r == '.' && (l.radix == -1 || l.radix == 10):
		l.radix = 10
		l.exact = false

		return fraction

	case l.digit(r):
		if l.radix == -1 {
			l.radix = 10
		}

		return digits
	}

	return word(l, r)
}

func prefix(l *T, r rune) action {
	switch unicode.ToLower(r) {
	case 'b':
		l.radix = 2
	case 'o':
		l.radix = 8
	case 'd':
		l.radix = 10
	case 'x':
		l.radix = 16
	case 'e', 'i':
		// Every number is inexact. Exactness prefixes are accepted and ignored.
	default:
		return word(l, r)
	}

	l.first = len(l.text) + 1

	return leading
}

func rational(l *T, r rune) action {
	if l.digit(r) {
		return rational
	}

	return word(l, r)
}

func word(l *T, _ rune) action {
	l.radix = 0

	return word
}
