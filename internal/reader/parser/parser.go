// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent reader for jl forms.
package parser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/stream"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/char"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/obj"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/type/vector"
	"github.com/jlisp/jl/internal/reader/lexer"
)

// Condition types raised by the reader.
const (
	EndOfStream          = "end-of-stream"
	PrematureEndOfStream = "premature-end-of-stream"
	InvalidReadSyntax    = "invalid-read-syntax"
)

//nolint:gochecknoglobals
var (
	quote     = sym.New("quote")
	backquote = sym.New("backquote")
	splice    = sym.New("backquote-splice")
	unquote   = sym.New("backquote-unquote")
	ref       = sym.New("ref")
)

// T holds the state of the parser.
type T struct {
	s stream.I
}

// New creates a new parser that reads forms from s.
func New(s stream.I) *T {
	return &T{s: s}
}

// Read reads one form from s.
func Read(s stream.I) (cell.I, error) {
	return New(s).Read()
}

// Read consumes exactly one form and leaves the stream just after it.
// A stream that ends before a form starts is an end-of-stream condition.
// A stream that ends inside a form is a premature-end-of-stream condition.
func (p *T) Read() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		t, ok := r.(*throw.T)
		if !ok {
			panic(r)
		}

		c, err = nil, t
	}()

	return p.form(false), nil
}

func (p *T) fail(kind string) {
	l := p.s.Loc()

	panic(throw.Signal(kind, str.New(l.String())))
}

func (p *T) atom(pending []rune) cell.I {
	l := p.scan(pending, true)

	if f, ok := l.Number(); ok {
		return num.New(f)
	}

	s := sym.New(l.Text())

	r, ok := p.s.GetChar()
	if !ok {
		return s
	}

	if r != '#' {
		p.s.UngetChar()

		return s
	}

	name := sym.New(p.scan(nil, false).Text())

	return list.New(ref, s, list.New(quote, name))
}

func (p *T) character() cell.I {
	r := p.get()

	if !isAlpha(r) {
		return char.New(r)
	}

	var b strings.Builder

	b.WriteRune(r)

	for {
		n, ok := p.s.GetChar()
		if !ok {
			break
		}

		if lexer.Delimiter(n) {
			p.s.UngetChar()

			break
		}

		b.WriteRune(n)
	}

	name := b.String()
	if len(name) == 1 {
		return char.New(r)
	}

	if c, ok := char.Lookup(name); ok {
		return char.New(c)
	}

	p.fail(InvalidReadSyntax)

	return nil
}

func (p *T) comment() {
	for depth := 1; depth > 0; {
		switch p.get() {
		case '|':
			if p.get() == '#' {
				depth--
			} else {
				p.s.UngetChar()
			}

		case '#':
			if p.get() == '|' {
				depth++
			} else {
				p.s.UngetChar()
			}
		}
	}
}

func (p *T) dispatch() (cell.I, bool) {
	r, ok := p.s.GetChar()
	if !ok {
		p.fail(PrematureEndOfStream)
	}

	switch r {
	case '(':
		return vector.New(p.sequence(')')...), true
	case '|':
		p.comment()

		return nil, false
	case '\\':
		return p.character(), true
	case '!':
		return sym.New(p.scan([]rune{'#', '!'}, false).Text()), true
	case ':':
		return sym.Keyword(p.scan(nil, false).Text()), true
	case 't', 'T':
		return boolean.True, true
	case 'f', 'F':
		return boolean.False, true
	}

	switch unicode.ToLower(r) {
	case 'b', 'o', 'd', 'x', 'e', 'i':
		return p.atom([]rune{'#', r}), true
	}

	p.fail(InvalidReadSyntax)

	return nil, false
}

func (p *T) escape() rune {
	r := p.get()

	switch r {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'a':
		return '\a'
	case '"', '\\':
		return r
	case '^':
		return unicode.ToUpper(p.get()) ^ 64 //nolint:gomnd
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return p.number(r, 3, 8) //nolint:gomnd
	case 'x':
		return p.number(p.get(), 2, 16) //nolint:gomnd
	case 'u':
		return p.number(p.get(), 4, 16) //nolint:gomnd
	}

	p.fail(InvalidReadSyntax)

	return 0
}

func (p *T) form(nested bool) cell.I {
	for {
		r, ok := p.skip()
		if !ok {
			if nested {
				p.fail(PrematureEndOfStream)
			}

			p.fail(EndOfStream)
		}

		switch r {
		case '(':
			return p.list()
		case '\'':
			return list.New(quote, p.form(true))
		case '`':
			return list.New(backquote, p.form(true))
		case ',':
			wrapper := unquote

			n, ok := p.s.GetChar()
			if ok {
				if n == '@' {
					wrapper = splice
				} else {
					p.s.UngetChar()
				}
			}

			return list.New(wrapper, p.form(true))
		case '[':
			return vector.New(p.sequence(']')...)
		case '{':
			return p.object()
		case '"':
			return p.quoted()
		case '#':
			if c, ok := p.dispatch(); ok {
				return c
			}

			continue
		case ')', ']', '}':
			p.fail(InvalidReadSyntax)
		}

		p.s.UngetChar()

		return p.atom(nil)
	}
}

// get returns the next character. The stream must not end.
func (p *T) get() rune {
	r, ok := p.s.GetChar()
	if !ok {
		p.fail(PrematureEndOfStream)
	}

	return r
}

func (p *T) list() cell.I {
	head := pair.Cons(pair.Null, pair.Null)
	tail := head

	dotted := false
	complete := false

	for {
		r := p.next()

		var c cell.I

		switch {
		case r == ')':
			if dotted && !complete {
				p.fail(InvalidReadSyntax)
			}

			return pair.Cdr(head)

		case complete:
			p.fail(InvalidReadSyntax)

		case r == '.':
			n, ok := p.s.GetChar()
			if ok && !lexer.Delimiter(n) {
				c = p.atom([]rune{'.', n})

				break
			}

			if ok {
				p.s.UngetChar()
			}

			if dotted || tail == head {
				p.fail(InvalidReadSyntax)
			}

			dotted = true

			continue

		default:
			p.s.UngetChar()

			c = p.form(true)
		}

		if dotted {
			pair.SetCdr(tail, c)

			complete = true

			continue
		}

		next := pair.Cons(c, pair.Null)
		pair.SetCdr(tail, next)
		tail = next
	}
}

// next skips whitespace and comments and returns the next character.
// The stream must not end.
func (p *T) next() rune {
	r, ok := p.skip()
	if !ok {
		p.fail(PrematureEndOfStream)
	}

	return r
}

func (p *T) number(r rune, n, base int) rune {
	v := 0

	for i := 0; i < n; i++ {
		if i > 0 {
			r = p.get()
		}

		d := digit(r)
		if d < 0 || d >= base {
			p.fail(InvalidReadSyntax)
		}

		v = v*base + d
	}

	return rune(v)
}

func (p *T) object() cell.I {
	o := obj.New()

	for {
		r := p.next()
		if r == '}' {
			return o
		}

		p.s.UngetChar()

		k, ok := obj.Key(p.form(true))
		if !ok {
			p.fail(InvalidReadSyntax)
		}

		o.Set(k, p.form(true))
	}
}

func (p *T) scan(pending []rune, numeric bool) *lexer.T {
	l, err := lexer.Scan(p.s, pending, numeric)
	if errors.Is(err, lexer.ErrPremature) {
		p.fail(PrematureEndOfStream)
	} else if err != nil {
		p.fail(InvalidReadSyntax)
	}

	return l
}

func (p *T) sequence(terminator rune) []cell.I {
	var elements []cell.I

	for {
		r := p.next()
		if r == terminator {
			return elements
		}

		p.s.UngetChar()

		elements = append(elements, p.form(true))
	}
}

// skip skips whitespace and comments and returns the next character.
func (p *T) skip() (rune, bool) {
	for {
		r, ok := p.s.GetChar()
		if !ok {
			return 0, false
		}

		if lexer.Whitespace(r) {
			continue
		}

		if r != ';' {
			return r, true
		}

		for r != '\n' && r != '\f' && r != '\r' {
			r, ok = p.s.GetChar()
			if !ok {
				return 0, false
			}
		}
	}
}

func (p *T) quoted() cell.I {
	var b strings.Builder

	for {
		r := p.get()

		switch r {
		case '"':
			return str.New(b.String())
		case '\\':
			r = p.escape()
		}

		b.WriteRune(r)
	}
}

func digit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10 //nolint:gomnd
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10 //nolint:gomnd
	}

	return -1
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
