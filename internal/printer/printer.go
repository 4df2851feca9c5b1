// Released under an MIT license. See LICENSE.

// Package printer renders jl values as text.
package printer

import (
	"fmt"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/literal"
	"github.com/jlisp/jl/internal/common/type/char"
	"github.com/jlisp/jl/internal/common/type/obj"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/type/vector"
)

// Escape selects which characters in a string are escaped.
type Escape int

// Escape modes.
const (
	EscapeNone Escape = iota
	EscapeNewlines
	EscapeAll
)

// Options control how a value is rendered.
//
// MaxDepth and MaxLength are ignored when zero. Containers nested deeper
// than MaxDepth print as "..." and only MaxLength elements of a list or
// vector are printed before "...".
type Options struct {
	Readable  bool
	Escape    Escape
	MaxDepth  int
	MaxLength int
}

// Circular is printed in place of a container that is already being
// printed further up.
const Circular = "#<circular>"

// Display renders c for people: strings and characters are printed as is.
func Display(c cell.I) string {
	return Render(c, Options{MaxDepth: 4, MaxLength: 10}) //nolint:gomnd
}

// Write renders c so that, where possible, reading the text produces an
// equal value.
func Write(c cell.I) string {
	return Render(c, Options{Readable: true, Escape: EscapeAll})
}

// Render renders c using the options o.
func Render(c cell.I, o Options) string {
	p := &printer{
		Options: o,
		path:    map[cell.I]struct{}{},
	}

	p.print(c, 0)

	return p.String()
}

type printer struct {
	Options
	strings.Builder

	path map[cell.I]struct{}
}

func (p *printer) enter(c cell.I) bool {
	if _, ok := p.path[c]; ok {
		p.WriteString(Circular)

		return false
	}

	p.path[c] = struct{}{}

	return true
}

func (p *printer) leave(c cell.I) {
	delete(p.path, c)
}

func (p *printer) print(c cell.I, level int) {
	if p.MaxDepth > 0 && level > p.MaxDepth {
		p.WriteString("...")

		return
	}

	switch c.Kind() {
	case cell.Null:
		p.WriteString("()")
	case cell.Pair:
		p.list(c, level)
	case cell.Vector:
		p.vector(vector.To(c), level)
	case cell.Object:
		p.object(obj.To(c), level)
	case cell.String:
		p.quoted(str.To(c).String())
	case cell.Character:
		if p.Readable {
			p.WriteString(literal.String(c))
		} else {
			p.WriteString(char.To(c).String())
		}
	case cell.Symbol, cell.Keyword:
		if p.Readable {
			p.WriteString(literal.String(c))
		} else {
			p.WriteString(sym.To(c).String())
		}
	case cell.Error:
		p.WriteString("#<" + c.Name() + " " + c.(fmt.Stringer).String() + ">")
	case cell.Primitive, cell.Closure, cell.Macro, cell.Environment:
		if s, ok := c.(fmt.Stringer); ok {
			p.WriteString(s.String())
		} else {
			p.WriteString("#<" + c.Name() + ">")
		}
	case cell.Boolean, cell.Number:
		p.WriteString(literal.String(c))
	}
}

func (p *printer) list(c cell.I, level int) {
	if !p.enter(c) {
		return
	}

	entered := []cell.I{c}

	defer func() {
		for _, e := range entered {
			p.leave(e)
		}
	}()

	p.WriteByte('(')

	for i := 0; ; i++ {
		if p.MaxLength > 0 && i >= p.MaxLength {
			p.WriteString("...")

			break
		}

		p.print(pair.Car(c), level+1)

		c = pair.Cdr(c)
		if c == pair.Null {
			break
		}

		if !pair.Is(c) {
			p.WriteString(" . ")
			p.print(c, level+1)

			break
		}

		p.WriteByte(' ')

		if _, ok := p.path[c]; ok {
			p.WriteString(". " + Circular)

			break
		}

		p.path[c] = struct{}{}
		entered = append(entered, c)
	}

	p.WriteByte(')')
}

func (p *printer) object(o *obj.T, level int) {
	if !p.enter(o) {
		return
	}
	defer p.leave(o)

	p.WriteByte('{')

	for i, k := range o.Keys() {
		if i > 0 {
			p.WriteByte(' ')
		}

		if p.MaxLength > 0 && i >= p.MaxLength {
			p.WriteString("...")

			break
		}

		v, _ := o.Get(k)

		p.quoted(k)
		p.WriteByte(' ')
		p.print(v, level+1)
	}

	p.WriteByte('}')
}

func (p *printer) quoted(s string) {
	if !p.Readable {
		p.WriteString(s)

		return
	}

	p.WriteString(str.Quote(s, p.Escape != EscapeNone, p.Escape == EscapeAll))
}

func (p *printer) vector(v *vector.T, level int) {
	if !p.enter(v) {
		return
	}
	defer p.leave(v)

	p.WriteString("#(")

	for i, e := range v.Elements() {
		if i > 0 {
			p.WriteByte(' ')
		}

		if p.MaxLength > 0 && i >= p.MaxLength {
			p.WriteString("...")

			break
		}

		p.print(e, level+1)
	}

	p.WriteByte(')')
}
