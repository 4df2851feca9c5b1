// Released under an MIT license. See LICENSE.

// Package pair provides jl's cons cell type.
package pair

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/truth"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Bool returns the boolean value of the pair p. Only the empty list is false.
func (p *pair) Bool() bool {
	return p != Null
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	return cell.Equal(p, c)
}

// EqualSeen compares p and c element by element. Tails are walked
// iteratively so long lists do not grow the stack.
func (p *pair) EqualSeen(c cell.I, s cell.Seen) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	o, ok := c.(*pair)
	if !ok {
		return false
	}

	for {
		if !cell.EqualSeen(p.car, o.car, s) {
			return false
		}

		pn, pok := p.cdr.(*pair)
		on, ook := o.cdr.(*pair)

		if !pok || !ook || pn == Null || on == Null {
			return cell.EqualSeen(p.cdr, o.cdr, s)
		}

		k := [2]cell.I{pn, on}
		if _, ok := s[k]; ok {
			return true
		}

		s[k] = struct{}{}

		p, o = pn, on
	}
}

// Kind returns cell.Pair, or cell.Null for the empty list.
func (p *pair) Kind() cell.Kind {
	if p == Null {
		return cell.Null
	}

	return cell.Pair
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Caar returns the car of the car of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caar(c cell.I) cell.I {
	return To(To(c).car).car
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cdar returns the cdr of the car of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cdar(c cell.I) cell.I {
	return To(To(c).car).cdr
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.I) cell.I {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair. The empty list is not a pair.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && p != Null
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type holds other cells.
	_ = cell.Container(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
