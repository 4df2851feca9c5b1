// Released under an MIT license. See LICENSE.

// Package obj provides jl's object type.
package obj

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/struct/hash"
)

const name = "object"

// T (obj) maps string keys to cells. Keys are kept in insertion order.
type T struct {
	*hash.T
	order []string
}

type obj = T

// New creates a new, empty obj.
func New() *obj {
	return &obj{T: hash.New()}
}

// Key returns the key used to store c. Strings and symbols use their text
// and a character is a one character string.
func Key(c cell.I) (string, bool) {
	switch c.Kind() {
	case cell.String, cell.Symbol, cell.Character:
		if s, ok := c.(interface{ String() string }); ok {
			return s.String(), true
		}
	}

	return "", false
}

// Del removes the key k from the obj o.
func (o *obj) Del(k string) bool {
	if !o.T.Del(k) {
		return false
	}

	for i, v := range o.order {
		if v == k {
			o.order = append(o.order[:i], o.order[i+1:]...)

			break
		}
	}

	return true
}

// Equal returns true if c is an obj with the same keys and equal values.
func (o *obj) Equal(c cell.I) bool {
	return cell.Equal(o, c)
}

// EqualSeen compares the entries of o and c. Key order is not significant.
func (o *obj) EqualSeen(c cell.I, s cell.Seen) bool {
	other, ok := c.(*obj)
	if !ok || other.Size() != o.Size() {
		return false
	}

	for _, k := range o.order {
		r := other.T.Get(k)
		if r == nil || !cell.EqualSeen(o.T.Get(k).Get(), r.Get(), s) {
			return false
		}
	}

	return true
}

// Get returns the value for the key k, if there is one.
func (o *obj) Get(k string) (cell.I, bool) {
	r := o.T.Get(k)
	if r == nil {
		return nil, false
	}

	return r.Get(), true
}

// Keys returns the keys of o in insertion order.
func (o *obj) Keys() []string {
	keys := make([]string, len(o.order))
	copy(keys, o.order)

	return keys
}

// Kind returns cell.Object.
func (o *obj) Kind() cell.Kind {
	return cell.Object
}

// Name returns the type name for the obj o.
func (o *obj) Name() string {
	return name
}

// Set associates the key k with the value v.
func (o *obj) Set(k string, v cell.I) {
	if o.T.Get(k) == nil {
		o.order = append(o.order, k)
	}

	o.T.Set(k, v)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
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
	var t obj

	// The obj type is a cell.
	_ = cell.I(&t)

	// The obj type holds other cells.
	_ = cell.Container(&t)
}
