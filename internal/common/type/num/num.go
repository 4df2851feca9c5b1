// Released under an MIT license. See LICENSE.

// Package num provides jl's number type.
package num

import (
	"math"
	"strconv"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/literal"
	"github.com/jlisp/jl/internal/common/interface/real"
)

const name = "number"

// T (num) wraps Go's float64 type. There is one numeric kind; integers are
// the values that truncate to themselves.
type T float64

type num = T

// New creates a num from the float f.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return New(float64(i))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n.
func (n *num) Float() float64 {
	return float64(*n)
}

// Kind returns cell.Number.
func (n *num) Kind() cell.Kind {
	return cell.Number
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return Format(n.Float(), 10)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Format returns the text of f in the given radix. Integral values are
// written without a fraction; other radixes are only used for integers.
func Format(f float64, radix int) string {
	switch {
	case math.IsNaN(f):
		return "+nan.0"
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	}

	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), radix)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
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
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a real.
	_ = real.I(&t)
}
