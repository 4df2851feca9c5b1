// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all jl types.
package cell

// Kind identifies one of the closed set of jl value kinds.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Pair
	Symbol
	Keyword
	Boolean
	Number
	Character
	String
	Vector
	Object
	Primitive
	Closure
	Macro
	Environment
	Error
)

//nolint:gochecknoglobals
var names = [...]string{
	Null:        "null",
	Pair:        "cons",
	Symbol:      "symbol",
	Keyword:     "keyword",
	Boolean:     "boolean",
	Number:      "number",
	Character:   "character",
	String:      "string",
	Vector:      "vector",
	Object:      "object",
	Primitive:   "primitive",
	Closure:     "closure",
	Macro:       "macro",
	Environment: "environment",
	Error:       "errsys",
}

// String returns the type name for the kind k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "unknown"
	}

	return names[k]
}

// I (cell) is the basic unit of storage in jl.
type I interface {
	Equal(c I) bool
	Kind() Kind
	Name() string
}

// Container is implemented by kinds that can hold other cells. Comparing
// containers threads a set of in-progress comparisons so that cyclic
// structures terminate.
type Container interface {
	I

	EqualSeen(c I, s Seen) bool
}

// Seen holds the pairs of containers currently being compared.
type Seen map[[2]I]struct{}

// Equal returns true if a and b are structurally equal.
func Equal(a, b I) bool {
	return EqualSeen(a, b, nil)
}

// EqualSeen compares a and b. A pair of containers that is already being
// compared further up is assumed equal.
func EqualSeen(a, b I, s Seen) bool {
	if a == b {
		return true
	}

	c, ok := a.(Container)
	if !ok {
		return a.Equal(b)
	}

	if _, ok := b.(Container); !ok {
		return false
	}

	if s == nil {
		s = Seen{}
	}

	k := [2]I{a, b}
	if _, ok := s[k]; ok {
		return true
	}

	s[k] = struct{}{}

	return c.EqualSeen(b, s)
}

// Eqv returns true if a and b are the same cell or are equal atoms.
// Containers are only eqv to themselves.
func Eqv(a, b I) bool {
	if a == b {
		return true
	}

	if _, ok := a.(Container); ok {
		return false
	}

	return a.Equal(b)
}
