// Released under an MIT license. See LICENSE.

// Package char provides jl's character type.
package char

import (
	"strings"
	"sync"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/literal"
)

const name = "character"

// T (char) wraps a code point. Characters are interned.
type T rune

type char = T

// Names maps the character names the reader accepts to code points.
//
//nolint:gochecknoglobals
var Names = map[string]rune{
	"alarm":     7,
	"backquote": 8,
	"backspace": 8,
	"delete":    127,
	"escape":    27,
	"linefeed":  10,
	"newline":   10,
	"nul":       0,
	"page":      12,
	"return":    13,
	"rubout":    127,
	"space":     32,
	"tab":       9,
}

// Preferred names used when printing.
//
//nolint:gochecknoglobals
var printed = map[rune]string{
	0:   "nul",
	7:   "alarm",
	8:   "backquote",
	9:   "tab",
	10:  "newline",
	12:  "page",
	13:  "return",
	27:  "escape",
	32:  "space",
	127: "rubout",
}

// New returns the interned character for the code point r.
func New(r rune) *char {
	cachel.RLock()
	c, ok := cache[r]
	cachel.RUnlock()

	if ok {
		return c
	}

	cachel.Lock()
	defer cachel.Unlock()

	if c, ok = cache[r]; ok {
		return c
	}

	v := char(r)
	c = &v
	cache[r] = c

	return c
}

// Lookup returns the code point for the case-insensitive character name s.
func Lookup(s string) (rune, bool) {
	r, ok := Names[strings.ToLower(s)]

	return r, ok
}

// Equal returns true if c is the same character as ch.
func (ch *char) Equal(c cell.I) bool {
	return Is(c) && ch.Rune() == To(c).Rune()
}

// Kind returns cell.Character.
func (ch *char) Kind() cell.Kind {
	return cell.Character
}

// Literal returns the readable representation of the character ch.
func (ch *char) Literal() string {
	if n, ok := printed[ch.Rune()]; ok {
		return `#\` + n
	}

	return `#\` + string(ch.Rune())
}

// Name returns the type name for the character ch.
func (ch *char) Name() string {
	return name
}

// Rune returns the code point of the character ch.
func (ch *char) Rune() rune {
	return rune(*ch)
}

// String returns the character as a one character string.
func (ch *char) String() string {
	return string(ch.Rune())
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

//nolint:gochecknoglobals
var (
	cache  = map[rune]*char{}
	cachel = &sync.RWMutex{}
)

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)
}
