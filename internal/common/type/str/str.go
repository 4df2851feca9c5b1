// Released under an MIT license. See LICENSE.

// Package str provides jl's string type.
package str

import (
	"strconv"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type. Strings are immutable.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Kind returns cell.String.
func (s *str) Kind() cell.Kind {
	return cell.String
}

// Literal returns the readable representation of the str s with every
// non-printing character escaped.
func (s *str) Literal() string {
	return Quote(string(*s), true, true)
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Runes returns the code points of the str s.
func (s *str) Runes() []rune {
	return []rune(string(*s))
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Quote returns s in double quotes. Quotes and backslashes are always
// escaped. If newlines is true, tab, newline, formfeed and return are
// escaped. If all is true, every other character outside printable ASCII
// is escaped as well.
func Quote(s string, newlines, all bool) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\t' || r == '\n' || r == '\f' || r == '\r':
			if newlines {
				b.WriteString(controls[r])
			} else {
				b.WriteRune(r)
			}
		case !all || (r >= ' ' && r <= '~'):
			b.WriteRune(r)
		case r < 0o400:
			o := strconv.FormatInt(int64(r), 8)
			b.WriteString(`\` + strings.Repeat("0", 3-len(o)) + o)
		case r < 0x10000:
			h := strconv.FormatInt(int64(r), 16)
			b.WriteString(`\u` + strings.Repeat("0", 4-len(h)) + h)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
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
var controls = map[rune]string{
	'\t': `\t`,
	'\n': `\n`,
	'\f': `\f`,
	'\r': `\r`,
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)
}
