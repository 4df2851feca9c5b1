// Released under an MIT license. See LICENSE.

// Package sym provides jl's symbol and keyword cell types.
//
// Symbols are interned. Two symbols with the same name are the same
// instance, so comparing pointers is always the correct equality test.
// The intern tables are created at startup, only ever grow and are
// never torn down.
package sym

import (
	"sync"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is an interned name. Keywords are symbols from a separate
// table that evaluate to themselves.
type T struct {
	name    string
	keyword bool
}

type sym = T

// New returns the symbol named v, creating it if necessary.
func New(v string) *sym {
	return intern(symbols, v, false)
}

// Keyword returns the keyword named v (written #:v), creating it if necessary.
func Keyword(v string) *sym {
	return intern(keywords, v, true)
}

// Equal returns true if c is the same symbol as s.
func (s *sym) Equal(c cell.I) bool {
	return cell.I(s) == c
}

// IsKeyword returns true if s is a keyword.
func (s *sym) IsKeyword() bool {
	return s.keyword
}

// Kind returns cell.Keyword for keywords and cell.Symbol otherwise.
func (s *sym) Kind() cell.Kind {
	if s.keyword {
		return cell.Keyword
	}

	return cell.Symbol
}

// Literal returns the readable representation of the sym s.
func (s *sym) Literal() string {
	if s.keyword {
		return "#:" + escape(s.name)
	}

	return escape(s.name)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return s.Kind().String()
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.name
}

// Is returns true if c is a symbol or a keyword.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// IsKeyword returns true if c is a keyword.
func IsKeyword(c cell.I) bool {
	s, ok := c.(*sym)

	return ok && s.keyword
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// Interned returns true if a symbol named v exists.
func Interned(v string) bool {
	symbols.RLock()
	defer symbols.RUnlock()

	_, ok := symbols.m[v]

	return ok
}

// Names returns the name of every interned (non-keyword) symbol.
func Names() []string {
	symbols.RLock()
	defer symbols.RUnlock()

	names := make([]string, 0, len(symbols.m))
	for k := range symbols.m {
		names = append(names, k)
	}

	return names
}

type table struct {
	sync.RWMutex
	m map[string]*sym
}

//nolint:gochecknoglobals
var (
	keywords = &table{m: map[string]*sym{}}
	symbols  = &table{m: map[string]*sym{}}
)

// Intern tables are only ever appended to: insert if absent.
func intern(t *table, v string, keyword bool) *sym {
	t.RLock()
	p, ok := t.m[v]
	t.RUnlock()

	if ok {
		return p
	}

	t.Lock()
	defer t.Unlock()

	if p, ok = t.m[v]; ok {
		return p
	}

	p = &sym{name: v, keyword: keyword}
	t.m[v] = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
