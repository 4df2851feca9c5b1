// Released under an MIT license. See LICENSE.

// Package env provides jl's first-class environment type.
package env

import (
	"sort"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/reference"
	"github.com/jlisp/jl/internal/common/interface/scope"
	"github.com/jlisp/jl/internal/common/struct/hash"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/sym"
)

const name = "environment"

// T (env) is one frame mapping symbol names to values, linked to the
// frame that encloses it.
type T struct {
	previous scope.I
	*frame
}

type env = T

// We alias hash.T to frame so that when embedded it is easy to refer to
// it by name. Embedding frame also lets us access its methods directly.
type frame = hash.T

// New creates a new env in front of previous. Previous is nil for the
// global frame.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		frame:    hash.New(),
	}
}

// Assign replaces the value bound to the symbol k in the first frame that
// binds it. An unbound symbol is an unbound-variable condition.
func (e *env) Assign(k, v cell.I) error {
	r := e.Resolve(key(k))
	if r == nil {
		return throw.Unbound(k)
	}

	r.Set(v)

	return nil
}

// Define binds the symbol k to v in the env e, replacing any binding.
func (e *env) Define(k, v cell.I) {
	e.Set(key(k), v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Extend creates a fresh, empty env in front of e.
func (e *env) Extend() scope.I {
	return New(e)
}

// Kind returns cell.Environment.
func (e *env) Kind() cell.Kind {
	return cell.Environment
}

// Lookup returns the value bound to the symbol k. An unbound symbol is an
// unbound-variable condition.
func (e *env) Lookup(k cell.I) (cell.I, error) {
	r := e.Resolve(key(k))
	if r == nil {
		return nil, throw.Unbound(k)
	}

	return r.Get(), nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns every name visible from e, sorted and without duplicates.
func (e *env) Names() []string {
	seen := map[string]struct{}{}

	var s scope.I = e
	for ; s != nil; s = s.Enclosing() {
		o, ok := s.(*env)
		if !ok {
			continue
		}

		for _, k := range o.Keys() {
			seen[k] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Resolve returns the reference bound to the name k in the nearest frame
// that binds it, or nil.
func (e *env) Resolve(k string) reference.I {
	for s := e; s != nil; {
		if r := s.Get(k); r != nil {
			return r
		}

		if s.previous == nil {
			return nil
		}

		next, ok := s.previous.(*env)
		if !ok {
			return s.previous.Resolve(k)
		}

		s = next
	}

	return nil
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

func key(k cell.I) string {
	return sym.To(k).String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
