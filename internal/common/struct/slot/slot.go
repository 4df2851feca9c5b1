// Released under an MIT license. See LICENSE.

// Package slot provides jl's variable type.
package slot

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/reference"
)

// T (slot) holds a cell value. The evaluator is single-threaded so a
// slot needs no lock.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() reference.I {
	return New(s.Get())
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}
