// Released under an MIT license. See LICENSE.

// Package stream defines the interface the reader consumes.
package stream

import (
	"github.com/jlisp/jl/internal/common/struct/loc"
)

// I (stream) is a source of characters with one character of pushback.
type I interface {
	// GetChar returns the next character, or false at the end of the stream.
	GetChar() (rune, bool)

	// UngetChar pushes back the character most recently returned by
	// GetChar. Calling it twice without an intervening GetChar has no
	// further effect.
	UngetChar()

	// Loc returns the location of the next character.
	Loc() loc.T
}
