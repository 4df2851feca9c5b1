// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/jlisp/jl/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the text for a string, symbol or character cell.
func String(c cell.I) (string, bool) {
	switch c.Kind() {
	case cell.String, cell.Symbol, cell.Keyword, cell.Character:
	default:
		return "", false
	}

	b, ok := c.(Stringer)
	if !ok {
		return "", false
	}

	return b.String(), true
}
