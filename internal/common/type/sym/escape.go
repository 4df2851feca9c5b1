// Released under an MIT license. See LICENSE.

package sym

import (
	"strings"
)

// escape returns s with a backslash before every character the reader
// would otherwise treat specially. A name that would read as a number
// gets a leading backslash.
func escape(s string) string {
	if s == "" {
		return "||"
	}

	var b strings.Builder

	if numeric(s) || s == "." {
		b.WriteByte('\\')
	}

	for i, r := range s {
		switch r {
		case '(', ')', '[', ']', '{', '}', '\'', '"', ';', '\\', '|', ',', '`':
			b.WriteByte('\\')
		case '#':
			// Reserved words (#!foo) keep their leading '#'.
			if i != 0 || !strings.HasPrefix(s, "#!") {
				b.WriteByte('\\')
			}
		default:
			if r <= ' ' || r == 127 {
				b.WriteByte('\\')
			}
		}

		b.WriteRune(r)
	}

	return b.String()
}

// numeric returns true if s starts like a number: a digit, sign or point
// followed by a run of digits, points and slashes that contains a digit.
// Escaping a few names that would read back as symbols anyway is harmless.
func numeric(s string) bool {
	digit := false

	switch c := s[0]; {
	case c >= '0' && c <= '9':
		digit = true
	case c == '-' || c == '+' || c == '.':
	default:
		return false
	}

	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r == '/' || r == '.':
		default:
			return digit
		}
	}

	return digit
}
