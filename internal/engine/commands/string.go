// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/char"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/vector"
	"github.com/jlisp/jl/internal/common/validate"
	"github.com/michaelmacinnis/adapted"
)

func compareStrings(ok func(a, b string) bool) Command {
	return func(args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, err
		}

		a, err := text(v[0])
		if err != nil {
			return nil, err
		}

		b, err := text(v[1])
		if err != nil {
			return nil, err
		}

		return boolean.Bool(ok(a, b)), nil
	}
}

// Join strings, characters and lists or vectors of characters.
func concat(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	for _, c := range v {
		switch c.Kind() {
		case cell.String:
			b.WriteString(str.To(c).String())

		case cell.Character:
			b.WriteRune(char.To(c).Rune())

		case cell.Null, cell.Pair:
			if list.Cyclic(c) {
				return nil, throw.InvalidArg(c)
			}

			for ; pair.Is(c); c = pair.Cdr(c) {
				err = writeChar(&b, pair.Car(c))
				if err != nil {
					return nil, err
				}
			}

		case cell.Vector:
			for _, e := range vector.To(c).Elements() {
				err = writeChar(&b, e)
				if err != nil {
					return nil, err
				}
			}

		default:
			return nil, throw.InvalidArg(c)
		}
	}

	return strValue(b.String()), nil
}

func globMatch(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	pattern, err := text(v[0])
	if err != nil {
		return nil, err
	}

	name, err := text(v[1])
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, name)
	if err != nil {
		return nil, throw.InvalidArg(v[0])
	}

	return boolean.Bool(ok), nil
}

func isString(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(str.Is(v[0])), nil
}

func runes(c cell.I) ([]rune, error) {
	if !str.Is(c) {
		return nil, throw.InvalidArg(c)
	}

	return str.To(c).Runes(), nil
}

func strValue(s string) cell.I {
	return str.New(s)
}

func stringLength(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	r, err := runes(v[0])
	if err != nil {
		return nil, err
	}

	return integerValue(int64(len(r))), nil
}

func stringRef(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	r, err := runes(v[0])
	if err != nil {
		return nil, err
	}

	i, err := index(v[1])
	if err != nil || i >= len(r) {
		return nil, throw.InvalidArg(v[1])
	}

	return char.New(r[i]), nil
}

// Return the code points from start up to, but not including, end.
func substring(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 3)
	if err != nil {
		return nil, err
	}

	r, err := runes(v[0])
	if err != nil {
		return nil, err
	}

	start, err := index(v[1])
	if err != nil || start > len(r) {
		return nil, throw.InvalidArg(v[1])
	}

	end := len(r)

	if len(v) > 2 {
		end, err = index(v[2])
		if err != nil || end < start || end > len(r) {
			return nil, throw.InvalidArg(v[2])
		}
	}

	return strValue(string(r[start:end])), nil
}

func writeChar(b *strings.Builder, c cell.I) error {
	if !char.Is(c) {
		return throw.InvalidArg(c)
	}

	b.WriteRune(char.To(c).Rune())

	return nil
}
