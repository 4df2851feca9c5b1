// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"
	"strings"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/integer"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/validate"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/lexer"
)

func argList(v []cell.I) cell.I {
	return list.New(v...)
}

func integerValue(i int64) cell.I {
	return num.New(float64(i))
}

func isInteger(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(integer.Is(v[0])), nil
}

func isNumber(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(num.Is(v[0])), nil
}

func isPositiveInteger(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	i, ok := integer.Value(v[0])

	return boolean.Bool(ok && i >= 0), nil
}

func isZero(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	f, err := number(v[0])
	if err != nil {
		return nil, err
	}

	return boolean.Bool(f == 0), nil
}

func numberToString(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	f, err := number(v[0])
	if err != nil {
		return nil, err
	}

	radix, err := radixArg(v)
	if err != nil {
		return nil, err
	}

	if radix != 10 && f != math.Trunc(f) {
		return nil, throw.InvalidArg(v[0])
	}

	return strValue(num.Format(f, radix)), nil
}

func radixArg(v []cell.I) (int, error) {
	if len(v) < 2 {
		return 10, nil
	}

	radix, err := index(v[1])
	if err != nil || radix < 2 || radix > 36 {
		return 0, throw.InvalidArg(v[1])
	}

	return radix, nil
}

// Convert text to a number using the reader's rules for numbers. Text
// that is not a number converts to #f.
func stringToNumber(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	s, err := text(v[0])
	if err != nil {
		return nil, err
	}

	radix, err := radixArg(v)
	if err != nil {
		return nil, err
	}

	s = strings.TrimSpace(s)

	if radix != 10 {
		i, err := strconv.ParseInt(s, radix, 64)
		if err != nil {
			return boolean.False, nil //nolint:nilerr
		}

		return integerValue(i), nil
	}

	l, err := lexer.Scan(input.String("string->number", s), nil, true)
	if err != nil {
		return boolean.False, nil //nolint:nilerr
	}

	f, ok := l.Number()
	if !ok || len(l.Text()) != len(s) {
		return boolean.False, nil
	}

	return num.New(f), nil
}
