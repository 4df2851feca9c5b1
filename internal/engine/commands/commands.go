// Released under an MIT license. See LICENSE.

// Package commands provides jl's primitive procedures that only need
// their arguments.
package commands

import (
	"math"

	"github.com/jlisp/jl/internal/common"
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/interface/integer"
	"github.com/jlisp/jl/internal/common/interface/real"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
)

// Command is the signature shared by all primitives in this package.
type Command = func(cell.I) (cell.I, error)

// Functions returns the primitives, by name.
func Functions() map[string]Command {
	return map[string]Command{
		// Equality.
		"boolean?": isBoolean,
		"eq?":      eq,
		"eqv?":     eqv,
		"equal?":   equal,
		"not":      not,

		// Pairs.
		"car":      car,
		"cdr":      cdr,
		"caar":     cxr(car, car),
		"cadr":     cxr(car, cdr),
		"cdar":     cxr(cdr, car),
		"cddr":     cxr(cdr, cdr),
		"caddr":    cxr(car, cdr, cdr),
		"cdddr":    cxr(cdr, cdr, cdr),
		"cons":     cons,
		"null?":    isNull,
		"pair?":    isPair,
		"set-car!": setCar,
		"set-cdr!": setCdr,

		// Lists.
		"append":      appendLists,
		"assoc":       assoc,
		"assq":        assq,
		"list":        makeList,
		"list*":       listStar,
		"list-length": listLength,
		"list-ref":    listRef,
		"list-tail":   listTail,
		"list?":       isList,
		"make-list":   makeListOf,
		"member":      member,
		"memq":        memq,
		"nconc":       nconc,
		"nreverse":    nreverse,
		"reverse":     reverse,

		// Arithmetic.
		"*":         product,
		"+":         plus,
		"-":         minus,
		"/":         divide,
		"1+":        increment,
		"1-":        decrement,
		"acos":      unary(math.Acos),
		"asin":      unary(math.Asin),
		"atan":      atan,
		"ceiling":   unary(math.Ceil),
		"cos":       unary(math.Cos),
		"divide":    divide,
		"exp":       unary(math.Exp),
		"expt":      expt,
		"floor":     unary(math.Floor),
		"gcd":       gcd,
		"log":       logarithm,
		"max":       maximum,
		"min":       minimum,
		"minus":     minus,
		"mod":       mod,
		"plus":      plus,
		"product":   product,
		"quotient":  quotient,
		"remainder": remainder,
		"round":     unary(round),
		"sin":       unary(math.Sin),
		"sqrt":      squareRoot,
		"tan":       unary(math.Tan),
		"truncate":  unary(math.Trunc),

		// Bitwise.
		"ash":    ash,
		"logand": logand,
		"logior": logior,
		"lognot": lognot,
		"logxor": logxor,

		// Numbers.
		"integer?":          isInteger,
		"number->string":    numberToString,
		"number?":           isNumber,
		"positive-integer?": isPositiveInteger,
		"string->number":    stringToNumber,
		"zero?":             isZero,

		// Relational.
		"<":  compare(func(a, b float64) bool { return a < b }),
		"<=": compare(func(a, b float64) bool { return a <= b }),
		"=":  compare(func(a, b float64) bool { return a == b }),
		">":  compare(func(a, b float64) bool { return a > b }),
		">=": compare(func(a, b float64) bool { return a >= b }),

		// Characters.
		"char->integer": charToInteger,
		"char<=?":       compareChars(func(a, b rune) bool { return a <= b }),
		"char<?":        compareChars(func(a, b rune) bool { return a < b }),
		"char=?":        compareChars(func(a, b rune) bool { return a == b }),
		"char>=?":       compareChars(func(a, b rune) bool { return a >= b }),
		"char>?":        compareChars(func(a, b rune) bool { return a > b }),
		"char?":         isChar,
		"integer->char": integerToChar,

		// Strings and symbols.
		"concat":          concat,
		"glob-match?":     globMatch,
		"keyword?":        isKeyword,
		"string->keyword": stringToKeyword,
		"string->symbol":  stringToSymbol,
		"string-length":   stringLength,
		"string-ref":      stringRef,
		"string<?":        compareStrings(func(a, b string) bool { return a < b }),
		"string=?":        compareStrings(func(a, b string) bool { return a == b }),
		"string?":         isString,
		"substring":       substring,
		"symbol->string":  symbolToString,
		"symbol?":         isSymbol,

		// Vectors.
		"make-vector":   makeVector,
		"vector":        makeVectorOf,
		"vector-length": vectorLength,
		"vector-ref":    vectorRef,
		"vector-set!":   vectorSet,
		"vector?":       isVector,

		// Sequences.
		"copy-sequence": copySequence,
		"elt":           elt,
		"length":        length,

		// Objects.
		"make-object":     makeObject,
		"object-defines?": objectDefines,
		"object-delete!":  objectDelete,
		"object-keys":     objectKeys,
		"object-ref":      objectRef,
		"object-set!":     objectSet,
		"object?":         isObject,
		"ref":             objectRef,
	}
}

func index(c cell.I) (int, error) {
	i, ok := integer.Index(c)
	if !ok {
		return 0, throw.InvalidArg(c)
	}

	return i, nil
}

func integers(args cell.I) ([]int64, error) {
	l, tail := list.ToSlice(args)
	if tail != pair.Null {
		return nil, throw.InvalidArg(tail)
	}

	ints := make([]int64, len(l))

	for k, c := range l {
		i, ok := integer.Value(c)
		if !ok {
			return nil, throw.InvalidArg(c)
		}

		ints[k] = i
	}

	return ints, nil
}

func number(c cell.I) (float64, error) {
	f, ok := real.Number(c)
	if !ok {
		return 0, throw.InvalidArg(c)
	}

	return f, nil
}

func numbers(args cell.I) ([]float64, error) {
	l, tail := list.ToSlice(args)
	if tail != pair.Null {
		return nil, throw.InvalidArg(tail)
	}

	fs := make([]float64, len(l))

	for k, c := range l {
		f, err := number(c)
		if err != nil {
			return nil, err
		}

		fs[k] = f
	}

	return fs, nil
}

func text(c cell.I) (string, error) {
	if !str.Is(c) {
		return "", throw.InvalidArg(c)
	}

	s, _ := common.String(c)

	return s, nil
}
