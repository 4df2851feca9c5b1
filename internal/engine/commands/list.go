// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/validate"
)

// Copy all but the last list. The result shares the last list.
func appendLists(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	head := pair.Cons(pair.Null, pair.Null)
	end := head

	for i, l := range v {
		if i == len(v)-1 {
			pair.SetCdr(end, l)

			break
		}

		if !walkable(l) {
			return nil, throw.InvalidArg(l)
		}

		for ; pair.Is(l); l = pair.Cdr(l) {
			p := pair.Cons(pair.Car(l), pair.Null)
			pair.SetCdr(end, p)
			end = p
		}
	}

	return pair.Cdr(head), nil
}

func assoc(args cell.I) (cell.I, error) {
	return association(args, cell.Equal)
}

// Return the first pair in the association list whose car matches key.
func association(args cell.I, match func(a, b cell.I) bool) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	key, l := v[0], v[1]
	if !walkable(l) {
		return nil, throw.InvalidArg(l)
	}

	for ; pair.Is(l); l = pair.Cdr(l) {
		entry := pair.Car(l)
		if pair.Is(entry) && match(pair.Car(entry), key) {
			return entry, nil
		}
	}

	return pair.Null, nil
}

func assq(args cell.I) (cell.I, error) {
	return association(args, cell.Eqv)
}

func isList(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(isListValue(v[0])), nil
}

func isListValue(c cell.I) bool {
	return c == pair.Null || pair.Is(c)
}

func listLength(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Proper(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return integerValue(list.Length(v[0])), nil
}

func listRef(args cell.I) (cell.I, error) {
	l, err := listTail(args)
	if err != nil {
		return nil, err
	}

	return first(l)
}

func listStar(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return pair.Null, nil
	}

	return list.Star(v[len(v)-1], v[:len(v)-1]...), nil
}

func listTail(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	l := v[0]
	if !isListValue(l) {
		return nil, throw.InvalidArg(l)
	}

	n, err := index(v[1])
	if err != nil {
		return nil, err
	}

	for ; n > 0; n-- {
		l, err = rest(l)
		if err != nil {
			return nil, err
		}
	}

	return l, nil
}

func makeList(args cell.I) (cell.I, error) {
	return args, nil
}

func makeListOf(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 2)
	if err != nil {
		return nil, err
	}

	n, err := index(v[0])
	if err != nil {
		return nil, err
	}

	var fill cell.I = pair.Null
	if len(v) > 1 {
		fill = v[1]
	}

	l := pair.Null
	for ; n > 0; n-- {
		l = pair.Cons(fill, l)
	}

	return l, nil
}

func member(args cell.I) (cell.I, error) {
	return membership(args, cell.Equal)
}

// Return the first tail of the list whose car matches the item.
func membership(args cell.I, match func(a, b cell.I) bool) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	item, l := v[0], v[1]
	if !walkable(l) {
		return nil, throw.InvalidArg(l)
	}

	for ; pair.Is(l); l = pair.Cdr(l) {
		if match(pair.Car(l), item) {
			return l, nil
		}
	}

	return pair.Null, nil
}

func memq(args cell.I) (cell.I, error) {
	return membership(args, cell.Eqv)
}

// Destructively join the lists. Every list is checked before any is
// modified, so joining a list to itself makes a cycle rather than a hang.
func nconc(args cell.I) (cell.I, error) {
	v, err := proper(args)
	if err != nil {
		return nil, err
	}

	var lists, ends []cell.I

	for _, l := range v {
		if !walkable(l) {
			return nil, throw.InvalidArg(l)
		}

		if l == pair.Null {
			continue
		}

		end := l
		for pair.Is(pair.Cdr(end)) {
			end = pair.Cdr(end)
		}

		lists = append(lists, l)
		ends = append(ends, end)
	}

	if len(lists) == 0 {
		return pair.Null, nil
	}

	for i := 1; i < len(lists); i++ {
		pair.SetCdr(ends[i-1], lists[i])
	}

	return lists[0], nil
}

func nreverse(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Proper(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	l, reversed := v[0], pair.Null
	for pair.Is(l) {
		next := pair.Cdr(l)
		pair.SetCdr(l, reversed)
		reversed, l = l, next
	}

	return reversed, nil
}

// Return the arguments as a slice. Every primitive receives a proper list.
func proper(args cell.I) ([]cell.I, error) {
	v, tail := list.ToSlice(args)
	if tail != pair.Null {
		return nil, throw.InvalidArg(tail)
	}

	return v, nil
}

func reverse(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Proper(v[0]) {
		return nil, throw.InvalidArg(v[0])
	}

	return list.Reverse(v[0]), nil
}

// A list that can be walked to its end: the empty list or a pair whose
// cdrs reach a non-pair.
func walkable(c cell.I) bool {
	return isListValue(c) && !list.Cyclic(c)
}
