// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/type/pair"
)

// Copy returns a fresh copy of the spine of list. An improper tail is kept.
func Copy(list cell.I) cell.I {
	head := pair.Cons(pair.Null, pair.Null)
	end := head

	for pair.Is(list) {
		p := pair.Cons(pair.Car(list), pair.Null)
		pair.SetCdr(end, p)
		end = p

		list = pair.Cdr(list)
	}

	pair.SetCdr(end, list)

	return pair.Cdr(head)
}

// Cyclic returns true if following the cdrs of list never reaches a
// non-pair. An improper tail is not a cycle.
func Cyclic(list cell.I) bool {
	slow := list

	for {
		for i := 0; i < 2; i++ {
			if !pair.Is(list) {
				return false
			}

			list = pair.Cdr(list)
		}

		slow = pair.Cdr(slow)
		if list == slow {
			return true
		}
	}
}

// Length returns the number of pairs in the spine of list.
// An improper tail is not counted. The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Star(pair.Null, elements...)
}

// Proper returns true if list ends in the empty list. Circular lists are
// detected and are not proper.
func Proper(list cell.I) bool {
	slow := list

	for {
		if list == pair.Null {
			return true
		}

		if !pair.Is(list) {
			return false
		}

		list = pair.Cdr(list)
		if list == pair.Null {
			return true
		}

		if !pair.Is(list) {
			return false
		}

		list = pair.Cdr(list)
		slow = pair.Cdr(slow)

		if list == slow {
			return false
		}
	}
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Star conses each element in elements, in order, onto tail.
// With no elements it returns tail itself.
func Star(tail cell.I, elements ...cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// ToSlice returns the elements of list and its tail. The tail is the
// empty list for a proper list.
// The list must be non-circular.
func ToSlice(list cell.I) ([]cell.I, cell.I) {
	var s []cell.I

	for pair.Is(list) {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s, list
}
