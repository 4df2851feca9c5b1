// Released under an MIT license. See LICENSE.

package list

import (
	"testing"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/pair"
)

func ints(l cell.I) []int {
	s, _ := ToSlice(l)

	r := make([]int, len(s))
	for i, c := range s {
		r[i] = int(num.To(c).Float())
	}

	return r
}

// Make a list of length n whose last pair points back to the first.
func ring(n int) cell.I {
	elements := make([]cell.I, n)
	for i := range elements {
		elements[i] = num.Int(i)
	}

	l := New(elements...)

	end := l
	for pair.Is(pair.Cdr(end)) {
		end = pair.Cdr(end)
	}

	pair.SetCdr(end, l)

	return l
}

func TestProper(t *testing.T) {
	one, two, three := num.Int(1), num.Int(2), num.Int(3)

	if !Proper(pair.Null) || !Proper(New(one, two, three)) {
		t.Error("expected proper lists")
	}

	if Proper(Star(three, one, two)) || Proper(one) {
		t.Error("expected improper lists")
	}

	for n := 1; n <= 5; n++ {
		if Proper(ring(n)) {
			t.Errorf("cycle of length %d reported as proper", n)
		}
	}
}

func TestCyclic(t *testing.T) {
	for n := 1; n <= 5; n++ {
		if !Cyclic(ring(n)) {
			t.Errorf("cycle of length %d not detected", n)
		}

		// A cycle reached after a prefix.
		if !Cyclic(Star(ring(n), num.Int(7), num.Int(8), num.Int(9))) {
			t.Errorf("cycle of length %d after a prefix not detected", n)
		}
	}

	for _, l := range []cell.I{
		pair.Null,
		num.Int(1),
		New(num.Int(1), num.Int(2), num.Int(3)),
		Star(num.Int(9), num.Int(1), num.Int(2)),
	} {
		if Cyclic(l) {
			t.Errorf("%v reported as cyclic", l)
		}
	}
}

func TestOperations(t *testing.T) {
	l := New(num.Int(1), num.Int(2))

	c := Copy(l)
	pair.SetCar(c, num.Int(5))

	if r := ints(l); r[0] != 1 {
		t.Fatalf("copy shares structure: %v", r)
	}

	if Length(c) != 2 {
		t.Fatalf("unexpected length: %d", Length(c))
	}

	if r := ints(Reverse(Star(New(num.Int(3)), num.Int(1), num.Int(2)))); len(r) != 3 || r[0] != 3 || r[2] != 1 {
		t.Errorf("unexpected reverse: %v", r)
	}

	s, tail := ToSlice(Star(num.Int(9), num.Int(1)))
	if len(s) != 1 || !tail.Equal(num.Int(9)) {
		t.Errorf("unexpected dotted list: %v %v", s, tail)
	}
}
