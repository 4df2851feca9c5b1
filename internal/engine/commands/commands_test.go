// Released under an MIT license. See LICENSE.

package commands_test

import (
	"testing"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/engine/commands"
	"github.com/jlisp/jl/internal/printer"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/parser"
)

type harness struct {
	*testing.T

	functions map[string]commands.Command
}

func setup(t *testing.T) *harness {
	t.Helper()

	return &harness{t, commands.Functions()}
}

// Call the named primitive with arguments read from text.
func (h *harness) call(name, text string) (cell.I, error) {
	h.Helper()

	fn, ok := h.functions[name]
	if !ok {
		h.Fatalf("%s: no such primitive", name)
	}

	args, err := parser.Read(input.String(h.Name(), "("+text+")"))
	if err != nil {
		h.Fatalf("%q: unexpected read error: %v", text, err)
	}

	return fn(args)
}

func (h *harness) check(name, text, expected string) {
	h.Helper()

	v, err := h.call(name, text)
	if err != nil {
		h.Errorf("(%s %s): unexpected error: %v", name, text, err)

		return
	}

	if actual := printer.Write(v); actual != expected {
		h.Errorf("(%s %s): expected %s, got %s", name, text, expected, actual)
	}
}

func (h *harness) fails(name, text, kind string) {
	h.Helper()

	_, err := h.call(name, text)
	if !throw.Is(err, kind) {
		h.Errorf("(%s %s): expected %s, got %v", name, text, kind, err)
	}
}

func TestListStar(t *testing.T) {
	h := setup(t)

	h.check("list*", ``, `()`)
	h.check("list*", `1`, `1`)
	h.check("list*", `1 2`, `(1 . 2)`)
	h.check("list*", `1 2 (3 4)`, `(1 2 3 4)`)
	h.check("list*", `()`, `()`)
}

func TestLists(t *testing.T) {
	h := setup(t)

	h.check("car", `()`, `()`)
	h.check("cdr", `()`, `()`)
	h.fails("car", `1`, "invalid-arg")
	h.fails("car", `(1) (2)`, "invalid-arg")
	h.fails("car", ``, "missing-arg")

	h.check("cadr", `(1 2 3)`, `2`)
	h.check("cddr", `(1 2 3)`, `(3)`)
	h.check("caddr", `(1 2 3)`, `3`)
	h.check("cdddr", `(1 2 3)`, `()`)

	h.check("append", ``, `()`)
	h.check("append", `(1) () (2 3) 4`, `(1 2 3 . 4)`)
	h.fails("append", `1 (2)`, "invalid-arg")

	h.check("reverse", `(1 2 3)`, `(3 2 1)`)
	h.check("nreverse", `(1 2 3)`, `(3 2 1)`)
	h.check("nconc", `() (1) () (2 3)`, `(1 2 3)`)

	h.check("list-length", `(1 2 3)`, `3`)
	h.fails("list-length", `(1 . 2)`, "invalid-arg")
	h.check("list-tail", `(1 2 3) 2`, `(3)`)
	h.check("list-ref", `(1 2 3) 1`, `2`)
	h.check("list-ref", `(1 2 3) 5`, `()`)
	h.check("make-list", `2 x`, `(x x)`)

	h.check("memq", `b (a b c)`, `(b c)`)
	h.check("memq", `(b) (a (b) c)`, `()`)
	h.check("member", `(b) (a (b) c)`, `((b) c)`)
	h.check("assq", `b ((a . 1) (b . 2))`, `(b . 2)`)
	h.check("assoc", `"b" (("a" . 1) ("b" . 2))`, `("b" . 2)`)

	h.check("list?", `()`, `#t`)
	h.check("list?", `(1 . 2)`, `#t`)
	h.check("list?", `1`, `#f`)
}

func TestEquality(t *testing.T) {
	h := setup(t)

	h.check("eq?", `a a`, `#t`)
	h.check("eq?", `1 1`, `#t`)
	h.check("eq?", `(1) (1)`, `#f`)
	h.check("eqv?", `#\a #\a`, `#t`)
	h.check("equal?", `(1 #(2 "x") {a 1}) (1 #(2 "x") {a 1})`, `#t`)
	h.check("equal?", `(1 2) (1 3)`, `#f`)
	h.check("not", `()`, `#t`)
	h.check("not", `0`, `#f`)
	h.check("boolean?", `#f`, `#t`)
}

func TestEqualCycles(t *testing.T) {
	h := setup(t)

	a := list.New(num.Int(1), num.Int(2))
	pair.SetCdr(pair.Cdr(a), a)

	b := list.New(num.Int(1), num.Int(2))
	pair.SetCdr(pair.Cdr(b), b)

	c := list.New(num.Int(1), num.Int(3))
	pair.SetCdr(pair.Cdr(c), c)

	equal := h.functions["equal?"]

	v, err := equal(list.New(a, b))
	if err != nil || printer.Write(v) != "#t" {
		t.Errorf("expected cyclic lists to be equal, got %v, %v", v, err)
	}

	v, err = equal(list.New(a, c))
	if err != nil || printer.Write(v) != "#f" {
		t.Errorf("expected cyclic lists to differ, got %v, %v", v, err)
	}

	length := h.functions["list-length"]

	_, err = length(list.New(a))
	if !throw.Is(err, "invalid-arg") {
		t.Errorf("expected invalid-arg for a circular list, got %v", err)
	}
}

func TestCircularLists(t *testing.T) {
	h := setup(t)

	ring := func() cell.I {
		c := list.New(num.Int(1), num.Int(2))
		pair.SetCdr(pair.Cdr(c), c)

		return c
	}

	item := num.Int(9)

	for _, tc := range []struct {
		name string
		args cell.I
	}{
		{"append", list.New(ring(), list.New(item))},
		{"nconc", list.New(ring(), list.New(item))},
		{"memq", list.New(item, ring())},
		{"member", list.New(item, ring())},
		{"assq", list.New(item, ring())},
		{"assoc", list.New(item, ring())},
		{"list-length", list.New(ring())},
		{"length", list.New(ring())},
		{"reverse", list.New(ring())},
		{"nreverse", list.New(ring())},
		{"copy-sequence", list.New(ring())},
		{"concat", list.New(ring())},
	} {
		_, err := h.functions[tc.name](tc.args)
		if !throw.Is(err, "invalid-arg") {
			t.Errorf("%s: expected invalid-arg for a circular list, got %v", tc.name, err)
		}
	}

	// A walk bounded by an index still succeeds.
	v, err := h.functions["list-ref"](list.New(ring(), num.Int(5)))
	if err != nil || printer.Write(v) != "2" {
		t.Errorf("list-ref: expected 2, got %v, %v", v, err)
	}

	// Joining a list to itself makes a cycle.
	l := list.New(num.Int(1))

	v, err = h.functions["nconc"](list.New(l, l))
	if err != nil || v != l || pair.Cdr(l) != l {
		t.Errorf("nconc: expected a one element cycle, got %v, %v", v, err)
	}
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.check("+", ``, `0`)
	h.check("+", `1 2 3`, `6`)
	h.check("-", `5`, `-5`)
	h.check("-", `5 1 1`, `3`)
	h.check("*", ``, `1`)
	h.check("/", `2`, `0.5`)
	h.check("/", `9 3`, `3`)
	h.fails("/", `1 0`, "arith-error")
	h.fails("-", ``, "missing-arg")
	h.fails("+", `1 a`, "invalid-arg")

	h.check("mod", `-7 2`, `1`)
	h.check("remainder", `-7 2`, `-1`)
	h.check("quotient", `7 2`, `3`)
	h.fails("quotient", `7 0`, "arith-error")
	h.fails("quotient", `7.5 2`, "invalid-arg")

	h.check("1+", `1`, `2`)
	h.check("1-", `1`, `0`)
	h.check("floor", `1.5`, `1`)
	h.check("ceiling", `1.5`, `2`)
	h.check("truncate", `-1.5`, `-1`)
	h.check("expt", `2 10`, `1024`)
	h.check("sqrt", `16`, `4`)
	h.fails("sqrt", `-1`, "arith-error")
	h.fails("log", `-1`, "arith-error")
	h.check("gcd", `12 18`, `6`)
	h.check("gcd", ``, `0`)
	h.check("max", `1 3 2`, `3`)
	h.check("min", `1 3 2`, `1`)

	h.check("logand", `12 10`, `8`)
	h.check("logior", `12 10`, `14`)
	h.check("logxor", `12 10`, `6`)
	h.check("lognot", `0`, `-1`)
	h.check("ash", `1 4`, `16`)
	h.check("ash", `16 -2`, `4`)
	h.check("ash", `-1 40`, `-1099511627776`)
	h.check("ash", `-8 -100`, `-1`)
	h.check("ash", `0 100`, `0`)
	h.fails("ash", `1 70`, "arith-error")
	h.fails("ash", `1 63`, "arith-error")
	h.fails("ash", `3 62`, "arith-error")

	h.check("<", `1 2 3`, `#t`)
	h.check("<", `1 3 2`, `#f`)
	h.check("=", `1 1.0`, `#t`)
	h.check(">=", `2 2 1`, `#t`)
}

func TestNumbers(t *testing.T) {
	h := setup(t)

	h.check("integer?", `1.0`, `#t`)
	h.check("integer?", `1.5`, `#f`)
	h.check("positive-integer?", `-1`, `#f`)
	h.check("zero?", `0`, `#t`)
	h.check("number?", `"1"`, `#f`)

	h.check("string->number", `"-1.5"`, `-1.5`)
	h.check("string->number", `"1/2"`, `0.5`)
	h.check("string->number", `"#x10"`, `16`)
	h.check("string->number", `"ff" 16`, `255`)
	h.check("string->number", `"1-2"`, `#f`)
	h.check("string->number", `"12 34"`, `#f`)
	h.check("number->string", `255 16`, `"ff"`)
	h.check("number->string", `1.5`, `"1.5"`)
	h.fails("number->string", `1.5 2`, "invalid-arg")
}

func TestCharacters(t *testing.T) {
	h := setup(t)

	h.check("char->integer", `#\a`, `97`)
	h.check("integer->char", `97`, `#\a`)
	h.check("char<?", `#\a #\b`, `#t`)
	h.check("char=?", `#\a #\b`, `#f`)
	h.fails("char=?", `#\a "a"`, "invalid-arg")
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.check("string-length", `"héllo"`, `5`)
	h.check("string-ref", `"héllo" 1`, `#\é`)
	h.fails("string-ref", `"abc" 3`, "invalid-arg")
	h.check("substring", `"hello" 1 3`, `"el"`)
	h.check("substring", `"hello" 2`, `"llo"`)
	h.fails("substring", `"hello" 3 2`, "invalid-arg")
	h.check("concat", `"a" #\b (#\c) #(#\d) ()`, `"abcd"`)
	h.fails("concat", `1`, "invalid-arg")
	h.check("string=?", `"a" "a"`, `#t`)
	h.check("string<?", `"a" "b"`, `#t`)

	h.check("symbol->string", `foo`, `"foo"`)
	h.check("string->symbol", `"foo bar"`, `foo\ bar`)
	h.check("string->keyword", `"k"`, `#:k`)
	h.check("keyword?", `#:k`, `#t`)
	h.check("symbol?", `k`, `#t`)

	h.check("glob-match?", `"*.jl" "boot.jl"`, `#t`)
	h.check("glob-match?", `"b?ot.[a-z]l" "boot.jl"`, `#t`)
	h.check("glob-match?", `"*.go" "boot.jl"`, `#f`)
	h.fails("glob-match?", `"[" "x"`, "invalid-arg")
}

func TestVectors(t *testing.T) {
	h := setup(t)

	h.check("vector", `1 2`, `#(1 2)`)
	h.check("make-vector", `2 0`, `#(0 0)`)
	h.check("vector-length", `#(1 2)`, `2`)
	h.check("vector-ref", `#(1 2) 1`, `2`)
	h.fails("vector-ref", `#(1 2) 2`, "invalid-arg")
	h.check("vector-set!", `#(1 2) 1 x`, `x`)
	h.check("vector?", `[1]`, `#t`)
}

func TestSequences(t *testing.T) {
	h := setup(t)

	h.check("length", `(1 2)`, `2`)
	h.check("length", `"abc"`, `3`)
	h.check("length", `#(1)`, `1`)
	h.fails("length", `1`, "invalid-arg")
	h.check("elt", `(a b) 1`, `b`)
	h.check("elt", `"ab" 1`, `#\b`)
	h.check("elt", `#(a b) 0`, `a`)
	h.check("copy-sequence", `(1 2)`, `(1 2)`)
	h.check("copy-sequence", `#(1 2)`, `#(1 2)`)
}

func TestObjects(t *testing.T) {
	h := setup(t)

	h.check("make-object", `a 1 "b" 2`, `{"a" 1 "b" 2}`)
	h.fails("make-object", `a`, "missing-arg")
	h.check("object-ref", `{a 1} a`, `1`)
	h.check("object-ref", `{a 1} "b" 2`, `2`)
	h.check("ref", `{#\a 1} "a"`, `1`)
	h.check("object-defines?", `{a 1} a`, `#t`)
	h.check("object-keys", `{b 1 a 2}`, `("b" "a")`)
	h.check("object-set!", `{} a 1`, `1`)
	h.check("object-delete!", `{a 1} a`, `#t`)
	h.fails("object-ref", `(a) a`, "invalid-arg")
}
