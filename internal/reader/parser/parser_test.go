// Released under an MIT license. See LICENSE.

package parser_test

import (
	"testing"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/char"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/obj"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/printer"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/parser"
)

type harness struct {
	*testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	return &harness{t}
}

func (h *harness) read(text string) cell.I {
	h.Helper()

	c, err := parser.Read(input.String(h.Name(), text))
	if err != nil {
		h.Fatalf("%q: unexpected error: %v", text, err)
	}

	return c
}

func (h *harness) check(text, expected string) {
	h.Helper()

	if actual := printer.Write(h.read(text)); actual != expected {
		h.Errorf("%q: expected %s, got %s", text, expected, actual)
	}
}

func (h *harness) fails(text, kind string) {
	h.Helper()

	_, err := parser.Read(input.String(h.Name(), text))
	if !throw.Is(err, kind) {
		h.Errorf("%q: expected %s, got %v", text, kind, err)
	}
}

func (h *harness) number(text string, expected float64) {
	h.Helper()

	c := h.read(text)
	if !num.Is(c) || num.To(c).Float() != expected {
		h.Errorf("%q: expected number %v, got %s", text, expected, printer.Write(c))
	}
}

func (h *harness) symbol(text, expected string) {
	h.Helper()

	c := h.read(text)
	if c != sym.New(expected) {
		h.Errorf("%q: expected symbol %q, got %s", text, expected, printer.Write(c))
	}
}

func TestNumbers(t *testing.T) {
	h := setup(t)

	h.number("-1", -1)
	h.number("+5", 5)
	h.number("42", 42)
	h.number("-1.5", -1.5)
	h.number(".5", 0.5)
	h.number("1.", 1)
	h.number("1e3", 1000)
	h.number("1.5e-3", 0.0015)
	h.number("1/2", 0.5)
	h.number("-1/2", -0.5)
	h.number("#x1F", 31)
	h.number("#X1f", 31)
	h.number("#b101", 5)
	h.number("#o17", 15)
	h.number("#d10", 10)
	h.number("#x-10", -16)
	h.number("#e1.5", 1.5)
	h.number("#i3", 3)
}

func TestNumberLikeSymbols(t *testing.T) {
	h := setup(t)

	h.symbol("-", "-")
	h.symbol("+", "+")
	h.symbol("1-2", "1-2")
	h.symbol("1+", "1+")
	h.symbol("--1", "--1")
	h.symbol("1e", "1e")
	h.symbol("1/", "1/")
	h.symbol("1/0", "1/0")
	h.symbol("1.2.3", "1.2.3")
	h.symbol("1.5/2", "1.5/2")
	h.symbol("#b102", "#b102")
	h.symbol("#x", "#x")
	h.symbol(`\1`, "1")
	h.symbol("|12|", "12")
	h.symbol("1-", "1-")
}

func TestSymbols(t *testing.T) {
	h := setup(t)

	h.symbol("foo", "foo")
	h.symbol("foo;comment", "foo")
	h.symbol(`a\ b`, "a b")
	h.symbol("|a b|c", "a bc")
	h.symbol("#!optional", "#!optional")
	h.symbol("||", "")

	if c := h.read("#:key"); c != sym.Keyword("key") {
		h.Errorf("expected keyword, got %s", printer.Write(c))
	}

	if c := h.read("#:key"); c == sym.New("key") {
		h.Error("keyword must not be the symbol of the same name")
	}

	h.check("foo#bar", "(ref foo (quote bar))")
	h.check("1#foo", `\1\#foo`)
}

func TestLists(t *testing.T) {
	h := setup(t)

	h.check("()", "()")
	h.check("(1 2 3)", "(1 2 3)")
	h.check("(1 2 . 3)", "(1 2 . 3)")
	h.check("(1 . (2 3))", "(1 2 3)")
	h.check("(a .5)", "(a 0.5)")
	h.check("(a . .5)", "(a . 0.5)")
	h.check("(a .b)", "(a .b)")
	h.check("( 1 ; one\n 2 )", "(1 2)")
	h.check("'a", "(quote a)")
	h.check("`(a ,b ,@c)", "(backquote (a (backquote-unquote b) (backquote-splice c)))")

	c := h.read("(1 2 . 3)")
	if !num.Int(3).Equal(pair.Cddr(c)) {
		h.Errorf("expected 3 in the final cdr, got %s", printer.Write(pair.Cddr(c)))
	}
}

func TestVectorsAndObjects(t *testing.T) {
	h := setup(t)

	h.check("[1 a \"s\"]", `#(1 a "s")`)
	h.check("#(1 (2))", "#(1 (2))")
	h.check(`{a 1 "b" 2 #\c 3}`, `{"a" 1 "b" 2 "c" 3}`)

	o := obj.To(h.read(`{b 1 a 2}`))
	if keys := o.Keys(); len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		h.Errorf("expected keys in insertion order, got %v", keys)
	}
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.check(`"plain"`, `"plain"`)
	h.check(`"a\nb\tc"`, `"a\nb\tc"`)
	h.check(`"q\"b\\"`, `"q\"b\\"`)
	h.check(`"\101\x42C"`, `"ABC"`)
	h.check(`"\^A"`, `"\001"`)
	h.check(`"é"`, `"\351"`)
}

func TestCharacters(t *testing.T) {
	h := setup(t)

	for text, expected := range map[string]rune{
		`#\a`:       'a',
		`#\(`:       '(',
		`#\space`:   ' ',
		`#\Space`:   ' ',
		`#\newline`: '\n',
		`#\tab`:     '\t',
		`#\rubout`:  127,
		`#\1`:       '1',
	} {
		if c := h.read(text); c != char.New(expected) {
			h.Errorf("%q: expected %q, got %s", text, expected, printer.Write(c))
		}
	}

	h.check(`(#\a)`, `(#\a)`)
	h.fails(`#\spac`, parser.InvalidReadSyntax)
	h.fails(`#\ab`, parser.InvalidReadSyntax)
}

func TestHashDispatch(t *testing.T) {
	h := setup(t)

	h.check("#t", "#t")
	h.check("#F", "#f")
	h.check("#| a #| nested |# b |# 42", "42")
	h.fails("#q", parser.InvalidReadSyntax)
	h.fails("#| open", parser.PrematureEndOfStream)
}

func TestEndOfStream(t *testing.T) {
	h := setup(t)

	h.fails("", parser.EndOfStream)
	h.fails("   ; just a comment", parser.EndOfStream)
	h.fails("(1 2", parser.PrematureEndOfStream)
	h.fails(`"open`, parser.PrematureEndOfStream)
	h.fails("'", parser.PrematureEndOfStream)
	h.fails("[1", parser.PrematureEndOfStream)
	h.fails(`a\`, parser.PrematureEndOfStream)
}

func TestSyntaxErrors(t *testing.T) {
	h := setup(t)

	h.fails(")", parser.InvalidReadSyntax)
	h.fails("(. a)", parser.InvalidReadSyntax)
	h.fails("(a . b c)", parser.InvalidReadSyntax)
	h.fails("(a .)", parser.InvalidReadSyntax)
	h.fails("(a . . b)", parser.InvalidReadSyntax)
	h.fails("{(a) 1}", parser.InvalidReadSyntax)
	h.fails(`"\q"`, parser.InvalidReadSyntax)
}

func TestConditionLocation(t *testing.T) {
	_, err := parser.Read(input.String("file.jl", "\n  )"))

	payload, ok := throw.Condition(err)
	if !ok {
		t.Fatalf("expected a condition, got %v", err)
	}

	if s := printer.Display(pair.Cadr(payload)); s != "file.jl:2:4" {
		t.Errorf("expected location file.jl:2:4, got %s", s)
	}
}

func TestSequentialReads(t *testing.T) {
	s := input.String("seq", "1 (2) three")

	for _, expected := range []string{"1", "(2)", "three"} {
		c, err := parser.Read(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if actual := printer.Write(c); actual != expected {
			t.Errorf("expected %s, got %s", expected, actual)
		}
	}

	if _, err := parser.Read(s); !throw.Is(err, parser.EndOfStream) {
		t.Errorf("expected end-of-stream, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	h := setup(t)

	for _, text := range []string{
		"(1 2 . 3)",
		`(a "b\n" #\c #(1 2) {"k" v} #:kw #t #f ())`,
		`(\1-2 |a b| -0.5 1e+21)`,
		`"\001\177"`,
	} {
		first := h.read(text)
		second := h.read(printer.Write(first))

		if !cell.Equal(first, second) {
			h.Errorf("%q: round trip produced %s", text, printer.Write(second))
		}
	}
}
