// Released under an MIT license. See LICENSE.

package task_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/throw"
	"github.com/jlisp/jl/internal/common/type/boolean"
	"github.com/jlisp/jl/internal/common/type/env"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/common/validate"
	"github.com/jlisp/jl/internal/engine/task"
	"github.com/jlisp/jl/internal/printer"
	"github.com/jlisp/jl/internal/reader/input"
	"github.com/jlisp/jl/internal/reader/parser"
)

type harness struct {
	*testing.T

	out  *bytes.Buffer
	task *task.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	return setupLogged(t, nil)
}

func setupLogged(t *testing.T, log *slog.Logger) *harness {
	t.Helper()

	global := env.New(nil)

	task.Register(global)

	for _, p := range []*task.Primitive{
		task.NewPrimitive("car", unary(pair.Car)),
		task.NewPrimitive("cdr", unary(pair.Cdr)),
		task.NewPrimitive("cons", func(args cell.I) (cell.I, error) {
			v, err := validate.Fixed(args, 2, 2)
			if err != nil {
				return nil, err
			}

			return pair.Cons(v[0], v[1]), nil
		}),
		task.NewPrimitive("list", func(args cell.I) (cell.I, error) {
			return args, nil
		}),
		task.NewPrimitive("explode", func(_ cell.I) (cell.I, error) {
			panic(errors.New("boom"))
		}),
		task.NewPrimitive("-", arithmetic(func(a, b float64) cell.I {
			return num.New(a - b)
		})),
		task.NewPrimitive("+", arithmetic(func(a, b float64) cell.I {
			return num.New(a + b)
		})),
		task.NewPrimitive("=", arithmetic(func(a, b float64) cell.I {
			return boolean.Bool(a == b)
		})),
	} {
		global.Define(sym.New(p.Label()), p)
	}

	out := &bytes.Buffer{}

	return &harness{T: t, out: out, task: task.New(global, out, log)}
}

func arithmetic(op func(a, b float64) cell.I) task.Command {
	return func(args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, err
		}

		for _, n := range v {
			if !num.Is(n) {
				return nil, throw.InvalidArg(n)
			}
		}

		return op(num.To(v[0]).Float(), num.To(v[1]).Float()), nil
	}
}

func unary(f func(cell.I) cell.I) task.Command {
	return func(args cell.I) (cell.I, error) {
		v, err := validate.Fixed(args, 1, 1)
		if err != nil {
			return nil, err
		}

		return f(v[0]), nil
	}
}

// Evaluate each form in text, returning the value of the last.
func (h *harness) eval(ctx context.Context, text string) (cell.I, error) {
	h.Helper()

	p := parser.New(input.String(h.Name(), text))

	var v cell.I = pair.Null

	for {
		c, err := p.Read()
		if throw.Is(err, parser.EndOfStream) {
			return v, nil
		} else if err != nil {
			h.Fatalf("%q: unexpected read error: %v", text, err)
		}

		v, err = h.task.EvalContext(ctx, c, h.task.Global())
		if err != nil {
			return nil, err
		}
	}
}

func (h *harness) check(text, expected string) {
	h.Helper()

	v, err := h.eval(context.Background(), text)
	if err != nil {
		h.Errorf("%q: unexpected error: %v", text, err)

		return
	}

	if actual := printer.Write(v); actual != expected {
		h.Errorf("%q: expected %s, got %s", text, expected, actual)
	}
}

func (h *harness) fails(text, kind string) {
	h.Helper()

	_, err := h.eval(context.Background(), text)
	if !throw.Is(err, kind) {
		h.Errorf("%q: expected %s, got %v", text, kind, err)
	}
}

func TestSelfEvaluating(t *testing.T) {
	h := setup(t)

	h.check(`1`, `1`)
	h.check(`"s"`, `"s"`)
	h.check(`#:key`, `#:key`)
	h.check(`#(1 2)`, `#(1 2)`)
	h.check(`'(a . b)`, `(a . b)`)
	h.check(`()`, `()`)

	h.fails(`nope`, "unbound-variable")
	h.fails(`(1 2)`, "invalid-function")
}

func TestSpecialForms(t *testing.T) {
	h := setup(t)

	h.check(`(define x 1)`, `x`)
	h.check(`(set! x 2) x`, `2`)
	h.fails(`(set! y 2)`, "unbound-variable")

	h.check(`(if #f 1)`, `()`)
	h.check(`(if () 1 2 3)`, `3`)
	h.check(`(if 0 1 2)`, `1`)

	h.check(`(cond (#f 1) (2))`, `2`)
	h.check(`(cond (#f 1))`, `#f`)
	h.check(`(cond (#f 1) (#t 2 3))`, `3`)

	h.check(`(define n 0) (while (if (= n 3) () #t) (set! n (+ n 1)))`, `()`)
	h.check(`n`, `3`)

	h.check(`(progn)`, `()`)
	h.check(`(progn 1 2)`, `2`)

	h.check(`(define (f a . b) (list a b)) (f 1 2 3)`, `(1 (2 3))`)
	h.check(`((lambda ()))`, `()`)
}

func TestTailCalls(t *testing.T) {
	h := setup(t)

	h.check(`
		(define (loop n) (if (= n 0) 'done (loop (- n 1))))
		(loop 1000000)
	`, `done`)

	h.check(`
		(define (count n) (cond ((= n 0) 'counted) (#t (count (- n 1)))))
		(count 1000000)
	`, `counted`)

	h.check(`
		(define (spin n) (if (= n 0) 'spun (apply spin (list (- n 1)))))
		(spin 100000)
	`, `spun`)

	h.check(`
		(define (whirl n) (if (= n 0) 'whirled (funcall whirl (- n 1))))
		(whirl 100000)
	`, `whirled`)
}

func TestBinding(t *testing.T) {
	h := setup(t)

	h.check(`
		((lambda (a #!optional (b 10) #!key (c 20) #!rest r) (list a b c r))
			1 2 #:c 99 3 4)
	`, `(1 2 99 (3 4))`)

	h.check(`((lambda (a #!optional (b 10) #!key (c 20) #!rest r) (list a b c r)) 1)`,
		`(1 10 20 ())`)
	h.check(`((lambda (a #!optional (b (+ a 1))) b) 1)`, `2`)
	h.check(`((lambda (#!optional b) b))`, `()`)
	h.check(`((lambda (#!key a b) (list a b)) #:b 2)`, `(() 2)`)
	h.check(`((lambda (#!key k #!rest r) (list k r)) 1 #:k 2 3)`, `(2 (1 3))`)
	h.fails(`((lambda (#!rest r #!key k) r))`, "invalid-lambda")
	h.check(`((lambda (a . r) r) 1 2 3)`, `(2 3)`)
	h.check(`((lambda (a) a) 1 2)`, `1`)

	h.fails(`((lambda (a b) a) 1)`, "missing-arg")
	h.fails(`((lambda (#!rest) 1))`, "invalid-lambda")
	h.fails(`((lambda (#!optional a #!optional b) 1))`, "invalid-lambda")
	h.fails(`((lambda (#!key a #!optional b) 1))`, "invalid-lambda")
	h.fails(`((lambda (#!rest a b) 1))`, "invalid-lambda")
	h.fails(`((lambda (#!rest a . b) 1))`, "invalid-lambda")
	h.fails(`((lambda ((a 1)) 1))`, "invalid-lambda")
	h.fails(`((lambda (1) 1) 1)`, "invalid-lambda")
}

func TestMissingArgIndex(t *testing.T) {
	h := setup(t)

	h.check(`
		(call-with-error-handlers
			(lambda () ((lambda (a b) a) 1))
			(cons 'missing-arg (lambda (c) c)))
	`, `(missing-arg 1)`)
}

func TestErrorHandlers(t *testing.T) {
	h := setup(t)

	h.fails(`
		(call-with-error-handlers
			(lambda () (signal '(arith-error "Divide by zero")))
			(cons '(invalid-arg missing-arg) (lambda (c) 'caught)))
	`, "arith-error")

	h.check(`
		(call-with-error-handlers
			(lambda () (signal '(arith-error "Divide by zero")))
			(cons '(invalid-arg arith-error) (lambda (c) 'listed))
			(cons 'error (lambda (c) 'any)))
	`, `listed`)

	h.check(`
		(call-with-error-handlers
			(lambda () (car 1))
			(cons 'missing-arg (lambda (c) 'missing))
			(cons 'error (lambda (c) (car c))))
	`, `invalid-arg`)

	h.check(`(call-with-error-handlers (lambda () 'fine) (cons 'error car))`, `fine`)

	// Throws to tags other than error pass through.
	h.check(`
		(call-with-catch 'out
			(lambda ()
				(call-with-error-handlers
					(lambda () (throw 'out 1))
					(cons 'error (lambda (c) 2)))))
	`, `1`)
}

func TestCatchAndThrow(t *testing.T) {
	h := setup(t)

	h.check(`(call-with-catch 'tag (lambda () (throw 'tag 42) 0))`, `42`)
	h.check(`(call-with-catch 'tag (lambda () 0))`, `0`)
	h.check(`
		(call-with-catch 'outer
			(lambda () (call-with-catch 'inner (lambda () (throw 'outer 1)))))
	`, `1`)

	_, err := h.eval(context.Background(), `(call-with-catch 'a (lambda () (throw 'b 1)))`)
	if e, ok := throw.As(err); !ok || e.IsCondition() {
		t.Errorf("expected an uncaught throw, got %v", err)
	}
}

func TestUnwindProtect(t *testing.T) {
	h := setup(t)

	h.check(`
		(define x 0)
		(call-with-catch 'k
			(lambda ()
				(call-with-unwind-protect
					(lambda () (throw 'k 1))
					(lambda () (set! x 5)))))
		x
	`, `5`)

	h.check(`
		(call-with-unwind-protect
			(lambda () 'body)
			(lambda () (set! x 6)))
	`, `body`)
	h.check(`x`, `6`)

	h.check(`
		(call-with-catch 'cleanup
			(lambda ()
				(call-with-unwind-protect
					(lambda () (throw 'body 1))
					(lambda () (throw 'cleanup 2)))))
	`, `2`)
}

func TestMacros(t *testing.T) {
	h := setup(t)

	h.check(`
		(define m (make-macro (lambda (x) (list 'quote x)) 'quoter))
		(m (a b))
	`, `(a b)`)
	h.check(`(macro? m)`, `#t`)
	h.check(`(macro-name m)`, `quoter`)
	h.check(`(procedure? (macro-function m))`, `#t`)

	h.check(`
		(define p (cons 'macro (lambda (x y) (list '+ x y))))
		(p 1 2)
	`, `3`)

	h.fails(`(define bad (cons 'macro 1)) (bad)`, "invalid-macro")
	h.fails(`(make-macro 1)`, "invalid-arg")
}

func TestBackquote(t *testing.T) {
	h := setup(t)

	h.check("(define x 2) (define l '(3 4)) `(1 ,x ,@l 5)", `(1 2 3 4 5)`)
	h.check("`(a . ,x)", `(a . 2)`)
	h.check("`#(1 ,x)", `#(1 2)`)
	h.check("`(a (b ,x))", `(a (b 2))`)
	h.check("`,x", `2`)
	h.check("`sym", `sym`)
}

func TestEval(t *testing.T) {
	h := setup(t)

	h.check(`(eval '(+ 1 2))`, `3`)
	h.check(`(define (f a) (eval 'a (environment))) (f 7)`, `7`)
	h.check(`(apply + 1 '(2))`, `3`)
	h.check(`(funcall list 1 2)`, `(1 2)`)
	h.fails(`(apply + 1 2)`, "invalid-arg")
}

func TestOutput(t *testing.T) {
	h := setup(t)

	h.check(`(display "a") (write "b") (newline) (print #\space)`, `#\space`)

	if actual, expected := h.out.String(), "a\"b\"\n#\\space\n"; actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func TestGensym(t *testing.T) {
	h := setup(t)

	a, err := h.eval(context.Background(), `(gensym)`)
	if err != nil {
		t.Fatal(err)
	}

	b, err := h.eval(context.Background(), `(gensym)`)
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Errorf("expected distinct symbols, got %s twice", printer.Write(a))
	}

	h = setup(t)

	h.check(`(define fresh1 1) (gensym "fresh")`, `fresh2`)
}

func TestInterrupted(t *testing.T) {
	h := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.eval(ctx, `(while #t 1)`)
	if !throw.Is(err, "interrupted") {
		t.Errorf("expected interrupted, got %v", err)
	}

	_, err = h.eval(ctx, `
		(call-with-error-handlers
			(lambda () (while #t 1))
			(cons 'error (lambda (c) 'caught)))
	`)
	if !throw.Is(err, "interrupted") {
		t.Errorf("expected interrupted to escape handlers, got %v", err)
	}
}

func TestApply(t *testing.T) {
	h := setup(t)

	fn, err := h.task.Global().Lookup(sym.New("list"))
	if err != nil {
		t.Fatal(err)
	}

	v, err := h.task.Apply(fn, list.New(num.Int(1), num.Int(2)))
	if err != nil {
		t.Fatal(err)
	}

	if actual := printer.Write(v); actual != "(1 2)" {
		t.Errorf("expected (1 2), got %s", actual)
	}
}

func TestFault(t *testing.T) {
	h := setup(t)

	_, err := h.eval(context.Background(), `(explode)`)
	if err == nil || err.Error() != "error: (invalid-arg #<errsys boom>)" {
		t.Fatalf("unexpected error: %v", err)
	}

	h.fails(`(car 1)`, "invalid-arg")
	h.check(`(call-with-error-handlers
	           (lambda () (explode))
	           (cons 'invalid-arg (lambda (c) 'caught)))`, `caught`)
}

func TestDebugLog(t *testing.T) {
	var b bytes.Buffer

	h := setupLogged(t, slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo})))
	h.check(`((lambda (x) x) 1)`, `1`)

	if b.Len() != 0 {
		t.Fatalf("unexpected records below the handler level: %q", b.String())
	}

	h = setupLogged(t, slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug})))
	h.check(`((lambda (x) x) (list 1 2))`, `(1 2)`)

	for _, expected := range []string{`msg=bind`, `msg=call`, `args="((1 2))"`, `form="(x)"`} {
		if !strings.Contains(b.String(), expected) {
			t.Errorf("expected %s in %q", expected, b.String())
		}
	}
}
