// Released under an MIT license. See LICENSE.

// Package throw provides jl's non-local exit. A condition is a throw to
// the tag error whose value is a list starting with the condition type.
package throw

import (
	"errors"

	"github.com/jlisp/jl/internal/common/interface/cell"
	"github.com/jlisp/jl/internal/common/type/list"
	"github.com/jlisp/jl/internal/common/type/num"
	"github.com/jlisp/jl/internal/common/type/pair"
	"github.com/jlisp/jl/internal/common/type/str"
	"github.com/jlisp/jl/internal/common/type/sym"
	"github.com/jlisp/jl/internal/printer"
)

// T (throw) is an escape to the nearest catch for Tag carrying Value.
type T struct {
	Tag   cell.I
	Value cell.I
}

// Error is the tag used for conditions.
//
//nolint:gochecknoglobals
var Error = sym.New("error")

// New creates a throw to tag with value.
func New(tag, value cell.I) *T {
	return &T{Tag: tag, Value: value}
}

// Signal creates a condition with the payload (kind data...).
func Signal(kind string, data ...cell.I) *T {
	return New(Error, list.New(append([]cell.I{sym.New(kind)}, data...)...))
}

// ArithError creates an arith-error condition.
func ArithError(msg string) *T {
	return Signal("arith-error", list.New(str.New(msg)))
}

// FileError creates a file-error condition.
func FileError(msg, path string) *T {
	return Signal("file-error", str.New(msg), str.New(path))
}

// InvalidArg creates an invalid-arg condition for the value v.
func InvalidArg(v cell.I) *T {
	return Signal("invalid-arg", v)
}

// InvalidLambda creates an invalid-lambda condition for the parameter
// param in the parameter spec.
func InvalidLambda(spec, param cell.I) *T {
	return Signal("invalid-lambda", spec, param)
}

// MissingArg creates a missing-arg condition for the 0-based position i.
func MissingArg(i int) *T {
	return Signal("missing-arg", num.Int(i))
}

// Unbound creates an unbound-variable condition for the symbol s.
func Unbound(s cell.I) *T {
	return Signal("unbound-variable", s)
}

// As returns the throw in err's chain, if there is one.
func As(err error) (*T, bool) {
	var t *T
	if errors.As(err, &t) {
		return t, true
	}

	return nil, false
}

// Condition returns the payload of a condition in err's chain.
func Condition(err error) (cell.I, bool) {
	t, ok := As(err)
	if !ok || !t.IsCondition() {
		return nil, false
	}

	return t.Value, true
}

// Error renders the throw t for display.
func (t *T) Error() string {
	o := printer.Options{Readable: true, Escape: printer.EscapeNewlines, MaxDepth: 4, MaxLength: 10}

	if t.IsCondition() {
		return "error: " + printer.Render(t.Value, o)
	}

	return "uncaught throw to " + printer.Render(t.Tag, o) + ": " + printer.Render(t.Value, o)
}

// IsCondition returns true if t was raised by signal.
func (t *T) IsCondition() bool {
	return t.Tag == Error
}

// Type returns the condition type of t, or nil if t is not a condition.
func (t *T) Type() cell.I {
	if !t.IsCondition() || !pair.Is(t.Value) {
		return nil
	}

	return pair.Car(t.Value)
}

// Is returns true if err is a condition of type kind.
func Is(err error, kind string) bool {
	t, ok := As(err)

	return ok && t.Type() == sym.New(kind)
}
