package eval

import (
	"fmt"

	juju "github.com/juju/errors"

	"github.com/tan-lang/tan/internal/lang"
)

// ErrorKind classifies a resolve/evaluation-time error, per spec §7's
// richer (authoritative) taxonomy.
type ErrorKind int

const (
	UndefinedSymbol ErrorKind = iota
	UndefinedFunction
	InvalidArguments
	NotInvocable
	FailedUse
	Io
)

var errorKindNames = map[ErrorKind]string{
	UndefinedSymbol:   "UndefinedSymbol",
	UndefinedFunction: "UndefinedFunction",
	InvalidArguments:  "InvalidArguments",
	NotInvocable:      "NotInvocable",
	FailedUse:         "FailedUse",
	Io:                "Io",
}

func (k ErrorKind) String() string {
	return errorKindNames[k]
}

// Error is a ranged evaluation error. Every error produced by this package
// carries a Range (spec §7: "No error should lack a source range"); when an
// error bubbles up from a nested evaluation it keeps its original,
// innermost Range rather than being re-ranged by the caller.
type Error struct {
	Kind    ErrorKind
	Range   lang.Range
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Kind, e.Range)
	}

	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Range, e.Message)
}

// Unwrap exposes a wrapped cause (set by newFailedUse) to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, r lang.Range, message string) *Error {
	return &Error{Kind: kind, Range: r, Message: message}
}

// newFailedUse wraps a nested parse/resolve/eval failure from a `(use ...)`
// directory load. juju/errors.Annotate is used here, not plain fmt.Errorf,
// because the wrapped cause crosses a pass boundary (parser or a recursive
// Eval call) and callers may want its Cause() back — the single-pass
// accumulators (lexer.Error, parser.ParseErrors) don't need that, which is
// why they stay on plain error values.
func newFailedUse(r lang.Range, dir string, cause error) *Error {
	wrapped := juju.Annotatef(cause, "use %q", dir)

	return &Error{Kind: FailedUse, Range: r, Message: wrapped.Error(), cause: cause}
}
