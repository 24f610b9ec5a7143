package parser

import (
	"fmt"
	"strings"

	"github.com/tan-lang/tan/internal/lang"
)

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnterminatedList
	InvalidQuote
	MalformedInt
	MalformedFloat
	MalformedAnnotation
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken:     "UnexpectedToken",
	UnterminatedList:    "UnterminatedList",
	InvalidQuote:        "InvalidQuote",
	MalformedInt:        "MalformedInt",
	MalformedFloat:      "MalformedFloat",
	MalformedAnnotation: "MalformedAnnotation",
}

func (k ErrorKind) String() string {
	return errorKindNames[k]
}

// SyntaxError is one parse-time error, tied to the source Range where it
// was detected.
type SyntaxError struct {
	Kind    ErrorKind
	Range   lang.Range
	Message string
}

func (e SyntaxError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Kind, e.Range)
	}

	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Range, e.Message)
}

// ParseErrors accumulates every recoverable syntax error found during one
// parse pass, so a caller can be shown more than just the first mistake.
type ParseErrors struct {
	errors []SyntaxError
}

func (p *ParseErrors) add(kind ErrorKind, r lang.Range, message string) {
	p.errors = append(p.errors, SyntaxError{Kind: kind, Range: r, Message: message})
}

// HasErrors reports whether any error has been recorded.
func (p *ParseErrors) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns every recorded error, in detection order.
func (p *ParseErrors) Errors() []SyntaxError {
	return p.errors
}

func (p *ParseErrors) Error() string {
	if len(p.errors) == 0 {
		return "no errors"
	}
	if len(p.errors) == 1 {
		return p.errors[0].Error()
	}

	msgs := make([]string, len(p.errors))
	for i, err := range p.errors {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("%d parse errors:\n%s", len(p.errors), strings.Join(msgs, "\n"))
}

// nonRecoverable is raised internally when parsing cannot resynchronise
// (an unterminated delimited list, or running out of tokens entirely) and
// must stop immediately rather than keep hunting for more errors.
type nonRecoverable struct{}

func (nonRecoverable) Error() string { return "non-recoverable parse error" }
