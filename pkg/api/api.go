// Package api exposes the three convenience entry points spec §6.1 names:
// parsing source text, and evaluating source text or an already-parsed
// expression against an Env. It is a thin wrapper over pkg/parser and
// pkg/eval — the richer `api` feature surface original_source/src/api.rs
// exposes (build helpers, file-path conveniences) stays out of scope per
// spec.md §1; this package exists only because a Go library needs an
// import path for its public surface.
package api

import (
	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
	"github.com/tan-lang/tan/pkg/eval"
	"github.com/tan-lang/tan/pkg/parser"
)

// ParseText lexes and parses input, returning every top-level form or the
// accumulated syntax errors.
func ParseText(input string) ([]lang.Ann, error) {
	return parser.Parse(input)
}

// EvalText parses input and evaluates every top-level form against en in
// order, returning the last form's value.
func EvalText(input string, en *env.Env, opts ...eval.EvalOption) (lang.Ann, error) {
	forms, err := parser.Parse(input)
	if err != nil {
		return lang.Ann{}, err
	}

	return eval.New(opts...).EvalAll(forms, en)
}

// Eval evaluates a single already-parsed expression against en.
func Eval(expr lang.Ann, en *env.Env, opts ...eval.EvalOption) (lang.Ann, error) {
	return eval.New(opts...).Eval(expr, en)
}
