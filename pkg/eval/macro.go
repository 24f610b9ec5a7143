package eval

import (
	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
)

// applyMacro resolves spec §9 open question 6 ("the evaluator does not yet
// distinguish macro calls from function calls; if implementing macros,
// expand them at a pre-eval pass with arguments left unevaluated").
//
// evalList already evaluates the head before branching on its kind, so by
// the time a call site is known to target a Macro the only "pre-eval"
// needed is to skip evaluating the tail: each parameter is bound directly
// to its call-site Ann, body evaluation then substitutes them exactly as
// original_source's prelude macros (e.g. `quot`-like forms) expect. This
// replaces the whole-AST Transform-based expansion pass sketched during
// design with an equivalent per-call-site one — see DESIGN.md.
func (e *Evaluator) applyMacro(m lang.Macro, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	en.PushScope()
	defer en.Pop()

	bindParams(m.Params, tail, en)

	return e.Eval(m.Body, en)
}
