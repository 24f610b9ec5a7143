// Package eval implements the tree-walk evaluation stage of the
// Lexer → Parser → Evaluator pipeline: reducing an annotated lang.Ann
// expression to a normal form in an env.Env, dispatching special forms,
// applying user-defined (Func/Macro) and foreign-function values, and
// performing the homoiconic quot/eval operations.
//
// Dispatch follows spec §4.3 exactly: literals self-evaluate; a Symbol is
// either a reserved special-form name (self-evaluates as data) or an Env
// lookup, consulting a "method" annotation first for overload dispatch;
// a non-empty List evaluates its head, then branches on the head's kind
// (Func, ForeignFunc, Array/Dict-as-index, a special-form Symbol, or else
// NotInvocable).
//
// Two supplementary mechanisms are not run by Eval itself: resolve.go's
// type-annotation/overload-mangling walk (spec §9.3, provisional per
// spec.md), built on internal/lang.Transform, is opt-in — a caller either
// calls Resolve on a form before evaluating it, or builds the Evaluator
// WithResolve so EvalAll runs it on each top-level form; macro.go's macro
// handling (spec §9.6) needs no separate walk at all — evalList already
// evaluates the head before branching, so skipping tail evaluation when
// that head is a Macro value satisfies the "pre-eval pass with unevaluated
// arguments" requirement at each call site.
//
// Every scope pushed for `do` or function/macro application is popped via
// defer immediately after PushScope, and each per-element scope pushed by
// `for_each` is popped right after its body evaluation, before any error
// is returned, so the scope stack is balanced on every exit path including
// errors (spec §5, §8 invariant 4).
package eval
