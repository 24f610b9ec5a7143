package eval

// EvalOption configures an Evaluator at construction time. Functional
// options generalise the teacher's single-constructor-arg style
// (eval.New(baseDir string)) to the several independent knobs this
// evaluator needs: a module search root for `use`, and a recursion guard
// since the tree-walker has no trampoline.
type EvalOption func(*Evaluator)

// WithBaseDir sets the directory `(use dir)` resolves relative paths
// against. Defaults to the current working directory.
func WithBaseDir(dir string) EvalOption {
	return func(e *Evaluator) {
		e.baseDir = dir
	}
}

// WithMaxDepth caps function-application recursion depth, guarding against
// runaway non-terminating recursive programs overflowing the host stack.
// Zero (the default) means no limit.
func WithMaxDepth(depth int) EvalOption {
	return func(e *Evaluator) {
		e.maxDepth = depth
	}
}

// WithResolve enables the provisional type-annotation/overload-mangling
// pass (spec §9.3): EvalAll runs Resolve over each top-level form before
// evaluating it, so arithmetic-overload dispatch via the "method"
// annotation (spec §4.3) is available to callers who opt in. Off by
// default, matching the spec's "provisional" status for this pass.
func WithResolve() EvalOption {
	return func(e *Evaluator) {
		e.resolve = true
	}
}
