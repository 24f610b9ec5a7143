package eval

import (
	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
	"github.com/tan-lang/tan/pkg/eval/modcache"
)

// Evaluator reduces lang.Ann expressions to normal form against an
// env.Env. It is safe to reuse across many top-level Eval calls sharing
// the same Env, but is not safe for concurrent use (spec §5: strictly
// single-threaded).
type Evaluator struct {
	baseDir     string
	maxDepth    int
	depth       int
	moduleCache *modcache.Cache
	resolve     bool
}

// New creates an Evaluator with the given options.
func New(opts ...EvalOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Eval reduces one expression to a value, per spec §6.1's `eval` entry
// point.
func (e *Evaluator) Eval(a lang.Ann, en *env.Env) (lang.Ann, error) {
	switch v := a.Value.(type) {
	case lang.One, lang.Bool, lang.Int, lang.Float, lang.Char, lang.String,
		lang.Array, *lang.Dict, lang.KeySymbol, lang.Func, lang.Macro, lang.ForeignFunc:
		return a, nil

	case lang.Symbol:
		return e.evalSymbol(a, v, en)

	case lang.If:
		return e.evalIf(a, v, en)

	case lang.List:
		return e.evalList(a, v, en)

	default:
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "unrecognised expression")
	}
}

// EvalAll evaluates each of a sequence of top-level forms in order,
// returning the last result (or One for an empty sequence). When the
// Evaluator was built with WithResolve, each form is run through Resolve
// first, so the evaluator's "method" dispatch rule (spec §4.3) can pick up
// the arithmetic-overload mangling Resolve produces.
func (e *Evaluator) EvalAll(forms []lang.Ann, en *env.Env) (lang.Ann, error) {
	result := lang.New(lang.One{})

	for _, form := range forms {
		if e.resolve {
			form = Resolve(form, en)
		}

		v, err := e.Eval(form, en)
		if err != nil {
			return lang.Ann{}, err
		}

		result = v
	}

	return result, nil
}

func rangeOf(a lang.Ann) lang.Range {
	if a.Range != nil {
		return *a.Range
	}

	return lang.Range{}
}

func (e *Evaluator) evalSymbol(a lang.Ann, sym lang.Symbol, en *env.Env) (lang.Ann, error) {
	name := string(sym)

	if lang.IsReservedSymbol(name) {
		return a, nil
	}

	lookupName := name
	if method, ok := a.MethodAnnotation(); ok {
		if methodSym, ok := method.(lang.Symbol); ok {
			if v, ok := en.Get(string(methodSym)); ok {
				return v, nil
			}
		}
	}

	if v, ok := en.Get(lookupName); ok {
		return v, nil
	}

	return lang.Ann{}, newError(UndefinedSymbol, rangeOf(a), lookupName)
}

func (e *Evaluator) evalIf(a lang.Ann, form lang.If, en *env.Env) (lang.Ann, error) {
	pred, err := e.Eval(form.Pred, en)
	if err != nil {
		return lang.Ann{}, err
	}

	predBool, ok := pred.Value.(lang.Bool)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "if predicate must be Bool")
	}

	if bool(predBool) {
		return e.Eval(form.Then, en)
	}

	if form.Else != nil {
		return e.Eval(*form.Else, en)
	}

	return lang.New(lang.One{}), nil
}
