package eval

import (
	"path/filepath"

	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
	"github.com/tan-lang/tan/pkg/eval/modcache"
)

// evalUse implements `(use dirname)` (spec §4.3, §6.5): dirname is a bare
// Symbol naming a directory (resolved against the Evaluator's baseDir),
// every *.tan file inside it is parsed, and each top-level form is
// evaluated directly into the caller's Env — `use` introduces no new
// scope. Any parse or evaluation failure collapses to FailedUse at the
// use site (spec §9 open question 5: richer propagation was left
// provisional; this implementation keeps the simpler collapse).
func (e *Evaluator) evalUse(a lang.Ann, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "use takes exactly one argument")
	}

	sym, ok := tail[0].Value.(lang.Symbol)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(tail[0]), "use argument must be a Symbol naming a directory")
	}

	dir := string(sym)
	if !filepath.IsAbs(dir) && e.baseDir != "" {
		dir = filepath.Join(e.baseDir, dir)
	}

	if e.moduleCache == nil {
		e.moduleCache = modcache.New()
	}

	forms, err := modcache.NewModuleSet(dir, e.moduleCache).Load()
	if err != nil {
		return lang.Ann{}, newFailedUse(rangeOf(a), dir, err)
	}

	for _, form := range forms {
		if _, err := e.Eval(form, en); err != nil {
			return lang.Ann{}, newFailedUse(rangeOf(a), dir, err)
		}
	}

	return lang.New(lang.One{}), nil
}
