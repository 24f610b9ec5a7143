package eval

import (
	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
)

func (e *Evaluator) evalList(a lang.Ann, list lang.List, en *env.Env) (lang.Ann, error) {
	if len(list.Items) == 0 {
		return lang.New(lang.One{}), nil
	}

	head := list.Items[0]
	tail := list.Items[1:]

	headVal, err := e.Eval(head, en)
	if err != nil {
		return lang.Ann{}, err
	}

	if sym, ok := headVal.Value.(lang.Symbol); ok && lang.IsReservedSymbol(string(sym)) {
		return e.evalSpecialForm(a, string(sym), tail, en)
	}

	switch fn := headVal.Value.(type) {
	case lang.Func:
		return e.applyFunc(a, fn, tail, en)
	case lang.Macro:
		return e.applyMacro(fn, tail, en)
	case lang.ForeignFunc:
		return e.applyForeign(a, fn, tail, en)
	case lang.Array:
		return indexArray(a, fn, tail, e, en)
	case *lang.Dict:
		return indexDict(a, fn, tail, e, en)
	default:
		return lang.Ann{}, newError(NotInvocable, rangeOf(a), headVal.Value.String())
	}
}

func (e *Evaluator) evalSpecialForm(a lang.Ann, form string, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	switch form {
	case "do":
		return e.evalDo(tail, en)
	case "let":
		return e.evalLet(a, tail, en)
	case "if":
		if len(tail) < 2 {
			return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "if requires (pred then [else])")
		}
		form := lang.If{Pred: tail[0], Then: tail[1]}
		if len(tail) > 2 {
			form.Else = &tail[2]
		}
		return e.evalIf(a, form, en)
	case "for":
		return e.evalFor(tail, en)
	case "for_each":
		return e.evalForEach(a, tail, en)
	case "quot":
		return e.evalQuot(a, tail)
	case "eval":
		return e.evalEval(a, tail, en)
	case "ann":
		return e.evalAnn(a, tail)
	case "use":
		return e.evalUse(a, tail, en)
	case "Char":
		return e.evalCharForm(a, tail, en)
	case "List":
		return e.evalListForm(tail, en)
	case "Func":
		return e.evalFuncForm(a, tail, false)
	case "Macro":
		return e.evalFuncForm(a, tail, true)
	default:
		return lang.Ann{}, newError(NotInvocable, rangeOf(a), form)
	}
}

func (e *Evaluator) evalDo(tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	en.PushScope()
	defer en.Pop()

	result := lang.New(lang.One{})

	for _, item := range tail {
		v, err := e.Eval(item, en)
		if err != nil {
			return lang.Ann{}, err
		}

		result = v
	}

	return result, nil
}

// evalLet binds (name value) pairs into the current scope. Per spec §9 open
// question 1, `let` returns One rather than the last bound value — decided
// and recorded in DESIGN.md.
func (e *Evaluator) evalLet(a lang.Ann, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	for i := 0; i+1 < len(tail); i += 2 {
		nameAnn := tail[i]
		valueAnn := tail[i+1]

		sym, ok := nameAnn.Value.(lang.Symbol)
		if !ok {
			return lang.Ann{}, newError(InvalidArguments, rangeOf(nameAnn), "let target must be a Symbol")
		}

		if lang.IsReservedSymbol(string(sym)) {
			return lang.Ann{}, newError(InvalidArguments, rangeOf(nameAnn), "cannot bind reserved symbol "+string(sym))
		}

		v, err := e.Eval(valueAnn, en)
		if err != nil {
			return lang.Ann{}, err
		}

		en.Insert(string(sym), v)
	}

	return lang.New(lang.One{}), nil
}

func (e *Evaluator) evalFor(tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if len(tail) < 2 {
		return lang.Ann{}, newError(InvalidArguments, lang.Range{}, "for requires (pred body)")
	}

	pred, body := tail[0], tail[1]
	result := lang.New(lang.One{})

	for {
		p, err := e.Eval(pred, en)
		if err != nil {
			return lang.Ann{}, err
		}

		b, ok := p.Value.(lang.Bool)
		if !ok {
			return lang.Ann{}, newError(InvalidArguments, rangeOf(pred), "for predicate must be Bool")
		}

		if !bool(b) {
			return result, nil
		}

		v, err := e.Eval(body, en)
		if err != nil {
			return lang.Ann{}, err
		}

		result = v
	}
}

func (e *Evaluator) evalForEach(a lang.Ann, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if len(tail) < 3 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "for_each requires (seq var body)")
	}

	seqAnn, varAnn, body := tail[0], tail[1], tail[2]

	seqVal, err := e.Eval(seqAnn, en)
	if err != nil {
		return lang.Ann{}, err
	}

	seq, ok := seqVal.Value.(lang.Array)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(seqAnn), "for_each sequence must be an Array")
	}

	varSym, ok := varAnn.Value.(lang.Symbol)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(varAnn), "for_each binding must be a Symbol")
	}

	for _, item := range seq.Items {
		en.PushScope()
		en.Insert(string(varSym), lang.New(item))

		_, err := e.Eval(body, en)
		en.Pop()

		if err != nil {
			return lang.Ann{}, err
		}
	}

	return lang.New(lang.One{}), nil
}

func (e *Evaluator) evalQuot(a lang.Ann, tail []lang.Ann) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "quot takes exactly one argument")
	}

	return tail[0].Dropped(), nil
}

func (e *Evaluator) evalEval(a lang.Ann, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "eval takes exactly one argument")
	}

	produced, err := e.Eval(tail[0], en)
	if err != nil {
		return lang.Ann{}, err
	}

	return e.Eval(produced, en)
}

func (e *Evaluator) evalAnn(a lang.Ann, tail []lang.Ann) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "ann takes exactly one argument")
	}

	dict := lang.NewDict()
	for k, v := range tail[0].Annotations {
		dict.Set(k, v)
	}

	return lang.New(dict), nil
}

func (e *Evaluator) evalCharForm(a lang.Ann, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Char takes exactly one argument")
	}

	v, err := e.Eval(tail[0], en)
	if err != nil {
		return lang.Ann{}, err
	}

	s, ok := v.Value.(lang.String)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Char argument must be a String")
	}

	runes := []rune(string(s))
	if len(runes) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Char argument must be exactly one character")
	}

	return lang.New(lang.Char(runes[0])), nil
}

func (e *Evaluator) evalListForm(tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	items := make([]lang.Ann, len(tail))

	for i, item := range tail {
		v, err := e.Eval(item, en)
		if err != nil {
			return lang.Ann{}, err
		}

		items[i] = v
	}

	return lang.New(lang.List{Items: items}), nil
}

func (e *Evaluator) evalFuncForm(a lang.Ann, tail []lang.Ann, isMacro bool) (lang.Ann, error) {
	if len(tail) != 2 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Func/Macro requires (params body)")
	}

	paramsList, ok := tail[0].Value.(lang.List)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(tail[0]), "Func/Macro params must be a List")
	}

	params := make([]lang.Expr, len(paramsList.Items))
	for i, p := range paramsList.Items {
		sym, ok := p.Value.(lang.Symbol)
		if !ok {
			return lang.Ann{}, newError(InvalidArguments, rangeOf(p), "Func/Macro param must be a Symbol")
		}
		params[i] = sym
	}

	body := tail[1]

	if isMacro {
		return lang.New(lang.Macro{Params: params, Body: body}), nil
	}

	return lang.New(lang.Func{Params: params, Body: body}), nil
}

func (e *Evaluator) applyFunc(a lang.Ann, fn lang.Func, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "max recursion depth exceeded")
	}

	args := make([]lang.Ann, len(tail))
	for i, t := range tail {
		v, err := e.Eval(t, en)
		if err != nil {
			return lang.Ann{}, err
		}
		args[i] = v
	}

	en.PushScope()
	e.depth++
	defer func() {
		e.depth--
		en.Pop()
	}()

	bindParams(fn.Params, args, en)

	return e.Eval(fn.Body, en)
}

func bindParams(params []lang.Expr, args []lang.Ann, en *env.Env) {
	n := len(params)
	if len(args) < n {
		n = len(args)
	}

	for i := 0; i < n; i++ {
		sym, ok := params[i].(lang.Symbol)
		if !ok {
			continue
		}

		en.Insert(string(sym), args[i])
	}
}

func (e *Evaluator) applyForeign(a lang.Ann, fn lang.ForeignFunc, tail []lang.Ann, en *env.Env) (lang.Ann, error) {
	args := make([]lang.Ann, len(tail))
	for i, t := range tail {
		v, err := e.Eval(t, en)
		if err != nil {
			return lang.Ann{}, err
		}
		args[i] = v
	}

	v, err := fn.Handle(args, en)
	if err != nil {
		return lang.Ann{}, err
	}

	return v, nil
}

func indexArray(a lang.Ann, arr lang.Array, tail []lang.Ann, e *Evaluator, en *env.Env) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Array index requires one argument")
	}

	idxVal, err := e.Eval(tail[0], en)
	if err != nil {
		return lang.Ann{}, err
	}

	idx, ok := idxVal.Value.(lang.Int)
	if !ok {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Array index must be an Int")
	}

	i := int(idx)
	if i < 0 || i >= len(arr.Items) {
		return lang.New(lang.One{}), nil
	}

	return lang.New(arr.Items[i]), nil
}

func indexDict(a lang.Ann, dict *lang.Dict, tail []lang.Ann, e *Evaluator, en *env.Env) (lang.Ann, error) {
	if len(tail) != 1 {
		return lang.Ann{}, newError(InvalidArguments, rangeOf(a), "Dict index requires one argument")
	}

	keyVal, err := e.Eval(tail[0], en)
	if err != nil {
		return lang.Ann{}, err
	}

	key := lang.FormatValue(keyVal.Value)

	v, ok := dict.Get(key)
	if !ok {
		return lang.New(lang.One{}), nil
	}

	return lang.New(v), nil
}
