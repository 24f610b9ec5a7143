package eval

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/tan-lang/tan/internal/env"
	"github.com/tan-lang/tan/internal/lang"
)

// Resolve is the provisional type-annotation/overload-mangling pass spec
// §9.3 and §9 open question 3 describe, grounded on
// original_source/src/typecheck.rs's resolve_type. It is not run
// automatically by Evaluator.Eval (the spec marks it provisional); callers
// that want the Int/Float arithmetic-overload behaviour call Resolve on a
// form before evaluating it.
//
// It tags every literal node with its kind as a "type" annotation, tags
// every non-reserved Symbol reference with the type annotation of its
// bound value (if any), and for every non-reserved application mangles the
// head symbol's "method" annotation to name$T1$T2$… from the resolved
// argument types — the evaluator's existing "check method, fall back to
// plain name" Symbol-dispatch rule (spec §4.3) then picks the mangled
// overload when one is bound, falling back to the plain name otherwise.
//
// original_source joins mangled components with "$$"; this port joins with
// a single "$" (name$Int$Int instead of name$$Int$$Int) as a cosmetic, not
// semantic, deviation — see DESIGN.md.
func Resolve(a lang.Ann, en *env.Env) lang.Ann {
	return lang.Transform(a, func(node lang.Ann) lang.Ann {
		return resolveNode(node, en)
	})
}

func resolveNode(node lang.Ann, en *env.Env) lang.Ann {
	switch v := node.Value.(type) {
	case lang.Bool, lang.Int, lang.Float, lang.Char, lang.String, lang.KeySymbol, lang.One:
		if _, ok := node.TypeAnnotation(); !ok {
			node.SetAnnotation(lang.AnnotationType, lang.Symbol(node.Value.Kind().String()))
		}

		return node

	case lang.Symbol:
		if lang.IsReservedSymbol(string(v)) {
			return node
		}

		if bound, ok := en.Get(string(v)); ok {
			if typ, ok := bound.TypeAnnotation(); ok {
				node.SetAnnotation(lang.AnnotationType, typ)
			}
		}

		return node

	case lang.List:
		return resolveApplication(node, v, en)

	default:
		return node
	}
}

func resolveApplication(node lang.Ann, list lang.List, en *env.Env) lang.Ann {
	if len(list.Items) == 0 {
		return node
	}

	head := list.Items[0]

	sym, ok := head.Value.(lang.Symbol)
	if !ok || lang.IsReservedSymbol(string(sym)) {
		return node
	}

	parts := make([]string, 0, len(list.Items)-1)
	for _, arg := range list.Items[1:] {
		typeName := arg.Value.Kind().String()
		if t, ok := arg.TypeAnnotation(); ok {
			if tsym, ok := t.(lang.Symbol); ok {
				typeName = string(tsym)
			}
		}

		parts = append(parts, strcase.ToCamel(typeName))
	}

	mangled := string(sym)
	if len(parts) > 0 {
		mangled = mangled + "$" + strings.Join(parts, "$")
	}

	head.SetAnnotation(lang.AnnotationMethod, lang.Symbol(mangled))
	list.Items[0] = head
	node.Value = lang.List{Items: list.Items}

	return node
}
