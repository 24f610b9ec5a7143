package parser

import (
	"testing"

	"github.com/tan-lang/tan/internal/lang"
)

func TestParseAtoms(t *testing.T) {
	exprs, err := Parse(`1 2.5 "hi" true false :tag sym`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []lang.Expr{
		lang.Int(1),
		lang.Float(2.5),
		lang.String("hi"),
		lang.Bool(true),
		lang.Bool(false),
		lang.KeySymbol("tag"),
		lang.Symbol("sym"),
	}

	if len(exprs) != len(want) {
		t.Fatalf("expected %d exprs, got %d: %+v", len(want), len(exprs), exprs)
	}

	for i, w := range want {
		if exprs[i].Value.String() != w.String() {
			t.Errorf("expr %d: expected %v, got %v", i, w, exprs[i].Value)
		}
	}
}

func TestParseList(t *testing.T) {
	exprs, err := Parse(`(+ 1 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 expr, got %d", len(exprs))
	}

	list, ok := exprs[0].Value.(lang.List)
	if !ok {
		t.Fatalf("expected List, got %T", exprs[0].Value)
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	if sym, ok := list.Items[0].Value.(lang.Symbol); !ok || sym != "+" {
		t.Errorf("expected head Symbol(+), got %v", list.Items[0].Value)
	}
}

func TestParseEmptyParensIsOne(t *testing.T) {
	exprs, err := Parse(`()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 expr, got %d", len(exprs))
	}
	if _, ok := exprs[0].Value.(lang.One); !ok {
		t.Errorf("expected One, got %T", exprs[0].Value)
	}
}

func TestParseArray(t *testing.T) {
	exprs, err := Parse(`[1 2 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arr, ok := exprs[0].Value.(lang.Array)
	if !ok {
		t.Fatalf("expected Array, got %T", exprs[0].Value)
	}
	if len(arr.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(arr.Items))
	}
}

func TestParseDict(t *testing.T) {
	exprs, err := Parse(`{:a 1 :b 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dict, ok := exprs[0].Value.(*lang.Dict)
	if !ok {
		t.Fatalf("expected *Dict, got %T", exprs[0].Value)
	}

	v, ok := dict.Get("a")
	if !ok {
		t.Fatalf("expected key 'a' to be set")
	}
	if v.String() != "1" {
		t.Errorf("expected value 1, got %v", v)
	}
}

func TestParseQuote(t *testing.T) {
	exprs, err := Parse(`'sym`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, ok := exprs[0].Value.(lang.List)
	if !ok {
		t.Fatalf("expected List, got %T", exprs[0].Value)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
	if head, ok := list.Items[0].Value.(lang.Symbol); !ok || head != "quot" {
		t.Errorf("expected head Symbol(quot), got %v", list.Items[0].Value)
	}
}

func TestParseTypeAnnotationShorthand(t *testing.T) {
	exprs, err := Parse("#Int x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	typ, ok := exprs[0].TypeAnnotation()
	if !ok {
		t.Fatalf("expected type annotation to be set")
	}
	if sym, ok := typ.(lang.Symbol); !ok || sym != "Int" {
		t.Errorf("expected type annotation Symbol(Int), got %v", typ)
	}
}

func TestParseBoolFlagAnnotationShorthand(t *testing.T) {
	exprs, err := Parse("#public x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := exprs[0].Annotation("public")
	if !ok {
		t.Fatalf("expected 'public' annotation to be set")
	}
	if b, ok := v.(lang.Bool); !ok || !bool(b) {
		t.Errorf("expected Bool(true), got %v", v)
	}
}

func TestParseReportsUnterminatedList(t *testing.T) {
	_, err := Parse(`(+ 1 2`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != UnterminatedList {
		t.Errorf("expected UnterminatedList, got %+v", perr.Errors())
	}
}

func TestParseReportsUnexpectedToken(t *testing.T) {
	_, err := Parse(`)`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != UnexpectedToken {
		t.Errorf("expected UnexpectedToken, got %+v", perr.Errors())
	}
}

// Ground truth: original_source's own lexer test asserts a single
// NumberError spanning byte range 5..10 for this exact input — the
// garbage trailing a digit run must stay part of one lexeme, not split
// into a second, spurious Symbol token.
func TestParseReportsMalformedIntForGarbageTrailingDigits(t *testing.T) {
	_, err := Parse(`(+ 1 3$%99)`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != MalformedInt {
		t.Errorf("expected MalformedInt, got %+v", perr.Errors())
	}
	if got := perr.Errors()[0].Range; got.Start != 5 || got.End != 10 {
		t.Errorf("expected range 5..10, got %v", got)
	}
}

func TestParseReportsMalformedFloatForExtraDecimalPoint(t *testing.T) {
	_, err := Parse(`1.2.3`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != MalformedFloat {
		t.Errorf("expected MalformedFloat, got %+v", perr.Errors())
	}
}

func TestParseReportsMalformedAnnotationForEmptyAnnotationText(t *testing.T) {
	_, err := Parse(`# x`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != MalformedAnnotation {
		t.Errorf("expected MalformedAnnotation, got %+v", perr.Errors())
	}
}

func TestParseReportsInvalidQuoteAtEndOfInput(t *testing.T) {
	_, err := Parse(`'`)

	perr, ok := err.(*ParseErrors)
	if !ok {
		t.Fatalf("expected *ParseErrors, got %T (%v)", err, err)
	}
	if len(perr.Errors()) == 0 || perr.Errors()[0].Kind != InvalidQuote {
		t.Errorf("expected InvalidQuote, got %+v", perr.Errors())
	}
}

// TestParseRangesSatisfyContainmentInvariant walks a nested List tree and
// checks spec §8 invariant 2: every child's Range falls entirely within its
// parent's. List is the only compound form whose children keep their own
// Range (Array/Dict terms are stripped to bare Expr), so the walk only
// descends into List.Items.
func TestParseRangesSatisfyContainmentInvariant(t *testing.T) {
	exprs, err := Parse(`(+ 1 (- 2 3) 4)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 expr, got %d", len(exprs))
	}
	if exprs[0].Range == nil {
		t.Fatalf("expected top-level expr to carry a Range")
	}

	var walk func(ann lang.Ann)
	walk = func(ann lang.Ann) {
		list, ok := ann.Value.(lang.List)
		if !ok {
			return
		}

		var merged lang.Range
		for i, item := range list.Items {
			if item.Range == nil {
				t.Fatalf("expected child %d to carry a Range", i)
			}
			if ann.Range != nil && !ann.Range.Contains(*item.Range) {
				t.Errorf("parent %v does not contain child %v (%v)", *ann.Range, item.Value, *item.Range)
			}

			if i == 0 {
				merged = *item.Range
			} else {
				merged = merged.Merge(*item.Range)
			}

			walk(item)
		}

		if ann.Range != nil && len(list.Items) > 0 && !ann.Range.Contains(merged) {
			t.Errorf("parent %v does not contain merged children range %v", *ann.Range, merged)
		}
	}

	walk(exprs[0])
}
