package lang

// Reserved annotation keys. "type" carries the type-annotation expression
// (set by literals directly, or by the resolver for symbols and
// applications); "method" is set by the resolver to the mangled overload
// name an application site should prefer (spec §4.3, §9.3).
const (
	AnnotationType   = "type"
	AnnotationMethod = "method"
)

// Ann wraps an Expr with an optional source Range and an optional
// annotation map. The spec describes this generically as Ann<Expr>; since
// Expr is the only type ever wrapped in this implementation, Ann is a
// concrete (non-generic) struct rather than a parameterised one — see
// DESIGN.md for the rationale.
type Ann struct {
	Value       Expr
	Range       *Range
	Annotations map[string]Expr
}

// New wraps an Expr with no Range and no annotations.
func New(e Expr) Ann {
	return Ann{Value: e}
}

// WithRange wraps an Expr together with its source Range, the shape the
// parser produces for every node it emits directly.
func WithRange(e Expr, r Range) Ann {
	return Ann{Value: e, Range: &r}
}

// WithType wraps an Expr and immediately stamps its "type" annotation,
// mirroring the constructor the resolver and prelude wiring use to hand
// back pre-typed values.
func WithType(e Expr, typ Expr) Ann {
	a := Ann{Value: e}
	a.SetAnnotation(AnnotationType, typ)

	return a
}

// SetAnnotation inserts or overwrites a key in the annotation map.
// Annotations are additive: later writes to the same key overwrite it.
func (a *Ann) SetAnnotation(key string, value Expr) {
	if a.Annotations == nil {
		a.Annotations = make(map[string]Expr)
	}
	a.Annotations[key] = value
}

// Annotation looks up a key in the annotation map.
func (a Ann) Annotation(key string) (Expr, bool) {
	if a.Annotations == nil {
		return nil, false
	}
	v, ok := a.Annotations[key]

	return v, ok
}

// TypeAnnotation is shorthand for Annotation(AnnotationType).
func (a Ann) TypeAnnotation() (Expr, bool) {
	return a.Annotation(AnnotationType)
}

// MethodAnnotation is shorthand for Annotation(AnnotationMethod), used by
// the evaluator's symbol-dispatch overload-resolution shim (spec §4.3).
func (a Ann) MethodAnnotation() (Expr, bool) {
	return a.Annotation(AnnotationMethod)
}

// Dropped returns a copy of a with its Range and annotations stripped,
// keeping only the underlying Expr. Used by quot (spec §4.3, §9.4), which
// discards the wrapper and keeps only the bare value.
func (a Ann) Dropped() Ann {
	return Ann{Value: a.Value}
}
