// Package parser performs the syntactic analysis stage of the
// Lexer → Parser → Evaluator pipeline: it reduces a lexer.Token stream into
// a slice of lang.Ann-wrapped lang.Expr, the homoiconic AST/value type
// shared by the whole module.
//
// The grammar is explicitly designed not to need a lookahead buffer beyond
// one token: atoms are recognised by their leading token, and `(`/`[`/`{`
// each open a delimited term list consumed by parseMany until the matching
// close token. `'` quotes the following expression into a `(quot E)` list.
// `#` introduces a prefix annotation, buffered until the next real
// expression and then attached to it: an uppercase bareword sets the
// "type" annotation key, a lowercase bareword sets a boolean flag keyed by
// its own text, and a parenthesised annotation `#(key ...)` sets "key" to
// the parsed list.
//
// Parsing tries to recover from as many errors as possible in one pass —
// ParseErrors accumulates them (an invalid quote target is one of these
// collected errors) — but a missing closing delimiter, or running out of
// tokens mid-expression, leaves parsing unable to resynchronise and stops
// the pass early.
package parser
