// Package lang defines the data model shared by the lexer, parser, and
// evaluator of the L-language: source Ranges, the tagged-variant Expr
// universe that serves as both AST and runtime value, the Ann wrapper that
// attaches a Range and an annotation map to an Expr, and the small set of
// reserved symbols that can never be rebound.
//
// Homoiconicity falls out of a single design decision: Expr is the type
// produced by the parser AND the type produced by evaluation. A List node
// is both "a piece of syntax" and "a value a foreign function can inspect
// or construct", which is what lets quot/eval close the loop.
//
// Depth-first traversal (Iter) and structural rewriting (Transform) are
// expressed as free functions over Ann rather than methods on Expr, since
// only List nodes recurse — Array and Dict are opaque leaves to both.
package lang
