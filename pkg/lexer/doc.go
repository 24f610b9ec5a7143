// Package lexer converts L-language source text into a stream of ranged
// tokens — the first stage of the Lexer → Parser → Evaluator pipeline.
//
// Key features:
//
// Token recognition:
//   - Delimiters: ( ) [ ] { }
//   - Quote: '
//   - Comment: ';' through end of line
//   - String: '"' through the next '"' — no escape processing
//   - Number: digit runs with '_' separators, optional radix prefix
//     (0x, 0b, 0o), optional '.' for floats; int/float disambiguation and
//     radix parsing are deferred to the parser so the error range matches
//     the original source token
//   - Annotation: '#' followed by a bareword or a balanced parenthesised
//     expression
//   - Symbol: everything else, up to the next whitespace or delimiter
//
// Whitespace: standard whitespace plus ',' (Lisp tradition).
//
// Ranges are UTF-8 byte offsets, half-open [start, end), consistent with
// every other Range in the module.
//
// Errors: UnterminatedString, UnterminatedAnnotation, UnexpectedEol. Lexing
// stops at the first error — prior tokens are discarded, matching spec §7's
// lexer error policy.
package lexer
