package lexer

import (
	"strings"
	"testing"
)

func TestLexHandlesEmptyString(t *testing.T) {
	tokens, err := Lex("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected 0 tokens, got %d", len(tokens))
	}
}

func TestLexReturnsTokens(t *testing.T) {
	tokens, err := Lex("((+ 1   25 399)  )")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != 8 {
		t.Fatalf("expected 8 tokens, got %d: %+v", len(tokens), tokens)
	}

	if tokens[0].Type != TokenLeftParen {
		t.Errorf("token 0: expected LeftParen, got %v", tokens[0].Type)
	}
	if tokens[2].Type != TokenSymbol || tokens[2].Literal != "+" {
		t.Errorf("token 2: expected Symbol(+), got %v(%q)", tokens[2].Type, tokens[2].Literal)
	}
	if tokens[2].Range.Start != 2 {
		t.Errorf("token 2: expected start 2, got %d", tokens[2].Range.Start)
	}
	if tokens[3].Type != TokenNumber {
		t.Errorf("token 3: expected Number, got %v", tokens[3].Type)
	}
	if tokens[3].Range.Start != 4 {
		t.Errorf("token 3: expected start 4, got %d", tokens[3].Range.Start)
	}
}

func TestLexParsesComments(t *testing.T) {
	input := "; This is a comment\n;; Another comment\n(write \"hello\")"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[0].Type != TokenComment || tokens[0].Literal != "; This is a comment" {
		t.Errorf("token 0: got %v(%q)", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != TokenComment || tokens[1].Literal != ";; Another comment" {
		t.Errorf("token 1: got %v(%q)", tokens[1].Type, tokens[1].Literal)
	}
}

func TestLexParsesAnnotations(t *testing.T) {
	input := "\n#deprecated\n#(inline 'always)\n(let #public (add x y) (+ x y))\n"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[0].Type != TokenAnnotation || tokens[0].Literal != "deprecated" {
		t.Errorf("token 0: got %v(%q)", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != TokenAnnotation || tokens[1].Literal != "(inline 'always)" {
		t.Errorf("token 1: got %v(%q)", tokens[1].Type, tokens[1].Literal)
	}
}

func TestLexHandlesNumberSeparators(t *testing.T) {
	tokens, err := Lex("(+ 1 3_000)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[3].Type != TokenNumber || tokens[3].Literal != "3000" {
		t.Errorf("token 3: got %v(%q)", tokens[3].Type, tokens[3].Literal)
	}
}

func TestLexHandlesSignedNumbers(t *testing.T) {
	input := "(let a -123)\n(let -variable)"
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[3].Type != TokenNumber || tokens[3].Literal != "-123" {
		t.Errorf("token 3: got %v(%q)", tokens[3].Type, tokens[3].Literal)
	}
	if tokens[7].Type != TokenSymbol || tokens[7].Literal != "-variable" {
		t.Errorf("token 7: got %v(%q)", tokens[7].Type, tokens[7].Literal)
	}
}

func TestLexHandlesNumbersWithRadix(t *testing.T) {
	tokens, err := Lex("(let a 0xfe)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[3].Literal != "0xfe" {
		t.Errorf("expected literal 0xfe, got %q", tokens[3].Literal)
	}

	tokens, err = Lex("(let a 0b1010)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[3].Literal != "0b1010" {
		t.Errorf("expected literal 0b1010, got %q", tokens[3].Literal)
	}
}

func TestLexReportsUnexpectedEol(t *testing.T) {
	_, err := Lex("(let a -")

	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if lexErr.Kind != UnexpectedEol {
		t.Errorf("expected UnexpectedEol, got %v", lexErr.Kind)
	}
	if lexErr.Start != 7 {
		t.Errorf("expected Start 7, got %d", lexErr.Start)
	}
}

func TestLexReportsUnterminatedStrings(t *testing.T) {
	input := `(write "Hello)`
	_, err := Lex(input)

	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if lexErr.Kind != UnterminatedString {
		t.Errorf("expected UnterminatedString, got %v", lexErr.Kind)
	}
	if lexErr.Start != 7 {
		t.Errorf("expected Start 7, got %d", lexErr.Start)
	}
	if lexErr.End != 14 {
		t.Errorf("expected End 14, got %d", lexErr.End)
	}
}

func TestLexReportsUnterminatedAnnotations(t *testing.T) {
	input := "\n#deprecated\n#(inline true\n(write \"Hello)\n"
	_, err := Lex(input)

	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if lexErr.Kind != UnterminatedAnnotation {
		t.Errorf("expected UnterminatedAnnotation, got %v", lexErr.Kind)
	}
}

func TestLexSkipsCommaAsWhitespace(t *testing.T) {
	tokens, err := Lex("(1, 2, 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d: %+v", len(tokens), tokens)
	}
}

// TestLexRangesRoundTripToSource exercises spec §8 invariant 1: every
// token's Range slices back to the exact source text it was lexed from.
// Most token kinds keep Literal identical to that slice; TokenString's
// Literal strips the surrounding quotes and TokenNumber's Literal strips
// "_" separators, so those two are reconstructed before comparing.
func TestLexRangesRoundTripToSource(t *testing.T) {
	src := `(write "hi") 3_000 -42 sym`
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, tok := range tokens {
		slice := src[tok.Range.Start:tok.Range.End]

		switch tok.Type {
		case TokenString:
			if slice != `"`+tok.Literal+`"` {
				t.Errorf("token %d: slice %q does not round-trip Literal %q", i, slice, tok.Literal)
			}
		case TokenNumber:
			if strings.ReplaceAll(slice, "_", "") != tok.Literal {
				t.Errorf("token %d: slice %q does not round-trip Literal %q", i, slice, tok.Literal)
			}
		default:
			if slice != tok.Literal {
				t.Errorf("token %d: slice %q does not round-trip Literal %q", i, slice, tok.Literal)
			}
		}
	}
}

func TestLexArrayAndDictDelimiters(t *testing.T) {
	tokens, err := Lex("[1 2] {a 1}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTypes := []TokenType{
		TokenLeftBracket, TokenNumber, TokenNumber, TokenRightBracket,
		TokenLeftBrace, TokenSymbol, TokenNumber, TokenRightBrace,
	}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(wantTypes), len(tokens), tokens)
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token %d: expected %v, got %v", i, want, tokens[i].Type)
		}
	}
}
