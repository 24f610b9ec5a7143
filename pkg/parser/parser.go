package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tan-lang/tan/internal/lang"
	"github.com/tan-lang/tan/pkg/lexer"
)

// Parser reduces a token stream into a slice of lang.Ann expressions.
type Parser struct {
	tokens []lexer.Token
	pos    int

	bufferedAnnotations []bufferedAnnotation

	errors ParseErrors
}

type bufferedAnnotation struct {
	text string
	rng  lang.Range
}

// New creates a Parser over an already-lexed token slice.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes src and parses it in one step, returning every top-level
// expression or the accumulated syntax errors.
func Parse(src string) ([]lang.Ann, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}

	return New(tokens).Parse()
}

func (p *Parser) nextToken() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}

	tok := p.tokens[p.pos]
	p.pos++

	return tok, true
}

func (p *Parser) putBack() {
	p.pos--
}

// Parse parses every top-level expression in the token stream, trying to
// recover from as many syntax errors as possible in one pass.
func (p *Parser) Parse() ([]lang.Ann, error) {
	var exprs []lang.Ann

	for {
		expr, rng, err := p.parseExpr()
		if err != nil {
			// Non-recoverable: parsing cannot resynchronise, stop here.
			break
		}

		if expr == nil {
			continue
		}

		annotated := p.attachAnnotations(expr, rng)

		if p.errors.HasErrors() {
			break
		}

		exprs = append(exprs, annotated)
	}

	if p.errors.HasErrors() {
		return nil, &p.errors
	}

	return exprs, nil
}

// parseExpr parses one expression and the Range it spans, or returns
// (nil, zero Range, nil) for a token that produces no expression on its
// own (a comment, or a buffered annotation). Every Range returned here is
// computed locally from the tokens actually consumed for this expression —
// not from shared parser state — so a parent's Range, built the same way
// one level up, is guaranteed to contain it (spec §8 invariant 2).
func (p *Parser) parseExpr() (lang.Expr, lang.Range, error) {
	tok, ok := p.nextToken()
	if !ok {
		return nil, lang.Range{}, nonRecoverable{}
	}

	switch tok.Type {
	case lexer.TokenComment:
		return nil, lang.Range{}, nil

	case lexer.TokenAnnotation:
		p.bufferedAnnotations = append(p.bufferedAnnotations, bufferedAnnotation{text: tok.Literal, rng: tok.Range})
		return nil, lang.Range{}, nil

	case lexer.TokenString:
		return lang.String(tok.Literal), tok.Range, nil

	case lexer.TokenSymbol:
		return p.parseSymbol(tok), tok.Range, nil

	case lexer.TokenNumber:
		expr, err := p.parseNumber(tok)
		return expr, tok.Range, err

	case lexer.TokenQuote:
		return p.parseQuote(tok)

	case lexer.TokenLeftParen:
		expr, end, err := p.parseParenList(tok.Range.Start)
		if err != nil {
			return nil, lang.Range{}, err
		}

		return expr, lang.Range{Start: tok.Range.Start, End: end}, nil

	case lexer.TokenLeftBracket:
		expr, end, err := p.parseArray(tok.Range.Start)
		if err != nil {
			return nil, lang.Range{}, err
		}

		return expr, lang.Range{Start: tok.Range.Start, End: end}, nil

	case lexer.TokenLeftBrace:
		expr, end, err := p.parseDict(tok.Range.Start)
		if err != nil {
			return nil, lang.Range{}, err
		}

		return expr, lang.Range{Start: tok.Range.Start, End: end}, nil

	case lexer.TokenRightParen, lexer.TokenRightBracket, lexer.TokenRightBrace:
		p.errors.add(UnexpectedToken, tok.Range, tok.Type.String())
		return nil, lang.Range{}, nil

	default:
		p.errors.add(UnexpectedToken, tok.Range, tok.Type.String())
		return nil, lang.Range{}, nil
	}
}

func (p *Parser) parseSymbol(tok lexer.Token) lang.Expr {
	s := tok.Literal

	switch {
	case strings.HasPrefix(s, ":"):
		return lang.KeySymbol(strings.TrimPrefix(s, ":"))
	case s == "true":
		return lang.Bool(true)
	case s == "false":
		return lang.Bool(false)
	default:
		return lang.Symbol(s)
	}
}

func (p *Parser) parseNumber(tok lexer.Token) (lang.Expr, error) {
	lexeme := tok.Literal

	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			p.errors.add(MalformedFloat, tok.Range, err.Error())
			return nil, nil
		}

		return lang.Float(f), nil
	}

	radix := 10
	switch {
	case strings.HasPrefix(lexeme, "0x"):
		lexeme = strings.TrimPrefix(lexeme, "0x")
		radix = 16
	case strings.HasPrefix(lexeme, "0b"):
		lexeme = strings.TrimPrefix(lexeme, "0b")
		radix = 2
	case strings.HasPrefix(lexeme, "0o"):
		lexeme = strings.TrimPrefix(lexeme, "0o")
		radix = 8
	}

	n, err := strconv.ParseInt(lexeme, radix, 64)
	if err != nil {
		p.errors.add(MalformedInt, tok.Range, err.Error())
		return nil, nil
	}

	return lang.Int(n), nil
}

// parseQuote parses `'`-prefixed syntax into `(quot target)`. Consecutive
// quotes are allowed (each nests another quot list around the next). The
// target keeps no Range of its own here (matching `quot`'s own
// annotation-dropping semantics at eval time, spec §4.3/§9.4); the
// synthesised list's Range spans from the quote mark to the target's end.
func (p *Parser) parseQuote(tok lexer.Token) (lang.Expr, lang.Range, error) {
	target, targetRange, err := p.parseExpr()
	if err != nil {
		p.errors.add(InvalidQuote, tok.Range, "")
		return nil, lang.Range{}, nil
	}

	if target == nil {
		p.errors.add(InvalidQuote, tok.Range, "")
		return nil, lang.Range{}, nil
	}

	rng := lang.Range{Start: tok.Range.Start, End: targetRange.End}

	return lang.List{Items: []lang.Ann{
		lang.New(lang.Symbol("quot")),
		lang.New(target),
	}}, rng, nil
}

func (p *Parser) parseParenList(openStart int) (lang.Expr, int, error) {
	terms, end, err := p.parseMany(openStart, lexer.TokenRightParen)
	if err != nil {
		return nil, 0, err
	}

	if len(terms) == 0 {
		return lang.One{}, end, nil
	}

	return lang.List{Items: terms}, end, nil
}

func (p *Parser) parseArray(openStart int) (lang.Expr, int, error) {
	terms, end, err := p.parseMany(openStart, lexer.TokenRightBracket)
	if err != nil {
		return nil, 0, err
	}

	items := make([]lang.Expr, len(terms))
	for i, t := range terms {
		items[i] = t.Value
	}

	return lang.Array{Items: items}, end, nil
}

func (p *Parser) parseDict(openStart int) (lang.Expr, int, error) {
	terms, end, err := p.parseMany(openStart, lexer.TokenRightBrace)
	if err != nil {
		return nil, 0, err
	}

	dict := lang.NewDict()

	for i := 0; i+1 < len(terms); i += 2 {
		key := lang.FormatValue(terms[i].Value)
		dict.Set(key, terms[i+1].Value)
	}

	return dict, end, nil
}

// parseMany consumes expressions until it sees delimiter, annotating each
// one as it goes, and returns the delimiter token's own end offset so the
// caller can build an enclosing Range that provably contains every term's
// Range. Running out of tokens first is a non-recoverable UnterminatedList
// error, reported at openStart (the Range of the delimited term that never
// closed) through whatever was consumed so far.
func (p *Parser) parseMany(openStart int, delimiter lexer.TokenType) ([]lang.Ann, int, error) {
	var exprs []lang.Ann

	for {
		tok, ok := p.nextToken()
		if !ok {
			end := openStart
			if p.pos > 0 && p.pos <= len(p.tokens) {
				end = p.tokens[p.pos-1].Range.End
			}

			p.errors.add(UnterminatedList, lang.Range{Start: openStart, End: end}, "")
			return nil, 0, nonRecoverable{}
		}

		if tok.Type == delimiter {
			return exprs, tok.Range.End, nil
		}

		p.putBack()

		expr, rng, err := p.parseExpr()
		if err != nil {
			return nil, 0, err
		}

		if expr != nil {
			exprs = append(exprs, p.attachAnnotations(expr, rng))
		}
	}
}

// attachAnnotations wraps expr in an Ann carrying its source Range, then
// applies any annotations buffered since the last real expression.
func (p *Parser) attachAnnotations(expr lang.Expr, rng lang.Range) lang.Ann {
	ann := lang.WithRange(expr, rng)

	if len(p.bufferedAnnotations) == 0 {
		return ann
	}

	buffered := p.bufferedAnnotations
	p.bufferedAnnotations = nil

	for _, b := range buffered {
		annExpr, ok := p.parseAnnotationText(b)
		if !ok {
			return ann
		}

		switch v := annExpr.(type) {
		case lang.Symbol:
			s := string(v)
			if s == "" {
				p.errors.add(MalformedAnnotation, b.rng, b.text)
				return ann
			}

			if startsUpper(s) {
				ann.SetAnnotation(lang.AnnotationType, v)
			} else {
				ann.SetAnnotation(s, lang.Bool(true))
			}

		case lang.List:
			if len(v.Items) == 0 {
				p.errors.add(MalformedAnnotation, b.rng, b.text)
				return ann
			}

			head, ok := v.Items[0].Value.(lang.Symbol)
			if !ok {
				p.errors.add(MalformedAnnotation, b.rng, b.text)
				return ann
			}

			ann.SetAnnotation(string(head), annExpr)

		default:
			p.errors.add(MalformedAnnotation, b.rng, b.text)
			return ann
		}
	}

	return ann
}

func (p *Parser) parseAnnotationText(b bufferedAnnotation) (lang.Expr, bool) {
	exprs, err := Parse(b.text)
	if err != nil {
		p.errors.add(MalformedAnnotation, b.rng, b.text)
		return nil, false
	}

	if len(exprs) == 0 {
		p.errors.add(MalformedAnnotation, b.rng, b.text)
		return nil, false
	}

	return exprs[0].Value, true
}

// startsUpper reports whether s's first rune is uppercase, deciding spec
// §4.2's annotation-shorthand rule: "#Name" attaches a type annotation,
// "#name" attaches a boolean flag. This is plain stdlib unicode
// classification (utf8.DecodeRuneInString + unicode.IsUpper), not symbol
// mangling — github.com/iancoleman/strcase has no case-classification
// primitive, only case-conversion (ToCamel etc.), and is used elsewhere in
// this package's sibling pkg/eval/resolve.go for exactly that: deriving a
// mangled method name, not testing a rune's case.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}
