package reader

import (
	"github.com/ondrovic/goschem/internal/escape"
	"github.com/ondrovic/goschem/internal/value"
)

// Parser is the recursive-descent datum parser of §4.1, turning a
// token stream into heap-allocated Values via h.
type Parser struct {
	lex *Lexer
	h   *value.Heap

	lookahead   *Token
	haveLookahead bool
}

// NewParser creates a parser reading from lex and allocating through h.
func NewParser(lex *Lexer, h *value.Heap) *Parser {
	return &Parser{lex: lex, h: h}
}

func (p *Parser) next() (Token, error) {
	if p.haveLookahead {
		p.haveLookahead = false
		return *p.lookahead, nil
	}
	return p.lex.Next()
}

func (p *Parser) peek() (Token, error) {
	if !p.haveLookahead {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.lookahead = &t
		p.haveLookahead = true
	}
	return *p.lookahead, nil
}

// AtEOF reports whether the underlying token stream is exhausted.
func (p *Parser) AtEOF() (bool, error) {
	t, err := p.peek()
	if err != nil {
		return false, err
	}
	return t.Kind == TokEOF, nil
}

// ReadDatum parses exactly one datum. Returns io.EOF-shaped behavior
// via AtEOF; callers should check AtEOF before calling ReadDatum in a
// top-level loop.
func (p *Parser) ReadDatum() (value.Value, error) {
	tok, err := p.next()
	if err != nil {
		return value.Value{}, err
	}
	return p.datum(tok)
}

func (p *Parser) datum(tok Token) (value.Value, error) {
	switch tok.Kind {
	case TokBoolean:
		return value.Bool(tok.Bool), nil
	case TokNumber:
		return value.Num(tok.Num), nil
	case TokCharacter:
		return value.Char(tok.Char), nil
	case TokString:
		return p.h.NewString(tok.Text), nil
	case TokIdentifier:
		return value.Sym(tok.Text), nil
	case TokListStart:
		return p.list(tok.Pos)
	case TokVectorStart:
		return p.vector(tok.Pos)
	case TokQuote:
		return p.abbreviation("quote", tok.Pos)
	case TokBacktick:
		return p.abbreviation("quasiquote", tok.Pos)
	case TokComma:
		return p.abbreviation("unquote", tok.Pos)
	case TokCommaAt:
		return p.abbreviation("unquote-splicing", tok.Pos)
	case TokListEnd:
		return value.Value{}, escape.Syntaxf(tok.Pos.toEscape(), "unexpected ')'")
	case TokDot:
		return value.Value{}, escape.Syntaxf(tok.Pos.toEscape(), "unexpected '.'")
	case TokEOF:
		return value.Value{}, escape.Syntaxf(tok.Pos.toEscape(), "unexpected end of input")
	}
	return value.Value{}, escape.Syntaxf(tok.Pos.toEscape(), "unrecognized token")
}

func (p *Parser) abbreviation(name string, pos Position) (value.Value, error) {
	inner, err := p.ReadDatum()
	if err != nil {
		return value.Value{}, err
	}
	return p.h.NewPair(value.Sym(name), p.h.NewPair(inner, value.Null())), nil
}

// list parses `( datum* )` or `( datum+ . datum )`, per §4.1 grammar.
func (p *Parser) list(openPos Position) (value.Value, error) {
	var elems []value.Value
	var tail value.Value = value.Null()

	for {
		tok, err := p.peek()
		if err != nil {
			return value.Value{}, err
		}
		if tok.Kind == TokEOF {
			return value.Value{}, escape.Syntaxf(openPos.toEscape(), "unterminated list")
		}
		if tok.Kind == TokListEnd {
			p.next()
			break
		}
		if tok.Kind == TokDot {
			p.next()
			d, err := p.ReadDatum()
			if err != nil {
				return value.Value{}, err
			}
			tail = d
			closeTok, err := p.next()
			if err != nil {
				return value.Value{}, err
			}
			if closeTok.Kind != TokListEnd {
				return value.Value{}, escape.Syntaxf(closeTok.Pos.toEscape(), "malformed dotted pair")
			}
			break
		}
		d, err := p.ReadDatum()
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, d)
	}

	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = p.h.NewPair(elems[i], result)
	}
	return result, nil
}

// vector parses `#( datum* )`.
func (p *Parser) vector(openPos Position) (value.Value, error) {
	var elems []value.Value
	for {
		tok, err := p.peek()
		if err != nil {
			return value.Value{}, err
		}
		if tok.Kind == TokEOF {
			return value.Value{}, escape.Syntaxf(openPos.toEscape(), "unterminated vector")
		}
		if tok.Kind == TokListEnd {
			p.next()
			break
		}
		d, err := p.ReadDatum()
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, d)
	}
	return p.h.NewVector(elems), nil
}
