package interp

import "fmt"

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Pos  int
	Got  TokenType
	Want string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: unexpected %s, want %s", e.Pos, e.Got, e.Want)
}

// Parser builds an AST from the lexer's token stream using one token of
// lookahead. A parser consumes a single underlying input; create a fresh
// Lexer/Parser pair per expression.
type Parser struct {
	lexer *Lexer
	tok   Token
}

// NewParser wraps l and pulls the first token into the lookahead.
func NewParser(l *Lexer) (*Parser, error) {
	tok, err := l.NextToken()
	if err != nil {
		return nil, err
	}
	return &Parser{lexer: l, tok: tok}, nil
}

// eat consumes the lookahead if it has the expected type. This is the
// only place tokens are consumed and structure is validated.
func (p *Parser) eat(tt TokenType) error {
	if p.tok.Type != tt {
		return &ParseError{Pos: p.tok.Pos, Got: p.tok.Type, Want: tt.String()}
	}
	next, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.tok = next
	return nil
}

// factor := NUMBER | '(' expression ')'
func (p *Parser) factor() (Expr, error) {
	tok := p.tok
	switch tok.Type {
	case Number:
		if err := p.eat(Number); err != nil {
			return nil, err
		}
		return &NumberLit{Tok: tok}, nil
	case LParen:
		if err := p.eat(LParen); err != nil {
			return nil, err
		}
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, &ParseError{Pos: tok.Pos, Got: tok.Type, Want: "number or ("}
}

// term := factor (('*' | '/') factor)*
func (p *Parser) term() (Expr, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == Star || p.tok.Type == Slash {
		op := p.tok
		if err := p.eat(op.Type); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Left: node, Op: op, Right: right}
	}
	return node, nil
}

// expression := term (('+' | '-') term)*
func (p *Parser) expression() (Expr, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == Plus || p.tok.Type == Minus {
		op := p.tok
		if err := p.eat(op.Type); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Left: node, Op: op, Right: right}
	}
	return node, nil
}

// ParseExpression parses a single expression and leaves any trailing
// tokens unconsumed.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.expression()
}

// Parse parses a single expression and requires the input to end there.
func (p *Parser) Parse() (Expr, error) {
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.eat(EOF); err != nil {
		return nil, err
	}
	return node, nil
}
