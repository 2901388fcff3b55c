package interp

import (
	"fmt"
	"strconv"
)

// LexicalError reports a character the lexer cannot classify, or a
// numeric literal too large for an int64.
type LexicalError struct {
	Pos  int
	Char byte
	err  error
}

func (e *LexicalError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("lexical error at offset %d: %v", e.Pos, e.err)
	}
	return fmt.Sprintf("lexical error at offset %d: unexpected character %q", e.Pos, e.Char)
}

func (e *LexicalError) Unwrap() error { return e.err }

// Lexer splits one input string into tokens, one call at a time. Each
// Lexer owns its own cursor; create a fresh one per input.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer positioned at the start of input. An empty
// input is valid and yields EOF on the first call.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token and advances past it. Once the input
// is exhausted every further call returns an EOF token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	if isDigit(ch) {
		return l.scanNumber()
	}

	l.pos++
	switch ch {
	case '+':
		return Token{Type: Plus, Pos: start}, nil
	case '-':
		return Token{Type: Minus, Pos: start}, nil
	case '*':
		return Token{Type: Star, Pos: start}, nil
	case '/':
		return Token{Type: Slash, Pos: start}, nil
	case '(':
		return Token{Type: LParen, Pos: start}, nil
	case ')':
		return Token{Type: RParen, Pos: start}, nil
	}
	return Token{}, &LexicalError{Pos: start, Char: ch}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	v, err := strconv.ParseInt(l.input[start:l.pos], 10, 64)
	if err != nil {
		return Token{}, &LexicalError{Pos: start, err: err}
	}
	return Token{Type: Number, Value: v, Pos: start}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
