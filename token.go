package interp

import "strconv"

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	Number TokenType = iota
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	EOF
)

func (tt TokenType) String() string {
	switch tt {
	case Number:
		return "number"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	case EOF:
		return "end of input"
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a single lexical unit. Value is set only for Number tokens.
// Pos is the byte offset of the token's first character in the input.
type Token struct {
	Type  TokenType
	Value int64
	Pos   int
}

// String returns the token's source text, or a class description for
// tokens that have no fixed spelling.
func (t Token) String() string {
	if t.Type == Number {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Type.String()
}
