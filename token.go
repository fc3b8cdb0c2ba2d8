package calculator

import (
	"strconv"
	"strings"
)

// Token is a single classified piece of an expression. Which fields are
// meaningful depends on Kind: Num for TokenNum, Text for TokenOp and
// TokenFunc. Pos is the 1-based rune column of the token in the normalized
// input, or 0 for tokens that were not produced by Tokenize.
type Token struct {
	Kind TokenKind
	Num  float64
	Text string
	Pos  int
}

// TokenKind identifies the variant of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a number, including π and folded negative literals.
	TokenNum
	// TokenOp is a binary operator, one of + - * / ^.
	TokenOp
	// TokenFunc is a function name, e.g. sin.
	TokenFunc
	// TokenOpen is a left parenthesis.
	TokenOpen
	// TokenClose is a right parenthesis.
	TokenClose
	// TokenSign is a unary minus that could not be folded into a number.
	// The evaluator rejects it.
	TokenSign
)

//go:generate stringer -type=TokenKind -trimprefix=Token

// Num creates a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNum, Num: v}
}

// Op creates an operator token.
func Op(sym string) Token {
	return Token{Kind: TokenOp, Text: sym}
}

// Func creates a function token.
func Func(name string) Token {
	return Token{Kind: TokenFunc, Text: name}
}

// Open creates a left parenthesis token.
func Open() Token {
	return Token{Kind: TokenOpen, Text: "("}
}

// Close creates a right parenthesis token.
func Close() Token {
	return Token{Kind: TokenClose, Text: ")"}
}

// String formats the token the way it appears in a postfix listing.
func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp, TokenFunc:
		return t.Text
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	case TokenSign:
		return "neg"
	default:
		return "$" + t.Kind.String() + "$"
	}
}

// same reports whether two tokens are equal ignoring position.
func (t Token) same(u Token) bool {
	return t.Kind == u.Kind && t.Num == u.Num && t.Text == u.Text
}

// FormatTokens joins the string forms of a token sequence with spaces.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
