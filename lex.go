package calculator

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// shorthand rewrites the glyphs a calculator keypad produces into the plain
// syntax the tokenizer scans. √ expects its operand to be parenthesized
// already, as in √(3).
var shorthand = strings.NewReplacer(
	"²", "^2",
	"√", "sqrt",
	"×", "*",
	"÷", "/",
	"−", "-",
)

// piece matches one token's worth of text. Anything between matches is
// ignored.
var piece = regexp.MustCompile(`[0-9.]+|[-+*/^()]|π|` + alternation(Functions))

// alternation joins quoted names into a regexp alternation, longest first so
// that no name is shadowed by a prefix of it.
func alternation(names []string) string {
	q := make([]string, len(names))
	for i, name := range names {
		q[i] = regexp.QuoteMeta(name)
	}
	sort.SliceStable(q, func(i, j int) bool { return len(q[i]) > len(q[j]) })
	return strings.Join(q, "|")
}

// Tokenize splits an expression into tokens. A minus sign at the start of the
// expression or following an operator, function name, or open paren is a
// sign rather than a subtraction; it is folded into the number that follows
// it, or left as a TokenSign if no number follows. The only errors are
// *TokenizeError, for input with no tokens or an invalid number.
func Tokenize(src string) ([]Token, error) {
	s := shorthand.Replace(src)
	locs := piece.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil, &TokenizeError{}
	}
	toks := make([]Token, 0, len(locs))
	cols := columns(s, locs)
	for i := 0; i < len(locs); i++ {
		text := s[locs[i][0]:locs[i][1]]
		pos := cols[i]
		if text == "-" && signs(toks) {
			if i+1 < len(locs) {
				next := s[locs[i+1][0]:locs[i+1][1]]
				v, ok, err := number(next, cols[i+1])
				if err != nil {
					return nil, err
				}
				if ok {
					toks = append(toks, Token{Kind: TokenNum, Num: -v, Pos: pos})
					i++
					continue
				}
			}
			toks = append(toks, Token{Kind: TokenSign, Text: "-", Pos: pos})
			continue
		}
		tok, err := classify(text, pos)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// signs reports whether a minus following toks is a sign.
func signs(toks []Token) bool {
	if len(toks) == 0 {
		return true
	}
	switch toks[len(toks)-1].Kind {
	case TokenOp, TokenFunc, TokenOpen, TokenSign:
		return true
	case TokenNum, TokenClose:
		return false
	default:
		panic("calculator: unknown token: " + toks[len(toks)-1].String())
	}
}

// number parses a piece as a number. ok is false if the piece is not a
// number at all; err is non-nil if it looks like one but is invalid.
func number(text string, pos int) (v float64, ok bool, err error) {
	if text == "π" {
		return Pi, true, nil
	}
	if c := text[0]; c != '.' && (c < '0' || '9' < c) {
		return 0, false, nil
	}
	// ParseFloat rejects "." and "1.2.3" and returns an error for values out
	// of range, so every number token is finite.
	v, err = strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, true, &TokenizeError{Col: pos, Text: text}
	}
	return v, true, nil
}

// classify converts a piece other than a sign into a token.
func classify(text string, pos int) (Token, error) {
	v, ok, err := number(text, pos)
	if err != nil {
		return Token{}, err
	}
	if ok {
		return Token{Kind: TokenNum, Num: v, Pos: pos}, nil
	}
	switch {
	case text == "(":
		return Token{Kind: TokenOpen, Text: text, Pos: pos}, nil
	case text == ")":
		return Token{Kind: TokenClose, Text: text, Pos: pos}, nil
	case len(text) == 1 && strings.Contains(Operators, text):
		return Token{Kind: TokenOp, Text: text, Pos: pos}, nil
	case functions[text] != nil:
		return Token{Kind: TokenFunc, Text: text, Pos: pos}, nil
	default:
		panic("calculator: pattern matched unknown piece " + strconv.Quote(text))
	}
}

// columns converts the byte offsets of each match into 1-based rune columns.
func columns(s string, locs [][]int) []int {
	cols := make([]int, len(locs))
	off, col := 0, 1
	for i, loc := range locs {
		col += utf8.RuneCountInString(s[off:loc[0]])
		off = loc[0]
		cols[i] = col
	}
	return cols
}
