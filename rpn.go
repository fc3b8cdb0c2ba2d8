package calculator

// Postfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Function tokens are emitted after the
// parenthesized argument that follows them. Operators of equal precedence are
// emitted left to right, so every operator is left-associative, including ^:
// 2^3^2 is (2^3)^2. A sign token ranks with binary minus.
//
// The only errors are *UnbalancedParenError.
func Postfix(toks []Token) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	stack := make([]Token, 0, len(toks)/2+1)
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenFunc, TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &UnbalancedParenError{Col: tok.Pos, Right: ")"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
			// Attach a function to its argument.
			if len(stack) > 0 && stack[len(stack)-1].Kind == TokenFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		case TokenOp, TokenSign:
			p := rank(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp && top.Kind != TokenSign || rank(top) < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &UnbalancedParenError{Col: top.Pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// rank gets the precedence of an operator or sign token.
func rank(tok Token) int {
	if tok.Kind == TokenSign {
		return precedence("-")
	}
	return precedence(tok.Text)
}
