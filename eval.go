package calculator

import (
	"fmt"
	"math"
)

// ErrorMarker is the text a display shows in place of a result when
// evaluation fails, whatever the reason.
const ErrorMarker = "Error"

// Evaluate tokenizes, converts, and evaluates an expression. Any error is an
// InputError describing the first stage that failed.
func Evaluate(src string, opts ...Option) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	rpn, err := Postfix(toks)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(rpn, opts...)
}

// EvalPostfix evaluates a postfix token sequence. Every intermediate value
// must be finite. The sequence must reduce to exactly one value unless the
// Lenient option is given.
func EvalPostfix(rpn []Token, opts ...Option) (float64, error) {
	ctx := newEvalctx(opts)
	var s stack
	for _, tok := range rpn {
		switch tok.Kind {
		case TokenNum:
			s.push(tok.Num)
		case TokenOp:
			f := operators[tok.Text]
			if f == nil {
				panic("calculator: unknown operator " + tok.Text)
			}
			if len(s) < 2 {
				return 0, &MalformedExpressionError{Col: tok.Pos, Residual: len(s), Reason: "missing operand for " + tok.Text}
			}
			b := s.pop()
			a := s.pop()
			r, err := f(a, b)
			if err != nil {
				return 0, at(err, tok.Pos)
			}
			if !finite(r) {
				return 0, &DomainError{Col: tok.Pos, X: b, Func: tok.Text}
			}
			s.push(r)
		case TokenFunc:
			f := functions[tok.Text]
			if f == nil {
				panic("calculator: unknown function " + tok.Text)
			}
			if len(s) < 1 {
				return 0, &MalformedExpressionError{Col: tok.Pos, Residual: 0, Reason: "missing argument for " + tok.Text}
			}
			a := s.pop()
			r := f(a)
			if !finite(r) {
				return 0, &DomainError{Col: tok.Pos, X: a, Func: tok.Text}
			}
			s.push(r)
		case TokenSign:
			return 0, &MalformedExpressionError{Col: tok.Pos, Residual: len(s), Reason: "sign with no number"}
		case TokenOpen, TokenClose:
			return 0, &MalformedExpressionError{Col: tok.Pos, Residual: len(s), Reason: "paren in postfix sequence"}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
	switch {
	case len(s) == 1:
		return s[0], nil
	case len(s) == 0:
		return 0, &MalformedExpressionError{Residual: 0, Reason: "no value"}
	case ctx.lenient:
		return s[0], nil
	default:
		return 0, &MalformedExpressionError{Residual: len(s), Reason: "missing operator"}
	}
}

// Display formats the result of an evaluation for a display. verb is a fmt
// verb for the value, e.g. "%g". Any error is shown as ErrorMarker.
func Display(v float64, err error, verb string) string {
	if err != nil {
		return ErrorMarker
	}
	return fmt.Sprintf(verb, v)
}

// stack is the evaluator's value stack.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes and returns the top of the stack. The caller checks that the
// stack is not empty.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// at sets the position of an error from the operator table.
func at(err error, pos int) error {
	if err, ok := err.(*DivisionByZeroError); ok {
		err.Col = pos
	}
	return err
}
