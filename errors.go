package calculator

import (
	"strconv"
)

// TokenizeError is an error indicating input that could not be split into
// tokens: either there was nothing recognizable at all, or a run of digits
// and dots is not a valid number. It implements InputError.
type TokenizeError struct {
	// Col is the position of the invalid number, or 0 if the input had no
	// tokens.
	Col int
	// Text is the invalid number, or the empty string if the input had no
	// tokens.
	Text string
}

func (err *TokenizeError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "no tokens in expression")
	}
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *TokenizeError) Pos() int {
	return err.Col
}

// UnbalancedParenError is an error indicating a parenthesis without its
// partner. It implements InputError.
type UnbalancedParenError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" if an open parenthesis was never closed.
	Left string
	// Right is ")" if a close parenthesis had no open parenthesis.
	Right string
}

func (err *UnbalancedParenError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *UnbalancedParenError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division of "+fmtnum(err.X)+" by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating a token sequence that does
// not reduce to exactly one value, e.g. an operator missing an operand or two
// numbers with no operator between them. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the token that could not be applied, or 0 if
	// the error was found after evaluating every token.
	Col int
	// Residual is the number of values left on the stack when the error was
	// found.
	Residual int
	// Reason describes the problem.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, "malformed expression: "+err.Reason+" ("+strconv.Itoa(err.Residual)+" values on stack)")
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator or function produces a
// value that is not a finite number, e.g. sqrt(-1) or log(0). It implements
// InputError.
type DomainError struct {
	// Col is the position of the operator or function.
	Col int
	// X is the out-of-domain argument. For operators, it is the right
	// operand.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := fmtnum(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. It is 0 when
	// the error does not belong to a single token.
	Pos() int
}

var (
	_ InputError = (*TokenizeError)(nil)
	_ InputError = (*UnbalancedParenError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*DomainError)(nil)
)
