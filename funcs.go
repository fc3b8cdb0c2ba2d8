package calculator

import (
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Operators contains the binary operator symbols in ascending order of
// precedence.
const Operators = "+-*/^"

// Pi is the float64 nearest to π. Tokenize substitutes it for the π glyph.
var Pi = roundpi(256)

// radPerDeg converts degrees to radians for the trigonometric functions.
var radPerDeg = func() float64 {
	const prec = 256
	p := bigfloat.Pi(new(big.Float).SetPrec(prec))
	p.Quo(p, new(big.Float).SetPrec(prec).SetInt64(180))
	f, _ := p.Float64()
	return f
}()

// roundpi computes π to prec bits and rounds it to a float64.
func roundpi(prec uint) float64 {
	p := bigfloat.Pi(new(big.Float).SetPrec(prec))
	f, _ := p.Float64()
	return f
}

// binary is an entry of the operator table. It returns an error for
// operands outside the operator's domain. The caller sets positions.
type binary func(a, b float64) (float64, error)

// operators maps operator symbols to their implementations. It is never
// modified.
var operators = map[string]binary{
	"+": func(a, b float64) (float64, error) { return a + b, nil },
	"-": func(a, b float64) (float64, error) { return a - b, nil },
	"*": func(a, b float64) (float64, error) { return a * b, nil },
	"/": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &DivisionByZeroError{X: a}
		}
		return a / b, nil
	},
	"^": func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

// functions maps function names to their implementations. Trigonometric
// functions take degrees. It is never modified.
var functions = map[string]func(float64) float64{
	"sin":  func(a float64) float64 { return math.Sin(a * radPerDeg) },
	"cos":  func(a float64) float64 { return math.Cos(a * radPerDeg) },
	"tan":  func(a float64) float64 { return math.Tan(a * radPerDeg) },
	"log":  math.Log10,
	"sqrt": math.Sqrt,
}

// Functions lists the names of the functions an expression may call, in
// sorted order.
var Functions = func() []string {
	r := make([]string, 0, len(functions))
	for name := range functions {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}()

// precedence gets the binding strength of an operator symbol. Higher binds
// tighter. Unknown symbols have precedence 0.
func precedence(sym string) int {
	switch sym {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^":
		return 3
	default:
		return 0
	}
}
