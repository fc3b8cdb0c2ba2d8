package calculator_test

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"dec", "2.5", 2.5},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"prec", "3 + 4 * 2", 11},
		{"paren", "(3 + 4) * 2", 14},
		{"nested", "((2))", 2},
		{"pow", "2^10", 1024},
		// ^ is left-associative; see TestEvaluateLeftPow.
		{"pow3", "2^3^2", 64},
		{"square", "3²", 9},
		{"squareparen", "(1+2)²", 9},
		{"sqrt", "sqrt(16)", 4},
		{"root", "√(16)", 4},
		{"rootexpr", "√(9+16)", 5},
		{"sin", "sin(90)", 1},
		{"sin0", "sin(0)", 0},
		{"cos0", "cos(0)", 1},
		{"tan0", "tan(0)", 0},
		{"log1", "log(1)", 0},
		{"pi", "π", math.Pi},
		{"twopi", "2*π", 2 * math.Pi},
		{"neg", "-5 + 3", -2},
		{"negonly", "-5", -5},
		{"negpi", "-π", -math.Pi},
		{"subneg", "5 - -3", 8},
		{"mulneg", "2 * -3", -6},
		{"parenneg", "(-2) * 3", -6},
		{"negsub", "-3-2", -5},
		{"negsquare", "-2²", 4},
		{"negpow", "-2^2", 4},
		{"funcneg", "sqrt(-4 + 8)", 2},
		{"keypad", "6 × 2 ÷ 3 − 1", 3},
		{"combined", "√(16) + 2²", 8},
		{"funcpow", "sqrt(9)^2", 9},
		{"bare", "sqrt 9", 3},
		{"spaces", "  1  +\t2 ", 3},
		{"divzero-num", "0 / 5", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Evaluate(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluateInexact(t *testing.T) {
	cases := []struct {
		src string
		r   float64
	}{
		{"sin(30)", 0.5},
		{"cos(60)", 0.5},
		{"tan(45)", 1},
		{"sin(-90)", -1},
		{"cos(180)", -1},
		{"sin(270)", -1},
		{"cos(90)", 0},
		{"sin(180)", 0},
		{"log(1000)", 3},
		{"log(0.01)", -2},
		{"-π²", math.Pi * math.Pi},
	}
	const tol = 1e-12
	for _, c := range cases {
		r, err := calculator.Evaluate(c.src)
		if err != nil {
			t.Errorf("evaluating %q: %v", c.src, err)
			continue
		}
		if math.Abs(r-c.r) > tol {
			t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
		}
	}
}

func TestEvaluateLeftPow(t *testing.T) {
	// Exponentiation is usually right-associative, but keypad calculators
	// evaluate chains left to right.
	l, err := calculator.Evaluate("2^3^2")
	if err != nil {
		t.Fatal(err)
	}
	r, err := calculator.Evaluate("2^(3^2)")
	if err != nil {
		t.Fatal(err)
	}
	if l != 64 || r != 512 {
		t.Errorf("2^3^2 = %g and 2^(3^2) = %g, want 64 and 512", l, r)
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		col  int
		res  []string
	}{
		{"empty", "", new(calculator.TokenizeError), 0, []string{`(?i)\bno tokens\b`}},
		{"garbage", "hello", new(calculator.TokenizeError), 0, nil},
		{"badnum", "1.2.3 + 4", new(calculator.TokenizeError), 1, []string{`1\.2\.3`}},
		{"open", "(", new(calculator.UnbalancedParenError), 1, []string{`(?i)\bparen\b`, `\(`}},
		{"close", ")", new(calculator.UnbalancedParenError), 1, []string{`(?i)\bparen\b`, `\)`}},
		{"unclosed", "(1 + 2", new(calculator.UnbalancedParenError), 1, nil},
		{"unopened", "1 + 2)", new(calculator.UnbalancedParenError), 6, nil},
		{"divzero", "10 / 0", new(calculator.DivisionByZeroError), 4, []string{`(?i)\bzero\b`, `\b10\b`}},
		{"divzero-expr", "1 / (2 - 2)", new(calculator.DivisionByZeroError), 3, nil},
		{"zerozero", "0/0", new(calculator.DivisionByZeroError), 2, nil},
		{"missing-rhs", "3 +", new(calculator.MalformedExpressionError), 3, []string{`(?i)\bmalformed\b`, `(?i)\boperand\b`}},
		{"missing-lhs", "* 3", new(calculator.MalformedExpressionError), 1, nil},
		{"missing-arg", "sqrt()", new(calculator.MalformedExpressionError), 1, []string{`(?i)\bargument\b`}},
		{"lonefunc", "sin", new(calculator.MalformedExpressionError), 1, nil},
		{"emptyparen", "()", new(calculator.MalformedExpressionError), 0, []string{`(?i)\bno value\b`}},
		{"two", "2 3", new(calculator.MalformedExpressionError), 0, []string{`(?i)\boperator\b`, `\b2 values\b`}},
		{"sign", "-(2)", new(calculator.MalformedExpressionError), 1, []string{`(?i)\bsign\b`}},
		{"lonesign", "-", new(calculator.MalformedExpressionError), 1, nil},
		{"sqrtneg", "sqrt(-1)", new(calculator.DomainError), 1, []string{`(?i)\bdomain\b`, `\bsqrt\b`, `-1`}},
		{"logzero", "log(0)", new(calculator.DomainError), 1, []string{`\blog\b`}},
		{"logneg", "log(-10)", new(calculator.DomainError), 1, nil},
		{"overflow", "10^400", new(calculator.DomainError), 3, []string{`\^`}},
		{"negfrac", "(-8)^0.5", new(calculator.DomainError), 5, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Evaluate(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %g with no error", c.src, r)
			}
			if r != 0 {
				t.Errorf("evaluating %q gave non-zero result %g with error", c.src, r)
			}
			if fmt.Sprintf("%T", err) != fmt.Sprintf("%T", c.err) {
				t.Errorf("wrong error type from %q: want %T, got %#v", c.src, c.err, err)
			}
			var ie calculator.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: want error at %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestEvaluateLenient(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"two", "2 3", 2},
		{"three", "4 (5) 6", 4},
		{"pi", "2π", 2},
		{"exact", "1 + 1", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Evaluate(c.src, calculator.Lenient())
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
			// The last option wins.
			if _, err := calculator.Evaluate(c.src, calculator.Lenient(), calculator.Strict()); c.name != "exact" && err == nil {
				t.Errorf("strict evaluation of %q gave no error", c.src)
			}
		})
	}
	// Leniency doesn't forgive anything else.
	for _, src := range []string{"()", "3 +", "-(2)", "1/0", "("} {
		if r, err := calculator.Evaluate(src, calculator.Lenient()); err == nil {
			t.Errorf("lenient evaluation of %q gave %g with no error", src, r)
		}
	}
}

func TestEvalPostfix(t *testing.T) {
	cases := []struct {
		name string
		rpn  []calculator.Token
		r    float64
	}{
		{"num", []calculator.Token{calculator.Num(7)}, 7},
		{"sub", []calculator.Token{calculator.Num(3), calculator.Num(4), calculator.Op("-")}, -1},
		{"div", []calculator.Token{calculator.Num(1), calculator.Num(4), calculator.Op("/")}, 0.25},
		{"pow", []calculator.Token{calculator.Num(2), calculator.Num(-1), calculator.Op("^")}, 0.5},
		{"func", []calculator.Token{calculator.Num(100), calculator.Func("sqrt")}, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvalPostfix(c.rpn)
			if err != nil {
				t.Fatalf("evaluating %v: %v", c.rpn, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %v: want %g, got %g", c.rpn, c.r, r)
			}
		})
	}
	if _, err := calculator.EvalPostfix([]calculator.Token{calculator.Num(1), calculator.Open()}); err == nil {
		t.Error("paren in postfix sequence gave no error")
	}
	if _, err := calculator.EvalPostfix(nil); err == nil {
		t.Error("empty postfix sequence gave no error")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	srcs := []string{"3 + 4 * 2", "sin(30) + cos(60)", "10 / 0", "(", "-π²", "2 3"}
	for _, src := range srcs {
		r1, err1 := calculator.Evaluate(src)
		r2, err2 := calculator.Evaluate(src)
		if r1 != r2 || fmt.Sprint(err1) != fmt.Sprint(err2) {
			t.Errorf("%q evaluated differently: %g, %v then %g, %v", src, r1, err1, r2, err2)
		}
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	srcs := []string{"3 + 4 * 2", "sqrt(16)", "sin(90)", "-5 + 3", "(3 + 4) * 2"}
	want := []float64{11, 4, 1, -2, 14}
	for i, src := range srcs {
		i, src := i, src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			for k := 0; k < 100; k++ {
				r, err := calculator.Evaluate(src)
				if err != nil || r != want[i] {
					t.Fatalf("%q gave %g, %v; want %g", src, r, err, want[i])
				}
			}
		})
	}
}

func TestPostfixRoundTrip(t *testing.T) {
	// The converter's output for a well-formed expression always reduces to
	// exactly one value, so strict evaluation succeeds.
	srcs := []string{
		"1",
		"1 + 2 * 3 - 4 / 5 ^ 6",
		"((((1))))",
		"sin(cos(tan(log(sqrt(100)))))",
		"-1 * -2 - -3",
		"(1 + 2) * (3 + 4) / (5 - 6)",
		"2²²",
		"√(π) * √(π)",
		"log(1000) ^ sqrt(4) - 9",
	}
	for _, src := range srcs {
		toks, err := calculator.Tokenize(src)
		if err != nil {
			t.Errorf("%q failed to tokenize: %v", src, err)
			continue
		}
		rpn, err := calculator.Postfix(toks)
		if err != nil {
			t.Errorf("%q failed to convert: %v", src, err)
			continue
		}
		if _, err := calculator.EvalPostfix(rpn); err != nil {
			t.Errorf("%q -> %s failed to evaluate: %v", src, calculator.FormatTokens(rpn), err)
		}
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		src  string
		verb string
		want string
	}{
		{"3 + 4 * 2", "%g", "11"},
		{"1 / 4", "%g", "0.25"},
		{"π", "%.6f", "3.141593"},
		{"10 / 0", "%g", calculator.ErrorMarker},
		{"(", "%g", "Error"},
		{"sqrt(-1)", "%g", "Error"},
	}
	for _, c := range cases {
		r, err := calculator.Evaluate(c.src)
		if got := calculator.Display(r, err, c.verb); got != c.want {
			t.Errorf("%q displayed as %q, want %q", c.src, got, c.want)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"short", "3 + 4 * 2"},
		{"funcs", "sin(30) + cos(60) * tan(45) - log(1000) / sqrt(16)"},
		{"parens", "((1 + 2) * (3 - 4)) / ((5 + 6) * (7 - 8))"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				calculator.Evaluate(c.src)
			}
		})
	}
}

func Example() {
	for _, src := range []string{"3 + 4 * 2", "(3 + 4) * 2", "√(16) + 2²", "-5 + 3", "10 / 0"} {
		r, err := calculator.Evaluate(src)
		fmt.Printf("%-12s = %s\n", src, calculator.Display(r, err, "%g"))
	}

	// Output:
	// 3 + 4 * 2    = 11
	// (3 + 4) * 2  = 14
	// √(16) + 2²   = 8
	// -5 + 3       = -2
	// 10 / 0       = Error
}
