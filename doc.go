// Package calculator evaluates arithmetic expressions typed on a calculator
// keypad.
//
// An expression is evaluated in three stages. Tokenize splits the text into
// numbers, operators, parentheses, and function names. Postfix reorders the
// tokens into Reverse Polish notation. EvalPostfix reduces the postfix
// sequence to a single float64. Evaluate runs all three.
//
// Expressions may use + - * / ^, parentheses, a leading or post-operator
// minus sign, the functions sin cos tan log sqrt, and the keypad glyphs π, ²,
// √, ×, ÷, and −. Trigonometric functions take degrees, and log is base 10.
// "√(16) + 2²" is 8.
//
// All operators are left-associative: "2^3^2" is 64, not 512.
//
// A minus sign binds to the number after it before any operator does, so
// "-π²" is (-π)², about 9.87, and "-2^2" is 4.
//
// Every function in the package is safe to call concurrently.
package calculator
