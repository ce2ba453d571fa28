// Package boolexpr parses, evaluates, formats and transforms two-level
// boolean algebra expressions.
//
// Expressions are immutable trees built from a closed set of node kinds:
// Variable, Constant, Unary (negation), Binary (And, Or, Xor, Nand, Nor)
// and Paren. Parenthesis nodes are semantically transparent but preserved
// so that formatting round-trips the structure the user wrote.
//
// The infix syntax accepts + or | for Or, * or & (or plain juxtaposition)
// for And, ^ for Xor, @ for Nand, % for Nor and !, - or ~ for negation.
// Identifiers name variables, 0 and 1 are constants.
package boolexpr
