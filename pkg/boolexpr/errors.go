package boolexpr

import "errors"

// Failure classes wrapped by errors in this package. Callers test them
// with errors.Is; the message carries the detail.
var (
	// ErrSyntax marks malformed expression text: empty input,
	// unbalanced parentheses, unknown or trailing tokens.
	ErrSyntax = errors.New("syntax error")

	// ErrSemantic marks structurally valid input that is meaningless,
	// such as comparing expressions over incomparable variable sets.
	ErrSemantic = errors.New("semantic error")
)
