package truthtable

import "errors"

// Failure classes wrapped by errors in this package; callers test them
// with errors.Is.
var (
	// ErrSyntax marks malformed table text.
	ErrSyntax = errors.New("syntax error")

	// ErrSemantic marks well-formed input that cannot be honored, such
	// as an unknown output variable or a don't-care expression over
	// foreign variables.
	ErrSemantic = errors.New("semantic error")

	// ErrIncomplete marks a strict parse of a table that leaves input
	// patterns without a value.
	ErrIncomplete = errors.New("incomplete table")
)
