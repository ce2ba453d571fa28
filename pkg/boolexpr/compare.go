package boolexpr

import "fmt"

// Difference is a single assignment where two compared expressions
// disagree, with both evaluation results in caller order.
type Difference struct {
	Assignment map[string]int
	LHS        int
	RHS        int
}

// Compare evaluates e1 and e2 against each other and returns every
// assignment where they diverge. One expression's variable set must be
// a subset of the other's; the comparison runs over the larger domain
// and the smaller expression ignores the variables it does not
// reference. Incomparable variable sets yield an ErrSemantic error.
func Compare(e1, e2 Expression) ([]Difference, error) {
	names1 := Variables(e1)
	names2 := Variables(e2)

	domain := names1
	if len(names2) > len(names1) {
		domain = names2
	}
	if !subset(names1, domain) || !subset(names2, domain) {
		return nil, fmt.Errorf("%w: cannot compare expressions with different variables", ErrSemantic)
	}

	var diffs []Difference
	for index := 0; index < 1<<len(domain); index++ {
		assignment := IndexAssignment(domain, index)
		lhs := e1.Eval(assignment)
		rhs := e2.Eval(assignment)
		if lhs != rhs {
			diffs = append(diffs, Difference{Assignment: assignment, LHS: lhs, RHS: rhs})
		}
	}
	return diffs, nil
}

// Equal reports truth-table equivalence under the Compare domain rules.
func Equal(e1, e2 Expression) (bool, error) {
	diffs, err := Compare(e1, e2)
	if err != nil {
		return false, err
	}
	return len(diffs) == 0, nil
}

// subset reports whether every name in sub occurs in super. Both slices
// are sorted.
func subset(sub, super []string) bool {
	i := 0
	for _, name := range sub {
		for i < len(super) && super[i] < name {
			i++
		}
		if i == len(super) || super[i] != name {
			return false
		}
	}
	return true
}
