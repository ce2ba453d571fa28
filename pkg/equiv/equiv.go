package equiv

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

// Counterexample is an assignment on which two compared expressions
// disagree, with both evaluation results in caller order.
type Counterexample struct {
	Assignment map[string]int
	LHS        int
	RHS        int
}

// Equivalent reports through a SAT query whether two expressions compute
// the same function. The variable rules match boolexpr.Compare: one
// expression's variable set must be a subset of the other's, and the check
// runs over the larger domain. When the expressions differ, one falsifying
// assignment is returned.
func Equivalent(e1, e2 boolexpr.Expression) (bool, *Counterexample, error) {
	names1 := boolexpr.Variables(e1)
	names2 := boolexpr.Variables(e2)
	domain := names1
	if len(names2) > len(names1) {
		domain = names2
	}
	if !subset(names1, domain) || !subset(names2, domain) {
		return false, nil, fmt.Errorf("%w: cannot compare expressions with different variables", boolexpr.ErrSemantic)
	}

	circuit := logic.NewC()
	inputs := declareInputs(circuit, domain)
	miter := circuit.Xor(compile(circuit, e1, inputs), compile(circuit, e2, inputs))
	assignment, sat := solve(circuit, miter, domain, inputs)
	if !sat {
		return true, nil, nil
	}
	return false, &Counterexample{
		Assignment: assignment,
		LHS:        e1.Eval(assignment),
		RHS:        e2.Eval(assignment),
	}, nil
}

// Tautology reports whether the expression evaluates to 1 under every
// assignment. If it does not, a falsifying assignment is returned.
func Tautology(e boolexpr.Expression) (bool, map[string]int) {
	domain := boolexpr.Variables(e)
	circuit := logic.NewC()
	inputs := declareInputs(circuit, domain)
	root := compile(circuit, e, inputs).Not()
	assignment, sat := solve(circuit, root, domain, inputs)
	if !sat {
		return true, nil
	}
	return false, assignment
}

// Unsatisfiable reports whether the expression evaluates to 0 under every
// assignment. If it does not, a satisfying assignment is returned.
func Unsatisfiable(e boolexpr.Expression) (bool, map[string]int) {
	domain := boolexpr.Variables(e)
	circuit := logic.NewC()
	inputs := declareInputs(circuit, domain)
	root := compile(circuit, e, inputs)
	assignment, sat := solve(circuit, root, domain, inputs)
	if !sat {
		return true, nil
	}
	return false, assignment
}

func declareInputs(circuit *logic.C, domain []string) map[string]z.Lit {
	inputs := make(map[string]z.Lit, len(domain))
	for _, name := range domain {
		inputs[name] = circuit.NewIn()
	}
	return inputs
}

// compile lowers an expression tree onto the circuit. Nand and Nor have no
// gate of their own and become negated And/Or; constants fold away inside
// logic.C.
func compile(circuit *logic.C, e boolexpr.Expression, inputs map[string]z.Lit) z.Lit {
	switch node := e.(type) {
	case *boolexpr.Variable:
		return inputs[node.Name]
	case *boolexpr.Constant:
		if node.Value != 0 {
			return circuit.T
		}
		return circuit.F
	case *boolexpr.Paren:
		return compile(circuit, node.Inner, inputs)
	case *boolexpr.Unary:
		return compile(circuit, node.Operand, inputs).Not()
	case *boolexpr.Binary:
		lhs := compile(circuit, node.LHS, inputs)
		rhs := compile(circuit, node.RHS, inputs)
		switch node.Op {
		case boolexpr.And:
			return circuit.And(lhs, rhs)
		case boolexpr.Or:
			return circuit.Or(lhs, rhs)
		case boolexpr.Xor:
			return circuit.Xor(lhs, rhs)
		case boolexpr.Nand:
			return circuit.And(lhs, rhs).Not()
		case boolexpr.Nor:
			return circuit.Or(lhs, rhs).Not()
		}
		panic(fmt.Sprintf("equiv: unhandled operator %s", node.Op))
	}
	panic(fmt.Sprintf("equiv: unhandled expression node %T", e))
}

// solve runs a SAT query for root over the circuit and reads back an input
// assignment when satisfiable. Tseitin conversion leaves the constant-true
// variable unconstrained, so it is pinned with a unit clause.
func solve(circuit *logic.C, root z.Lit, domain []string, inputs map[string]z.Lit) (map[string]int, bool) {
	solver := gini.New()
	circuit.ToCnf(solver)
	solver.Add(circuit.T)
	solver.Add(0)
	solver.Assume(root)
	if solver.Solve() != 1 {
		return nil, false
	}
	assignment := make(map[string]int, len(domain))
	for _, name := range domain {
		value := 0
		if solver.Value(inputs[name]) {
			value = 1
		}
		assignment[name] = value
	}
	return assignment, true
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
