package boolexpr

import (
	"fmt"
	"sort"
)

// Expression is the closed interface over the five node kinds. Trees are
// immutable once built; sharing subtrees is safe.
type Expression interface {
	// Eval returns 0 or 1 under the given assignment. Every variable the
	// expression references must be present; a missing one is a caller
	// bug and panics.
	Eval(assignment map[string]int) int

	// Precedence reports the node's binding strength (atoms are 5).
	Precedence() int

	// Same reports structural identity: same node kinds, operators and
	// variable names in the same shape. Semantic equality is Equal.
	Same(other Expression) bool

	// String renders the structural form: operators bracketed, atoms
	// bare, parenthesis nodes as plain parens.
	String() string
}

// Variable is a named atom. Identity is the name.
type Variable struct {
	Name string
}

func (v *Variable) Eval(assignment map[string]int) int {
	value, ok := assignment[v.Name]
	if !ok {
		panic(fmt.Sprintf("boolexpr: variable %q missing from assignment", v.Name))
	}
	return value
}

func (v *Variable) Precedence() int { return 5 }

func (v *Variable) Same(other Expression) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name
}

func (v *Variable) String() string { return v.Name }

// Constant is the literal 0 or 1.
type Constant struct {
	Value int
}

func (c *Constant) Eval(assignment map[string]int) int { return c.Value }

func (c *Constant) Precedence() int { return 5 }

func (c *Constant) Same(other Expression) bool {
	o, ok := other.(*Constant)
	return ok && c.Value == o.Value
}

func (c *Constant) String() string { return fmt.Sprintf("%d", c.Value) }

// Unary applies a prefix operator; only Not exists.
type Unary struct {
	Op      Operator
	Operand Expression
}

func (u *Unary) Eval(assignment map[string]int) int {
	if u.Op != Not {
		panic(fmt.Sprintf("boolexpr: unary operator %s", u.Op))
	}
	return 1 - u.Operand.Eval(assignment)
}

func (u *Unary) Precedence() int { return u.Op.Precedence() }

func (u *Unary) Same(other Expression) bool {
	o, ok := other.(*Unary)
	return ok && u.Op == o.Op && u.Operand.Same(o.Operand)
}

func (u *Unary) String() string {
	return fmt.Sprintf("[%s%s]", u.Op, u.Operand)
}

// Binary combines two subtrees with And, Or, Xor, Nand or Nor.
type Binary struct {
	Op  Operator
	LHS Expression
	RHS Expression
}

func (b *Binary) Eval(assignment map[string]int) int {
	lhs := b.LHS.Eval(assignment)
	rhs := b.RHS.Eval(assignment)
	switch b.Op {
	case And:
		return lhs & rhs
	case Or:
		return lhs | rhs
	case Xor:
		return lhs ^ rhs
	case Nand:
		return 1 - (lhs & rhs)
	case Nor:
		return 1 - (lhs | rhs)
	}
	panic(fmt.Sprintf("boolexpr: binary operator %s", b.Op))
}

func (b *Binary) Precedence() int { return b.Op.Precedence() }

func (b *Binary) Same(other Expression) bool {
	o, ok := other.(*Binary)
	return ok && b.Op == o.Op && b.LHS.Same(o.LHS) && b.RHS.Same(o.RHS)
}

func (b *Binary) String() string {
	return fmt.Sprintf("[%s %s %s]", b.LHS, b.Op, b.RHS)
}

// Paren wraps a subtree the user parenthesized. It changes nothing
// semantically but survives into formatted output.
type Paren struct {
	Inner Expression
}

func (p *Paren) Eval(assignment map[string]int) int { return p.Inner.Eval(assignment) }

func (p *Paren) Precedence() int { return 5 }

func (p *Paren) Same(other Expression) bool {
	o, ok := other.(*Paren)
	return ok && p.Inner.Same(o.Inner)
}

func (p *Paren) String() string { return fmt.Sprintf("(%s)", p.Inner) }

// Join folds terms left-associatively under op. At least one term is
// required; callers handle the empty case themselves.
func Join(op Operator, terms []Expression) Expression {
	if len(terms) == 0 {
		panic("boolexpr: join of empty term list")
	}
	result := terms[0]
	for _, term := range terms[1:] {
		result = &Binary{Op: op, LHS: result, RHS: term}
	}
	return result
}

// Walk visits the tree in pre-order: the node itself, then for binary
// nodes the left subtree before the right.
func Walk(e Expression, visit func(Expression)) {
	visit(e)
	switch node := e.(type) {
	case *Variable, *Constant:
	case *Unary:
		Walk(node.Operand, visit)
	case *Binary:
		Walk(node.LHS, visit)
		Walk(node.RHS, visit)
	case *Paren:
		Walk(node.Inner, visit)
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
	}
}

// Variables returns the sorted set of variable names the expression
// references.
func Variables(e Expression) []string {
	seen := make(map[string]bool)
	Walk(e, func(node Expression) {
		if v, ok := node.(*Variable); ok {
			seen[v.Name] = true
		}
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IndexAssignment expands a row index into an assignment over the given
// variable order. The first name carries the highest bit weight, so
// index i sets names[j] to bit (len-1-j) of i.
func IndexAssignment(names []string, index int) map[string]int {
	assignment := make(map[string]int, len(names))
	for pos, name := range names {
		assignment[name] = (index >> (len(names) - 1 - pos)) & 1
	}
	return assignment
}

// AssignmentIndex is the inverse of IndexAssignment over the same
// variable order. Names absent from the assignment count as 0.
func AssignmentIndex(names []string, assignment map[string]int) int {
	index := 0
	for pos, name := range names {
		if assignment[name] == 1 {
			index |= 1 << (len(names) - 1 - pos)
		}
	}
	return index
}

// Minterms returns the assignments under which the expression is 1, in
// row-index order over its sorted variables.
func Minterms(e Expression) []map[string]int {
	return assignmentsWhere(e, 1)
}

// Maxterms returns the assignments under which the expression is 0.
func Maxterms(e Expression) []map[string]int {
	return assignmentsWhere(e, 0)
}

func assignmentsWhere(e Expression, want int) []map[string]int {
	names := Variables(e)
	var result []map[string]int
	for index := 0; index < 1<<len(names); index++ {
		assignment := IndexAssignment(names, index)
		if e.Eval(assignment) == want {
			result = append(result, assignment)
		}
	}
	return result
}

// SumTerms splits a top-level Or chain into its summands; an expression
// without a top-level Or is its own single term.
func SumTerms(e Expression) []Expression {
	if b, ok := e.(*Binary); ok && b.Op == Or {
		return append(SumTerms(b.LHS), SumTerms(b.RHS)...)
	}
	return []Expression{e}
}

// ProductTerms splits a top-level And chain into its factors.
func ProductTerms(e Expression) []Expression {
	if b, ok := e.(*Binary); ok && b.Op == And {
		return append(ProductTerms(b.LHS), ProductTerms(b.RHS)...)
	}
	return []Expression{e}
}
