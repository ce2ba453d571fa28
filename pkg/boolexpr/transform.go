package boolexpr

import "fmt"

// Transform applies a named rewrite and returns the new tree. Kinds:
// "simplify", "nand", "nor". Every transform preserves the truth table
// of its input.
func Transform(e Expression, kind string) (Expression, error) {
	switch kind {
	case "simplify":
		return Simplify(e), nil
	case "nand":
		return ToNand(e), nil
	case "nor":
		return ToNor(e), nil
	}
	return nil, fmt.Errorf("unknown transform %q", kind)
}

// ToNand rewrites the expression into pure NAND logic: the result
// contains only Nand operators, variables, constants and preserved
// parentheses.
func ToNand(e Expression) Expression {
	switch node := e.(type) {
	case *Variable, *Constant:
		return e
	case *Paren:
		return &Paren{Inner: ToNand(node.Inner)}
	case *Unary:
		if node.Op != Not {
			panic(fmt.Sprintf("boolexpr: unary operator %s", node.Op))
		}
		// !x == x @ 1
		return ToNand(&Binary{Op: Nand, LHS: node.Operand, RHS: &Constant{Value: 1}})
	case *Binary:
		l, r := node.LHS, node.RHS
		switch node.Op {
		case Nand:
			return &Binary{Op: Nand, LHS: ToNand(l), RHS: ToNand(r)}
		case Or:
			// l + r == (l @ 1) @ (r @ 1)
			return ToNand(&Binary{
				Op:  Nand,
				LHS: &Binary{Op: Nand, LHS: l, RHS: &Constant{Value: 1}},
				RHS: &Binary{Op: Nand, LHS: r, RHS: &Constant{Value: 1}},
			})
		case And:
			// l r == (l @ r) @ 1
			return ToNand(&Binary{
				Op:  Nand,
				LHS: &Binary{Op: Nand, LHS: l, RHS: r},
				RHS: &Constant{Value: 1},
			})
		case Nor:
			return ToNand(&Unary{Op: Not, Operand: &Binary{Op: Or, LHS: l, RHS: r}})
		case Xor:
			// l ^ r == (!l @ r) @ (l @ !r)
			return ToNand(&Binary{
				Op:  Nand,
				LHS: &Binary{Op: Nand, LHS: &Unary{Op: Not, Operand: l}, RHS: r},
				RHS: &Binary{Op: Nand, LHS: l, RHS: &Unary{Op: Not, Operand: r}},
			})
		}
		panic(fmt.Sprintf("boolexpr: binary operator %s", node.Op))
	}
	panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
}

// ToNor rewrites the expression into pure NOR logic.
func ToNor(e Expression) Expression {
	switch node := e.(type) {
	case *Variable, *Constant:
		return e
	case *Paren:
		return &Paren{Inner: ToNor(node.Inner)}
	case *Unary:
		if node.Op != Not {
			panic(fmt.Sprintf("boolexpr: unary operator %s", node.Op))
		}
		// !x == x % 0
		return ToNor(&Binary{Op: Nor, LHS: node.Operand, RHS: &Constant{Value: 0}})
	case *Binary:
		l, r := node.LHS, node.RHS
		switch node.Op {
		case Nor:
			return &Binary{Op: Nor, LHS: ToNor(l), RHS: ToNor(r)}
		case Or:
			// l + r == !(l % r)
			return ToNor(&Unary{Op: Not, Operand: &Binary{Op: Nor, LHS: l, RHS: r}})
		case And:
			// l r == !(!l + !r)
			return ToNor(&Unary{Op: Not, Operand: &Binary{
				Op:  Or,
				LHS: &Unary{Op: Not, Operand: l},
				RHS: &Unary{Op: Not, Operand: r},
			}})
		case Nand:
			return ToNor(&Unary{Op: Not, Operand: &Binary{Op: And, LHS: l, RHS: r}})
		case Xor:
			// l ^ r == !((!l % r) % (l % !r))
			return ToNor(&Unary{Op: Not, Operand: &Binary{
				Op:  Nor,
				LHS: &Binary{Op: Nor, LHS: &Unary{Op: Not, Operand: l}, RHS: r},
				RHS: &Binary{Op: Nor, LHS: l, RHS: &Unary{Op: Not, Operand: r}},
			}})
		}
		panic(fmt.Sprintf("boolexpr: binary operator %s", node.Op))
	}
	panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
}

// Simplify folds constant subterms bottom-up: double negation of
// constants, And/Or with a constant operand, And/Or of structurally
// identical operands and redundant nested parentheses. The result is
// truth-table-equal to the input.
func Simplify(e Expression) Expression {
	switch node := e.(type) {
	case *Variable, *Constant:
		return e
	case *Paren:
		inner := Simplify(node.Inner)
		if p, ok := inner.(*Paren); ok {
			return p
		}
		return &Paren{Inner: inner}
	case *Unary:
		operand := Simplify(node.Operand)
		if node.Op == Not {
			if c, ok := operand.(*Constant); ok {
				return &Constant{Value: 1 - c.Value}
			}
		}
		return &Unary{Op: node.Op, Operand: operand}
	case *Binary:
		lhs := Simplify(node.LHS)
		rhs := Simplify(node.RHS)
		switch node.Op {
		case And:
			if isConst(lhs, 0) || isConst(rhs, 0) {
				return &Constant{Value: 0}
			}
			if isConst(lhs, 1) {
				return rhs
			}
			if isConst(rhs, 1) {
				return lhs
			}
			if lhs.Same(rhs) {
				return lhs
			}
		case Or:
			if isConst(lhs, 1) || isConst(rhs, 1) {
				return &Constant{Value: 1}
			}
			if isConst(lhs, 0) {
				return rhs
			}
			if isConst(rhs, 0) {
				return lhs
			}
			if lhs.Same(rhs) {
				return lhs
			}
		}
		return &Binary{Op: node.Op, LHS: lhs, RHS: rhs}
	}
	panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
}

func isConst(e Expression, value int) bool {
	c, ok := e.(*Constant)
	return ok && c.Value == value
}
