package boolexpr

import (
	"fmt"
	"strings"
)

// Format renders an expression in one of the supported notations:
//
//	text        plain ASCII infix (A B + !C)
//	pretty-text unicode infix (A ∧ B ∨ C̅)
//	tex-tech    TeX with \overline negation
//	tex-math    TeX with \neg negation
//	dot         Graphviz tree description
//	internal    structural dump with bracketed operators
//
// With implicitAnd set (the usual rendering), And appears as plain
// juxtaposition in the text and TeX forms.
func Format(e Expression, format string, implicitAnd bool) (string, error) {
	switch format {
	case "text":
		return formatText(e, false, implicitAnd), nil
	case "pretty-text":
		return formatText(e, true, implicitAnd), nil
	case "tex-tech":
		return formatTex(e, true, implicitAnd), nil
	case "tex-math":
		return formatTex(e, false, implicitAnd), nil
	case "dot":
		return formatDot(e), nil
	case "internal":
		return e.String(), nil
	}
	return "", fmt.Errorf("unknown expression format %q", format)
}

// Text renders the plain ASCII infix form with implicit And. This is
// the canonical textual form; parsing it back yields an expression with
// the same truth table.
func Text(e Expression) string {
	return formatText(e, false, true)
}

type textFormatter struct {
	pretty bool
	ops    map[Operator]string
}

func formatText(e Expression, pretty, implicitAnd bool) string {
	f := &textFormatter{pretty: pretty}
	if pretty {
		f.ops = map[Operator]string{
			Or:   " ∨ ",
			And:  " ∧ ",
			Xor:  " ⊕ ",
			Not:  "!",
			Nand: " NAND ",
			Nor:  " NOR ",
		}
	} else {
		f.ops = map[Operator]string{
			Or:   " + ",
			And:  " * ",
			Xor:  " ^ ",
			Not:  "!",
			Nand: " @ ",
			Nor:  " % ",
		}
	}
	if implicitAnd {
		f.ops[And] = " "
	}
	return f.format(e)
}

func (f *textFormatter) format(e Expression) string {
	switch node := e.(type) {
	case *Variable:
		return node.Name
	case *Constant:
		return node.String()
	case *Binary:
		lhs := f.wrap(node.LHS, f.lhsNeedsParens(node))
		rhs := f.wrap(node.RHS, f.rhsNeedsParens(node))
		return lhs + f.ops[node.Op] + rhs
	case *Unary:
		switch node.Operand.(type) {
		case *Variable, *Constant:
			if f.pretty && node.Op == Not {
				// combining overline over the atom
				return f.format(node.Operand) + "̅"
			}
			return f.ops[node.Op] + f.format(node.Operand)
		default:
			return f.ops[node.Op] + "(" + f.format(node.Operand) + ")"
		}
	case *Paren:
		return "(" + f.format(node.Inner) + ")"
	}
	panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
}

func (f *textFormatter) wrap(e Expression, parens bool) string {
	if parens {
		return "(" + f.format(e) + ")"
	}
	return f.format(e)
}

// A left operand needs parentheses only when it binds looser than its
// parent. The right operand additionally keeps them at equal binding
// strength when the parent operator is non-associative or differs from
// the operand's own, so Nand/Nor chains and mixed Or/Xor chains
// round-trip structurally.
func (f *textFormatter) lhsNeedsParens(b *Binary) bool {
	return b.LHS.Precedence() > b.Precedence()
}

func (f *textFormatter) rhsNeedsParens(b *Binary) bool {
	if b.RHS.Precedence() > b.Precedence() {
		return true
	}
	if b.RHS.Precedence() != b.Precedence() {
		return false
	}
	rhs, ok := b.RHS.(*Binary)
	return !b.Op.Associative() || !ok || b.Op != rhs.Op
}

type texFormatter struct {
	overline bool
	ops      map[Operator]string
}

func formatTex(e Expression, overline, implicitAnd bool) string {
	f := &texFormatter{
		overline: overline,
		ops: map[Operator]string{
			Or:   `\vee`,
			And:  `\wedge`,
			Xor:  `\oplus`,
			Not:  `\neg`,
			Nand: `\boxdot`,
			Nor:  `\downarrow`,
		},
	}
	if implicitAnd {
		f.ops[And] = `\ `
	}
	return strings.ReplaceAll(f.format(e, nil), "  ", " ")
}

// format renders a node; prev is the operator of the enclosing Unary or
// Binary node, nil at the root and inside explicit parentheses.
func (f *texFormatter) format(e Expression, prev *Operator) string {
	switch node := e.(type) {
	case *Variable:
		return `\textnormal{` + node.Name + `}`
	case *Constant:
		return node.String()
	case *Binary:
		inner := f.format(node.LHS, &node.Op) + " " + f.ops[node.Op] + " " + f.format(node.RHS, &node.Op)
		if f.grouped(prev, node.Op) {
			return inner
		}
		return "(" + inner + ")"
	case *Unary:
		if f.overline {
			return `\overline{` + f.format(node.Operand, &node.Op) + `}`
		}
		return f.ops[node.Op] + " " + f.format(node.Operand, &node.Op)
	case *Paren:
		return "(" + f.format(node.Inner, nil) + ")"
	}
	panic(fmt.Sprintf("boolexpr: unhandled node %T", e))
}

// grouped reports whether a binary child may render without its own
// parentheses: at the root, under the same operator, or as an And chain
// directly under an Or.
func (f *texFormatter) grouped(prev *Operator, op Operator) bool {
	if prev == nil {
		return true
	}
	return *prev == op || (*prev == Or && op == And)
}
