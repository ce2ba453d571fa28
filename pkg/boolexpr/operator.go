package boolexpr

import "fmt"

// Operator identifies a boolean connective.
type Operator uint8

const (
	Or Operator = iota
	And
	Xor
	Not
	Nand
	Nor
)

var operatorSymbols = map[Operator]string{
	Or:   "+",
	And:  "*",
	Xor:  "^",
	Not:  "!",
	Nand: "@",
	Nor:  "%",
}

// String returns the canonical symbol of the operator.
func (op Operator) String() string {
	if sym, ok := operatorSymbols[op]; ok {
		return sym
	}
	panic(fmt.Sprintf("boolexpr: unhandled operator %d", uint8(op)))
}

// Precedence reports binding strength; lower values bind tighter.
// Atoms are level 5, negation 9, And 10, Nand 11 and the loosest
// level 12 is shared by Or, Xor and Nor.
func (op Operator) Precedence() int {
	switch op {
	case Not:
		return 9
	case And:
		return 10
	case Nand:
		return 11
	case Or, Xor, Nor:
		return 12
	}
	panic(fmt.Sprintf("boolexpr: unhandled operator %d", uint8(op)))
}

// Associative reports whether chains of the operator may be regrouped.
// Nand and Nor are not associative; a right-nested chain keeps its
// parentheses when formatted.
func (op Operator) Associative() bool {
	switch op {
	case And, Or, Xor:
		return true
	case Nand, Nor:
		return false
	}
	panic(fmt.Sprintf("boolexpr: operator %s has no associativity", op))
}

// lookupOperator maps a source token to its operator. All accepted
// spellings are covered: + | * & ^ ! - ~ @ %.
func lookupOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "+", "|":
		return Or, true
	case "*", "&":
		return And, true
	case "^":
		return Xor, true
	case "!", "-", "~":
		return Not, true
	case "@":
		return Nand, true
	case "%":
		return Nor, true
	}
	return 0, false
}
