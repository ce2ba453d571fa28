package boolexpr

import (
	"fmt"
	"math"
	"math/rand"
)

// OperatorWeights maps generator operation names to relative selection
// weights. Operations with zero or missing weight are never produced.
type OperatorWeights map[string]int

// generatorOps fixes the selection order so equal seeds give equal
// expressions regardless of map iteration order.
var generatorOps = []string{"parenthesis", "not", "and", "or", "xor", "nand", "nor"}

// DefaultWeights returns the full operator distribution including the
// derived operators Xor, Nand and Nor.
func DefaultWeights() OperatorWeights {
	return OperatorWeights{
		"parenthesis": 1,
		"not":         1,
		"and":         5,
		"or":          10,
		"xor":         2,
		"nand":        2,
		"nor":         2,
	}
}

// RestrictedWeights returns a distribution limited to And, Or, Not and
// parentheses.
func RestrictedWeights() OperatorWeights {
	return OperatorWeights{
		"parenthesis": 1,
		"not":         1,
		"and":         5,
		"or":          10,
	}
}

// Generator produces random expressions over the variables A, B, C and
// so on. It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	vars  []*Variable
	ops   []string
	accum []int
	total int
}

// NewGenerator creates a generator over varCount variables. varCount
// must lie in 1..26 so that every variable gets a single-letter name.
func NewGenerator(varCount int, weights OperatorWeights, rng *rand.Rand) (*Generator, error) {
	if varCount < 1 || varCount > 26 {
		return nil, fmt.Errorf("%w: variable count %d outside 1..26", ErrSemantic, varCount)
	}
	g := &Generator{rng: rng}
	for i := 0; i < varCount; i++ {
		g.vars = append(g.vars, &Variable{Name: string(rune('A' + i))})
	}
	for _, op := range generatorOps {
		if w := weights[op]; w > 0 {
			g.ops = append(g.ops, op)
			g.total += w
			g.accum = append(g.accum, g.total)
		}
	}
	if g.total == 0 {
		return nil, fmt.Errorf("%w: operator distribution is empty", ErrSemantic)
	}
	return g, nil
}

// Generate returns a random expression. It starts from a random term
// and extends it complexity times with an operation drawn from the
// weight distribution.
func (g *Generator) Generate(complexity int) Expression {
	expr := g.term()
	for i := 0; i < complexity; i++ {
		switch g.pick() {
		case "parenthesis":
			expr = &Paren{Inner: expr}
		case "not":
			expr = &Unary{Op: Not, Operand: expr}
		case "and":
			expr = &Binary{Op: And, LHS: expr, RHS: g.term()}
		case "or":
			expr = &Binary{Op: Or, LHS: expr, RHS: g.term()}
		case "xor":
			expr = &Binary{Op: Xor, LHS: expr, RHS: g.term()}
		case "nand":
			expr = &Binary{Op: Nand, LHS: expr, RHS: g.term()}
		case "nor":
			expr = &Binary{Op: Nor, LHS: expr, RHS: g.term()}
		}
	}
	return expr
}

// term builds a conjunction or disjunction of a random subset of the
// variables, each variable negated with probability one half. The
// subset size follows a normal distribution centered at three quarters
// of the variable count.
func (g *Generator) term() Expression {
	count := int(math.Round(math.Abs(0.75*float64(len(g.vars)) + 2*g.rng.NormFloat64())))
	if count < 1 {
		count = 1
	} else if count > len(g.vars) {
		count = len(g.vars)
	}

	terms := make([]Expression, 0, count)
	for _, idx := range g.rng.Perm(len(g.vars))[:count] {
		var v Expression = g.vars[idx]
		if g.coinflip() {
			v = &Unary{Op: Not, Operand: v}
		}
		terms = append(terms, v)
	}

	if g.coinflip() {
		return Join(Or, terms)
	}
	return Join(And, terms)
}

func (g *Generator) pick() string {
	n := g.rng.Intn(g.total)
	for i, bound := range g.accum {
		if n < bound {
			return g.ops[i]
		}
	}
	panic("boolexpr: weight accumulator out of range")
}

func (g *Generator) coinflip() bool {
	return g.rng.Intn(2) == 1
}
