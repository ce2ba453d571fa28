package qmc

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

// Form selects the normal form a minimization run produces.
type Form int

const (
	// DNF yields a sum of products covering the rows where the output is
	// high.
	DNF Form = iota
	// CNF yields a product of sums excluding the rows where the output is
	// low.
	CNF
)

func (f Form) String() string {
	switch f {
	case DNF:
		return "dnf"
	case CNF:
		return "cnf"
	}
	panic(fmt.Sprintf("qmc: unhandled form %d", int(f)))
}

// Solution describes every minimal two-level expression for one output
// column. The essential implicants are shared by all of them; each entry of
// the additional selections completes the cover in an equally cheap way.
// A constant output column yields a single constant expression and no
// implicants.
type Solution struct {
	form       Form
	variables  []string
	required   []Implicant
	additional [][]Implicant
	constant   boolexpr.Expression
}

// Form reports which normal form the solution is expressed in.
func (s *Solution) Form() Form { return s.form }

// Variables returns the input variable names, most significant first.
func (s *Solution) Variables() []string { return s.variables }

// Required returns the essential prime implicants present in every
// expression of the solution.
func (s *Solution) Required() []Implicant {
	out := make([]Implicant, len(s.required))
	copy(out, s.required)
	return out
}

// Count reports how many distinct minimal expressions the solution holds.
func (s *Solution) Count() int { return len(s.additional) }

// Expression builds the i-th minimal expression. Implicants are emitted
// largest first so shorter terms come before longer ones.
func (s *Solution) Expression(i int) boolexpr.Expression {
	if i < 0 || i >= s.Count() {
		panic(fmt.Sprintf("qmc: solution index %d out of range [0, %d)", i, s.Count()))
	}
	if s.constant != nil {
		return s.constant
	}
	implicants := make([]Implicant, 0, len(s.required)+len(s.additional[i]))
	implicants = append(implicants, s.required...)
	implicants = append(implicants, s.additional[i]...)
	sortImplicants(implicants)
	terms := make([]boolexpr.Expression, len(implicants))
	for idx, imp := range implicants {
		terms[idx] = imp.Term(s.variables, s.form)
	}
	if s.form == DNF {
		return boolexpr.Join(boolexpr.Or, terms)
	}
	return boolexpr.Join(boolexpr.And, terms)
}

// Any returns the first minimal expression. Every solution holds at least
// one.
func (s *Solution) Any() boolexpr.Expression {
	return s.Expression(0)
}
