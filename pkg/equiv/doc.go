// Package equiv proves or refutes expression equivalence with a SAT solver.
//
// Expressions compile into and-inverter circuits (gini's logic.C); an
// equivalence query becomes the unsatisfiability of the XOR miter over both
// circuits. Unlike exhaustive truth table comparison this scales past a
// handful of variables, and a satisfying model doubles as a concrete
// counterexample when the expressions differ.
package equiv
