// Package qmc minimizes truth table columns into two-level boolean
// expressions using the Quine-McCluskey algorithm with Petrick's method.
//
// A Minimizer reads one output column of a truthtable.Table and produces a
// Solution: the set of essential prime implicants plus every minimum-cost
// choice of additional prime implicants covering the remaining minterms.
// Don't-care rows are used to merge implicants but never need to be covered.
// Both disjunctive (sum of products) and conjunctive (product of sums)
// normal forms are supported.
package qmc
