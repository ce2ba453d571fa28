package qmc

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

func TestImplicantMerge(t *testing.T) {
	a := unitImplicant(5)
	b := unitImplicant(7)
	merged := merge(a, b)
	if got := merged.Minterms(); len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Fatalf("Merged minterms = %v, want [5 7]", got)
	}
	if merged.value != 5 || merged.mask != 2 {
		t.Fatalf("Merged value/mask = %d/%d, want 5/2", merged.value, merged.mask)
	}
	if merged.Order() != 1 {
		t.Fatalf("Order = %d, want 1", merged.Order())
	}
	if merged.LiteralCount(3) != 2 {
		t.Fatalf("LiteralCount(3) = %d, want 2", merged.LiteralCount(3))
	}
}

func TestImplicantBinString(t *testing.T) {
	cases := []struct {
		imp      Implicant
		bitCount int
		want     string
	}{
		{unitImplicant(5), 3, "101"},
		{merge(unitImplicant(5), unitImplicant(7)), 3, "1-1"},
		{merge(unitImplicant(4), unitImplicant(12)), 4, "-100"},
		{unitImplicant(0), 2, "00"},
	}
	for _, tc := range cases {
		if got := tc.imp.BinString(tc.bitCount); got != tc.want {
			t.Fatalf("BinString(%d) of %s = %q, want %q", tc.bitCount, tc.imp, got, tc.want)
		}
	}
}

func TestImplicantTermPolarity(t *testing.T) {
	vars := []string{"A", "B", "C"}
	imp := merge(unitImplicant(5), unitImplicant(7))

	dnf := imp.Term(vars, DNF)
	if got := boolexpr.Text(dnf); got != "A C" {
		t.Fatalf("DNF term = %q, want %q", got, "A C")
	}
	cnf := imp.Term(vars, CNF)
	if got := boolexpr.Text(cnf); got != "!A + !C" {
		t.Fatalf("CNF term = %q, want %q", got, "!A + !C")
	}
}

func TestImplicantTermFullMaskIsConstant(t *testing.T) {
	imp := merge(
		merge(unitImplicant(0), unitImplicant(1)),
		merge(unitImplicant(2), unitImplicant(3)),
	)
	vars := []string{"A", "B"}
	if got := boolexpr.Text(imp.Term(vars, DNF)); got != "1" {
		t.Fatalf("DNF term of full-mask implicant = %q, want %q", got, "1")
	}
	if got := boolexpr.Text(imp.Term(vars, CNF)); got != "0" {
		t.Fatalf("CNF term of full-mask implicant = %q, want %q", got, "0")
	}
}

func TestImplicantSubsetAndCovers(t *testing.T) {
	small := merge(unitImplicant(4), unitImplicant(12))
	big := merge(
		merge(unitImplicant(4), unitImplicant(12)),
		merge(unitImplicant(5), unitImplicant(13)),
	)
	if !small.isSubsetOf(big) {
		t.Fatalf("%s should be a subset of %s", small, big)
	}
	if big.isSubsetOf(small) {
		t.Fatalf("%s should not be a subset of %s", big, small)
	}
	if !big.covers(13) {
		t.Fatalf("%s should cover minterm 13", big)
	}
	if big.covers(6) {
		t.Fatalf("%s should not cover minterm 6", big)
	}
}

func TestImplicantOrdering(t *testing.T) {
	larger := merge(unitImplicant(8), unitImplicant(9))
	smaller := unitImplicant(0)
	if !larger.less(smaller) {
		t.Fatalf("larger implicants must sort before smaller ones")
	}
	first := merge(unitImplicant(0), unitImplicant(1))
	second := merge(unitImplicant(2), unitImplicant(6))
	if !first.less(second) || second.less(first) {
		t.Fatalf("equal-size implicants must sort by covered rows")
	}
}
