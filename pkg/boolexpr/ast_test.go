package boolexpr

import (
	"testing"
)

func v(name string) Expression { return &Variable{Name: name} }

func c(value int) Expression { return &Constant{Value: value} }

func not(e Expression) Expression { return &Unary{Op: Not, Operand: e} }

func bin(op Operator, lhs, rhs Expression) Expression {
	return &Binary{Op: op, LHS: lhs, RHS: rhs}
}

func mustParse(t *testing.T, text string) Expression {
	t.Helper()
	expr, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return expr
}

func TestEvalOperators(t *testing.T) {
	cases := []struct {
		expr string
		a, b int
		want int
	}{
		{"A B", 0, 0, 0},
		{"A B", 0, 1, 0},
		{"A B", 1, 0, 0},
		{"A B", 1, 1, 1},
		{"A + B", 0, 0, 0},
		{"A + B", 0, 1, 1},
		{"A + B", 1, 1, 1},
		{"A ^ B", 0, 0, 0},
		{"A ^ B", 0, 1, 1},
		{"A ^ B", 1, 1, 0},
		{"A @ B", 0, 0, 1},
		{"A @ B", 1, 0, 1},
		{"A @ B", 1, 1, 0},
		{"A % B", 0, 0, 1},
		{"A % B", 0, 1, 0},
		{"A % B", 1, 1, 0},
		{"!A", 0, 0, 1},
		{"!A", 1, 0, 0},
		{"(A + B) !B", 1, 0, 1},
		{"(A + B) !B", 1, 1, 0},
		{"A 1", 1, 0, 1},
		{"A + 0", 0, 0, 0},
	}
	for _, tc := range cases {
		expr := mustParse(t, tc.expr)
		got := expr.Eval(map[string]int{"A": tc.a, "B": tc.b})
		if got != tc.want {
			t.Errorf("Eval(%q, A=%d B=%d) = %d, want %d", tc.expr, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestVariablesSortedAndDeduplicated(t *testing.T) {
	expr := mustParse(t, "B A + A !C + B")
	got := Variables(expr)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Variables() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Variables() = %v, want %v", got, want)
		}
	}
}

func TestVariablesConstantOnly(t *testing.T) {
	if got := Variables(mustParse(t, "1 + 0")); len(got) != 0 {
		t.Fatalf("Variables() = %v, want empty", got)
	}
}

func TestIndexAssignmentMSBFirst(t *testing.T) {
	names := []string{"A", "B", "C"}
	assignment := IndexAssignment(names, 5)
	if assignment["A"] != 1 || assignment["B"] != 0 || assignment["C"] != 1 {
		t.Fatalf("IndexAssignment(5) = %v, want A=1 B=0 C=1", assignment)
	}
	for index := 0; index < 8; index++ {
		if got := AssignmentIndex(names, IndexAssignment(names, index)); got != index {
			t.Errorf("AssignmentIndex(IndexAssignment(%d)) = %d", index, got)
		}
	}
}

func TestAssignmentIndexMissingNamesAreZero(t *testing.T) {
	if got := AssignmentIndex([]string{"A", "B"}, map[string]int{"A": 1}); got != 2 {
		t.Fatalf("AssignmentIndex(A=1) = %d, want 2", got)
	}
}

func TestMinterms(t *testing.T) {
	expr := mustParse(t, "A B")
	minterms := Minterms(expr)
	if len(minterms) != 1 {
		t.Fatalf("Minterms(A B) has %d entries, want 1", len(minterms))
	}
	if minterms[0]["A"] != 1 || minterms[0]["B"] != 1 {
		t.Fatalf("Minterms(A B) = %v, want A=1 B=1", minterms[0])
	}
	if maxterms := Maxterms(expr); len(maxterms) != 3 {
		t.Fatalf("Maxterms(A B) has %d entries, want 3", len(maxterms))
	}
}

func TestJoinLeftAssociative(t *testing.T) {
	expr := Join(Or, []Expression{v("A"), v("B"), v("C")})
	if got := expr.String(); got != "[[A + B] + C]" {
		t.Fatalf("Join(Or, A B C) = %s, want [[A + B] + C]", got)
	}
	single := Join(And, []Expression{v("A")})
	if !single.Same(v("A")) {
		t.Fatalf("Join of one term = %s, want A", single)
	}
}

func TestSumAndProductTerms(t *testing.T) {
	if terms := SumTerms(mustParse(t, "A B + C + D E")); len(terms) != 3 {
		t.Fatalf("SumTerms returned %d terms, want 3", len(terms))
	}
	if terms := SumTerms(mustParse(t, "A B")); len(terms) != 1 {
		t.Fatalf("SumTerms of a product returned %d terms, want 1", len(terms))
	}
	if terms := ProductTerms(mustParse(t, "A B C")); len(terms) != 3 {
		t.Fatalf("ProductTerms returned %d terms, want 3", len(terms))
	}
}

func TestSameIsStructural(t *testing.T) {
	cases := []struct {
		lhs, rhs string
		want     bool
	}{
		{"A B + C", "A B + C", true},
		{"A B + C", "A B + D", false},
		{"A + B", "B + A", false},
		{"(A)", "A", false},
		{"!A", "~A", true},
		{"A & B", "A B", true},
	}
	for _, tc := range cases {
		lhs := mustParse(t, tc.lhs)
		rhs := mustParse(t, tc.rhs)
		if got := lhs.Same(rhs); got != tc.want {
			t.Errorf("Same(%q, %q) = %v, want %v", tc.lhs, tc.rhs, got, tc.want)
		}
	}
}

func TestWalkPreOrder(t *testing.T) {
	expr := bin(Or, bin(And, v("A"), v("B")), not(v("C")))
	var kinds []string
	Walk(expr, func(node Expression) {
		switch node.(type) {
		case *Variable:
			kinds = append(kinds, "var")
		case *Binary:
			kinds = append(kinds, "bin")
		case *Unary:
			kinds = append(kinds, "not")
		default:
			kinds = append(kinds, "other")
		}
	})
	want := []string{"bin", "bin", "var", "var", "not", "var"}
	if len(kinds) != len(want) {
		t.Fatalf("Walk visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("Walk order = %v, want %v", kinds, want)
		}
	}
}
