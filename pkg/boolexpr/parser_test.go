package boolexpr

import (
	"errors"
	"testing"
)

func TestParseStructure(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"A", "A"},
		{"0", "0"},
		{"1", "1"},
		{"!A", "[!A]"},
		{"~A", "[!A]"},
		{"-A", "[!A]"},
		{"!!A", "[![!A]]"},
		{"A B", "[A * B]"},
		{"A & B", "[A * B]"},
		{"A * B", "[A * B]"},
		{"A + B", "[A + B]"},
		{"A | B", "[A + B]"},
		{"A ^ B", "[A ^ B]"},
		{"A @ B", "[A @ B]"},
		{"A % B", "[A % B]"},
		{"A B C", "[[A * B] * C]"},
		{"A + B C", "[A + [B * C]]"},
		{"A B + C", "[[A * B] + C]"},
		{"!A B", "[[!A] * B]"},
		{"!(A + B)", "[!([A + B])]"},
		{"(A + B) C", "[([A + B]) * C]"},
		{"A + B ^ C % D", "[[[A + B] ^ C] % D]"},
		{"A @ B @ C", "[[A @ B] @ C]"},
		{"A @ (B @ C)", "[A @ ([B @ C])]"},
		{"in_1 out2", "[in_1 * out2]"},
		{"A0 A1", "[A0 * A1]"},
	}
	for _, tc := range cases {
		expr := mustParse(t, tc.input)
		if got := expr.String(); got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	compact := mustParse(t, "A B+!C")
	spaced := mustParse(t, "  A   B +\t! C\n")
	if !compact.Same(spaced) {
		t.Fatalf("Parse differs under whitespace: %s vs %s", compact, spaced)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"A +",
		"+ A",
		"(A",
		"A)",
		"()",
		"A $ B",
		"A !",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error %v is not ErrSyntax", input, err)
		}
	}
}

func TestParseDefault(t *testing.T) {
	expr, err := ParseDefault("", "0")
	if err != nil {
		t.Fatalf("ParseDefault of empty input failed: %v", err)
	}
	if !expr.Same(c(0)) {
		t.Fatalf("ParseDefault(\"\", \"0\") = %s, want 0", expr)
	}

	expr, err = ParseDefault("A + B", "0")
	if err != nil {
		t.Fatalf("ParseDefault failed: %v", err)
	}
	if expr.String() != "[A + B]" {
		t.Fatalf("ParseDefault(\"A + B\") = %s, want [A + B]", expr)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"A B + C",
		"(A + B) (C + D)",
		"!A !B + A B",
		"A @ (B @ C)",
		"A % B % C",
		"A ^ B ^ C",
		"!(A B) + 0",
		"A (B + !C) + 1",
	}
	for _, input := range inputs {
		expr := mustParse(t, input)
		text := Text(expr)
		again := mustParse(t, text)
		equal, err := Equal(expr, again)
		if err != nil {
			t.Fatalf("Equal after round trip of %q failed: %v", input, err)
		}
		if !equal {
			t.Errorf("round trip of %q changed semantics: %q", input, text)
		}
	}
}
