package truthtable

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

func orTable(t *testing.T) *Table {
	t.Helper()
	expr, err := boolexpr.Parse("A + B")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	table, err := FromExpression("Y", expr, nil)
	if err != nil {
		t.Fatalf("FromExpression failed: %v", err)
	}
	return table
}

func render(t *testing.T, table *Table, format string) string {
	t.Helper()
	var b strings.Builder
	if err := table.Print(&b, format); err != nil {
		t.Fatalf("Print(%s) failed: %v", format, err)
	}
	return b.String()
}

func TestPrintText(t *testing.T) {
	want := "A\tB\t>Y\n" +
		"0\t0\t0\n" +
		"0\t1\t1\n" +
		"1\t0\t1\n" +
		"1\t1\t1\n"
	if got := render(t, orTable(t), "text"); got != want {
		t.Fatalf("text output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintPretty(t *testing.T) {
	want := strings.Join([]string{
		"┌───┬───┬───┐",
		"│ A │ B │ Y │",
		"├───┼───┼───┤",
		"│ 0 │ 0 │ 0 │",
		"│ 0 │ 1 │ 1 │",
		"│ 1 │ 0 │ 1 │",
		"│ 1 │ 1 │ 1 │",
		"└───┴───┴───┘",
		"",
	}, "\n")
	if got := render(t, orTable(t), "pretty"); got != want {
		t.Fatalf("pretty output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintPrettyWidensForUndefined(t *testing.T) {
	table, err := Parse(strings.NewReader(":A:Y:c"), "forbidden", quietLogger())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := render(t, table, "pretty")
	if !strings.Contains(got, "N/A") {
		t.Fatalf("pretty output lacks N/A cell:\n%s", got)
	}
	if !strings.Contains(got, "│ Y   │") {
		t.Fatalf("header not padded to the N/A width:\n%s", got)
	}
}

func TestPrintTex(t *testing.T) {
	want := "\\begin{tabular}{ccccc}\n" +
		"\tA & 0 & 0 & 1 & 1\\\\%\n" +
		"\tB & 0 & 1 & 0 & 1\\\\%\n" +
		"\t\\hline\n" +
		"\tY & 0 & 1 & 1 & 1\\\\%\n" +
		"\\end{tabular}\n"
	if got := render(t, orTable(t), "tex"); got != want {
		t.Fatalf("tex output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintCompact(t *testing.T) {
	if got := render(t, orTable(t), "compact"); got != ":A,B:Y:54\n" {
		t.Fatalf("compact output = %q, want %q", got, ":A,B:Y:54\n")
	}
}

func TestPrintLogisim(t *testing.T) {
	want := "# Logisim-compatible truth table\n" +
		"\n" +
		"A B | Y\n" +
		"~~~~~~~\n" +
		"0 0 | 0\n" +
		"0 1 | 1\n" +
		"1 0 | 1\n" +
		"1 1 | 1\n"
	if got := render(t, orTable(t), "logisim"); got != want {
		t.Fatalf("logisim output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintLogisimDontCare(t *testing.T) {
	table, err := Parse(strings.NewReader(":A:Y:9"), "forbidden", quietLogger())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := render(t, table, "logisim")
	if !strings.Contains(got, "0 | 1") || !strings.Contains(got, "1 | -") {
		t.Fatalf("logisim output does not render the don't care as -:\n%s", got)
	}
}

func TestPrintLogisimRejectsUndefined(t *testing.T) {
	table, err := Parse(strings.NewReader(":A:Y:c"), "forbidden", quietLogger())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var b strings.Builder
	err = table.Print(&b, "logisim")
	if err == nil {
		t.Fatal("logisim print of undefined entries succeeded")
	}
	if !errors.Is(err, ErrSemantic) {
		t.Fatalf("error %v is not ErrSemantic", err)
	}
}

func TestPrintUnknownFormat(t *testing.T) {
	var b strings.Builder
	if err := orTable(t).Print(&b, "csv"); err == nil {
		t.Fatal("Print with unknown format succeeded")
	}
}

func TestCompactRoundTrip(t *testing.T) {
	table, err := Parse(strings.NewReader(":A,B,C:Y,Z:1b2d,8ea1"), "forbidden", quietLogger())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := table.Compact(); got != ":A,B,C:Y,Z:1b2d,8ea1" {
		t.Fatalf("Compact() = %q, want the parsed input back", got)
	}
}
