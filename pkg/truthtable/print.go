package truthtable

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Print renders the table in one of the supported formats: "text",
// "pretty", "tex", "compact" or "logisim".
func (t *Table) Print(w io.Writer, format string) error {
	switch format {
	case "text":
		return t.printText(w)
	case "pretty":
		return t.printPretty(w)
	case "tex":
		return t.printTex(w)
	case "compact":
		_, err := fmt.Fprintln(w, t.Compact())
		return err
	case "logisim":
		return t.printLogisim(w)
	}
	return fmt.Errorf("unknown table format %q", format)
}

// printText writes one tab-separated line per row; output columns carry
// a ">" prefix in the heading.
func (t *Table) printText(w io.Writer) error {
	heading := make([]string, 0, len(t.inputNames)+len(t.outputNames))
	heading = append(heading, t.inputNames...)
	for _, name := range t.outputNames {
		heading = append(heading, ">"+name)
	}
	if _, err := fmt.Fprintln(w, strings.Join(heading, "\t")); err != nil {
		return err
	}
	for index := 0; index < t.Rows(); index++ {
		row := make([]string, 0, len(heading))
		for _, bit := range t.IndexBits(index) {
			row = append(row, fmt.Sprintf("%d", bit))
		}
		for _, entry := range t.OutputsAt(index) {
			row = append(row, entry.String())
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// printPretty draws the table as a box grid.
func (t *Table) printPretty(w io.Writer) error {
	names := make([]string, 0, len(t.inputNames)+len(t.outputNames))
	names = append(names, t.inputNames...)
	names = append(names, t.outputNames...)

	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = utf8.RuneCountInString(name)
	}
	rows := make([][]string, t.Rows())
	for index := 0; index < t.Rows(); index++ {
		row := make([]string, 0, len(names))
		for _, bit := range t.IndexBits(index) {
			row = append(row, fmt.Sprintf("%d", bit))
		}
		for _, entry := range t.OutputsAt(index) {
			row = append(row, entry.String())
		}
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
		rows[index] = row
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = strings.Repeat("─", width+2)
		}
		return left + strings.Join(parts, mid) + right
	}
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf(" %-*s ", widths[i]+len(cell)-utf8.RuneCountInString(cell), cell)
		}
		return "│" + strings.Join(parts, "│") + "│"
	}

	out := []string{rule("┌", "┬", "┐"), line(names), rule("├", "┼", "┤")}
	for _, row := range rows {
		out = append(out, line(row))
	}
	out = append(out, rule("└", "┴", "┘"))
	for _, s := range out {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// printTex writes a transposed tabular: one row per input variable with
// its bit pattern across all table rows, a rule, then one row per
// output column.
func (t *Table) printTex(w io.Writer) error {
	colcnt := t.Rows() + 1
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s}\n", strings.Repeat("c", colcnt)); err != nil {
		return err
	}
	for pos, name := range t.inputNames {
		bit := len(t.inputNames) - 1 - pos
		line := make([]string, 0, colcnt)
		line = append(line, name)
		for index := 0; index < t.Rows(); index++ {
			line = append(line, fmt.Sprintf("%d", (index>>uint(bit))&1))
		}
		if _, err := fmt.Fprintf(w, "\t%s\\\\%%\n", strings.Join(line, " & ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\t\\hline"); err != nil {
		return err
	}
	for pos, name := range t.outputNames {
		line := make([]string, 0, colcnt)
		line = append(line, name)
		storage := t.storages[pos]
		for index := 0; index < storage.Len(); index++ {
			line = append(line, storage.Get(index).String())
		}
		if _, err := fmt.Fprintf(w, "\t%s\\\\%%\n", strings.Join(line, " & ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\\end{tabular}")
	return err
}

// Compact returns the single-line compact notation of the table.
func (t *Table) Compact() string {
	hexes := make([]string, len(t.storages))
	for i, storage := range t.storages {
		hexes[i] = storage.Hex()
	}
	return ":" + strings.Join(t.inputNames, ",") +
		":" + strings.Join(t.outputNames, ",") +
		":" + strings.Join(hexes, ",")
}

// printLogisim writes a truth table Logisim can import. Logisim has no
// notion of an undefined cell, so those tables are rejected.
func (t *Table) printLogisim(w io.Writer) error {
	chars := map[Entry]string{Low: "0", High: "1", DontCare: "-"}
	for _, storage := range t.storages {
		if storage.HasUndefined() {
			return fmt.Errorf("%w: table contains undefined entries", ErrSemantic)
		}
	}
	if _, err := fmt.Fprintln(w, "# Logisim-compatible truth table"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	header := make([]string, 0, len(t.inputNames)+len(t.outputNames)+1)
	header = append(header, t.inputNames...)
	header = append(header, "|")
	header = append(header, t.outputNames...)
	if _, err := fmt.Fprintln(w, strings.Join(header, " ")); err != nil {
		return err
	}
	ruleWidth := 2*(len(t.inputNames)+len(t.outputNames)) + 1
	if _, err := fmt.Fprintln(w, strings.Repeat("~", ruleWidth)); err != nil {
		return err
	}
	for index := 0; index < t.Rows(); index++ {
		row := make([]string, 0, len(header))
		for _, bit := range t.IndexBits(index) {
			row = append(row, fmt.Sprintf("%d", bit))
		}
		row = append(row, "|")
		for _, entry := range t.OutputsAt(index) {
			row = append(row, chars[entry])
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
