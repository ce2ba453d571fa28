package truthtable

import "fmt"

// Entry is one cell of a truth table.
type Entry uint8

const (
	Low       Entry = 0
	High      Entry = 1
	DontCare  Entry = 2
	Undefined Entry = 3
)

// String renders the cell the way the text and TeX printers show it.
func (e Entry) String() string {
	switch e {
	case Low:
		return "0"
	case High:
		return "1"
	case DontCare:
		return "*"
	case Undefined:
		return "N/A"
	}
	panic(fmt.Sprintf("truthtable: entry value %d", uint8(e)))
}

// ParseEntry reads a table cell token. Undefined cannot be written in
// table text; it only arises from unset cells.
func ParseEntry(token string) (Entry, error) {
	switch token {
	case "0":
		return Low, nil
	case "1":
		return High, nil
	case "*":
		return DontCare, nil
	}
	return 0, fmt.Errorf("%w: invalid table entry %q", ErrSyntax, token)
}
