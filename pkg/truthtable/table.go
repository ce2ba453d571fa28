package truthtable

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a truth table over named input and output variables. Row
// indices weight the first input variable highest.
type Table struct {
	inputNames  []string
	outputNames []string
	storages    []*Storage
	named       map[string]*Storage
}

// New assembles a table from parallel output name and storage slices.
// Mismatched lengths or a storage over the wrong variable count are
// caller bugs and panic; duplicate names across inputs and outputs are
// rejected with an error.
func New(inputNames, outputNames []string, storages []*Storage) (*Table, error) {
	if len(outputNames) != len(storages) {
		panic(fmt.Sprintf("truthtable: %d output names for %d storages", len(outputNames), len(storages)))
	}
	for _, storage := range storages {
		if storage.VariableCount() != len(inputNames) {
			panic(fmt.Sprintf("truthtable: storage spans %d variables, table has %d inputs", storage.VariableCount(), len(inputNames)))
		}
	}
	if err := checkDistinct(inputNames, outputNames); err != nil {
		return nil, err
	}

	t := &Table{
		inputNames:  inputNames,
		outputNames: outputNames,
		storages:    storages,
		named:       make(map[string]*Storage, len(storages)),
	}
	for i, name := range outputNames {
		t.named[name] = storages[i]
	}
	return t, nil
}

func checkDistinct(inputNames, outputNames []string) error {
	seen := make(map[string]int)
	for _, name := range inputNames {
		if name == "" {
			return fmt.Errorf("%w: empty variable name", ErrSyntax)
		}
		seen[name]++
	}
	for _, name := range outputNames {
		if name == "" {
			return fmt.Errorf("%w: empty variable name", ErrSyntax)
		}
		seen[name]++
	}
	var duplicates []string
	for name, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, name)
		}
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		return fmt.Errorf("%w: duplicate variable name(s): %s", ErrSyntax, strings.Join(duplicates, ", "))
	}
	return nil
}

// InputNames returns the input variables in column order.
func (t *Table) InputNames() []string { return t.inputNames }

// OutputNames returns the output variables in column order.
func (t *Table) OutputNames() []string { return t.outputNames }

// InputCount returns the number of input variables.
func (t *Table) InputCount() int { return len(t.inputNames) }

// OutputCount returns the number of output variables.
func (t *Table) OutputCount() int { return len(t.outputNames) }

// Rows returns the number of table rows, 2^InputCount.
func (t *Table) Rows() int { return 1 << uint(len(t.inputNames)) }

// Output returns the column of the named output variable.
func (t *Table) Output(name string) (*Storage, error) {
	storage, ok := t.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: no output variable %q in truth table, only: %s",
			ErrSemantic, name, strings.Join(t.outputNames, ", "))
	}
	return storage, nil
}

// AddOutput appends a further output column. The storage must span the
// table's input variables.
func (t *Table) AddOutput(name string, storage *Storage) error {
	if storage.VariableCount() != len(t.inputNames) {
		panic(fmt.Sprintf("truthtable: storage spans %d variables, table has %d inputs", storage.VariableCount(), len(t.inputNames)))
	}
	if name == "" {
		return fmt.Errorf("%w: empty variable name", ErrSyntax)
	}
	if _, exists := t.named[name]; exists {
		return fmt.Errorf("%w: output variable %q already present", ErrSemantic, name)
	}
	for _, input := range t.inputNames {
		if input == name {
			return fmt.Errorf("%w: variable %q already present as input", ErrSemantic, name)
		}
	}
	t.outputNames = append(t.outputNames, name)
	t.storages = append(t.storages, storage)
	t.named[name] = storage
	return nil
}

// IndexBits expands a row index into input bits, first variable first.
func (t *Table) IndexBits(index int) []int {
	bits := make([]int, len(t.inputNames))
	for pos := range bits {
		bits[pos] = (index >> uint(len(bits)-1-pos)) & 1
	}
	return bits
}

// IndexAssignment expands a row index into a variable assignment.
func (t *Table) IndexAssignment(index int) map[string]int {
	assignment := make(map[string]int, len(t.inputNames))
	for pos, name := range t.inputNames {
		assignment[name] = (index >> uint(len(t.inputNames)-1-pos)) & 1
	}
	return assignment
}

// AssignmentIndex folds an assignment back into a row index. Input
// variables absent from the assignment count as 0; foreign keys are
// ignored.
func (t *Table) AssignmentIndex(assignment map[string]int) int {
	index := 0
	for pos, name := range t.inputNames {
		if assignment[name] == 1 {
			index |= 1 << uint(len(t.inputNames)-1-pos)
		}
	}
	return index
}

// At returns the entry of the named output under the given assignment.
func (t *Table) At(assignment map[string]int, outputName string) (Entry, error) {
	storage, err := t.Output(outputName)
	if err != nil {
		return 0, err
	}
	return storage.Get(t.AssignmentIndex(assignment)), nil
}

// OutputsAt returns one entry per output column for the given row.
func (t *Table) OutputsAt(index int) []Entry {
	entries := make([]Entry, len(t.storages))
	for i, storage := range t.storages {
		entries[i] = storage.Get(index)
	}
	return entries
}
