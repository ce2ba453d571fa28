package truthtable

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

// Satisfaction is the outcome of checking an expression against one
// output column. Eval holds the expression value per row; Sat holds 1
// where the row is satisfied, meaning the table entry is don't care or
// matches the evaluation.
type Satisfaction struct {
	Satisfied bool
	Eval      *Storage
	Sat       *Storage
}

// CheckSatisfies evaluates the expression on every row and compares it
// against the named output column. The expression may only use input
// variables of the table; a row whose entry is still Undefined is never
// satisfied.
func (t *Table) CheckSatisfies(expr boolexpr.Expression, outputName string) (*Satisfaction, error) {
	storage, err := t.Output(outputName)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(t.inputNames))
	for _, name := range t.inputNames {
		known[name] = true
	}
	for _, name := range boolexpr.Variables(expr) {
		if !known[name] {
			return nil, fmt.Errorf("%w: expression uses variable %q that is not a table input", ErrSemantic, name)
		}
	}

	result := &Satisfaction{
		Satisfied: true,
		Eval:      NewStorage(len(t.inputNames)),
		Sat:       NewStorage(len(t.inputNames)),
	}
	for index := 0; index < t.Rows(); index++ {
		value := expr.Eval(t.IndexAssignment(index))
		result.Eval.Set(index, Entry(value))

		expected := storage.Get(index)
		satisfied := expected == DontCare ||
			(expected == High && value == 1) ||
			(expected == Low && value == 0)
		if satisfied {
			result.Sat.Set(index, High)
		} else {
			result.Sat.Set(index, Low)
			result.Satisfied = false
		}
	}
	return result, nil
}
