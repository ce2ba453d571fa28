package equiv

import (
	"fmt"

	"github.com/go-air/gini/logic"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

// RowMismatch pinpoints a table row where an expression deviates from the
// stored output value.
type RowMismatch struct {
	Index      int
	Assignment map[string]int
	Got        int
	Want       truthtable.Entry
}

// Verify checks through a SAT query that the expression agrees with the
// named output column on every row carrying a fixed value; don't-care rows
// agree by definition. Expression variables must be table inputs, and every
// row must be defined.
func Verify(table *truthtable.Table, outputName string, expr boolexpr.Expression) (bool, *RowMismatch, error) {
	storage, err := table.Output(outputName)
	if err != nil {
		return false, nil, err
	}
	if storage.HasUndefined() {
		return false, nil, fmt.Errorf("%w: output %q has undefined rows", truthtable.ErrIncomplete, outputName)
	}
	domain := table.InputNames()
	known := make(map[string]bool, len(domain))
	for _, name := range domain {
		known[name] = true
	}
	for _, name := range boolexpr.Variables(expr) {
		if !known[name] {
			return false, nil, fmt.Errorf("%w: expression uses variable %q that is not a table input", boolexpr.ErrSemantic, name)
		}
	}

	reference, err := table.SumOfMinterms(outputName)
	if err != nil {
		return false, nil, err
	}
	dontCare, err := table.DontCareMinterms(outputName)
	if err != nil {
		return false, nil, err
	}

	circuit := logic.NewC()
	inputs := declareInputs(circuit, domain)
	disagreement := circuit.And(
		circuit.Xor(compile(circuit, expr, inputs), compile(circuit, reference, inputs)),
		compile(circuit, dontCare, inputs).Not(),
	)
	assignment, sat := solve(circuit, disagreement, domain, inputs)
	if !sat {
		return true, nil, nil
	}
	index := table.AssignmentIndex(assignment)
	return false, &RowMismatch{
		Index:      index,
		Assignment: assignment,
		Got:        expr.Eval(assignment),
		Want:       storage.Get(index),
	}, nil
}
