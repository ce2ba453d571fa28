package truthtable

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

// FromExpression evaluates the expression over all combinations of its
// variables and stores the results as a single-output table. Rows where
// the optional don't-care expression evaluates to 1 are stored as
// DontCare regardless of the expression value. The don't-care
// expression may only use variables of the main expression.
func FromExpression(outputName string, expr, dcExpr boolexpr.Expression) (*Table, error) {
	names := boolexpr.Variables(expr)
	if len(names) > MaxInputVariables {
		return nil, fmt.Errorf("%w: %d input variables exceed the limit of %d", ErrSemantic, len(names), MaxInputVariables)
	}
	if dcExpr != nil {
		known := make(map[string]bool, len(names))
		for _, name := range names {
			known[name] = true
		}
		for _, name := range boolexpr.Variables(dcExpr) {
			if !known[name] {
				return nil, fmt.Errorf("%w: don't-care expression uses variable %q absent from the expression", ErrSemantic, name)
			}
		}
	}

	storage := NewStorage(len(names))
	for index := 0; index < storage.Len(); index++ {
		assignment := boolexpr.IndexAssignment(names, index)
		entry := Low
		if expr.Eval(assignment) == 1 {
			entry = High
		}
		if dcExpr != nil && dcExpr.Eval(assignment) != 0 {
			entry = DontCare
		}
		storage.Set(index, entry)
	}
	return New(names, []string{outputName}, []*Storage{storage})
}

// SumOfMinterms builds the canonical disjunctive form of an output: one
// And term per row holding 1, each input variable plain where its bit
// is 1 and negated where it is 0. A column without any 1 yields the
// constant 0.
func (t *Table) SumOfMinterms(outputName string) (boolexpr.Expression, error) {
	return t.sumOverValue(outputName, High)
}

// DontCareMinterms builds the Or of the minterms of all don't-care
// rows, the constant 0 when there are none.
func (t *Table) DontCareMinterms(outputName string) (boolexpr.Expression, error) {
	return t.sumOverValue(outputName, DontCare)
}

func (t *Table) sumOverValue(outputName string, value Entry) (boolexpr.Expression, error) {
	storage, err := t.Output(outputName)
	if err != nil {
		return nil, err
	}
	var terms []boolexpr.Expression
	for _, index := range storage.IndicesWithValue(value) {
		terms = append(terms, t.minterm(index))
	}
	if len(terms) == 0 {
		return &boolexpr.Constant{Value: 0}, nil
	}
	return boolexpr.Join(boolexpr.Or, terms), nil
}

// ProductOfMaxterms builds the canonical conjunctive form of an output:
// one Or term per row holding 0, each input variable negated where its
// bit is 1 and plain where it is 0. A column without any 0 yields the
// constant 1.
func (t *Table) ProductOfMaxterms(outputName string) (boolexpr.Expression, error) {
	storage, err := t.Output(outputName)
	if err != nil {
		return nil, err
	}
	var terms []boolexpr.Expression
	for _, index := range storage.IndicesWithValue(Low) {
		terms = append(terms, t.maxterm(index))
	}
	if len(terms) == 0 {
		return &boolexpr.Constant{Value: 1}, nil
	}
	return boolexpr.Join(boolexpr.And, terms), nil
}

func (t *Table) minterm(index int) boolexpr.Expression {
	if len(t.inputNames) == 0 {
		// empty product
		return &boolexpr.Constant{Value: 1}
	}
	literals := make([]boolexpr.Expression, len(t.inputNames))
	for pos, name := range t.inputNames {
		var literal boolexpr.Expression = &boolexpr.Variable{Name: name}
		if (index>>uint(len(t.inputNames)-1-pos))&1 == 0 {
			literal = &boolexpr.Unary{Op: boolexpr.Not, Operand: literal}
		}
		literals[pos] = literal
	}
	return boolexpr.Join(boolexpr.And, literals)
}

func (t *Table) maxterm(index int) boolexpr.Expression {
	if len(t.inputNames) == 0 {
		// empty sum
		return &boolexpr.Constant{Value: 0}
	}
	literals := make([]boolexpr.Expression, len(t.inputNames))
	for pos, name := range t.inputNames {
		var literal boolexpr.Expression = &boolexpr.Variable{Name: name}
		if (index>>uint(len(t.inputNames)-1-pos))&1 == 1 {
			literal = &boolexpr.Unary{Op: boolexpr.Not, Operand: literal}
		}
		literals[pos] = literal
	}
	return boolexpr.Join(boolexpr.Or, literals)
}
