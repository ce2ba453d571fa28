package truthtable

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// fillPolicy resolves the undefined-value policy name. "forbidden"
// requests strict parsing; "0", "1" and "*" fill unset rows.
func fillPolicy(policy string) (Entry, bool, error) {
	switch policy {
	case "forbidden":
		return 0, false, nil
	case "0":
		return Low, true, nil
	case "1":
		return High, true, nil
	case "*":
		return DontCare, true, nil
	}
	return 0, false, fmt.Errorf("%w: unknown undefined-value policy %q", ErrSemantic, policy)
}

// Parse reads a truth table. A first line starting with a colon selects
// the compact notation; otherwise the first line is a whitespace
// separated header naming input columns and, with a ">" prefix, output
// columns, and every further line is one table row. Rows may appear in
// any order; a row given twice logs a warning and the last value wins.
//
// With the "forbidden" policy every input pattern must be covered or
// the parse fails with ErrIncomplete; the policies "0", "1" and "*"
// fill unset rows instead. The compact notation carries every row by
// construction and ignores the policy.
func Parse(r io.Reader, policy string, logger *logrus.Logger) (*Table, error) {
	fill, doFill, err := fillPolicy(policy)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var (
		inputNames  []string
		outputNames []string
		inputCols   []int
		outputCols  []int
		storages    []*Storage
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.Trim(scanner.Text(), "\r\n\t ")

		if lineno == 1 {
			if strings.HasPrefix(line, ":") {
				return ParseCompact(line)
			}
			for col, field := range strings.Fields(line) {
				if name, isOutput := strings.CutPrefix(field, ">"); isOutput {
					outputNames = append(outputNames, name)
					outputCols = append(outputCols, col)
				} else {
					inputNames = append(inputNames, field)
					inputCols = append(inputCols, col)
				}
			}
			if len(inputNames) == 0 {
				return nil, fmt.Errorf("%w: line %d: no input variables", ErrSyntax, lineno)
			}
			if len(outputNames) == 0 {
				return nil, fmt.Errorf("%w: line %d: no output variables", ErrSyntax, lineno)
			}
			if err := checkDistinct(inputNames, outputNames); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if len(inputNames) > MaxInputVariables {
				return nil, fmt.Errorf("%w: %d input variables exceed the limit of %d", ErrSemantic, len(inputNames), MaxInputVariables)
			}
			storages = make([]*Storage, len(outputNames))
			for i := range storages {
				storages[i] = NewStorage(len(inputNames))
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != len(inputNames)+len(outputNames) {
			return nil, fmt.Errorf("%w: line %d: expected %d tokens, saw %d",
				ErrSyntax, lineno, len(inputNames)+len(outputNames), len(fields))
		}

		index := 0
		for pos, col := range inputCols {
			switch fields[col] {
			case "0":
			case "1":
				index |= 1 << uint(len(inputCols)-1-pos)
			default:
				return nil, fmt.Errorf("%w: line %d: invalid input bit %q", ErrSyntax, lineno, fields[col])
			}
		}
		for pos, col := range outputCols {
			entry, err := ParseEntry(fields[col])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if storages[pos].Get(index) != Undefined {
				logger.Warnf("value overwritten when parsing truth table in line %d", lineno)
			}
			storages[pos].Set(index, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading truth table: %w", err)
	}
	if storages == nil {
		return nil, fmt.Errorf("%w: unable to read table data from source", ErrSyntax)
	}

	undefined := false
	for _, storage := range storages {
		if storage.HasUndefined() {
			undefined = true
			break
		}
	}
	if undefined {
		if !doFill {
			return nil, fmt.Errorf("%w: not all input patterns are explicitly specified", ErrIncomplete)
		}
		for _, storage := range storages {
			storage.FillUndefined(fill)
		}
	}
	return New(inputNames, outputNames, storages)
}

// ParseCompact reads the single-line compact notation
// ":in1,in2:out1,out2:hex1,hex2". Each hex section packs one output
// column two bits per row, lowest rows in the lowest bits.
func ParseCompact(line string) (*Table, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(line), ":")
	if !ok {
		return nil, fmt.Errorf("%w: compact table must start with a colon", ErrSyntax)
	}
	sections := strings.Split(body, ":")
	if len(sections) != 3 {
		return nil, fmt.Errorf("%w: compact table needs three colon-separated sections, saw %d", ErrSyntax, len(sections))
	}
	inputNames := strings.Split(sections[0], ",")
	outputNames := strings.Split(sections[1], ",")
	data := strings.Split(sections[2], ",")
	if len(outputNames) != len(data) {
		return nil, fmt.Errorf("%w: table specifies %d output variables but carries %d data sections",
			ErrSyntax, len(outputNames), len(data))
	}
	if len(inputNames) > MaxInputVariables {
		return nil, fmt.Errorf("%w: %d input variables exceed the limit of %d", ErrSemantic, len(inputNames), MaxInputVariables)
	}
	storages := make([]*Storage, len(data))
	for i, hexStr := range data {
		storage, err := StorageFromHex(len(inputNames), hexStr)
		if err != nil {
			return nil, err
		}
		storages[i] = storage
	}
	return New(inputNames, outputNames, storages)
}
