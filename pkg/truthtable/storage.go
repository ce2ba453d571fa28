package truthtable

import (
	"fmt"
	"math/big"
)

// MaxInputVariables bounds the table width. 2^30 rows at two bits per
// entry is already a quarter gigabyte of storage.
const MaxInputVariables = 30

// Storage packs the output column of a truth table into one big
// integer, two bits per entry in row order starting at the lowest bits.
// A fresh storage has every entry Undefined.
type Storage struct {
	varCount int
	value    *big.Int
}

// NewStorage allocates an all-Undefined column over 2^varCount rows.
func NewStorage(varCount int) *Storage {
	if varCount < 0 || varCount > MaxInputVariables {
		panic(fmt.Sprintf("truthtable: storage over %d variables", varCount))
	}
	// 2^(2*rows) - 1: every two-bit group set to Undefined.
	value := new(big.Int).Lsh(big.NewInt(1), uint(2)<<uint(varCount))
	value.Sub(value, big.NewInt(1))
	return &Storage{varCount: varCount, value: value}
}

// StorageFromHex restores a column from its hex form.
func StorageFromHex(varCount int, hexStr string) (*Storage, error) {
	if varCount < 0 || varCount > MaxInputVariables {
		return nil, fmt.Errorf("%w: %d input variables exceed the limit of %d", ErrSemantic, varCount, MaxInputVariables)
	}
	value, ok := new(big.Int).SetString(hexStr, 16)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid hex table data %q", ErrSyntax, hexStr)
	}
	if value.BitLen() > 2<<uint(varCount) {
		return nil, fmt.Errorf("%w: table data %q too long for %d variables", ErrSyntax, hexStr, varCount)
	}
	return &Storage{varCount: varCount, value: value}, nil
}

// VariableCount returns the number of input variables the column spans.
func (s *Storage) VariableCount() int { return s.varCount }

// Len returns the number of rows, 2^VariableCount.
func (s *Storage) Len() int { return 1 << uint(s.varCount) }

// Get returns the entry at the given row.
func (s *Storage) Get(index int) Entry {
	s.checkIndex(index)
	bitpos := 2 * index
	return Entry(s.value.Bit(bitpos) | s.value.Bit(bitpos+1)<<1)
}

// Set overwrites the entry at the given row.
func (s *Storage) Set(index int, e Entry) {
	s.checkIndex(index)
	bitpos := 2 * index
	s.value.SetBit(s.value, bitpos, uint(e)&1)
	s.value.SetBit(s.value, bitpos+1, uint(e)>>1&1)
}

func (s *Storage) checkIndex(index int) {
	if index < 0 || index >= s.Len() {
		panic(fmt.Sprintf("truthtable: row %d outside 0..%d", index, s.Len()-1))
	}
}

// Hex returns the packed column as lowercase hex without leading
// zeros; StorageFromHex inverts it.
func (s *Storage) Hex() string {
	return s.value.Text(16)
}

// HasUndefined reports whether any row is still unset.
func (s *Storage) HasUndefined() bool {
	for index := 0; index < s.Len(); index++ {
		if s.Get(index) == Undefined {
			return true
		}
	}
	return false
}

// FillUndefined overwrites every unset row with the given entry.
func (s *Storage) FillUndefined(e Entry) {
	for index := 0; index < s.Len(); index++ {
		if s.Get(index) == Undefined {
			s.Set(index, e)
		}
	}
}

// IndicesWithValue returns the rows holding the given entry, ascending.
func (s *Storage) IndicesWithValue(e Entry) []int {
	var indices []int
	for index := 0; index < s.Len(); index++ {
		if s.Get(index) == e {
			indices = append(indices, index)
		}
	}
	return indices
}

// Clone returns an independent copy of the column.
func (s *Storage) Clone() *Storage {
	return &Storage{varCount: s.varCount, value: new(big.Int).Set(s.value)}
}
