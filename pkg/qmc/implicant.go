package qmc

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
)

// Implicant is a candidate term of a two-level expression. It covers a
// power-of-two sized set of table rows: value carries the input bits that are
// still fixed, mask marks the bit positions merged away. The covered row
// indices are kept sorted.
type Implicant struct {
	minterms []int
	value    int
	mask     int
}

// unitImplicant covers a single table row.
func unitImplicant(minterm int) Implicant {
	return Implicant{minterms: []int{minterm}, value: minterm}
}

// merge combines two implicants whose values differ in exactly one unmasked
// bit. The caller has already checked that precondition.
func merge(a, b Implicant) Implicant {
	diff := a.value ^ b.value
	minterms := make([]int, 0, len(a.minterms)+len(b.minterms))
	minterms = append(minterms, a.minterms...)
	minterms = append(minterms, b.minterms...)
	sort.Ints(minterms)
	return Implicant{
		minterms: minterms,
		value:    a.value &^ diff,
		mask:     a.mask | diff,
	}
}

// Minterms returns the covered row indices in ascending order.
func (imp Implicant) Minterms() []int {
	out := make([]int, len(imp.minterms))
	copy(out, imp.minterms)
	return out
}

// Order reports how often the implicant has been merged; it covers 2^Order
// rows.
func (imp Implicant) Order() int {
	return bits.Len(uint(len(imp.minterms))) - 1
}

// LiteralCount is the number of literals the implicant contributes to an
// expression over variableCount input variables.
func (imp Implicant) LiteralCount(variableCount int) int {
	return variableCount - imp.Order()
}

// covers reports whether the implicant covers the given row index.
func (imp Implicant) covers(minterm int) bool {
	i := sort.SearchInts(imp.minterms, minterm)
	return i < len(imp.minterms) && imp.minterms[i] == minterm
}

// isSubsetOf reports whether every row covered by imp is also covered by
// other.
func (imp Implicant) isSubsetOf(other Implicant) bool {
	if len(imp.minterms) > len(other.minterms) {
		return false
	}
	for _, m := range imp.minterms {
		if !other.covers(m) {
			return false
		}
	}
	return true
}

// BinString renders the implicant as a fixed-width bit pattern, most
// significant input first, with merged positions shown as '-'.
func (imp Implicant) BinString(bitCount int) string {
	var sb strings.Builder
	for bit := bitCount - 1; bit >= 0; bit-- {
		switch {
		case imp.mask&(1<<uint(bit)) != 0:
			sb.WriteByte('-')
		case imp.value&(1<<uint(bit)) != 0:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (imp Implicant) String() string {
	parts := make([]string, len(imp.minterms))
	for i, m := range imp.minterms {
		parts[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("size-%d implicant {%s}", len(imp.minterms), strings.Join(parts, ", "))
}

// Term converts the implicant into a product term over the given variables
// for a sum-of-products solution, or into a sum term for a product-of-sums
// solution. Variables map to input bits most significant first. An implicant
// with every position merged away covers the whole domain and collapses to a
// constant.
func (imp Implicant) Term(variables []string, form Form) boolexpr.Expression {
	var literals []boolexpr.Expression
	for index, name := range variables {
		bit := len(variables) - 1 - index
		if imp.mask&(1<<uint(bit)) != 0 {
			continue
		}
		set := imp.value&(1<<uint(bit)) != 0
		var literal boolexpr.Expression = &boolexpr.Variable{Name: name}
		if set != (form == DNF) {
			literal = &boolexpr.Unary{Op: boolexpr.Not, Operand: literal}
		}
		literals = append(literals, literal)
	}
	if len(literals) == 0 {
		if form == DNF {
			return &boolexpr.Constant{Value: 1}
		}
		return &boolexpr.Constant{Value: 0}
	}
	if form == DNF {
		return boolexpr.Join(boolexpr.And, literals)
	}
	return boolexpr.Join(boolexpr.Or, literals)
}

// less defines the display order of implicants inside a solution: larger
// implicants first, ties broken by covered rows, then value, then mask.
func (imp Implicant) less(other Implicant) bool {
	if len(imp.minterms) != len(other.minterms) {
		return len(imp.minterms) > len(other.minterms)
	}
	for i := range imp.minterms {
		if imp.minterms[i] != other.minterms[i] {
			return imp.minterms[i] < other.minterms[i]
		}
	}
	if imp.value != other.value {
		return imp.value < other.value
	}
	return imp.mask < other.mask
}

// key identifies an implicant by its covered rows, for deduplication during
// merging.
func (imp Implicant) key() string {
	var sb strings.Builder
	for i, m := range imp.minterms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(m))
	}
	return sb.String()
}

func sortImplicants(imps []Implicant) {
	sort.Slice(imps, func(i, j int) bool { return imps[i].less(imps[j]) })
}
