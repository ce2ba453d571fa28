package qmc

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// cover is a bit set over the chart candidates; bit i selects the i-th
// candidate implicant. Charts can hold more than 64 candidates, so the set
// spans multiple words.
type cover []uint64

func newCover(candidates int) cover {
	return make(cover, (candidates+63)/64)
}

func (c cover) clone() cover {
	out := make(cover, len(c))
	copy(out, c)
	return out
}

func (c cover) withBit(bit int) cover {
	out := c.clone()
	out[bit/64] |= 1 << uint(bit%64)
	return out
}

func (c cover) or(other cover) cover {
	out := c.clone()
	for i, w := range other {
		out[i] |= w
	}
	return out
}

func (c cover) popCount() int {
	n := 0
	for _, w := range c {
		n += bits.OnesCount64(w)
	}
	return n
}

// subsetOf reports whether every bit of c is also set in other.
func (c cover) subsetOf(other cover) bool {
	for i, w := range c {
		if w&^other[i] != 0 {
			return false
		}
	}
	return true
}

// compare orders covers as unsigned integers, least significant word first in
// memory.
func (c cover) compare(other cover) int {
	for i := len(c) - 1; i >= 0; i-- {
		switch {
		case c[i] < other[i]:
			return -1
		case c[i] > other[i]:
			return 1
		}
	}
	return 0
}

func (c cover) key() string {
	var sb strings.Builder
	for _, w := range c {
		sb.WriteString(strconv.FormatUint(w, 16))
		sb.WriteByte('.')
	}
	return sb.String()
}

func (c cover) bitIndices() []int {
	var out []int
	for i, w := range c {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, i*64+b)
			w &^= 1 << uint(b)
		}
	}
	return out
}

// absorb drops every term that selects a superset of another term's
// candidates: the smaller selection already covers everything the larger one
// does. Terms are processed cheapest first, so only strictly smaller kept
// terms can absorb.
func absorb(terms []cover) []cover {
	sorted := make([]cover, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := sorted[i].popCount(), sorted[j].popCount()
		if pi != pj {
			return pi < pj
		}
		return sorted[i].compare(sorted[j]) < 0
	})
	var kept []cover
	for _, term := range sorted {
		termBits := term.popCount()
		absorbed := false
		for _, k := range kept {
			if k.popCount() >= termBits {
				break
			}
			if k.subsetOf(term) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			kept = append(kept, term)
		}
	}
	return kept
}

// selectCovers applies Petrick's method: it multiplies out the per-minterm
// implicant alternatives, absorbs redundant products after every step and
// keeps the selections with the fewest implicants. Among those, only the
// selections with the fewest literals are returned.
func (m *Minimizer) selectCovers(remaining []int, byMinterm map[int][]Implicant, variableCount int) [][]Implicant {
	bitOf := map[string]int{}
	var candidates []Implicant
	for _, minterm := range remaining {
		for _, imp := range byMinterm[minterm] {
			if _, ok := bitOf[imp.key()]; !ok {
				bitOf[imp.key()] = len(candidates)
				candidates = append(candidates, imp)
			}
		}
	}

	var solutions []cover
	for i, minterm := range remaining {
		choices := make([]cover, 0, len(byMinterm[minterm]))
		for _, imp := range byMinterm[minterm] {
			choices = append(choices, newCover(len(candidates)).withBit(bitOf[imp.key()]))
		}
		if i == 0 {
			solutions = choices
			continue
		}
		seen := map[string]bool{}
		var products []cover
		for _, sol := range solutions {
			for _, choice := range choices {
				combined := sol.or(choice)
				k := combined.key()
				if seen[k] {
					continue
				}
				seen[k] = true
				products = append(products, combined)
			}
		}
		solutions = absorb(products)
	}

	minBits := -1
	for _, sol := range solutions {
		if n := sol.popCount(); minBits < 0 || n < minBits {
			minBits = n
		}
	}
	smallest := make([]cover, 0, len(solutions))
	for _, sol := range solutions {
		if sol.popCount() == minBits {
			smallest = append(smallest, sol)
		}
	}
	m.logger.Debugf("found %d selections with %d implicants each", len(smallest), minBits)

	byLiterals := map[int][][]Implicant{}
	for _, sol := range smallest {
		selection := make([]Implicant, 0, minBits)
		literals := 0
		for _, bit := range sol.bitIndices() {
			imp := candidates[bit]
			selection = append(selection, imp)
			literals += imp.LiteralCount(variableCount)
		}
		byLiterals[literals] = append(byLiterals[literals], selection)
	}
	best := -1
	for literals := range byLiterals {
		if best < 0 || literals < best {
			best = literals
		}
	}
	m.logger.Debugf("found %d selections with %d literals", len(byLiterals[best]), best)
	return byLiterals[best]
}
