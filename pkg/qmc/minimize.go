package qmc

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

// Minimizer derives minimal two-level expressions for one output column of a
// truth table.
type Minimizer struct {
	table  *truthtable.Table
	output string
	logger *logrus.Logger
}

// New creates a Minimizer for the named output column. A nil logger falls
// back to the logrus standard logger; the merge stages and the prime
// implicant chart are reported at debug level.
func New(table *truthtable.Table, outputName string, logger *logrus.Logger) *Minimizer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Minimizer{table: table, output: outputName, logger: logger}
}

// Minimize computes all minimal expressions of the requested form. For DNF
// the rows with a high output must be covered, for CNF the rows with a low
// output; don't-care rows may be used for merging but need no cover. Every
// row must carry a defined value.
func (m *Minimizer) Minimize(form Form) (*Solution, error) {
	storage, err := m.table.Output(m.output)
	if err != nil {
		return nil, err
	}
	want := truthtable.High
	if form == CNF {
		want = truthtable.Low
	}
	var mandatory, optional []int
	for index := 0; index < storage.Len(); index++ {
		switch storage.Get(index) {
		case want:
			mandatory = append(mandatory, index)
		case truthtable.DontCare:
			optional = append(optional, index)
		case truthtable.Undefined:
			return nil, fmt.Errorf("%w: cannot minimize output %q, row %d is undefined",
				truthtable.ErrIncomplete, m.output, index)
		}
	}
	variables := m.table.InputNames()

	if len(mandatory) == 0 {
		value := 0
		if form == CNF {
			value = 1
		}
		return &Solution{
			form:       form,
			variables:  variables,
			additional: [][]Implicant{nil},
			constant:   &boolexpr.Constant{Value: value},
		}, nil
	}

	minterms := make([]int, 0, len(mandatory)+len(optional))
	minterms = append(minterms, mandatory...)
	minterms = append(minterms, optional...)
	sort.Ints(minterms)

	variableCount := m.table.InputCount()
	groups := m.primeImplicantGroups(minterms, variableCount)
	groups = dropCoveredImplicants(groups)
	m.debugGroups("prime implicants after redundancy removal:", groups, variableCount)

	required := requiredMinterms(groups, mandatory)
	m.debugRequired(required)
	essential, rest := extractEssential(groups, required)
	m.debugImplicants("essential implicants:", essential, variableCount)
	m.debugGroups("implicants left for the prime implicant chart:", rest, variableCount)

	remaining := uncoveredMinterms(mandatory, essential)
	var additional [][]Implicant
	if len(remaining) == 0 {
		m.logger.Debug("no remaining minterms, all covered by essential implicants")
		additional = [][]Implicant{nil}
	} else {
		byMinterm := implicantsByMinterm(rest)
		m.debugChart(remaining, byMinterm, variableCount)
		additional = m.selectCovers(remaining, byMinterm, variableCount)
	}

	return &Solution{
		form:       form,
		variables:  variables,
		required:   essential,
		additional: additional,
	}, nil
}

// A merge stage groups implicants by the popcount of their value, then by
// their mask. Only implicants with equal masks and adjacent popcounts can
// merge.
type mergeStage map[int]map[int][]Implicant

func sizeOneStage(minterms []int) mergeStage {
	stage := mergeStage{}
	for _, minterm := range minterms {
		bc := bits.OnesCount(uint(minterm))
		group := stage[bc]
		if group == nil {
			group = map[int][]Implicant{}
			stage[bc] = group
		}
		group[0] = append(group[0], unitImplicant(minterm))
	}
	return stage
}

// mergeOnce pairs implicants whose values differ in exactly one bit and
// returns the next stage. Duplicate merge results covering the same rows are
// kept once.
func mergeOnce(stage mergeStage) mergeStage {
	result := mergeStage{}
	bitCounts := sortedKeys(stage)
	highest := bitCounts[len(bitCounts)-1]
	for _, bc := range bitCounts {
		if bc == highest {
			continue
		}
		upper := stage[bc+1]
		if upper == nil {
			continue
		}
		seen := map[string]bool{}
		for _, mask := range sortedKeys(stage[bc]) {
			for _, a := range stage[bc][mask] {
				for _, b := range upper[mask] {
					diff := a.value ^ b.value
					if bits.OnesCount(uint(diff)) != 1 {
						continue
					}
					merged := merge(a, b)
					if seen[merged.key()] {
						continue
					}
					seen[merged.key()] = true
					group := result[bc]
					if group == nil {
						group = map[int][]Implicant{}
						result[bc] = group
					}
					group[merged.mask] = append(group[merged.mask], merged)
				}
			}
		}
	}
	return result
}

// primeImplicantGroups runs the merge stages to completion and returns the
// surviving implicants keyed by stage number: stage n holds implicants
// covering 2^(n-1) rows.
func (m *Minimizer) primeImplicantGroups(minterms []int, variableCount int) map[int][]Implicant {
	stages := map[int]mergeStage{1: sizeOneStage(minterms)}
	m.debugStage("initial size-1 implicants:", stages[1], variableCount)
	for index := 0; index < variableCount; index++ {
		merged := mergeOnce(stages[index+1])
		if len(merged) == 0 {
			break
		}
		stages[index+2] = merged
		m.debugStage(fmt.Sprintf("size-%d implicants:", 1<<uint(index+1)), merged, variableCount)
	}

	groups := map[int][]Implicant{}
	for _, id := range sortedKeys(stages) {
		stage := stages[id]
		var list []Implicant
		for _, bc := range sortedKeys(stage) {
			for _, mask := range sortedKeys(stage[bc]) {
				list = append(list, stage[bc][mask]...)
			}
		}
		groups[id] = list
	}
	return groups
}

// dropCoveredImplicants removes implicants whose rows are fully contained in
// an implicant of the next larger stage. Larger implicants never lose to
// smaller ones, so checking one stage up suffices after merging ran to
// completion.
func dropCoveredImplicants(groups map[int][]Implicant) map[int][]Implicant {
	ids := sortedKeys(groups)
	top := ids[len(ids)-1]
	result := map[int][]Implicant{}
	for _, id := range ids {
		if id == top {
			result[id] = groups[id]
			continue
		}
		larger := groups[id+1]
		var keep []Implicant
		for _, imp := range groups[id] {
			covered := false
			for _, other := range larger {
				if imp.isSubsetOf(other) {
					covered = true
					break
				}
			}
			if !covered {
				keep = append(keep, imp)
			}
		}
		if len(keep) > 0 {
			result[id] = keep
		}
	}
	return result
}

// requiredMinterms finds the rows that only a single prime implicant covers.
// Those implicants must be part of every solution.
func requiredMinterms(groups map[int][]Implicant, mandatory []int) map[int]bool {
	mandatorySet := make(map[int]bool, len(mandatory))
	for _, m := range mandatory {
		mandatorySet[m] = true
	}
	counts := map[int]int{}
	for _, id := range sortedKeys(groups) {
		for _, imp := range groups[id] {
			for _, minterm := range imp.minterms {
				if mandatorySet[minterm] {
					counts[minterm]++
				}
			}
		}
	}
	required := map[int]bool{}
	for minterm, n := range counts {
		if n == 1 {
			required[minterm] = true
		}
	}
	return required
}

// extractEssential splits the implicants into those covering a required
// minterm and the rest.
func extractEssential(groups map[int][]Implicant, required map[int]bool) ([]Implicant, map[int][]Implicant) {
	var essential []Implicant
	rest := map[int][]Implicant{}
	for _, id := range sortedKeys(groups) {
		var remaining []Implicant
		for _, imp := range groups[id] {
			found := false
			for _, minterm := range imp.minterms {
				if required[minterm] {
					found = true
					break
				}
			}
			if found {
				essential = append(essential, imp)
			} else {
				remaining = append(remaining, imp)
			}
		}
		if len(remaining) > 0 {
			rest[id] = remaining
		}
	}
	return essential, rest
}

// uncoveredMinterms returns the mandatory rows not covered by any essential
// implicant, in ascending order.
func uncoveredMinterms(mandatory []int, essential []Implicant) []int {
	covered := map[int]bool{}
	for _, imp := range essential {
		for _, minterm := range imp.minterms {
			covered[minterm] = true
		}
	}
	var remaining []int
	for _, minterm := range mandatory {
		if !covered[minterm] {
			remaining = append(remaining, minterm)
		}
	}
	return remaining
}

// implicantsByMinterm builds the prime implicant chart: every covered row
// mapped to the implicants covering it.
func implicantsByMinterm(groups map[int][]Implicant) map[int][]Implicant {
	byMinterm := map[int][]Implicant{}
	for _, id := range sortedKeys(groups) {
		for _, imp := range groups[id] {
			for _, minterm := range imp.minterms {
				byMinterm[minterm] = append(byMinterm[minterm], imp)
			}
		}
	}
	return byMinterm
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (m *Minimizer) debugStage(header string, stage mergeStage, bitCount int) {
	if !m.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	m.logger.Debug(header)
	for _, bc := range sortedKeys(stage) {
		for _, mask := range sortedKeys(stage[bc]) {
			for _, imp := range stage[bc][mask] {
				m.logger.Debugf("  %s %s", imp.BinString(bitCount), imp)
			}
		}
	}
}

func (m *Minimizer) debugGroups(header string, groups map[int][]Implicant, bitCount int) {
	if !m.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	m.logger.Debug(header)
	for _, id := range sortedKeys(groups) {
		for _, imp := range groups[id] {
			m.logger.Debugf("  %s %s", imp.BinString(bitCount), imp)
		}
	}
}

func (m *Minimizer) debugImplicants(header string, imps []Implicant, bitCount int) {
	if !m.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	m.logger.Debug(header)
	for _, imp := range imps {
		m.logger.Debugf("  %s %s", imp.BinString(bitCount), imp)
	}
}

func (m *Minimizer) debugRequired(required map[int]bool) {
	if !m.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	minterms := sortedKeys(required)
	m.logger.Debugf("minterms covered by only one implicant: %v", minterms)
}

func (m *Minimizer) debugChart(remaining []int, byMinterm map[int][]Implicant, bitCount int) {
	if !m.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	m.logger.Debugf("%d remaining minterms to cover: %v", len(remaining), remaining)
	m.logger.Debug("prime implicant chart:")
	for _, minterm := range remaining {
		patterns := make([]string, 0, len(byMinterm[minterm]))
		for _, imp := range byMinterm[minterm] {
			patterns = append(patterns, imp.BinString(bitCount))
		}
		m.logger.Debugf("  %d: %s", minterm, strings.Join(patterns, " "))
	}
}
