package truthtable

import (
	"fmt"
	"math"
	"math/rand"
)

// Random generates a table with the given share of 0 and 1 entries per
// output column; the remainder of each column is don't care. Every
// column is shuffled independently. Input variables are named A, B, C
// and so on; an empty outputNames slice produces a single output Y.
func Random(varCount int, outputNames []string, zeroPercentage, onePercentage float64, rng *rand.Rand) (*Table, error) {
	if varCount < 1 || varCount > 26 {
		return nil, fmt.Errorf("%w: variable count %d outside 1..26", ErrSemantic, varCount)
	}
	if zeroPercentage < 0 || onePercentage < 0 {
		return nil, fmt.Errorf("%w: negative percentage", ErrSemantic)
	}
	if total := zeroPercentage + onePercentage; total > 100 {
		return nil, fmt.Errorf("%w: %.0f%% zeros and %.0f%% ones add up to more than 100%% (%.0f%%)",
			ErrSemantic, zeroPercentage, onePercentage, total)
	}

	entryCount := 1 << uint(varCount)
	zeroEntries := int(math.Round(zeroPercentage / 100 * float64(entryCount)))
	oneEntries := int(math.Round(onePercentage / 100 * float64(entryCount)))
	dcEntries := entryCount - zeroEntries - oneEntries
	if dcEntries < 0 {
		return nil, fmt.Errorf("%w: rounding leaves no room for %d don't-care entries", ErrSemantic, dcEntries)
	}

	inputNames := make([]string, varCount)
	for i := range inputNames {
		inputNames[i] = string(rune('A' + i))
	}
	if len(outputNames) == 0 {
		outputNames = []string{"Y"}
	}

	storages := make([]*Storage, len(outputNames))
	for i := range outputNames {
		entries := make([]Entry, 0, entryCount)
		for j := 0; j < zeroEntries; j++ {
			entries = append(entries, Low)
		}
		for j := 0; j < oneEntries; j++ {
			entries = append(entries, High)
		}
		for j := 0; j < dcEntries; j++ {
			entries = append(entries, DontCare)
		}
		rng.Shuffle(len(entries), func(a, b int) {
			entries[a], entries[b] = entries[b], entries[a]
		})

		storage := NewStorage(varCount)
		for index, entry := range entries {
			storage.Set(index, entry)
		}
		storages[i] = storage
	}
	return New(inputNames, outputNames, storages)
}
