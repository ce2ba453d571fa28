package qmc

import (
	"testing"
)

func makeCover(candidates int, bitsSet ...int) cover {
	c := newCover(candidates)
	for _, bit := range bitsSet {
		c = c.withBit(bit)
	}
	return c
}

func coverKeys(covers []cover) map[string]bool {
	out := map[string]bool{}
	for _, c := range covers {
		out[c.key()] = true
	}
	return out
}

func TestAbsorb(t *testing.T) {
	cases := []struct {
		name  string
		terms []cover
		want  []cover
	}{
		{
			"superset absorbed",
			[]cover{makeCover(3, 0), makeCover(3, 0, 1)},
			[]cover{makeCover(3, 0)},
		},
		{
			"incomparable kept",
			[]cover{makeCover(3, 0, 1), makeCover(3, 0, 2)},
			[]cover{makeCover(3, 0, 1), makeCover(3, 0, 2)},
		},
		{
			"single term absorbs several",
			[]cover{makeCover(3, 0, 1), makeCover(3, 0, 2), makeCover(3, 0)},
			[]cover{makeCover(3, 0)},
		},
		{
			"partial absorption",
			[]cover{makeCover(3, 0, 1), makeCover(3, 0, 2), makeCover(3, 2)},
			[]cover{makeCover(3, 2), makeCover(3, 0, 1)},
		},
	}
	for _, tc := range cases {
		got := absorb(tc.terms)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: absorb kept %d terms, want %d", tc.name, len(got), len(tc.want))
		}
		gotKeys := coverKeys(got)
		for _, want := range tc.want {
			if !gotKeys[want.key()] {
				t.Fatalf("%s: absorb result misses %v", tc.name, want.bitIndices())
			}
		}
	}
}

func TestAbsorbOrdersCheapestFirst(t *testing.T) {
	got := absorb([]cover{makeCover(4, 1, 2, 3), makeCover(4, 0), makeCover(4, 1, 2)})
	if len(got) != 2 {
		t.Fatalf("absorb kept %d terms, want 2", len(got))
	}
	if got[0].popCount() != 1 || got[1].popCount() != 2 {
		t.Fatalf("absorb result not sorted by size: %v, %v", got[0].bitIndices(), got[1].bitIndices())
	}
}

func TestCoverMultiWord(t *testing.T) {
	c := makeCover(130, 3, 70, 129)
	if c.popCount() != 3 {
		t.Fatalf("popCount = %d, want 3", c.popCount())
	}
	if got := c.bitIndices(); len(got) != 3 || got[0] != 3 || got[1] != 70 || got[2] != 129 {
		t.Fatalf("bitIndices = %v, want [3 70 129]", got)
	}
	sub := makeCover(130, 70)
	if !sub.subsetOf(c) {
		t.Fatalf("bit 70 should be a subset of %v", c.bitIndices())
	}
	if c.subsetOf(sub) {
		t.Fatalf("%v should not be a subset of bit 70", c.bitIndices())
	}
	merged := sub.or(makeCover(130, 129))
	if got := merged.bitIndices(); len(got) != 2 || got[0] != 70 || got[1] != 129 {
		t.Fatalf("or result = %v, want [70 129]", got)
	}
	if makeCover(130, 3).compare(makeCover(130, 70)) != -1 {
		t.Fatalf("low bits must compare below high bits")
	}
}
