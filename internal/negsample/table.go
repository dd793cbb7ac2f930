// Package negsample builds and serves the unigram-weighted negative
// sampling table used by the negative-sampling loss objective.
package negsample

import (
	"math"
	"math/rand"
)

// TableSize is the target length of the reservoir built by New. The
// actual length may differ slightly because per-class pushes are
// truncated to whole numbers.
const TableSize = 10000000

// Table is a read-only, shuffled reservoir of class indices, weighted so
// that class i appears with frequency roughly proportional to
// sqrt(count_i). It is built once and then only read via GetNegative,
// which also advances a per-table cursor.
type Table struct {
	entries []int32
	pos     int
}

// New builds the table from per-class counts using an engine-owned RNG so
// that two tables built with the same seeded RNG are identical.
func New(counts []int64, rng *rand.Rand) *Table {
	var z float64
	for _, c := range counts {
		z += math.Sqrt(float64(c))
	}

	var entries []int32
	for i, c := range counts {
		n := int(math.Sqrt(float64(c)) * float64(TableSize) / z)
		for j := 0; j < n; j++ {
			entries = append(entries, int32(i))
		}
	}

	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	return &Table{entries: entries}
}

// Len returns the number of entries actually pushed into the table.
func (t *Table) Len() int { return len(t.entries) }

// GetNegative advances the table's cursor and returns the next entry that
// is not equal to target, looping until it finds one. The cursor state is
// owned by this Table, so each engine must hold its own Table built from
// its own RNG to keep negative draws independent across threads.
func (t *Table) GetNegative(target int32) int32 {
	var negative int32
	for {
		negative = t.entries[t.pos]
		t.pos = (t.pos + 1) % len(t.entries)
		if negative != target {
			return negative
		}
	}
}
