// Package vocab holds the per-class frequency counts that hierarchical
// softmax and negative sampling need before any training example can be
// processed. It never touches parameter matrices — only the integer
// counts the engine's huffman/negsample packages are built from.
package vocab

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ErrCountsEmpty is returned when a loaded counts file contains no
// entries.
var ErrCountsEmpty = errors.New("vocab: counts file is empty")

// Counts is the per-class frequency table, indexed by class id, sorted
// descending by frequency the way engine.SetTargetCounts expects for
// hierarchical softmax to build a reasonable tree.
type Counts []int64

// LoadJSON reads a Counts from a JSON array file.
func LoadJSON(path string) (Counts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	var c Counts
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("vocab: parse %s: %w", path, err)
	}
	if len(c) == 0 {
		return nil, ErrCountsEmpty
	}
	return c, nil
}

// SaveJSON writes counts as a JSON array to path.
func (c Counts) SaveJSON(path string) error {
	data, err := json.Marshal([]int64(c))
	if err != nil {
		return fmt.Errorf("vocab: encode counts: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("vocab: write %s: %w", path, err)
	}
	return nil
}
