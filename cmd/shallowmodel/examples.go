package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Example is one pre-tokenized training pair: a bag of feature indices
// and the target class they should predict. Turning raw text into these
// indices is tokenization, which stays outside this driver.
type Example struct {
	Input  []int32
	Target int32
}

// LoadExamples reads one example per line: whitespace-separated integers
// where the last integer is the target class and the rest are the
// feature-index bag.
func LoadExamples(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open examples file %s: %w", path, err)
	}
	defer f.Close()

	var out []Example
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("examples file %s line %d: need at least a feature and a target", path, lineNo)
		}
		ids := make([]int32, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("examples file %s line %d: %w", path, lineNo, err)
			}
			ids[i] = int32(n)
		}
		out = append(out, Example{Input: ids[:len(ids)-1], Target: ids[len(ids)-1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read examples file %s: %w", path, err)
	}
	return out, nil
}
