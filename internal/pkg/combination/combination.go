// Package combination enumerates parameter combinations for variant generation.
package combination

import (
	"iter"
	"math"
	"maps"
	"slices"
)

// Generator counts and enumerates the combinations of a parameter → values map.
type Generator interface {
	Count(parameters map[string][]string) int
	Generate(parameters map[string][]string) iter.Seq[map[string]string]
}

// Cartesian enumerates the full Cartesian product. Keys are visited in sorted
// order and values in the given order, so the sequence is deterministic.
// A parameter with no values yields no combinations.
type Cartesian struct{}

// NewCartesian returns the Cartesian product generator.
func NewCartesian() Cartesian {
	return Cartesian{}
}

// Count returns the number of combinations without enumerating them.
// It saturates at math.MaxInt instead of overflowing.
func (Cartesian) Count(parameters map[string][]string) int {
	if len(parameters) == 0 {
		return 0
	}
	for _, values := range parameters {
		if len(values) == 0 {
			return 0
		}
	}
	n := 1
	for _, values := range parameters {
		if n > math.MaxInt/len(values) {
			return math.MaxInt
		}
		n *= len(values)
	}
	return n
}

// Generate yields every combination as a fresh map.
func (c Cartesian) Generate(parameters map[string][]string) iter.Seq[map[string]string] {
	return func(yield func(map[string]string) bool) {
		if c.Count(parameters) == 0 {
			return
		}
		keys := slices.Sorted(maps.Keys(parameters))
		idx := make([]int, len(keys))
		for {
			combo := make(map[string]string, len(keys))
			for i, k := range keys {
				combo[k] = parameters[k][idx[i]]
			}
			if !yield(combo) {
				return
			}

			// advance the odometer, last key fastest
			i := len(keys) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(parameters[keys[i]]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
