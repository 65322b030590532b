package breakpoint

import (
	"fmt"
	"sort"
)

// Region is a consolidated breakpoint region: the union of all
// overlapping calls sharing a recombinant and parent pair. Parents are
// sorted, Score is the maximum score among the merged calls.
type Region struct {
	Recombinant string
	Parents     [2]string
	Start       int
	End         int
	Score       float64
}

func (r Region) String() string {
	return fmt.Sprintf("%s (%s, %s) %d-%d z=%.2f",
		r.Recombinant, r.Parents[0], r.Parents[1], r.Start, r.End, r.Score)
}

type groupKey struct {
	recombinant string
	parentA     string
	parentB     string
}

// Merge groups calls by recombinant and sorted parent pair, then
// merges overlapping intervals within each group until no two overlap.
// Touching intervals count as overlapping. Groups are emitted in
// lexicographic key order, regions within a group by start, so the
// output is deterministic for any input order.
func Merge(calls []Call) []Region {
	groups := make(map[groupKey][]Region)
	for _, c := range calls {
		key := groupKey{c.Recombinant, c.Parents[0], c.Parents[1]}
		if key.parentA > key.parentB {
			key.parentA, key.parentB = key.parentB, key.parentA
		}
		groups[key] = append(groups[key], Region{
			Recombinant: key.recombinant,
			Parents:     [2]string{key.parentA, key.parentB},
			Start:       c.Start,
			End:         c.End,
			Score:       c.Score,
		})
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.recombinant != b.recombinant {
			return a.recombinant < b.recombinant
		}
		if a.parentA != b.parentA {
			return a.parentA < b.parentA
		}
		return a.parentB < b.parentB
	})

	var out []Region
	for _, k := range keys {
		merged := mergeGroup(groups[k])
		sort.Slice(merged, func(i, j int) bool {
			return merged[i].Start < merged[j].Start
		})
		out = append(out, merged...)
	}
	return out
}

// mergeGroup folds overlapping regions until it reaches a fixed point:
// after every merge the scan restarts, so transitively chained
// intervals collapse into one region.
func mergeGroup(regions []Region) []Region {
	for {
		merged := false
		for i := 0; i < len(regions) && !merged; i++ {
			for j := i + 1; j < len(regions); j++ {
				if !overlaps(regions[i], regions[j]) {
					continue
				}
				regions[i] = combine(regions[i], regions[j])
				regions = append(regions[:j], regions[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return regions
		}
	}
}

func overlaps(a, b Region) bool {
	return a.Start <= b.End && b.Start <= a.End
}

func combine(a, b Region) Region {
	if b.Start < a.Start {
		a.Start = b.Start
	}
	if b.End > a.End {
		a.End = b.End
	}
	if b.Score > a.Score {
		a.Score = b.Score
	}
	return a
}
