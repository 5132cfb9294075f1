/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: primitives.go
Description: Shared primitives of the induction algorithms: the consistency oracle,
the support and elimination calculator, and lexicographic attribute combinations.
*/

package induction

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// IsConsistent reports whether no row of t matches condition while carrying a
// decision other than decision. A condition matching no row is consistent.
func IsConsistent(condition rules.Condition, decision table.Code, t *table.Table) bool {
	for i := 0; i < t.Len(); i++ {
		if t.Decision(i) != decision && condition.Matches(t, i) {
			return false
		}
	}
	return true
}

// ComputeSupport counts the rows covered by r, stores the count in r.Support and
// returns it. When eliminate is non-nil every counted row index is added to it.
func ComputeSupport(r *rules.Rule, t *table.Table, eliminate *bitset.BitSet) int {
	support := 0
	for i := 0; i < t.Len(); i++ {
		if r.Covers(t, i) {
			support++
			if eliminate != nil {
				eliminate.Set(uint(i))
			}
		}
	}
	r.Support = support
	return support
}

// Combinations returns every k-subset of {0..n-1} in ascending lexicographic order
func Combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}

	var out [][]int
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}

	for {
		out = append(out, append([]int(nil), combo...))

		// Rightmost position that can still move
		i := k - 1
		for i >= 0 && combo[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}
