/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: exhaustive.go
Description: Exhaustive rule induction over the discernibility matrix. For every row
all attribute combinations are tried by increasing size; combinations contained in
the agreement set of a differently decided row are invalid, and candidates already
generalized by an accepted rule are skipped.
*/

package induction

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// DiscernibilityMatrix stores, for every pair of differently decided rows, the
// attributes on which the two rows agree
type DiscernibilityMatrix struct {
	cells [][]*bitset.BitSet
}

// NewDiscernibilityMatrix computes the matrix of t
// Cells of rows sharing a decision are left nil.
func NewDiscernibilityMatrix(t *table.Table) *DiscernibilityMatrix {
	n := t.Len()
	attributes := t.NumAttributes()
	m := &DiscernibilityMatrix{cells: make([][]*bitset.BitSet, n)}

	for i := 0; i < n; i++ {
		m.cells[i] = make([]*bitset.BitSet, n)
		for j := 0; j < n; j++ {
			if t.Decision(i) == t.Decision(j) {
				continue
			}
			cell := bitset.New(uint(attributes))
			for a := 0; a < attributes; a++ {
				if t.Value(i, a) == t.Value(j, a) {
					cell.Set(uint(a))
				}
			}
			m.cells[i][j] = cell
		}
	}

	return m
}

// Cell returns the agreeing attributes of rows i and j in ascending order
// It is empty when the rows share a decision.
func (m *DiscernibilityMatrix) Cell(i, j int) []int {
	cell := m.cells[i][j]
	if cell == nil {
		return nil
	}
	var attrs []int
	for a, ok := cell.NextSet(0); ok; a, ok = cell.NextSet(a + 1) {
		attrs = append(attrs, int(a))
	}
	return attrs
}

// Valid reports whether attrs is not contained in any cell of row i
func (m *DiscernibilityMatrix) Valid(i int, attrs []int) bool {
	for _, cell := range m.cells[i] {
		if cell != nil && containsAll(cell, attrs) {
			return false
		}
	}
	return true
}

func containsAll(set *bitset.BitSet, attrs []int) bool {
	for _, a := range attrs {
		if !set.Test(uint(a)) {
			return false
		}
	}
	return true
}

// ExhaustiveInducer implements discernibility-matrix induction
type ExhaustiveInducer struct{}

// NewExhaustiveInducer creates an exhaustive inducer
func NewExhaustiveInducer() *ExhaustiveInducer {
	return &ExhaustiveInducer{}
}

// Algorithm returns Exhaustive
func (e *ExhaustiveInducer) Algorithm() Algorithm {
	return Exhaustive
}

// Induce enumerates every non-redundant consistent rule of t
//
// An accepted rule is never withdrawn when a more general one shows up later.
// A valid combination is consistent by construction, and any consistent
// generalization of a candidate also matches the candidate's anchor row, so it
// is met earlier for that row (smaller size first) and the candidate is skipped.
func (e *ExhaustiveInducer) Induce(t *table.Table) *Result {
	var induced []*rules.Rule
	matrix := NewDiscernibilityMatrix(t)
	attributes := t.NumAttributes()

	bySize := make([][][]int, attributes+1)
	for size := 1; size <= attributes; size++ {
		bySize[size] = Combinations(attributes, size)
	}

	for i := 0; i < t.Len(); i++ {
		for size := 1; size <= attributes; size++ {
			for _, attrs := range bySize[size] {
				if !matrix.Valid(i, attrs) {
					continue
				}

				candidate := rules.New(rules.ConditionFromRow(t, i, attrs), t.Decision(i))
				if generalized(induced, candidate) {
					continue
				}

				ComputeSupport(candidate, t, nil)
				induced = append(induced, candidate)
			}
		}
	}

	return newResult(Exhaustive, t, induced)
}

// generalized reports whether any accepted rule is at least as general as candidate
func generalized(accepted []*rules.Rule, candidate *rules.Rule) bool {
	for _, r := range accepted {
		if r.Generalizes(candidate) {
			return true
		}
	}
	return false
}
