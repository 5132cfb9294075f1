/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: covering.go
Description: Sequential covering. Rule length grows from one attribute to all of them;
within a length every row not yet eliminated takes the first consistent attribute
combination, and the accepted rule eliminates every row it covers.
*/

package induction

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// CoveringInducer implements sequential covering
type CoveringInducer struct{}

// NewCoveringInducer creates a covering inducer
func NewCoveringInducer() *CoveringInducer {
	return &CoveringInducer{}
}

// Algorithm returns Covering
func (c *CoveringInducer) Algorithm() Algorithm {
	return Covering
}

// Induce runs sequential covering over t
// Rules come out by ascending scale, then ascending row index.
func (c *CoveringInducer) Induce(t *table.Table) *Result {
	var induced []*rules.Rule
	eliminated := bitset.New(uint(t.Len()))
	attributes := t.NumAttributes()

	for scale := 1; scale <= attributes && !eliminated.All(); scale++ {
		combinations := Combinations(attributes, scale)

		for i := 0; i < t.Len(); i++ {
			if eliminated.Test(uint(i)) {
				continue
			}

			if rule := firstConsistent(t, i, combinations); rule != nil {
				ComputeSupport(rule, t, eliminated)
				induced = append(induced, rule)
			}

			if eliminated.All() {
				break
			}
		}
	}

	return newResult(Covering, t, induced)
}

// firstConsistent returns the rule induced by row i on the first consistent
// combination, or nil when none is
func firstConsistent(t *table.Table, i int, combinations [][]int) *rules.Rule {
	decision := t.Decision(i)
	for _, attrs := range combinations {
		condition := rules.ConditionFromRow(t, i, attrs)
		if IsConsistent(condition, decision, t) {
			return rules.New(condition, decision)
		}
	}
	return nil
}
