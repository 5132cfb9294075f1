/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: lem2.go
Description: LEM2 modular covering. Each decision class is covered independently:
a rule grows one descriptor at a time from the most frequent attribute=value pair
among the goal rows it still matches, until it is consistent with the whole table.
*/

package induction

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// LEM2Inducer implements the LEM2 algorithm
type LEM2Inducer struct{}

// NewLEM2Inducer creates a LEM2 inducer
func NewLEM2Inducer() *LEM2Inducer {
	return &LEM2Inducer{}
}

// Algorithm returns LEM2
func (l *LEM2Inducer) Algorithm() Algorithm {
	return LEM2
}

// Induce covers every concept of t in order of first appearance
func (l *LEM2Inducer) Induce(t *table.Table) *Result {
	var induced []*rules.Rule
	for _, decision := range t.Decisions() {
		induced = append(induced, coverConcept(t, decision)...)
	}
	return newResult(LEM2, t, induced)
}

// coverConcept produces the rules of one decision class
// Goal rows that stay inconsistent with every attribute used are dropped from the
// goal so the loop always terminates.
func coverConcept(t *table.Table, decision table.Code) []*rules.Rule {
	concept := bitset.New(uint(t.Len()))
	for _, i := range t.Concept(decision) {
		concept.Set(uint(i))
	}
	if concept.None() {
		return nil
	}

	var induced []*rules.Rule
	goal := concept.Clone()

	for goal.Any() {
		var condition rules.Condition
		candidates := allAttributes(t.NumAttributes())
		objects := concept.Clone()
		consistent := false

		for len(candidates) > 0 {
			pos, value := bestDescriptor(t, candidates, goal, objects)
			attr := candidates[pos]
			condition = append(condition, rules.Descriptor{Attribute: attr, Value: value})
			candidates = append(candidates[:pos], candidates[pos+1:]...)
			narrow(t, objects, attr, value)

			if IsConsistent(condition, decision, t) {
				consistent = true
				break
			}
		}

		if !consistent {
			goal.InPlaceDifference(objects)
			continue
		}

		rule := rules.New(condition, decision)
		for i, ok := objects.NextSet(0); ok; i, ok = objects.NextSet(i + 1) {
			if rule.Covers(t, int(i)) {
				rule.Support++
				goal.Clear(i)
			}
		}
		induced = append(induced, rule)
	}

	return induced
}

// bestDescriptor picks, among candidate attributes, the attribute=value pair that
// occurs most often in goal ∩ objects. Ties keep the earlier attribute, and within
// an attribute the value seen first in row order.
func bestDescriptor(t *table.Table, candidates []int, goal, objects *bitset.BitSet) (int, table.Code) {
	relevant := goal.Intersection(objects)

	bestPos, bestCount := 0, 0
	var bestValue table.Code
	for pos, attr := range candidates {
		counts := make(map[table.Code]int)
		var order []table.Code
		for i, ok := relevant.NextSet(0); ok; i, ok = relevant.NextSet(i + 1) {
			v := t.Value(int(i), attr)
			if counts[v] == 0 {
				order = append(order, v)
			}
			counts[v]++
		}

		for _, v := range order {
			if counts[v] > bestCount {
				bestPos, bestValue, bestCount = pos, v, counts[v]
			}
		}
	}

	return bestPos, bestValue
}

// narrow drops from objects every row whose attribute attr differs from value
func narrow(t *table.Table, objects *bitset.BitSet, attr int, value table.Code) {
	for i, ok := objects.NextSet(0); ok; i, ok = objects.NextSet(i + 1) {
		if t.Value(int(i), attr) != value {
			objects.Clear(i)
		}
	}
}

func allAttributes(n int) []int {
	attrs := make([]int, n)
	for i := range attrs {
		attrs[i] = i
	}
	return attrs
}
