/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats.go
Description: Table diagnostics used by the check command and the engine: row and
attribute counts, concept sizes, and rows whose conditions are identical while their
decisions differ.
*/

package table

// ConceptStats describes one decision class
type ConceptStats struct {
	Decision Code `json:"decision" yaml:"decision"`
	Rows     int  `json:"rows" yaml:"rows"`
}

// Stats summarises a decision table
type Stats struct {
	Rows       int            `json:"rows" yaml:"rows"`
	Attributes int            `json:"attributes" yaml:"attributes"`
	Concepts   []ConceptStats `json:"concepts" yaml:"concepts"`
	Conflicts  int            `json:"conflicts" yaml:"conflicts"`
}

// Conflict is a pair of rows that agree on every attribute but not on the decision
type Conflict struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// Stats computes the summary of t
func (t *Table) Stats() Stats {
	stats := Stats{
		Rows:       t.Len(),
		Attributes: t.NumAttributes(),
		Conflicts:  len(t.Conflicts()),
	}
	for _, d := range t.Decisions() {
		stats.Concepts = append(stats.Concepts, ConceptStats{Decision: d, Rows: len(t.Concept(d))})
	}
	return stats
}

// Conflicts returns every pair of contradictory rows, ordered by first then second index
func (t *Table) Conflicts() []Conflict {
	var conflicts []Conflict
	for i := 0; i < t.Len(); i++ {
		for j := i + 1; j < t.Len(); j++ {
			if t.Decision(i) != t.Decision(j) && t.sameCondition(i, j) {
				conflicts = append(conflicts, Conflict{First: i, Second: j})
			}
		}
	}
	return conflicts
}

func (t *Table) sameCondition(i, j int) bool {
	for a := 0; a < t.NumAttributes(); a++ {
		if t.rows[i][a] != t.rows[j][a] {
			return false
		}
	}
	return true
}
