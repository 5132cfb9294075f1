/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: Encoded decision table. Holds the immutable rows produced by the reader,
where every row carries condition attribute codes followed by one decision code.
Algorithms only read from the table and keep their own bookkeeping outside of it.
*/

package table

import (
	"fmt"
)

// Code is the integer representation of a symbol read from the input
type Code int

// Table is an immutable decision table
// The last column of every row is the decision, all other columns are condition attributes
type Table struct {
	rows  [][]Code
	width int
}

// New builds a table from already encoded rows
// Rows are copied, so the caller may reuse its slices afterwards
func New(rows [][]Code) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	width := len(rows[0])
	if width < 2 {
		return nil, fmt.Errorf("%w: rows have %d column(s)", ErrNoAttributes, width)
	}

	copied := make([][]Code, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedRow, i, len(row), width)
		}
		for _, value := range row {
			if value < 0 {
				return nil, fmt.Errorf("%w: row %d", ErrNegativeCode, i)
			}
		}
		copied[i] = append([]Code(nil), row...)
	}

	return &Table{rows: copied, width: width}, nil
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// NumAttributes returns the number of condition attributes
func (t *Table) NumAttributes() int {
	return t.width - 1
}

// Value returns the code of attribute a in row i
func (t *Table) Value(i, a int) Code {
	return t.rows[i][a]
}

// Decision returns the decision code of row i
func (t *Table) Decision(i int) Code {
	return t.rows[i][t.width-1]
}

// Row returns a copy of row i including its decision
func (t *Table) Row(i int) []Code {
	return append([]Code(nil), t.rows[i]...)
}

// Rows returns a copy of every row
func (t *Table) Rows() [][]Code {
	out := make([][]Code, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Decisions returns the distinct decision codes in order of first appearance
func (t *Table) Decisions() []Code {
	seen := make(map[Code]bool)
	var decisions []Code
	for i := range t.rows {
		d := t.Decision(i)
		if !seen[d] {
			seen[d] = true
			decisions = append(decisions, d)
		}
	}
	return decisions
}

// Concept returns the indices of the rows carrying decision d, in row order
func (t *Table) Concept(d Code) []int {
	var rows []int
	for i := range t.rows {
		if t.Decision(i) == d {
			rows = append(rows, i)
		}
	}
	return rows
}
