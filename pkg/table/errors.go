/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error values for decision table construction and parsing.
*/

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when the input holds no rows
	ErrEmptyTable = errors.New("table: no rows")
	// ErrRaggedRow is returned when rows differ in their number of columns
	ErrRaggedRow = errors.New("table: rows of unequal length")
	// ErrNoAttributes is returned when rows carry a decision but no condition attribute
	ErrNoAttributes = errors.New("table: no condition attributes")
	// ErrNegativeCode is returned by New when a row holds a negative code
	ErrNegativeCode = errors.New("table: negative code")
	// ErrUnknownCode is returned when a code has no symbol in the dictionary
	ErrUnknownCode = errors.New("table: unknown code")
	// ErrUnknownSymbol is returned when a symbol has no code in the dictionary
	ErrUnknownSymbol = errors.New("table: unknown symbol")
)

// ParseError reports a problem on a specific line of the input
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
