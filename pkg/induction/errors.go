/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error values returned by the induction package.
*/

package induction

import "errors"

var (
	// ErrUnknownAlgorithm is returned for names outside covering, exhaustive and lem2
	ErrUnknownAlgorithm = errors.New("induction: unknown algorithm")
	// ErrNilTable is returned when no table is supplied
	ErrNilTable = errors.New("induction: nil table")
	// ErrInconsistentTable marks tables with rows no consistent rule can explain
	ErrInconsistentTable = errors.New("induction: inconsistent decision table")
)
