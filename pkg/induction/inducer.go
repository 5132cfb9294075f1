/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inducer.go
Description: Main entry point for rule induction. Provides the Inducer interface, the
algorithm registry and the Result type shared by the covering, exhaustive and LEM2
implementations.
*/

package induction

import (
	"fmt"
	"strings"

	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// Algorithm names a rule induction algorithm
type Algorithm string

const (
	Covering   Algorithm = "covering"
	Exhaustive Algorithm = "exhaustive"
	LEM2       Algorithm = "lem2"
)

// Inducer defines the interface for rule induction algorithms
type Inducer interface {
	Induce(t *table.Table) *Result
	Algorithm() Algorithm
}

// Result holds the rules produced by one induction run
type Result struct {
	Algorithm Algorithm
	// Rules in induction order
	Rules []*rules.Rule
	// Unexplained lists rows not covered by any rule carrying their decision
	Unexplained []int
}

// Algorithms returns every supported algorithm
func Algorithms() []Algorithm {
	return []Algorithm{Covering, Exhaustive, LEM2}
}

// ParseAlgorithm resolves a case-insensitive algorithm name
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// NewInducer returns the inducer registered under name
func NewInducer(name string) (Inducer, error) {
	a, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	switch a {
	case Covering:
		return NewCoveringInducer(), nil
	case Exhaustive:
		return NewExhaustiveInducer(), nil
	default:
		return NewLEM2Inducer(), nil
	}
}

// Induce runs the named algorithm on t
func Induce(name string, t *table.Table) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	inducer, err := NewInducer(name)
	if err != nil {
		return nil, err
	}
	return inducer.Induce(t), nil
}

// Describe returns a one-line description of a
func Describe(a Algorithm) string {
	switch a {
	case Covering:
		return "Sequential covering: shortest consistent condition per row, covered rows are eliminated"
	case Exhaustive:
		return "Discernibility matrix: every minimal consistent condition of every row"
	case LEM2:
		return "Modular covering per decision class, greedy on the most frequent attribute=value pair"
	default:
		return ""
	}
}

// newResult finalises a result by collecting the rows left unexplained
func newResult(a Algorithm, t *table.Table, induced []*rules.Rule) *Result {
	res := &Result{Algorithm: a, Rules: induced}
	for i := 0; i < t.Len(); i++ {
		explained := false
		for _, r := range induced {
			if r.Covers(t, i) {
				explained = true
				break
			}
		}
		if !explained {
			res.Unexplained = append(res.Unexplained, i)
		}
	}
	return res
}
