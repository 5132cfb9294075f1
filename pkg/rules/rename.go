/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rename.go
Description: Translation of rules between integer codes and the original tokens.
Rename fills in symbols in place; Restore recomputes codes from those symbols.
*/

package rules

import (
	"fmt"

	"github.com/kleascm/roughrules/pkg/table"
)

// Rename replaces the codes of every rule with their original symbols, in place
func Rename(rs []*Rule, symbols *table.Symbols) error {
	for _, r := range rs {
		for i := range r.Condition {
			symbol, err := symbols.Symbol(r.Condition[i].Value)
			if err != nil {
				return fmt.Errorf("failed to rename descriptor a%d: %w", r.Condition[i].Attribute, err)
			}
			r.Condition[i].Symbol = symbol
		}

		symbol, err := symbols.Symbol(r.Decision)
		if err != nil {
			return fmt.Errorf("failed to rename decision: %w", err)
		}
		r.DecisionSymbol = symbol
	}
	return nil
}

// Restore recomputes every code from its symbol, in place
// Rules that were never renamed are rejected
func Restore(rs []*Rule, symbols *table.Symbols) error {
	for _, r := range rs {
		for i := range r.Condition {
			code, err := symbols.Code(r.Condition[i].Symbol)
			if err != nil {
				return fmt.Errorf("failed to restore descriptor a%d: %w", r.Condition[i].Attribute, err)
			}
			r.Condition[i].Value = code
		}

		code, err := symbols.Code(r.DecisionSymbol)
		if err != nil {
			return fmt.Errorf("failed to restore decision: %w", err)
		}
		r.Decision = code
	}
	return nil
}
