/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for RoughRules. Provides list-algorithms, check and
inspect for exploring algorithms and validating decision tables before induction.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/induction"
	"github.com/kleascm/roughrules/pkg/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListAlgorithms lists the induction algorithms and how they choose rules
func ListAlgorithms(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "RoughRules - Available Algorithms")
	fmt.Fprintln(out, "=================================")
	fmt.Fprintln(out)

	for i, a := range induction.Algorithms() {
		fmt.Fprintf(out, "%d. %s\n", i+1, a)
		fmt.Fprintf(out, "   %s\n", induction.Describe(a))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use --algorithm with the induce command to select one")
}

// loadInput reads the table named by the input key
func loadInput() (*table.Table, *table.Symbols, string, error) {
	if err := LoadConfig(); err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}

	path := viper.GetString("input")
	if path == "" {
		return nil, nil, "", engine.ErrNoInput
	}

	t, symbols, err := table.Load(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load decision table: %w", err)
	}
	return t, symbols, path, nil
}

// RunCheck validates a decision table and prints its diagnostics
func RunCheck(cmd *cobra.Command, args []string) error {
	t, symbols, path, err := loadInput()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stats := t.Stats()

	fmt.Fprintf(out, "Table: %s\n", path)
	fmt.Fprintf(out, "Rows: %d\n", stats.Rows)
	fmt.Fprintf(out, "Attributes: %d\n", stats.Attributes)
	fmt.Fprintf(out, "Symbols: %d\n", symbols.Len())
	fmt.Fprintf(out, "Concepts: %d\n", len(stats.Concepts))

	for _, c := range stats.Concepts {
		name, err := symbols.Symbol(c.Decision)
		if err != nil {
			return fmt.Errorf("failed to resolve decision %d: %w", c.Decision, err)
		}
		fmt.Fprintf(out, "  %s: %d rows\n", name, c.Rows)
	}

	conflicts := t.Conflicts()
	if len(conflicts) == 0 {
		fmt.Fprintln(out, "Consistent: yes")
		return nil
	}

	fmt.Fprintf(out, "Consistent: no (%d contradictory pairs)\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(out, "  rows %d and %d share a condition but differ in decision\n", c.First, c.Second)
	}
	return nil
}

// RunInspect prints the encoded table and its symbol dictionary
func RunInspect(cmd *cobra.Command, args []string) error {
	t, symbols, _, err := loadInput()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Symbols")
	for code, symbol := range symbols.List() {
		fmt.Fprintf(out, "  %3d  %s\n", code, symbol)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Rows")
	writeHeader(out, t.NumAttributes())
	for i, row := range t.Rows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%4d", v)
		}
		fmt.Fprintf(out, "  %4d %s\n", i, strings.Join(cells, ""))
	}
	return nil
}

func writeHeader(out io.Writer, attributes int) {
	cells := make([]string, 0, attributes+1)
	for a := 0; a < attributes; a++ {
		cells = append(cells, fmt.Sprintf("%4s", fmt.Sprintf("a%d", a)))
	}
	cells = append(cells, fmt.Sprintf("%4s", "d"))
	fmt.Fprintf(out, "  %4s %s\n", "row", strings.Join(cells, ""))
}
