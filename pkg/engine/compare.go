/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Runs several induction algorithms over the same decision table in parallel
workers. The table and its dictionary are shared read-only; every worker produces its
own run.
*/

package engine

import (
	"context"
	"fmt"

	"github.com/kleascm/roughrules/pkg/induction"
	"github.com/kleascm/roughrules/pkg/table"
	"golang.org/x/sync/errgroup"
)

// Compare loads path once and induces rules with every algorithm concurrently
// Runs are returned in the order of algorithms; an empty list means all algorithms.
func (e *Engine) Compare(ctx context.Context, path string, algorithms []string) ([]*Run, error) {
	if path == "" {
		return nil, ErrNoInput
	}
	if len(algorithms) == 0 {
		for _, a := range induction.Algorithms() {
			algorithms = append(algorithms, string(a))
		}
	}
	for _, name := range algorithms {
		if _, err := induction.ParseAlgorithm(name); err != nil {
			return nil, fmt.Errorf("invalid algorithm: %w", err)
		}
	}

	t, symbols, err := table.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision table: %w", err)
	}

	runs := make([]*Run, len(algorithms))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range algorithms {
		i, name := i, name
		eg.Go(func() error {
			run, err := e.Induce(egCtx, name, t, symbols, path, false)
			if err != nil {
				return fmt.Errorf("worker %s failed: %w", name, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}
