/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: RoughRules engine. Drives one induction run end to end: load and validate
the decision table, run the selected algorithm, translate codes back to the original
symbols, and notify the registered reporters.
*/

package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/roughrules/pkg/induction"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// Engine runs rule induction and reports its progress
type Engine struct {
	reporters []Reporter
	now       func() time.Time

	// Serialises reporter notifications from concurrent runs
	mu sync.Mutex
}

// NewEngine creates an engine without reporters
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// AddReporter registers a reporter for run events
func (e *Engine) AddReporter(r Reporter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reporters = append(e.reporters, r)
}

// Run loads cfg.InputPath and induces rules with cfg.Algorithm
func (e *Engine) Run(ctx context.Context, cfg *Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	t, symbols, err := table.Load(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load decision table: %w", err)
	}

	return e.Induce(ctx, cfg.Algorithm, t, symbols, cfg.InputPath, cfg.Strict)
}

// Induce runs algorithm over an already loaded table
//
// When symbols is non-nil the rules are renamed to the original tokens. In strict
// mode a table with unexplained rows yields the run together with an error
// wrapping induction.ErrInconsistentTable.
// The induction itself is not interruptible; ctx is checked before it starts.
func (e *Engine) Induce(ctx context.Context, algorithm string, t *table.Table, symbols *table.Symbols, source string, strict bool) (*Run, error) {
	inducer, err := induction.NewInducer(algorithm)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, induction.ErrNilTable
	}

	run := &Run{
		ID:        uuid.New().String(),
		Algorithm: inducer.Algorithm(),
		Source:    source,
		Stats:     t.Stats(),
		StartedAt: e.now(),
	}

	e.notify(func(r Reporter) {
		r.OnTableLoaded(run)
	})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("induction cancelled: %w", err)
	}

	result := inducer.Induce(t)
	run.Rules = result.Rules
	run.Unexplained = result.Unexplained

	if symbols != nil {
		if err := rules.Rename(run.Rules, symbols); err != nil {
			return nil, fmt.Errorf("failed to rename rules: %w", err)
		}
	}

	run.Duration = e.now().Sub(run.StartedAt)

	e.notify(func(rep Reporter) {
		for _, r := range run.Rules {
			rep.OnRuleInduced(run, r)
		}
		rep.OnRunFinished(run)
	})

	if strict && !run.Consistent() {
		return run, fmt.Errorf("%w: %d row(s) unexplained %v", induction.ErrInconsistentTable, len(run.Unexplained), run.Unexplained)
	}

	return run, nil
}

func (e *Engine) notify(fn func(Reporter)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range e.reporters {
		fn(r)
	}
}
