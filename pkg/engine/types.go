/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the RoughRules engine: the run configuration and the
record of one induction run (table summary, rules, unexplained rows, timing).
*/

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/kleascm/roughrules/pkg/induction"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
)

// ErrNoInput is returned when the configuration names no input file
var ErrNoInput = errors.New("engine: input file is required")

// Config holds the parameters of one induction run
type Config struct {
	InputPath string `json:"input_path" mapstructure:"input"`
	Algorithm string `json:"algorithm" mapstructure:"algorithm"`
	// Strict turns rows left unexplained into an error
	Strict bool `json:"strict" mapstructure:"strict"`
}

// Validate checks the configuration before any file is touched
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}
	if _, err := induction.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("invalid algorithm: %w", err)
	}
	return nil
}

// Run records the outcome of one induction run
type Run struct {
	ID          string              `json:"id"`
	Algorithm   induction.Algorithm `json:"algorithm"`
	Source      string              `json:"source"`
	Stats       table.Stats         `json:"stats"`
	Rules       []*rules.Rule       `json:"rules"`
	Unexplained []int               `json:"unexplained,omitempty"`
	StartedAt   time.Time           `json:"started_at"`
	Duration    time.Duration       `json:"duration"`
}

// Consistent reports whether every row is explained by some rule
func (r *Run) Consistent() bool {
	return len(r.Unexplained) == 0
}
