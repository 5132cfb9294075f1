/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for RoughRules run events. The
engine notifies reporters when a table is loaded, for every induced rule, and when the
run finishes.
*/

package engine

import (
	"github.com/kleascm/roughrules/pkg/logging"
	"github.com/kleascm/roughrules/pkg/rules"
)

// Reporter defines the interface for run event hooks
type Reporter interface {
	// OnTableLoaded is called once the table is validated, before induction
	OnTableLoaded(run *Run)
	// OnRuleInduced is called for every rule, in induction order
	OnRuleInduced(run *Run, rule *rules.Rule)
	// OnRunFinished is called after rules are renamed and timing is recorded
	OnRunFinished(run *Run)
}

// LoggerReporter logs run events through the structured logger
type LoggerReporter struct {
	logger *logging.Logger
}

// NewLoggerReporter creates a new LoggerReporter
func NewLoggerReporter(logger *logging.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnTableLoaded logs the table summary and any contradictory rows
func (r *LoggerReporter) OnTableLoaded(run *Run) {
	r.logger.LogTableLoaded(run.ID, run.Source, run.Stats.Rows, run.Stats.Attributes,
		len(run.Stats.Concepts), run.Stats.Conflicts)
}

// OnRuleInduced logs an induced rule at debug level
func (r *LoggerReporter) OnRuleInduced(run *Run, rule *rules.Rule) {
	r.logger.LogRuleInduced(run.ID, rule.Scale, rule.Support, rule.String())
}

// OnRunFinished logs the run outcome and warns about unexplained rows
func (r *LoggerReporter) OnRunFinished(run *Run) {
	if !run.Consistent() {
		r.logger.LogUnexplainedRows(run.ID, run.Unexplained)
	}
	r.logger.LogInductionFinished(run.ID, string(run.Algorithm), len(run.Rules), run.Duration)
}

// CollectingReporter keeps every event in memory
type CollectingReporter struct {
	Loaded   []*Run
	Induced  []*rules.Rule
	Finished []*Run
}

// OnTableLoaded records the run
func (c *CollectingReporter) OnTableLoaded(run *Run) {
	c.Loaded = append(c.Loaded, run)
}

// OnRuleInduced records the rule
func (c *CollectingReporter) OnRuleInduced(run *Run, rule *rules.Rule) {
	c.Induced = append(c.Induced, rule)
}

// OnRunFinished records the run
func (c *CollectingReporter) OnRunFinished(run *Run) {
	c.Finished = append(c.Finished, run)
}
