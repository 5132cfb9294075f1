/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Decision rule model. A rule pairs a conjunctive condition (attribute=value
descriptors kept in insertion order) with a decision, its scale and its support.
Matching treats the condition as an unordered set of constraints.
*/

package rules

import (
	"fmt"
	"strings"

	"github.com/kleascm/roughrules/pkg/table"
)

// Descriptor is a single attribute=value constraint
// Symbol holds the original token once the rule has been renamed
type Descriptor struct {
	Attribute int        `json:"attribute" yaml:"attribute"`
	Value     table.Code `json:"value" yaml:"value"`
	Symbol    string     `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Label renders the descriptor as attribute=value
func (d Descriptor) Label() string {
	if d.Symbol != "" {
		return fmt.Sprintf("a%d=%s", d.Attribute, d.Symbol)
	}
	return fmt.Sprintf("a%d=%d", d.Attribute, d.Value)
}

// Condition is a conjunction of descriptors with unique attributes
type Condition []Descriptor

// ConditionFromRow builds the condition induced by row i of t on the given attributes
func ConditionFromRow(t *table.Table, i int, attributes []int) Condition {
	condition := make(Condition, len(attributes))
	for k, a := range attributes {
		condition[k] = Descriptor{Attribute: a, Value: t.Value(i, a)}
	}
	return condition
}

// Matches reports whether row i of t satisfies every descriptor
func (c Condition) Matches(t *table.Table, i int) bool {
	for _, d := range c {
		if t.Value(i, d.Attribute) != d.Value {
			return false
		}
	}
	return true
}

// Get returns the required value of attribute a
func (c Condition) Get(a int) (table.Code, bool) {
	for _, d := range c {
		if d.Attribute == a {
			return d.Value, true
		}
	}
	return 0, false
}

// Attributes returns the constrained attributes in insertion order
func (c Condition) Attributes() []int {
	attrs := make([]int, len(c))
	for i, d := range c {
		attrs[i] = d.Attribute
	}
	return attrs
}

// SubsetOf reports whether every descriptor of c appears in other with the same value
func (c Condition) SubsetOf(other Condition) bool {
	for _, d := range c {
		v, ok := other.Get(d.Attribute)
		if !ok || v != d.Value {
			return false
		}
	}
	return true
}

// Rule is a consistent decision rule
type Rule struct {
	Condition      Condition  `json:"condition" yaml:"condition"`
	Decision       table.Code `json:"decision" yaml:"decision"`
	DecisionSymbol string     `json:"decision_symbol,omitempty" yaml:"decision_symbol,omitempty"`
	Scale          int        `json:"scale" yaml:"scale"`
	Support        int        `json:"support" yaml:"support"`
}

// New creates a rule with zero support; the scale is the size of condition
func New(condition Condition, decision table.Code) *Rule {
	return &Rule{
		Condition: append(Condition(nil), condition...),
		Decision:  decision,
		Scale:     len(condition),
	}
}

// Covers reports whether row i matches the condition and carries the rule's decision
func (r *Rule) Covers(t *table.Table, i int) bool {
	return t.Decision(i) == r.Decision && r.Condition.Matches(t, i)
}

// Generalizes reports whether r is at least as general as other,
// i.e. r's condition is a subset of other's with equal values
func (r *Rule) Generalizes(other *Rule) bool {
	return r.Condition.SubsetOf(other.Condition)
}

// Clone returns a deep copy of the rule
func (r *Rule) Clone() *Rule {
	c := *r
	c.Condition = append(Condition(nil), r.Condition...)
	return &c
}

// DecisionLabel renders the decision symbol, or its code before renaming
func (r *Rule) DecisionLabel() string {
	if r.DecisionSymbol != "" {
		return r.DecisionSymbol
	}
	return fmt.Sprintf("%d", r.Decision)
}

// ConditionLabel renders the condition as a conjunction of descriptors
func (r *Rule) ConditionLabel() string {
	parts := make([]string, len(r.Condition))
	for i, d := range r.Condition {
		parts[i] = d.Label()
	}
	return strings.Join(parts, " AND ")
}

// String renders the rule as "a0=x AND a1=y => d (support=N)"
func (r *Rule) String() string {
	return fmt.Sprintf("%s => %s (support=%d)", r.ConditionLabel(), r.DecisionLabel(), r.Support)
}
