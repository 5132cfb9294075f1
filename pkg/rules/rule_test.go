/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule_test.go
Description: Tests for rule matching, generality, rendering and renaming.
*/

package rules_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, rows [][]table.Code) *table.Table {
	t.Helper()
	tbl, err := table.New(rows)
	require.NoError(t, err)
	return tbl
}

func TestConditionMatchesIgnoresOrder(t *testing.T) {
	tbl := mustTable(t, [][]table.Code{
		{0, 1, 2, 9},
		{0, 2, 2, 9},
	})

	forward := rules.Condition{{Attribute: 0, Value: 0}, {Attribute: 2, Value: 2}}
	backward := rules.Condition{{Attribute: 2, Value: 2}, {Attribute: 0, Value: 0}}
	for i := 0; i < tbl.Len(); i++ {
		assert.True(t, forward.Matches(tbl, i))
		assert.True(t, backward.Matches(tbl, i))
	}

	assert.False(t, rules.Condition{{Attribute: 1, Value: 1}}.Matches(tbl, 1))
	assert.True(t, rules.Condition{}.Matches(tbl, 0), "empty condition matches every row")
}

func TestConditionFromRow(t *testing.T) {
	tbl := mustTable(t, [][]table.Code{{4, 5, 6, 7}})

	cond := rules.ConditionFromRow(tbl, 0, []int{0, 2})
	assert.Equal(t, rules.Condition{{Attribute: 0, Value: 4}, {Attribute: 2, Value: 6}}, cond)
	assert.Equal(t, []int{0, 2}, cond.Attributes())

	v, ok := cond.Get(2)
	assert.True(t, ok)
	assert.Equal(t, table.Code(6), v)
	_, ok = cond.Get(1)
	assert.False(t, ok)
}

func TestGeneralizes(t *testing.T) {
	general := rules.New(rules.Condition{{Attribute: 1, Value: 3}}, 0)
	specific := rules.New(rules.Condition{{Attribute: 0, Value: 2}, {Attribute: 1, Value: 3}}, 0)
	other := rules.New(rules.Condition{{Attribute: 0, Value: 2}, {Attribute: 1, Value: 4}}, 0)

	assert.True(t, general.Generalizes(specific))
	assert.False(t, specific.Generalizes(general))
	assert.False(t, general.Generalizes(other))
	assert.True(t, specific.Generalizes(specific))
}

func TestNewCopiesConditionAndSetsScale(t *testing.T) {
	cond := rules.Condition{{Attribute: 0, Value: 1}, {Attribute: 1, Value: 1}}
	r := rules.New(cond, 2)
	cond[0].Value = 5

	assert.Equal(t, 2, r.Scale)
	assert.Equal(t, table.Code(1), r.Condition[0].Value)
	assert.Zero(t, r.Support)
}

func TestCovers(t *testing.T) {
	tbl := mustTable(t, [][]table.Code{
		{0, 1, 2},
		{0, 1, 3},
	})
	r := rules.New(rules.Condition{{Attribute: 0, Value: 0}}, 2)

	assert.True(t, r.Covers(tbl, 0))
	assert.False(t, r.Covers(tbl, 1))
}

func TestString(t *testing.T) {
	r := rules.New(rules.Condition{{Attribute: 0, Value: 1}, {Attribute: 3, Value: 0}}, 2)
	r.Support = 4
	assert.Equal(t, "a0=1 AND a3=0 => 2 (support=4)", r.String())

	r.Condition[0].Symbol = "sunny"
	r.Condition[1].Symbol = "high"
	r.DecisionSymbol = "no"
	assert.Equal(t, "a0=sunny AND a3=high => no (support=4)", r.String())
}

func TestRenameAndRestoreRoundTrip(t *testing.T) {
	tbl, symbols, err := table.Parse(strings.NewReader("A B 1\nA A 1\nB B 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	original := []*rules.Rule{
		rules.New(rules.Condition{{Attribute: 0, Value: 1}}, 3),
		rules.New(rules.Condition{{Attribute: 0, Value: 0}, {Attribute: 1, Value: 1}}, 2),
	}
	original[0].Support = 1
	original[1].Support = 1

	renamed := make([]*rules.Rule, len(original))
	for i, r := range original {
		renamed[i] = r.Clone()
	}

	require.NoError(t, rules.Rename(renamed, symbols))
	assert.Equal(t, "a0=B => 2 (support=1)", renamed[0].String())
	assert.Equal(t, "a0=A AND a1=B => 1 (support=1)", renamed[1].String())

	for _, r := range renamed {
		for i := range r.Condition {
			r.Condition[i].Value = -1
		}
		r.Decision = -1
	}
	require.NoError(t, rules.Restore(renamed, symbols))

	for _, r := range renamed {
		r.DecisionSymbol = ""
		for i := range r.Condition {
			r.Condition[i].Symbol = ""
		}
	}
	if diff := cmp.Diff(original, renamed); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}
}

func TestRenameUnknownCode(t *testing.T) {
	_, symbols, err := table.Parse(strings.NewReader("a b\n"))
	require.NoError(t, err)

	err = rules.Rename([]*rules.Rule{rules.New(rules.Condition{{Attribute: 0, Value: 42}}, 1)}, symbols)
	assert.ErrorIs(t, err, table.ErrUnknownCode)

	err = rules.Restore([]*rules.Rule{rules.New(nil, 1)}, symbols)
	assert.ErrorIs(t, err, table.ErrUnknownSymbol)
}
