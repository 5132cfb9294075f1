/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tree.go
Description: Rule tree rendering for the terminal. Rules are grouped by scale under an
"All orders" root, one "Order k" branch per rule length, styled with lipgloss when
colors are enabled.
*/

package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kleascm/roughrules/pkg/rules"
)

// Group holds the rules of one scale in induction order
type Group struct {
	Scale int           `json:"scale" yaml:"scale"`
	Count int           `json:"count" yaml:"count"`
	Rules []*rules.Rule `json:"rules" yaml:"rules"`
}

// GroupByScale groups rules by scale ascending, keeping the order within each group
func GroupByScale(rs []*rules.Rule) []Group {
	index := make(map[int]int)
	var groups []Group

	for _, r := range rs {
		i, ok := index[r.Scale]
		if !ok {
			i = len(groups)
			index[r.Scale] = i
			groups = append(groups, Group{Scale: r.Scale})
		}
		groups[i].Rules = append(groups[i].Rules, r)
		groups[i].Count++
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Scale < groups[b].Scale
	})

	return groups
}

// Palette
var (
	rootColor  = lipgloss.Color("#8BC34A")
	orderColor = lipgloss.Color("#2196F3")
	ruleColor  = lipgloss.Color("#f2f2f2")
	treeColor  = lipgloss.Color("#2a3850")
)

// TreeRenderer renders grouped rules as a tree
type TreeRenderer struct {
	colors bool
	root   lipgloss.Style
	order  lipgloss.Style
	rule   lipgloss.Style
	branch lipgloss.Style
}

// NewTreeRenderer creates a renderer; without colors the output is plain text
func NewTreeRenderer(colors bool) *TreeRenderer {
	return &TreeRenderer{
		colors: colors,
		root: lipgloss.NewStyle().
			Foreground(rootColor).
			Bold(true),
		order: lipgloss.NewStyle().
			Foreground(orderColor).
			Bold(true),
		rule: lipgloss.NewStyle().
			Foreground(ruleColor),
		branch: lipgloss.NewStyle().
			Foreground(treeColor),
	}
}

func (tr *TreeRenderer) paint(style lipgloss.Style, s string) string {
	if !tr.colors {
		return s
	}
	return style.Render(s)
}

// Render draws the rules grouped by scale
func (tr *TreeRenderer) Render(rs []*rules.Rule) string {
	var b strings.Builder

	b.WriteString(tr.paint(tr.root, fmt.Sprintf("All orders (%d)", len(rs))))
	b.WriteString("\n")

	groups := GroupByScale(rs)
	for gi, g := range groups {
		lastGroup := gi == len(groups)-1

		connector, indent := "├── ", "│   "
		if lastGroup {
			connector, indent = "└── ", "    "
		}

		b.WriteString(tr.paint(tr.branch, connector))
		b.WriteString(tr.paint(tr.order, fmt.Sprintf("Order %d (%d)", g.Scale, g.Count)))
		b.WriteString("\n")

		for ri, r := range g.Rules {
			leaf := "├── "
			if ri == len(g.Rules)-1 {
				leaf = "└── "
			}
			b.WriteString(tr.paint(tr.branch, indent+leaf))
			b.WriteString(tr.paint(tr.rule, r.String()))
			b.WriteString("\n")
		}
	}

	return b.String()
}
