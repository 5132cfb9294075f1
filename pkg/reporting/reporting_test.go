/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporting_test.go
Description: Tests for report generation: grouping by scale, the rule tree, every output
format and the timestamped report files.
*/

package reporting_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/reporting"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// twoOrderRun induces rules of scale 1 and 2 with the covering algorithm
func twoOrderRun(t *testing.T) *engine.Run {
	t.Helper()
	tbl, err := table.New([][]table.Code{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 2},
	})
	require.NoError(t, err)

	run, err := engine.NewEngine().Induce(context.Background(), "covering", tbl, nil, "memory", false)
	require.NoError(t, err)
	return run
}

func symbolRun(t *testing.T, content string) *engine.Run {
	t.Helper()
	tbl, symbols, err := table.Parse(strings.NewReader(content))
	require.NoError(t, err)

	run, err := engine.NewEngine().Induce(context.Background(), "lem2", tbl, symbols, "weather.txt", false)
	require.NoError(t, err)
	return run
}

func TestGroupByScale(t *testing.T) {
	short := rules.New(rules.Condition{{Attribute: 0, Value: 1}}, 3)
	long := rules.New(rules.Condition{{Attribute: 0, Value: 1}, {Attribute: 1, Value: 2}}, 3)
	other := rules.New(rules.Condition{{Attribute: 1, Value: 4}}, 5)

	groups := reporting.GroupByScale([]*rules.Rule{long, short, other})
	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].Scale)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, []*rules.Rule{short, other}, groups[0].Rules)

	assert.Equal(t, 2, groups[1].Scale)
	assert.Equal(t, []*rules.Rule{long}, groups[1].Rules)

	assert.Empty(t, reporting.GroupByScale(nil))
}

func TestTreeRendering(t *testing.T) {
	run := twoOrderRun(t)

	want := strings.Join([]string{
		"All orders (3)",
		"├── Order 1 (2)",
		"│   ├── a1=1 => 2 (support=1)",
		"│   └── a0=1 => 2 (support=1)",
		"└── Order 2 (1)",
		"    └── a0=0 AND a1=0 => 1 (support=1)",
		"",
	}, "\n")

	assert.Equal(t, want, reporting.NewTreeRenderer(false).Render(run.Rules))
	assert.Equal(t, "All orders (0)\n", reporting.NewTreeRenderer(false).Render(nil))
}

func TestParseFormat(t *testing.T) {
	f, err := reporting.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, reporting.FormatYAML, f)
	assert.Equal(t, "txt", reporting.FormatText.Extension())
	assert.Equal(t, "html", reporting.FormatHTML.Extension())

	_, err = reporting.ParseFormat("pdf")
	assert.ErrorIs(t, err, reporting.ErrUnknownFormat)

	_, err = reporting.NewRenderer("pdf", false)
	assert.ErrorIs(t, err, reporting.ErrUnknownFormat)
}

func TestNewReport(t *testing.T) {
	run := twoOrderRun(t)
	report := reporting.NewReport(run, "")

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "Decision rules", report.Title)
	assert.Equal(t, run.ID, report.RunID)
	assert.Equal(t, "covering", report.Algorithm)
	assert.Equal(t, 3, report.TotalRules)
	assert.Len(t, report.Groups, 2)
	assert.Equal(t, run.Rules, report.Rules())
}

func TestRenderFormats(t *testing.T) {
	run := symbolRun(t, "sunny hot no\nsunny cold no\nrain hot yes\n")
	report := reporting.NewReport(run, "Weather")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := reporting.NewRenderer(reporting.FormatText, false)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(&buf, report))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Weather\nAlgorithm: lem2\n"))
		assert.Contains(t, out, "Table: 3 rows, 2 attributes, 2 concepts")
		assert.Contains(t, out, "    ├── a0=sunny => no (support=2)")
		assert.Contains(t, out, "    └── a0=rain => yes (support=1)")
		assert.NotContains(t, out, "Unexplained")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := reporting.NewRenderer(reporting.FormatJSON, false)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(&buf, report))

		var decoded reporting.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 2, decoded.TotalRules)
		require.Len(t, decoded.Groups, 1)
		assert.Equal(t, "no", decoded.Groups[0].Rules[0].DecisionSymbol)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := reporting.NewRenderer(reporting.FormatYAML, false)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(&buf, report))

		var decoded map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "Weather", decoded["title"])
		assert.Equal(t, "lem2", decoded["algorithm"])
	})

	t.Run("html", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := reporting.NewRenderer(reporting.FormatHTML, false)
		require.NoError(t, err)
		require.NoError(t, renderer.Render(&buf, report))

		out := buf.String()
		assert.Contains(t, out, "<title>Weather - RoughRules</title>")
		assert.Contains(t, out, "Order 1 (2)")
		assert.Contains(t, out, "a0=sunny =&gt; no (support=2)")
	})
}

func TestRenderUnexplainedRows(t *testing.T) {
	run := symbolRun(t, "sunny hot no\nsunny hot yes\nrain cold yes\n")
	report := reporting.NewReport(run, "Conflicts")

	var buf bytes.Buffer
	renderer, err := reporting.NewRenderer(reporting.FormatText, false)
	require.NoError(t, err)
	require.NoError(t, renderer.Render(&buf, report))
	assert.Contains(t, buf.String(), "Unexplained rows: [0 1]")
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	report := reporting.NewReport(twoOrderRun(t), "Written")

	path, err := reporting.WriteReport(dir, report, reporting.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_covering.json"))
	assert.Contains(t, filepath.Base(path), report.GeneratedAt.Format("2006-01-02_15-04-05"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title": "Written"`)

	_, err = reporting.WriteReport(dir, report, "pdf")
	assert.ErrorIs(t, err, reporting.ErrUnknownFormat)
}
