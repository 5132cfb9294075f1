/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Induction reports for RoughRules. Builds a report from an engine run and
renders it as a text tree, JSON, YAML or a standalone HTML page.
*/

package reporting

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/rules"
	"github.com/kleascm/roughrules/pkg/table"
	"gopkg.in/yaml.v3"
)

// Format represents a report output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned for unsupported report formats
var ErrUnknownFormat = errors.New("reporting: unknown format")

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatHTML}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Report contains everything shown for one induction run
type Report struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	GeneratedAt time.Time   `json:"generated_at" yaml:"generated_at"`
	RunID       string      `json:"run_id" yaml:"run_id"`
	Algorithm   string      `json:"algorithm" yaml:"algorithm"`
	Source      string      `json:"source" yaml:"source"`
	Stats       table.Stats `json:"stats" yaml:"stats"`
	TotalRules  int         `json:"total_rules" yaml:"total_rules"`
	Groups      []Group     `json:"groups" yaml:"groups"`
	Unexplained []int       `json:"unexplained,omitempty" yaml:"unexplained,omitempty"`
	Duration    string      `json:"duration" yaml:"duration"`
}

// NewReport builds a report from a finished run
func NewReport(run *engine.Run, title string) *Report {
	if title == "" {
		title = "Decision rules"
	}
	return &Report{
		ID:          uuid.New().String(),
		Title:       title,
		GeneratedAt: time.Now(),
		RunID:       run.ID,
		Algorithm:   string(run.Algorithm),
		Source:      run.Source,
		Stats:       run.Stats,
		TotalRules:  len(run.Rules),
		Groups:      GroupByScale(run.Rules),
		Unexplained: run.Unexplained,
		Duration:    run.Duration.String(),
	}
}

// Rules returns the rules of every group in display order
func (r *Report) Rules() []*rules.Rule {
	var out []*rules.Rule
	for _, g := range r.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

// Renderer writes reports in one format
type Renderer struct {
	format Format
	colors bool
	html   *template.Template
}

// NewRenderer creates a renderer; colors only affect the text format
func NewRenderer(format Format, colors bool) (*Renderer, error) {
	f, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	return &Renderer{
		format: f,
		colors: colors,
		html:   template.Must(template.New("report").Parse(reportTemplate)),
	}, nil
}

// Render writes report to w
func (rn *Renderer) Render(w io.Writer, report *Report) error {
	switch rn.format {
	case FormatText:
		return rn.renderText(w, report)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML report: %w", err)
		}
	case FormatHTML:
		if err := rn.html.Execute(w, report); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
	}
	return nil
}

func (rn *Renderer) renderText(w io.Writer, report *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", report.Title)
	fmt.Fprintf(&b, "Algorithm: %s\n", report.Algorithm)
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", report.Source)
	}
	fmt.Fprintf(&b, "Table: %d rows, %d attributes, %d concepts\n",
		report.Stats.Rows, report.Stats.Attributes, len(report.Stats.Concepts))
	b.WriteString("\n")

	b.WriteString(NewTreeRenderer(rn.colors).Render(report.Rules()))

	if len(report.Unexplained) > 0 {
		fmt.Fprintf(&b, "\nUnexplained rows: %v\n", report.Unexplained)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}
