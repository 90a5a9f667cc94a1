// Package render writes generated dorks for the command line.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/operator"
	"github.com/SuperMag99/FootPrintX/internal/searchurl"
)

// DisclaimerTitle and Disclaimer are shown next to every set of results.
const (
	DisclaimerTitle = "Compliance Warning"
	Disclaimer      = "FootprintX is for educational and lawful OSINT research only. " +
		"It generates search queries; it does not scan infrastructure, bypass authentication, or store any data. " +
		"You are responsible for how you use the results."
)

type Format string

const (
	Text  Format = "text"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML, Table:
		return f, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("%w: %q (valid: text, json, yaml, table)", ErrUnknownFormat, s)
}

// Entry is a dork plus the search URL for its engine.
type Entry struct {
	dork.Dork `yaml:",inline"`
	URL       string `json:"url" yaml:"url"`
}

type Section struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Explanation string  `json:"explanation" yaml:"explanation"`
	Dorks       []Entry `json:"dorks" yaml:"dorks"`
}

// Report is the machine-readable shape of one generation.
type Report struct {
	Kind       dork.Kind `json:"kind" yaml:"kind"`
	Count      int       `json:"count" yaml:"count"`
	Categories []Section `json:"categories" yaml:"categories"`
}

// NewReport attaches search URLs from tmpl to every dork in cats.
func NewReport(kind dork.Kind, cats []dork.Category, tmpl searchurl.Templates) Report {
	r := Report{Kind: kind, Count: dork.Count(cats), Categories: []Section{}}
	for _, c := range cats {
		s := Section{ID: c.ID, Title: c.Title, Explanation: c.Explanation}
		for _, d := range c.Dorks {
			s.Dorks = append(s.Dorks, Entry{Dork: d, URL: tmpl.For(d)})
		}
		r.Categories = append(r.Categories, s)
	}
	return r
}

// Write renders r to w in format f. Width wraps the text format; zero means
// no wrapping.
func Write(w io.Writer, f Format, r Report, width int) error {
	switch f {
	case Text, "":
		return writeText(w, r, width)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case Table:
		return writeTable(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func writeText(w io.Writer, r Report, width int) error {
	// A renderer bound to w drops colour when w is not a terminal.
	re := lipgloss.NewRenderer(w)
	var (
		catStyle   = re.NewStyle().Bold(true).Foreground(lipgloss.Color("#7571F9"))
		explStyle  = re.NewStyle().Faint(true)
		idStyle    = re.NewStyle().Foreground(lipgloss.Color("#F25D94")).Bold(true)
		engStyle   = re.NewStyle().Foreground(lipgloss.Color("#25D366"))
		queryStyle = re.NewStyle().Bold(true)
		urlStyle   = re.NewStyle().Faint(true).Italic(true)
	)
	if width > 4 {
		explStyle = explStyle.Width(width - 2)
	}

	var b strings.Builder
	for i, c := range r.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(catStyle.Render(c.Title) + "\n")
		if c.Explanation != "" {
			b.WriteString(indent(explStyle.Render(c.Explanation), "  ") + "\n")
		}
		for _, e := range c.Dorks {
			fmt.Fprintf(&b, "\n  %s %s  %s\n", idStyle.Render("["+e.ID+"]"), e.Title, engStyle.Render(string(e.Engine)))
			fmt.Fprintf(&b, "    %s\n", queryStyle.Render(e.Query))
			if e.Description != "" {
				fmt.Fprintf(&b, "    %s\n", e.Description)
			}
			fmt.Fprintf(&b, "    %s\n", explStyle.UnsetWidth().Render(operator.Analyze(e.Query).Summary()))
			fmt.Fprintf(&b, "    %s\n", urlStyle.Render(e.URL))
		}
	}
	fmt.Fprintf(&b, "\n%d dorks in %d categories\n", r.Count, len(r.Categories))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, r Report) error {
	table := tablewriter.NewWriter(w)
	table.Header("Category", "ID", "Engine", "Query")
	for _, c := range r.Categories {
		for _, e := range c.Dorks {
			if err := table.Append([]string{c.Title, e.ID, string(e.Engine), e.Query}); err != nil {
				return fmt.Errorf("building table: %w", err)
			}
		}
	}
	return table.Render()
}

// WriteDisclaimer prints the compliance warning, usually to stderr.
func WriteDisclaimer(w io.Writer) {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94")).Render(DisclaimerTitle)
	fmt.Fprintf(w, "%s: %s\n\n", title, Disclaimer)
}

// WriteEngines lists each engine with its URL template.
func WriteEngines(w io.Writer, tmpl searchurl.Templates) error {
	table := tablewriter.NewWriter(w)
	table.Header("Engine", "URL template")
	for _, e := range dork.AllEngines() {
		if err := table.Append([]string{string(e), tmpl.Template(e)}); err != nil {
			return fmt.Errorf("building table: %w", err)
		}
	}
	return table.Render()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
