// Package output renders command results as a table, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Tabular is implemented by results that know how to lay themselves out as rows.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

type Printer struct {
	w      io.Writer
	format Format
}

func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes data in the printer's format. In table format data must
// implement Tabular; anything else falls back to YAML.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(unwrap(data))
	case FormatYAML:
		return p.yaml(unwrap(data))
	}

	t, ok := data.(Tabular)
	if !ok {
		return p.yaml(data)
	}
	_, err := fmt.Fprintln(p.w, renderTable(t.Headers(), t.Rows()))
	if err != nil {
		return err
	}
	if f, ok := data.(interface{ Footer() string }); ok && f.Footer() != "" {
		_, err = fmt.Fprintln(p.w, footerStyle.Render(f.Footer()))
	}
	return err
}

// Message prints a one-line confirmation. It is suppressed for JSON and YAML
// so machine-readable output stays parseable.
func (p *Printer) Message(format string, args ...any) {
	if p.format != FormatTable {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// yaml goes through JSON first so the keys match the json tags and embedded
// structs are flattened the same way.
func (p *Printer) yaml(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// View pairs a value with its table layout so JSON and YAML output keep the
// full value.
type View struct {
	Value  any
	Head   []string
	Body   [][]string
	Status string
}

func (v View) Headers() []string { return v.Head }
func (v View) Rows() [][]string  { return v.Body }
func (v View) Footer() string    { return v.Status }

func unwrap(data any) any {
	if v, ok := data.(View); ok {
		return v.Value
	}
	return data
}
