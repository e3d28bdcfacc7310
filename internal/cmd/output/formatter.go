// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agentstation/figurines/internal/cmd/table"
)

// Format names an output format.
type Format string

// Output formats accepted by --format.
const (
	FormatTable Format = "table"
	FormatWide  Format = "wide"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter writes one result.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Unknown formats render as a
// table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter encodes results as JSON without HTML escaping.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(data)
}

// YAMLFormatter encodes results as block YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TableFormatter draws table.Data with tablewriter. Anything else is written
// as JSON.
type TableFormatter struct{}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	d, ok := data.(table.Data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}

	var cfg tablewriter.Config
	if len(d.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(d.ColumnAlignment))
		for i, a := range d.ColumnAlignment {
			align[i] = twAlign(a)
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: align}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}
	t := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))

	if len(d.Headers) > 0 {
		t.Header(cells(d.Headers)...)
	}
	for _, row := range d.Rows {
		if err := t.Append(cells(row)...); err != nil {
			return err
		}
	}
	return t.Render()
}

func twAlign(a table.Align) tw.Align {
	switch a {
	case table.AlignLeft:
		return tw.AlignLeft
	case table.AlignCenter:
		return tw.AlignCenter
	case table.AlignRight:
		return tw.AlignRight
	default:
		return tw.Skip
	}
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// DetectFormat returns the explicit format if set. Otherwise it picks a table
// for a terminal and JSON for a pipe or file.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates a --format value. The empty string means detect.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of table, wide, json, yaml", s)
}

// Write renders a result in format. Table formats print tableData; the
// structured formats encode raw.
func Write(w io.Writer, format Format, tableData table.Data, raw any) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, raw)
	default:
		return NewFormatter(format).Format(w, tableData)
	}
}
