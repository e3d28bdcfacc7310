package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/agentstation/figurines/internal/cmd/output"
)

// FormatWriter prints alerts as colored text, or as a JSON or YAML object.
type FormatWriter struct {
	w        io.Writer
	format   output.Format
	useColor bool
}

// NewFormatWriter returns a writer for format. Text is colored only when w is
// a terminal and color is not disabled.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{w: w, format: format, useColor: colorable(w)}
}

// WriteAlert prints a.
func (fw *FormatWriter) WriteAlert(a *Alert) error {
	switch fw.format {
	case output.FormatJSON:
		enc := json.NewEncoder(fw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(record(a))
	case output.FormatYAML:
		enc := yaml.NewEncoder(fw.w)
		enc.SetIndent(2)
		if err := enc.Encode(record(a)); err != nil {
			return err
		}
		return enc.Close()
	}

	line := a.String()
	if fw.useColor {
		c := a.Level.Color()
		c.EnableColor()
		line = c.Sprint(line)
	}
	if _, err := fmt.Fprintln(fw.w, line); err != nil {
		return err
	}
	for _, d := range a.Details {
		if _, err := fmt.Fprintf(fw.w, "   %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

// alertRecord is the structured form of an Alert.
type alertRecord struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func record(a *Alert) alertRecord {
	r := alertRecord{Level: a.Level.String(), Message: a.Message, Details: a.Details}
	if a.Err != nil {
		r.Error = a.Err.Error()
	}
	return r
}

func colorable(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
