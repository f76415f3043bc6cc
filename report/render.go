// SPDX-License-Identifier: MIT
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a rendering of a Report.
type Format string

const (
	// FormatText is the fixed-width human-readable layout.
	FormatText Format = "text"
	// FormatJSON is indented JSON; non-finite coefficients become null.
	FormatJSON Format = "json"
	// FormatYAML is YAML; non-finite coefficients become .nan / .inf.
	FormatYAML Format = "yaml"
)

// Text layout.
const (
	tableWidth   = 56
	labelWidth   = 10
	columnGap    = 5
	headerFormat = " %s  (SEM in Parentheses) if Item Deleted"
)

// ParseFormat maps a format name (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Summary returns the one-line coefficient, e.g. "Feldt-Gilmer = 0.67".
func (r *Report) Summary() string {
	return fmt.Sprintf("%15s%.2f", r.Method+" = ", float64(r.Coefficient))
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

// WriteText writes the summary line followed by the item-deleted table.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString(r.Summary())
	b.WriteByte('\n')
	r.writeTable(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteItemDeleted writes only the item-deleted table.
func (r *Report) WriteItemDeleted(w io.Writer) error {
	var b strings.Builder
	r.writeTable(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) writeTable(b *strings.Builder) {
	gap := strings.Repeat(" ", columnGap)
	fmt.Fprintf(b, "%-*s\n", tableWidth, fmt.Sprintf(headerFormat, r.Method))
	b.WriteString(strings.Repeat("=", tableWidth))
	b.WriteByte('\n')
	for _, row := range r.ItemDeleted {
		fmt.Fprintf(b, "%-*s%s%10.4f%s\n", labelWidth, row.Label, gap, float64(row.Reliability), gap)
	}
}

// WriteJSON writes r as two-space indented JSON.
func (r *Report) WriteJSON(w io.Writer) error { return encodeJSON(w, r) }

// WriteYAML writes r as YAML.
func (r *Report) WriteYAML(w io.Writer) error { return encodeYAML(w, r) }

// Entry pairs a report with the document it was built from.
type Entry struct {
	Source string  `json:"source" yaml:"source"`
	Report *Report `json:"report" yaml:"report"`
}

// WriteBatch renders several reports in order. Text output is one
// "source: summary" line per entry; JSON and YAML emit a list of entries.
func WriteBatch(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatText, "":
		var b strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&b, "%s: %s\n", e.Source, e.Report.Summary())
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatJSON:
		return encodeJSON(w, entries)
	case FormatYAML:
		return encodeYAML(w, entries)
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

func encodeJSON(w io.Writer, v any) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}

	return nil
}

func encodeYAML(w io.Writer, v any) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("report: encoding yaml: %w", err)
	}

	return e.Close()
}
