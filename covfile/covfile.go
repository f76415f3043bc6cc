// SPDX-License-Identifier: MIT
package covfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/congeneric/covariance"
	"gopkg.in/yaml.v3"
)

const fileMode = 0o644

// Format identifies a matrix document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Document is a decoded covariance matrix with optional item labels.
type Document struct {
	// Labels is nil when the document names no items; otherwise len(Labels) == Matrix.N().
	Labels []string
	Matrix *covariance.Matrix
}

// rawDocument is the YAML/JSON shape. A covariance document fills
// Covariance, a score document fills Scores.
type rawDocument struct {
	Items      []string    `yaml:"items,omitempty" json:"items,omitempty"`
	Covariance [][]float64 `yaml:"covariance,omitempty" json:"covariance,omitempty"`
	Scores     [][]float64 `yaml:"scores,omitempty" json:"scores,omitempty"`
}

// ParseFormat maps a format name to a Format ("yml" is accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

// Load reads and decodes the covariance document at path.
func Load(path string, opts ...covariance.Option) (*Document, error) {
	return load(path, Decode, opts)
}

// LoadScores reads the score document at path and derives its covariance matrix.
func LoadScores(path string, opts ...covariance.Option) (*Document, error) {
	return load(path, DecodeScores, opts)
}

type decodeFunc func(io.Reader, Format, ...covariance.Option) (*Document, error)

func load(path string, decode decodeFunc, opts []covariance.Option) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("covfile: opening %s: %w", path, err)
	}
	defer fh.Close()

	doc, err := decode(fh, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one covariance document from r. opts are passed to
// covariance.New, so shape, symmetry and variance errors surface as
// covariance sentinels.
//
// Errors: ErrUnknownFormat, ErrSyntax, ErrLabelCount, covariance.Err*.
func Decode(r io.Reader, f Format, opts ...covariance.Option) (*Document, error) {
	raw, err := decodeRaw(r, f, false)
	if err != nil {
		return nil, err
	}

	m, err := covariance.New(raw.Covariance, opts...)
	if err != nil {
		return nil, err
	}

	return newDocument(raw.Items, m)
}

// DecodeScores reads one score document from r (rows are examinees, columns
// are items) and builds its sample covariance matrix with covariance.FromScores.
//
// Errors: ErrUnknownFormat, ErrSyntax, ErrLabelCount, covariance.Err*.
func DecodeScores(r io.Reader, f Format, opts ...covariance.Option) (*Document, error) {
	raw, err := decodeRaw(r, f, true)
	if err != nil {
		return nil, err
	}

	m, err := covariance.FromScores(raw.Scores, opts...)
	if err != nil {
		return nil, err
	}

	return newDocument(raw.Items, m)
}

func newDocument(labels []string, m *covariance.Matrix) (*Document, error) {
	if labels != nil && len(labels) != m.N() {
		return nil, fmt.Errorf("%d labels for %d items: %w", len(labels), m.N(), ErrLabelCount)
	}

	return &Document{Labels: labels, Matrix: m}, nil
}

// decodeRaw dispatches on f. CSV rows land in Scores when scores is set,
// in Covariance otherwise.
func decodeRaw(r io.Reader, f Format, scores bool) (rawDocument, error) {
	switch f {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		var raw rawDocument
		labels, rows, err := decodeCSV(r)
		if err != nil {
			return raw, err
		}
		raw.Items = labels
		if scores {
			raw.Scores = rows
		} else {
			raw.Covariance = rows
		}
		return raw, nil
	default:
		return rawDocument{}, fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

func decodeYAML(r io.Reader) (rawDocument, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return raw, fmt.Errorf("%w: yaml: %v", ErrSyntax, err)
	}

	return raw, nil
}

func decodeJSON(r io.Reader) (rawDocument, error) {
	var raw rawDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return raw, fmt.Errorf("%w: json: %v", ErrSyntax, err)
	}

	return raw, nil
}

// decodeCSV reads numeric rows. A first record containing any non-numeric
// field is taken as the label header. Lines starting with '#' are comments.
func decodeCSV(r io.Reader) (labels []string, rows [][]float64, err error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: csv: %v", ErrSyntax, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	if !isNumericRecord(records[0]) {
		labels = make([]string, len(records[0]))
		for i, h := range records[0] {
			labels[i] = strings.TrimSpace(h)
		}
		records = records[1:]
	}

	rows = make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("%w: csv: row %d column %d: %v", ErrSyntax, i+1, j+1, perr)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return labels, rows, nil
}

func isNumericRecord(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return false
		}
	}

	return true
}

// Save encodes doc in format f and writes it to path.
func Save(path string, doc *Document, f Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("covfile: writing %s: %w", path, err)
	}

	return nil
}

// Encode writes doc in format f. CSV output carries a label header when doc has labels.
func Encode(w io.Writer, doc *Document, f Format) error {
	if doc == nil || doc.Matrix == nil {
		return covariance.ErrNilMatrix
	}
	raw := rawDocument{Items: doc.Labels, Covariance: doc.Matrix.Rows()}

	switch f {
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(raw); err != nil {
			return fmt.Errorf("covfile: encoding yaml: %w", err)
		}
		return e.Close()
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err := e.Encode(raw); err != nil {
			return fmt.Errorf("covfile: encoding json: %w", err)
		}
		return nil
	case FormatCSV:
		return encodeCSV(w, raw)
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

func encodeCSV(w io.Writer, raw rawDocument) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if raw.Items != nil {
		if err := cw.Write(raw.Items); err != nil {
			return fmt.Errorf("covfile: encoding csv: %w", err)
		}
	}
	for _, row := range raw.Covariance {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("covfile: encoding csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("covfile: encoding csv: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
