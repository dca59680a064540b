// Package sheet reads the dictionary spreadsheet export. A CSV file has one
// header row naming the columns; a YAML file is a list of mappings from column
// name to cell. Either way every row becomes a map of column name to cell text.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a sheet file.
type Format int

const (
	CSV Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case YAML:
		return "yaml"
	}
	panic(fmt.Sprintf("sheet: unknown format %d", int(f)))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yml", ".yaml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unsupported sheet file %q: expected .csv, .yml or .yaml", path)
}

// File is a sheet stored on a filesystem.
type File struct {
	fs     afero.Fs
	path   string
	format Format
}

type Option func(*File)

// WithFs reads the file from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(f *File) {
		f.fs = fs
	}
}

// NewFile returns the sheet at path, with its format taken from the extension.
func NewFile(path string, opts ...Option) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f := &File{fs: afero.NewOsFs(), path: path, format: format}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// ReadRows reads every data row of the file in order.
func (f *File) ReadRows() ([]map[string]string, error) {
	contents, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, fmt.Errorf("afero.ReadFile(%s) > %w", f.path, err)
	}
	var rows []map[string]string
	switch f.format {
	case CSV:
		rows, err = ReadCSV(bytes.NewReader(contents))
	case YAML:
		rows, err = ReadYAML(bytes.NewReader(contents))
	}
	if err != nil {
		return nil, fmt.Errorf("read %s sheet %s > %w", f.format, f.path, err)
	}
	return rows, nil
}

const byteOrderMark = "\uFEFF"

// ReadCSV reads a CSV sheet. Header names are kept verbatim apart from a
// leading byte order mark. Short rows leave the missing columns out and
// trailing rows without any text are dropped.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, ok := row[header[i]]; ok {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return trimEmptyTail(rows), nil
}

// ReadYAML reads a YAML sheet. Scalars of any type are converted to text and
// null cells become empty strings.
func ReadYAML(r io.Reader) ([]map[string]string, error) {
	var documents []map[string]any
	if err := yaml.NewDecoder(r).Decode(&documents); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.Decode > %w", err)
	}

	rows := make([]map[string]string, 0, len(documents))
	for i, document := range documents {
		row := make(map[string]string, len(document))
		for column, value := range document {
			switch v := value.(type) {
			case nil:
				row[column] = ""
			case string:
				row[column] = v
			case map[string]any, []any:
				return nil, fmt.Errorf("row %d, column %q: expected a scalar, got %T", i+1, column, value)
			default:
				row[column] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return trimEmptyTail(rows), nil
}

func trimEmptyTail(rows []map[string]string) []map[string]string {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isEmptyRow(row map[string]string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
