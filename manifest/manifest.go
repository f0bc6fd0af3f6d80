// Package manifest stores collections of records. Supported formats are
// selected by file extension:
//
//	.json          single JSON array
//	.jsonl         one JSON object per line
//	.jsonl.gz      gzip-compressed .jsonl
//	.yaml, .yml    single YAML sequence
//
// Records are validated with their `validate` struct tags when they are read.
package manifest

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v2"
)

// Format is a manifest file format.
type Format int

const (
	// JSON is a single JSON array.
	JSON Format = iota
	// JSONL is line-delimited JSON, optionally gzipped.
	JSONL
	// YAML is a single YAML sequence.
	YAML
)

var (
	// ErrUnknownFormat is returned when file extension doesn't match any format.
	ErrUnknownFormat = errors.New("unknown manifest format")
	// ErrDuplicateKey is returned when two records of a set share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	validate = validator.New()
)

// Validate checks record with its struct tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// FormatOf returns format and compression flag for provided path.
func FormatOf(path string) (Format, bool, error) {
	gz := strings.HasSuffix(path, ".gz")
	p := strings.TrimSuffix(path, ".gz")
	switch {
	case strings.HasSuffix(p, ".jsonl"):
		return JSONL, gz, nil
	case strings.HasSuffix(p, ".json") && !gz:
		return JSON, false, nil
	case (strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) && !gz:
		return YAML, false, nil
	}
	return 0, false, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads all records from the file.
func Load[T any](path string) ([]T, error) {
	format, _, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == JSONL {
		return collect(File[T]{Path: path})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	switch format {
	case JSON:
		err = json.Unmarshal(data, &items)
	case YAML:
		err = yaml.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i := range items {
		if err := Validate(items[i]); err != nil {
			return nil, fmt.Errorf("record %d of %s: %w", i, path, err)
		}
	}
	return items, nil
}

// Save writes all records into the file.
func Save[T any](path string, items []T) error {
	format, _, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case JSONL:
		w, err := Create(path)
		if err != nil {
			return err
		}
		for i := range items {
			if err := w.Write(items[i]); err != nil {
				w.Close()
				return err
			}
		}
		return w.Close()
	case JSON:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	default:
		data, err := yaml.Marshal(items)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}
}

// Writer writes records one by one into a line-delimited file.
type Writer struct {
	file *os.File
	gz   *gzip.Writer
	buf  *bufio.Writer
	enc  *json.Encoder
}

// Create opens a new .jsonl or .jsonl.gz file for incremental writes.
func Create(path string) (*Writer, error) {
	format, gz, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format != JSONL {
		return nil, fmt.Errorf("%w: incremental writes need .jsonl: %s", ErrUnknownFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &Writer{file: f}
	var out io.Writer = f
	if gz {
		w.gz = gzip.NewWriter(f)
		out = w.gz
	}
	w.buf = bufio.NewWriter(out)
	w.enc = json.NewEncoder(w.buf)
	return w, nil
}

// Write appends a single record.
func (w *Writer) Write(v interface{}) error {
	return w.enc.Encode(v)
}

// Close flushes buffered records and closes the file.
func (w *Writer) Close() error {
	err := w.buf.Flush()
	if w.gz != nil {
		if gzErr := w.gz.Close(); err == nil {
			err = gzErr
		}
	}
	if closeErr := w.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
