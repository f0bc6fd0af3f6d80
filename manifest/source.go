package manifest

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Source provides records for a single forward-only pass. Every Open call
// starts a new pass, so both in-memory and file sources can be scanned
// multiple times. Iterators themselves are single-use.
type Source[T any] interface {
	Open() (Iterator[T], error)
}

// Iterator yields records one at a time. Next returns false when records are
// exhausted or an error occurred; the error is available through Err.
type Iterator[T any] interface {
	Next() (T, bool)
	Err() error
	Close() error
}

// File is a lazy source backed by a .jsonl or .jsonl.gz file. Records are
// decoded and validated only when they are requested.
type File[T any] struct {
	Path string
}

// Open starts a new pass over the file.
func (f File[T]) Open() (Iterator[T], error) {
	format, gz, err := FormatOf(f.Path)
	if err != nil {
		return nil, err
	}
	if format != JSONL {
		return nil, fmt.Errorf("%w: lazy reads need .jsonl: %s", ErrUnknownFormat, f.Path)
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	it := &fileIter[T]{path: f.Path, file: file}
	var in io.Reader = file
	if gz {
		if it.gz, err = gzip.NewReader(file); err != nil {
			file.Close()
			return nil, err
		}
		in = it.gz
	}
	it.scanner = bufio.NewScanner(in)
	it.scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return it, nil
}

type fileIter[T any] struct {
	path    string
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
	line    int
	err     error
}

func (it *fileIter[T]) Next() (T, bool) {
	var v T
	if it.err != nil {
		return v, false
	}
	for it.scanner.Scan() {
		it.line++
		data := it.scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, &v); err != nil {
			it.err = fmt.Errorf("%s:%d: %w", it.path, it.line, err)
			return v, false
		}
		if err := Validate(v); err != nil {
			it.err = fmt.Errorf("%s:%d: %w", it.path, it.line, err)
			return v, false
		}
		return v, true
	}
	it.err = it.scanner.Err()
	return v, false
}

func (it *fileIter[T]) Err() error {
	return it.err
}

func (it *fileIter[T]) Close() error {
	if it.gz != nil {
		it.gz.Close()
	}
	return it.file.Close()
}

// Slice is an in-memory source.
type Slice[T any] []T

// Open starts a new pass over the slice.
func (s Slice[T]) Open() (Iterator[T], error) {
	return &sliceIter[T]{items: s}, nil
}

type sliceIter[T any] struct {
	items []T
	pos   int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var v T
		return v, false
	}
	it.pos++
	return it.items[it.pos-1], true
}

func (it *sliceIter[T]) Err() error   { return nil }
func (it *sliceIter[T]) Close() error { return nil }

// Each calls fn for every record of a single pass over the source.
func Each[T any](src Source[T], fn func(T) error) error {
	it, err := src.Open()
	if err != nil {
		return err
	}
	defer it.Close()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return it.Err()
}

func collect[T any](src Source[T]) ([]T, error) {
	var items []T
	err := Each(src, func(v T) error {
		items = append(items, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
