package cut

import (
	"github.com/pipelined/cut/manifest"
)

// Save writes the set into a manifest file. Format is selected by file
// extension, see manifest package.
func (s *Set) Save(path string) error {
	records := make([]record, len(s.cuts))
	for i, c := range s.cuts {
		records[i] = toRecord(c)
	}
	return manifest.Save(path, records)
}

// LoadSet reads all cuts of a manifest file.
func LoadSet(path string) (*Set, error) {
	records, err := manifest.Load[record](path)
	if err != nil {
		return nil, err
	}
	cuts := make([]Cut, 0, len(records))
	for _, r := range records {
		c, err := r.cut()
		if err != nil {
			return nil, err
		}
		cuts = append(cuts, c)
	}
	return NewSet(cuts...)
}

// Scan returns a lazy source of cuts stored in a .jsonl or .jsonl.gz file.
// Cuts are decoded only when requested and every Open starts a new pass.
func Scan(path string) manifest.Source[Cut] {
	return scanner{file: manifest.File[record]{Path: path}}
}

type scanner struct {
	file manifest.File[record]
}

func (s scanner) Open() (manifest.Iterator[Cut], error) {
	it, err := s.file.Open()
	if err != nil {
		return nil, err
	}
	return &scanIter{records: it}, nil
}

type scanIter struct {
	records manifest.Iterator[record]
	err     error
}

func (it *scanIter) Next() (Cut, bool) {
	if it.err != nil {
		return nil, false
	}
	r, ok := it.records.Next()
	if !ok {
		return nil, false
	}
	c, err := r.cut()
	if err != nil {
		it.err = err
		return nil, false
	}
	return c, true
}

func (it *scanIter) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.records.Err()
}

func (it *scanIter) Close() error {
	return it.records.Close()
}

// Writer writes cuts into a .jsonl or .jsonl.gz file one by one.
type Writer struct {
	w *manifest.Writer
}

// NewWriter creates the file for incremental writes.
func NewWriter(path string) (*Writer, error) {
	w, err := manifest.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w}, nil
}

// Write appends a cut.
func (w *Writer) Write(c Cut) error {
	return w.w.Write(toRecord(c))
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	return w.w.Close()
}
