package manifest

import "fmt"

// Keyed is a record that can be looked up by a string key.
type Keyed interface {
	Key() string
}

// Set is an ordered collection of records indexable by position and key.
type Set[T Keyed] struct {
	items []T
	index map[string]int
}

// NewSet validates records and creates a new set. Records must have unique
// keys.
func NewSet[T Keyed](items ...T) (*Set[T], error) {
	s := &Set[T]{
		items: make([]T, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i := range items {
		if err := Validate(items[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		k := items[i].Key()
		if _, ok := s.index[k]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, k)
		}
		s.index[k] = len(s.items)
		s.items = append(s.items, items[i])
	}
	return s, nil
}

// LoadSet reads all records from the file into a set.
func LoadSet[T Keyed](path string) (*Set[T], error) {
	items, err := Load[T](path)
	if err != nil {
		return nil, err
	}
	return NewSet(items...)
}

// Len returns number of records.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// At returns record at position i.
func (s *Set[T]) At(i int) T {
	return s.items[i]
}

// Get returns record by key.
func (s *Set[T]) Get(key string) (T, bool) {
	i, ok := s.index[key]
	if !ok {
		var v T
		return v, false
	}
	return s.items[i], true
}

// Items returns a copy of records slice.
func (s *Set[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// Source returns in-memory source over the set.
func (s *Set[T]) Source() Source[T] {
	return Slice[T](s.items)
}

// Save writes the set into the file.
func (s *Set[T]) Save(path string) error {
	return Save(path, s.items)
}
