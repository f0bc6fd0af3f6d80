package cut

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pipelined/cut/internal/pool"
	"github.com/pipelined/cut/metric"
	"github.com/pipelined/cut/supervision"
)

// Set is an ordered collection of cuts with unique ids. Set operations
// never modify cuts, they return a new set.
type Set struct {
	cuts  []Cut
	index map[string]int
}

// NewSet creates a new set. Cuts must have unique ids.
func NewSet(cuts ...Cut) (*Set, error) {
	s := &Set{
		cuts:  make([]Cut, 0, len(cuts)),
		index: make(map[string]int, len(cuts)),
	}
	for _, c := range cuts {
		if _, ok := s.index[c.CutID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.CutID())
		}
		s.index[c.CutID()] = len(s.cuts)
		s.cuts = append(s.cuts, c)
	}
	return s, nil
}

// Len returns number of cuts.
func (s *Set) Len() int {
	return len(s.cuts)
}

// At returns cut at position i.
func (s *Set) At(i int) Cut {
	return s.cuts[i]
}

// Get returns cut by id.
func (s *Set) Get(id string) (Cut, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.cuts[i], true
}

// Cuts returns cuts in set order.
func (s *Set) Cuts() []Cut {
	return append([]Cut(nil), s.cuts...)
}

// IDs returns ids of cuts in set order.
func (s *Set) IDs() []string {
	ids := make([]string, len(s.cuts))
	for i, c := range s.cuts {
		ids[i] = c.CutID()
	}
	return ids
}

// Filter returns cuts that satisfy predicate.
func (s *Set) Filter(predicate func(Cut) bool) *Set {
	result := &Set{index: make(map[string]int)}
	for _, c := range s.cuts {
		if predicate(c) {
			result.index[c.CutID()] = len(result.cuts)
			result.cuts = append(result.cuts, c)
		}
	}
	return result
}

// FilterSupervisions returns set where every cut keeps only supervisions
// that satisfy predicate.
func (s *Set) FilterSupervisions(predicate func(supervision.Segment) bool) *Set {
	result := &Set{
		cuts:  make([]Cut, len(s.cuts)),
		index: s.copyIndex(),
	}
	for i, c := range s.cuts {
		result.cuts[i] = c.FilterSupervisions(predicate)
	}
	return result
}

// Duration returns total duration of cuts.
func (s *Set) Duration() float64 {
	var d float64
	for _, c := range s.cuts {
		d += c.Span().Duration
	}
	return d
}

// CutIntoWindows splits every cut into windows of duration seconds. See
// Windows for details. Options: WithHop, KeepExcessive, WithNumJobs,
// SkipErrors, WithLogger.
func (s *Set) CutIntoWindows(ctx context.Context, duration float64, opts ...Option) (*Set, error) {
	o := newOptions(opts)
	var topts []TruncateOption
	if o.keepExcessive {
		topts = append(topts, KeepExcessiveSupervisions())
	}
	return s.apply(ctx, "cut into windows", o, func(c Cut) ([]Cut, error) {
		return Windows(c, duration, o.hop, topts...)
	})
}

// TrimToSupervisions replaces every cut with cuts of its supervisions. See
// TrimToSupervisions function for details. Options: WithNumJobs, SkipErrors,
// WithLogger.
func (s *Set) TrimToSupervisions(ctx context.Context, opts ...Option) (*Set, error) {
	return s.apply(ctx, "trim to supervisions", newOptions(opts), TrimToSupervisions)
}

// Pad extends every cut with silence to last duration seconds. If duration
// isn't positive, cuts are padded to the longest cut. Options: WithNumJobs,
// SkipErrors, WithLogger.
func (s *Set) Pad(ctx context.Context, duration float64, opts ...Option) (*Set, error) {
	if duration <= 0 {
		for _, c := range s.cuts {
			duration = math.Max(duration, c.Span().Duration)
		}
	}
	return s.apply(ctx, "pad", newOptions(opts), func(c Cut) ([]Cut, error) {
		p, err := Pad(c, duration, WithMixedID(c.CutID()))
		if err != nil {
			return nil, err
		}
		return []Cut{p}, nil
	})
}

type applied struct {
	cuts []Cut
	err  error
}

// apply runs fn for every cut with a worker pool and collects results in
// set order. A cut which results repeat an id already produced fails as if
// fn returned ErrDuplicateID.
func (s *Set) apply(ctx context.Context, name string, o options, fn func(Cut) ([]Cut, error)) (*Set, error) {
	l := o.logger.WithFields(logrus.Fields{
		"operation": name,
		"cuts":      len(s.cuts),
		"jobs":      o.numJobs,
	})
	l.Debug("batch started")
	measure := metric.Meter(name)
	results, err := pool.Map(ctx, o.numJobs, s.cuts, func(_ context.Context, c Cut) (applied, error) {
		cuts, err := fn(c)
		if err != nil {
			if o.skipErrors {
				return applied{err: err}, nil
			}
			return applied{}, CutError{ID: c.CutID(), Err: err}
		}
		return applied{cuts: cuts}, nil
	})
	if err != nil {
		return nil, err
	}

	var (
		cuts     []Cut
		batchErr BatchError
		ids      = map[string]bool{}
	)
	for i, r := range results {
		id := s.cuts[i].CutID()
		if r.err == nil {
			if r.err = duplicateID(ids, r.cuts); r.err != nil && !o.skipErrors {
				return nil, CutError{ID: id, Err: r.err}
			}
		}
		if r.err != nil {
			l.WithError(r.err).WithField("cut", id).Warn("cut skipped")
			batchErr.Errors = append(batchErr.Errors, CutError{ID: id, Err: r.err})
			continue
		}
		for _, c := range r.cuts {
			ids[c.CutID()] = true
		}
		cuts = append(cuts, r.cuts...)
	}
	result, err := NewSet(cuts...)
	if err != nil {
		return nil, err
	}
	measure(len(s.cuts), result.Len(), len(batchErr.Errors), s.Duration())
	l.WithField("result", result.Len()).Debug("batch finished")
	return result, batchErr.ret()
}

// duplicateID checks that ids of cuts are unique and not in ids already.
func duplicateID(ids map[string]bool, cuts []Cut) error {
	seen := make(map[string]bool, len(cuts))
	for _, c := range cuts {
		id := c.CutID()
		if ids[id] || seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

func (s *Set) copyIndex() map[string]int {
	index := make(map[string]int, len(s.index))
	for k, v := range s.index {
		index[k] = v
	}
	return index
}
