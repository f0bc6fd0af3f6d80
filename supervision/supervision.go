// Package supervision describes labeled time intervals of recordings, such as
// transcript segments or speaker turns.
package supervision

import (
	"math"

	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/timing"
)

// Segment is a supervision. Start is relative to the beginning of whatever
// owns the segment: a recording or a cut.
type Segment struct {
	ID          string  `json:"id" yaml:"id" validate:"required"`
	RecordingID string  `json:"recording_id" yaml:"recording_id" validate:"required"`
	Start       float64 `json:"start" yaml:"start"`
	Duration    float64 `json:"duration" yaml:"duration" validate:"gt=0"`
	Channel     int     `json:"channel" yaml:"channel" validate:"gte=0"`
	Text        string  `json:"text,omitempty" yaml:"text,omitempty"`
	Language    string  `json:"language,omitempty" yaml:"language,omitempty"`
	Speaker     string  `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Gender      string  `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// Set is a collection of segments indexed by segment id.
type Set = manifest.Set[Segment]

// Key implements manifest.Keyed.
func (s Segment) Key() string {
	return s.ID
}

// End returns end time of the segment.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// Span returns the segment interval.
func (s Segment) Span() timing.Interval {
	return timing.Interval{Start: s.Start, Duration: s.Duration}
}

// WithOffset returns a copy of segment moved by offset seconds.
func (s Segment) WithOffset(offset float64) Segment {
	s.Start += offset
	return s
}

// Trim returns a copy of segment cropped to [0, end) interval.
func (s Segment) Trim(end float64) Segment {
	start := math.Max(0, s.Start)
	stop := math.Min(end, s.End())
	s.Start = start
	s.Duration = stop - start
	return s
}

// ByRecording groups segments by recording id keeping their order. Ids of
// recordings are returned in order of their first segment.
func ByRecording(segments []Segment) (map[string][]Segment, []string) {
	var (
		m     = make(map[string][]Segment)
		order []string
	)
	for _, s := range segments {
		if _, ok := m[s.RecordingID]; !ok {
			order = append(order, s.RecordingID)
		}
		m[s.RecordingID] = append(m[s.RecordingID], s)
	}
	return m, order
}
