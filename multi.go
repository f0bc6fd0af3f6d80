package cut

import (
	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// MultiCut is like MonoCut, but spans several channels of a recording.
type MultiCut struct {
	ID           string
	Start        float64
	Duration     float64
	Channels     []int
	Recording    *audio.Recording
	Features     *features.Features
	Supervisions []supervision.Segment
}

func (*MultiCut) cut() {}

// CutID implements Cut.
func (c *MultiCut) CutID() string {
	return c.ID
}

// Span implements Cut.
func (c *MultiCut) Span() timing.Interval {
	return timing.Interval{Start: c.Start, Duration: c.Duration}
}

// RecordingID returns id of referenced recording.
func (c *MultiCut) RecordingID() string {
	return recordingID(c.Recording, c.Features)
}

// Format implements Cut.
func (c *MultiCut) Format() Format {
	return sourceFormat(c.Recording, c.Features, c.Duration, len(c.Channels))
}

// HasRecording implements Cut.
func (c *MultiCut) HasRecording() bool {
	return c.Recording != nil
}

// HasFeatures implements Cut.
func (c *MultiCut) HasFeatures() bool {
	return c.Features != nil
}

// Segments implements Cut.
func (c *MultiCut) Segments() []supervision.Segment {
	return c.Supervisions
}

// LoadAudio implements Cut. Result has a row per channel in Channels order.
func (c *MultiCut) LoadAudio() (signal.Float64, error) {
	if c.Recording == nil {
		return nil, nil
	}
	return c.Recording.LoadAudio(c.Channels, c.Start, c.Duration)
}

// LoadFeatures implements Cut.
func (c *MultiCut) LoadFeatures() (features.Array, error) {
	return loadSourceFeatures(c.Features, c.Start, c.Duration)
}

// Copy implements Cut.
func (c *MultiCut) Copy() Cut {
	return c.copy()
}

func (c *MultiCut) copy() *MultiCut {
	result := *c
	result.Channels = append([]int(nil), c.Channels...)
	result.Recording = copyRecording(c.Recording)
	result.Features = copyFeatures(c.Features)
	result.Supervisions = copySegments(c.Supervisions)
	return &result
}

// WithID implements Cut.
func (c *MultiCut) WithID(id string) Cut {
	result := c.copy()
	result.ID = id
	return result
}

// FilterSupervisions implements Cut.
func (c *MultiCut) FilterSupervisions(predicate func(supervision.Segment) bool) Cut {
	result := c.copy()
	result.Supervisions = filterSegments(c.Supervisions, predicate)
	return result
}

// Truncate implements Cut.
func (c *MultiCut) Truncate(offset, duration float64, opts ...TruncateOption) (Cut, error) {
	duration, err := truncatedDuration(c.Duration, offset, duration)
	if err != nil {
		return nil, err
	}
	o := newTruncateOptions(opts)
	result := c.copy()
	result.ID = o.id
	result.Start = c.Start + offset
	result.Duration = duration
	result.Supervisions = truncateSegments(c.Supervisions, offset, duration, o.keepExcessive)
	return result, nil
}
