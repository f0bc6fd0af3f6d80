package cut

import (
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// PaddingCut is silence. Audio is synthesized if SamplingRate is set and
// features filled with FeatValue if NumFrames and NumFeatures are set.
// Zero FrameShift is derived from Duration and NumFrames.
type PaddingCut struct {
	ID           string
	Duration     float64
	SamplingRate int
	// NumChannels defaults to 1.
	NumChannels int
	FeatValue   float64
	NumFrames   int
	NumFeatures int
	FrameShift  float64
}

func (*PaddingCut) cut() {}

// CutID implements Cut.
func (c *PaddingCut) CutID() string {
	return c.ID
}

// Span implements Cut. Padding always starts at zero.
func (c *PaddingCut) Span() timing.Interval {
	return timing.Interval{Duration: c.Duration}
}

// Format implements Cut.
func (c *PaddingCut) Format() Format {
	f := Format{
		SamplingRate: c.SamplingRate,
		NumChannels:  c.numChannels(),
	}
	if c.HasRecording() {
		f.NumSamples = timing.SecondsToSamples(c.Duration, c.SamplingRate)
	}
	if c.HasFeatures() {
		f.FrameShift = c.frameShift()
		f.NumFrames = c.NumFrames
		f.NumFeatures = c.NumFeatures
	}
	return f
}

func (c *PaddingCut) numChannels() int {
	if c.NumChannels > 0 {
		return c.NumChannels
	}
	return 1
}

func (c *PaddingCut) frameShift() float64 {
	if c.FrameShift > 0 || c.NumFrames == 0 {
		return c.FrameShift
	}
	return c.Duration / float64(c.NumFrames)
}

// HasRecording implements Cut.
func (c *PaddingCut) HasRecording() bool {
	return c.SamplingRate > 0
}

// HasFeatures implements Cut.
func (c *PaddingCut) HasFeatures() bool {
	return c.NumFrames > 0 && c.NumFeatures > 0
}

// Segments implements Cut. Padding has no supervisions.
func (c *PaddingCut) Segments() []supervision.Segment {
	return nil
}

// LoadAudio implements Cut.
func (c *PaddingCut) LoadAudio() (signal.Float64, error) {
	if !c.HasRecording() {
		return nil, nil
	}
	return signal.EmptyFloat64(c.numChannels(), timing.SecondsToSamples(c.Duration, c.SamplingRate)), nil
}

// LoadFeatures implements Cut.
func (c *PaddingCut) LoadFeatures() (features.Array, error) {
	if !c.HasFeatures() {
		return nil, nil
	}
	return features.Constant(c.NumFrames, c.NumFeatures, c.FeatValue), nil
}

// Copy implements Cut.
func (c *PaddingCut) Copy() Cut {
	result := *c
	return &result
}

// WithID implements Cut.
func (c *PaddingCut) WithID(id string) Cut {
	result := *c
	result.ID = id
	return &result
}

// FilterSupervisions implements Cut.
func (c *PaddingCut) FilterSupervisions(func(supervision.Segment) bool) Cut {
	return c.Copy()
}

// Truncate implements Cut.
func (c *PaddingCut) Truncate(offset, duration float64, opts ...TruncateOption) (Cut, error) {
	duration, err := truncatedDuration(c.Duration, offset, duration)
	if err != nil {
		return nil, err
	}
	o := newTruncateOptions(opts)
	result := *c
	result.ID = o.id
	result.Duration = duration
	if shift := c.frameShift(); c.HasFeatures() && shift > 0 {
		result.NumFrames = timing.SecondsToFrames(duration, shift)
	}
	return &result, nil
}
