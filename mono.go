package cut

import (
	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// MonoCut is a single channel of a recording and/or features between Start
// and Start+Duration.
type MonoCut struct {
	ID           string
	Start        float64
	Duration     float64
	Channel      int
	Recording    *audio.Recording
	Features     *features.Features
	Supervisions []supervision.Segment
}

func (*MonoCut) cut() {}

// CutID implements Cut.
func (c *MonoCut) CutID() string {
	return c.ID
}

// Span implements Cut.
func (c *MonoCut) Span() timing.Interval {
	return timing.Interval{Start: c.Start, Duration: c.Duration}
}

// RecordingID returns id of referenced recording.
func (c *MonoCut) RecordingID() string {
	return recordingID(c.Recording, c.Features)
}

// Format implements Cut.
func (c *MonoCut) Format() Format {
	return sourceFormat(c.Recording, c.Features, c.Duration, 1)
}

// HasRecording implements Cut.
func (c *MonoCut) HasRecording() bool {
	return c.Recording != nil
}

// HasFeatures implements Cut.
func (c *MonoCut) HasFeatures() bool {
	return c.Features != nil
}

// Segments implements Cut.
func (c *MonoCut) Segments() []supervision.Segment {
	return c.Supervisions
}

// LoadAudio implements Cut.
func (c *MonoCut) LoadAudio() (signal.Float64, error) {
	if c.Recording == nil {
		return nil, nil
	}
	return c.Recording.LoadAudio([]int{c.Channel}, c.Start, c.Duration)
}

// LoadFeatures implements Cut.
func (c *MonoCut) LoadFeatures() (features.Array, error) {
	return loadSourceFeatures(c.Features, c.Start, c.Duration)
}

// Copy implements Cut.
func (c *MonoCut) Copy() Cut {
	return c.copy()
}

func (c *MonoCut) copy() *MonoCut {
	result := *c
	result.Recording = copyRecording(c.Recording)
	result.Features = copyFeatures(c.Features)
	result.Supervisions = copySegments(c.Supervisions)
	return &result
}

// WithID implements Cut.
func (c *MonoCut) WithID(id string) Cut {
	result := c.copy()
	result.ID = id
	return result
}

// FilterSupervisions implements Cut.
func (c *MonoCut) FilterSupervisions(predicate func(supervision.Segment) bool) Cut {
	result := c.copy()
	result.Supervisions = filterSegments(c.Supervisions, predicate)
	return result
}

// Truncate implements Cut.
func (c *MonoCut) Truncate(offset, duration float64, opts ...TruncateOption) (Cut, error) {
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

func recordingID(rec *audio.Recording, feat *features.Features) string {
	switch {
	case rec != nil:
		return rec.ID
	case feat != nil:
		return feat.RecordingID
	}
	return ""
}

// sourceFormat returns format of a cut that references recording and
// features directly.
func sourceFormat(rec *audio.Recording, feat *features.Features, duration float64, numChannels int) Format {
	f := Format{NumChannels: numChannels}
	if rec != nil {
		f.SamplingRate = rec.SamplingRate
		f.NumSamples = timing.SecondsToSamples(duration, rec.SamplingRate)
	}
	if feat != nil {
		if f.SamplingRate == 0 {
			f.SamplingRate = feat.SamplingRate
		}
		f.FrameShift = feat.FrameShift
		f.NumFrames = timing.SecondsToFrames(duration, feat.FrameShift)
		f.NumFeatures = feat.NumFeatures
		f.FeaturesType = feat.Type
	}
	return f
}

// loadSourceFeatures reads frames of [start, start+duration) interval of the
// recording. Result always has SecondsToFrames(duration) frames.
func loadSourceFeatures(feat *features.Features, start, duration float64) (features.Array, error) {
	if feat == nil {
		return nil, nil
	}
	offset := timing.SecondsToFrames(start-feat.Start, feat.FrameShift)
	n := timing.SecondsToFrames(duration, feat.FrameShift)
	arr, err := feat.Load(offset, n)
	if err != nil {
		return nil, err
	}
	return arr.Fit(n, feat.NumFeatures), nil
}

func copyRecording(rec *audio.Recording) *audio.Recording {
	if rec == nil {
		return nil
	}
	result := *rec
	result.Sources = make([]audio.Source, len(rec.Sources))
	for i, s := range rec.Sources {
		s.Channels = append([]int(nil), s.Channels...)
		result.Sources[i] = s
	}
	return &result
}

func copyFeatures(feat *features.Features) *features.Features {
	if feat == nil {
		return nil
	}
	result := *feat
	return &result
}
