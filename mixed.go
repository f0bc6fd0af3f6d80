package cut

import (
	"math"

	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/mixer"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// durationEpsilon is the smallest gap in seconds filled with padding when a
// mixed cut is truncated.
const durationEpsilon = 1e-6

// TrackType defines which data of a track participates in the mix.
type TrackType string

// Track types.
const (
	TrackAll       TrackType = ""
	TrackRecording TrackType = "recording"
	TrackFeatures  TrackType = "features"
)

// Track is a cut placed into a mix at Offset seconds.
type Track struct {
	Cut    Cut
	Offset float64
	Type   TrackType
	// Gain is a linear amplitude multiplier. Nil means 1.
	Gain *float64
}

func (t Track) gain() float64 {
	if t.Gain == nil {
		return 1
	}
	return *t.Gain
}

func (t Track) end() float64 {
	return t.Offset + t.Cut.Span().Duration
}

func (t Track) hasAudio() bool {
	return t.Type != TrackFeatures && t.Cut.HasRecording()
}

func (t Track) hasFeatures() bool {
	return t.Type != TrackRecording && t.Cut.HasFeatures()
}

func (t Track) copy() Track {
	t.Cut = t.Cut.Copy()
	if t.Gain != nil {
		g := *t.Gain
		t.Gain = &g
	}
	return t
}

// MixedCut is an overlay of tracks. Its duration lasts until the end of the
// latest track.
type MixedCut struct {
	ID     string
	Tracks []Track
}

func (*MixedCut) cut() {}

// CutID implements Cut.
func (c *MixedCut) CutID() string {
	return c.ID
}

// Span implements Cut. Mixed cut always starts at zero.
func (c *MixedCut) Span() timing.Interval {
	var d float64
	for _, t := range c.Tracks {
		d = math.Max(d, t.end())
	}
	return timing.Interval{Duration: d}
}

// Format implements Cut. Audio parameters are taken from the first track
// with audio and features parameters from the first track with features.
// The number of channels is the largest among audio tracks.
func (c *MixedCut) Format() Format {
	var f Format
	for _, t := range c.Tracks {
		tf := t.Cut.Format()
		if t.hasAudio() {
			if f.SamplingRate == 0 {
				f.SamplingRate = tf.SamplingRate
			}
			if tf.NumChannels > f.NumChannels {
				f.NumChannels = tf.NumChannels
			}
		}
		if t.hasFeatures() && f.FrameShift == 0 {
			f.FrameShift = tf.FrameShift
			f.NumFeatures = tf.NumFeatures
			f.FeaturesType = tf.FeaturesType
		}
	}
	if f.NumChannels == 0 {
		f.NumChannels = 1
	}
	d := c.Span().Duration
	if c.HasRecording() {
		f.NumSamples = timing.SecondsToSamples(d, f.SamplingRate)
	} else {
		for _, t := range c.Tracks {
			if sr := t.Cut.Format().SamplingRate; sr > 0 {
				f.SamplingRate = sr
				break
			}
		}
	}
	if c.HasFeatures() {
		f.NumFrames = timing.SecondsToFrames(d, f.FrameShift)
	}
	return f
}

// HasRecording implements Cut.
func (c *MixedCut) HasRecording() bool {
	for _, t := range c.Tracks {
		if t.hasAudio() {
			return true
		}
	}
	return false
}

// HasFeatures implements Cut.
func (c *MixedCut) HasFeatures() bool {
	for _, t := range c.Tracks {
		if t.hasFeatures() {
			return true
		}
	}
	return false
}

// Segments implements Cut. Supervisions of every track are shifted by the
// track offset and listed in track order.
func (c *MixedCut) Segments() []supervision.Segment {
	var result []supervision.Segment
	for _, t := range c.Tracks {
		for _, s := range t.Cut.Segments() {
			result = append(result, s.WithOffset(t.Offset))
		}
	}
	return result
}

// LoadAudio implements Cut. Audio of tracks is summed with their gains.
// Single-channel tracks are added to every output channel.
func (c *MixedCut) LoadAudio() (signal.Float64, error) {
	if !c.HasRecording() {
		return nil, nil
	}
	f := c.Format()
	m := mixer.NewAudio(f.NumChannels, f.NumSamples)
	for _, t := range c.Tracks {
		if !t.hasAudio() {
			continue
		}
		samples, err := t.Cut.LoadAudio()
		if err != nil {
			return nil, err
		}
		if err := m.Add(timing.SecondsToSamples(t.Offset, f.SamplingRate), samples, t.gain()); err != nil {
			return nil, err
		}
	}
	return m.Result(), nil
}

// LoadFeatures implements Cut. Every track is fit to the frames between
// its rounded start and end positions before mixing, so independent
// rounding of tracks never shifts frames. Frames past the end of the mix
// are dropped and frames not covered by any track hold silence of the
// features type.
func (c *MixedCut) LoadFeatures() (features.Array, error) {
	if !c.HasFeatures() {
		return nil, nil
	}
	f := c.Format()
	m := mixer.NewFrames(f.NumFrames, f.NumFeatures, mixer.ForType(f.FeaturesType))
	for _, t := range c.Tracks {
		if !t.hasFeatures() {
			continue
		}
		arr, err := t.Cut.LoadFeatures()
		if err != nil {
			return nil, err
		}
		start := timing.SecondsToFrames(t.Offset, f.FrameShift)
		n := timing.SecondsToFrames(t.end(), f.FrameShift) - start
		if err := m.Add(start, arr.Fit(n, f.NumFeatures), t.gain()); err != nil {
			return nil, err
		}
	}
	return m.Result(), nil
}

// Copy implements Cut.
func (c *MixedCut) Copy() Cut {
	return c.copy()
}

func (c *MixedCut) copy() *MixedCut {
	result := &MixedCut{
		ID:     c.ID,
		Tracks: make([]Track, len(c.Tracks)),
	}
	for i, t := range c.Tracks {
		result.Tracks[i] = t.copy()
	}
	return result
}

// WithID implements Cut.
func (c *MixedCut) WithID(id string) Cut {
	result := c.copy()
	result.ID = id
	return result
}

// FilterSupervisions implements Cut. Predicate receives supervisions
// relative to the mixed cut.
func (c *MixedCut) FilterSupervisions(predicate func(supervision.Segment) bool) Cut {
	result := c.copy()
	for i, t := range result.Tracks {
		offset := t.Offset
		result.Tracks[i].Cut = t.Cut.FilterSupervisions(func(s supervision.Segment) bool {
			return predicate(s.WithOffset(offset))
		})
	}
	return result
}

// Truncate implements Cut. Tracks that overlap the new cut are truncated
// and moved. A gap at the end of the result is filled with padding.
func (c *MixedCut) Truncate(offset, duration float64, opts ...TruncateOption) (Cut, error) {
	duration, err := truncatedDuration(c.Span().Duration, offset, duration)
	if err != nil {
		return nil, err
	}
	o := newTruncateOptions(opts)
	end := offset + duration
	result := &MixedCut{ID: o.id}
	for _, t := range c.Tracks {
		if t.end() <= offset || t.Offset >= end {
			continue
		}
		trackOpts := []TruncateOption{WithTruncatedID(t.Cut.CutID())}
		if o.keepExcessive {
			trackOpts = append(trackOpts, KeepExcessiveSupervisions())
		}
		start := math.Max(t.Offset, offset)
		tc, err := t.Cut.Truncate(start-t.Offset, end-start, trackOpts...)
		if err != nil {
			return nil, err
		}
		nt := t.copy()
		nt.Cut = tc
		nt.Offset = start - offset
		result.Tracks = append(result.Tracks, nt)
	}
	if gap := duration - result.Span().Duration; gap > durationEpsilon {
		p := padding(c.Format(), c.HasRecording(), c.HasFeatures(), gap)
		p.ID = newUID()
		result.Tracks = append(result.Tracks, Track{Cut: p, Offset: duration - gap})
	}
	return result, nil
}
