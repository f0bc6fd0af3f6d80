package cut

import (
	"fmt"
	"math"
)

// MixOption configures mixing of two cuts.
type MixOption func(*mixOptions)

type mixOptions struct {
	offset    float64
	gain      *float64
	trackType TrackType
	id        string
}

// OffsetOtherBy places the other cut at offset seconds from the start of
// the cut it is mixed into.
func OffsetOtherBy(offset float64) MixOption {
	return func(o *mixOptions) {
		o.offset = offset
	}
}

// WithGain sets linear amplitude gain of the other cut.
func WithGain(gain float64) MixOption {
	return func(o *mixOptions) {
		o.gain = &gain
	}
}

// WithTrackType limits which data of the other cut participates in the mix.
func WithTrackType(t TrackType) MixOption {
	return func(o *mixOptions) {
		o.trackType = t
	}
}

// WithMixedID sets id of the mixed cut. New unique id is generated
// otherwise.
func WithMixedID(id string) MixOption {
	return func(o *mixOptions) {
		o.id = id
	}
}

// Mix overlays other cut on top of c. The offset of other cut must be
// within c. If either cut is a MixedCut, its tracks are reused, so the
// result is always flat. Neither of cuts is modified.
func Mix(c, other Cut, opts ...MixOption) (*MixedCut, error) {
	o := mixOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if d := c.Span().Duration; o.offset < 0 || o.offset > d {
		return nil, fmt.Errorf("%w: other cut at %v for cut %s of %v seconds", ErrInvalidOffset, o.offset, c.CutID(), d)
	}
	if o.id == "" {
		o.id = newUID()
	}

	result := &MixedCut{ID: o.id}
	if m, ok := c.(*MixedCut); ok {
		result.Tracks = m.copy().Tracks
	} else {
		result.Tracks = []Track{{Cut: c.Copy()}}
	}

	var others []Track
	if m, ok := other.(*MixedCut); ok {
		others = m.copy().Tracks
	} else {
		others = []Track{{Cut: other.Copy()}}
	}
	for _, t := range others {
		t.Offset += o.offset
		if o.gain != nil {
			g := t.gain() * *o.gain
			t.Gain = &g
		}
		if o.trackType != TrackAll {
			t.Type = o.trackType
		}
		result.Tracks = append(result.Tracks, t)
	}

	if err := checkCompatible(result.Tracks); err != nil {
		return nil, err
	}
	return result, nil
}

// Append puts other cut right after the end of c.
func Append(c, other Cut, opts ...MixOption) (*MixedCut, error) {
	opts = append(opts, OffsetOtherBy(c.Span().Duration))
	return Mix(c, other, opts...)
}

// checkCompatible verifies that tracks with audio share sampling rate and
// tracks with features share frame shift and dimension. Multi-channel
// tracks must have the same number of channels, mono tracks mix into any.
func checkCompatible(tracks []Track) error {
	var (
		ref   Format
		audio bool
		feats bool
	)
	for _, t := range tracks {
		f := t.Cut.Format()
		if t.hasAudio() {
			if audio && f.SamplingRate != ref.SamplingRate {
				return fmt.Errorf("%w: sampling rate %d of %s, expected %d", ErrIncompatibleCuts, f.SamplingRate, t.Cut.CutID(), ref.SamplingRate)
			}
			if !audio {
				audio, ref.SamplingRate = true, f.SamplingRate
			}
			if f.NumChannels > 1 {
				if ref.NumChannels > 1 && f.NumChannels != ref.NumChannels {
					return fmt.Errorf("%w: %d channels of %s, expected %d", ErrIncompatibleCuts, f.NumChannels, t.Cut.CutID(), ref.NumChannels)
				}
				ref.NumChannels = f.NumChannels
			}
		}
		if t.hasFeatures() {
			if f.FrameShift <= 0 {
				return fmt.Errorf("%w: frame shift %v of %s", ErrIncompatibleCuts, f.FrameShift, t.Cut.CutID())
			}
			if feats && (math.Abs(f.FrameShift-ref.FrameShift) > 1e-9 || f.NumFeatures != ref.NumFeatures) {
				return fmt.Errorf("%w: features %d with frame shift %v of %s, expected %d with %v", ErrIncompatibleCuts, f.NumFeatures, f.FrameShift, t.Cut.CutID(), ref.NumFeatures, ref.FrameShift)
			}
			if !feats {
				feats, ref.FrameShift, ref.NumFeatures = true, f.FrameShift, f.NumFeatures
			}
		}
	}
	return nil
}
