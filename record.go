package cut

import (
	"fmt"

	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/supervision"
)

// Cut types in manifests.
const (
	monoType    = "MonoCut"
	multiType   = "MultiCut"
	paddingType = "PaddingCut"
	mixedType   = "MixedCut"
)

// record is a manifest representation of any cut.
type record struct {
	ID           string                `json:"id" yaml:"id" validate:"required"`
	Type         string                `json:"type" yaml:"type" validate:"required"`
	Start        float64               `json:"start,omitempty" yaml:"start,omitempty" validate:"gte=0"`
	Duration     float64               `json:"duration,omitempty" yaml:"duration,omitempty" validate:"gte=0"`
	Channel      *int                  `json:"channel,omitempty" yaml:"channel,omitempty"`
	Channels     []int                 `json:"channels,omitempty" yaml:"channels,omitempty"`
	Recording    *audio.Recording      `json:"recording,omitempty" yaml:"recording,omitempty"`
	Features     *features.Features    `json:"features,omitempty" yaml:"features,omitempty"`
	Supervisions []supervision.Segment `json:"supervisions,omitempty" yaml:"supervisions,omitempty"`

	SamplingRate int     `json:"sampling_rate,omitempty" yaml:"sampling_rate,omitempty"`
	NumChannels  int     `json:"num_channels,omitempty" yaml:"num_channels,omitempty"`
	FeatValue    float64 `json:"feat_value,omitempty" yaml:"feat_value,omitempty"`
	NumFrames    int     `json:"num_frames,omitempty" yaml:"num_frames,omitempty"`
	NumFeatures  int     `json:"num_features,omitempty" yaml:"num_features,omitempty"`
	FrameShift   float64 `json:"frame_shift,omitempty" yaml:"frame_shift,omitempty"`

	Tracks []trackRecord `json:"tracks,omitempty" yaml:"tracks,omitempty" validate:"dive"`
}

type trackRecord struct {
	Cut    record    `json:"cut" yaml:"cut"`
	Offset float64   `json:"offset" yaml:"offset"`
	Type   TrackType `json:"type,omitempty" yaml:"type,omitempty"`
	Gain   *float64  `json:"gain,omitempty" yaml:"gain,omitempty"`
}

func toRecord(c Cut) record {
	switch v := c.(type) {
	case *MonoCut:
		ch := v.Channel
		return record{
			ID:           v.ID,
			Type:         monoType,
			Start:        v.Start,
			Duration:     v.Duration,
			Channel:      &ch,
			Recording:    v.Recording,
			Features:     v.Features,
			Supervisions: v.Supervisions,
		}
	case *MultiCut:
		return record{
			ID:           v.ID,
			Type:         multiType,
			Start:        v.Start,
			Duration:     v.Duration,
			Channels:     v.Channels,
			Recording:    v.Recording,
			Features:     v.Features,
			Supervisions: v.Supervisions,
		}
	case *PaddingCut:
		return record{
			ID:           v.ID,
			Type:         paddingType,
			Duration:     v.Duration,
			SamplingRate: v.SamplingRate,
			NumChannels:  v.NumChannels,
			FeatValue:    v.FeatValue,
			NumFrames:    v.NumFrames,
			NumFeatures:  v.NumFeatures,
			FrameShift:   v.FrameShift,
		}
	case *MixedCut:
		r := record{
			ID:     v.ID,
			Type:   mixedType,
			Tracks: make([]trackRecord, 0, len(v.Tracks)),
		}
		for _, t := range v.Tracks {
			r.Tracks = append(r.Tracks, trackRecord{
				Cut:    toRecord(t.Cut),
				Offset: t.Offset,
				Type:   t.Type,
				Gain:   t.Gain,
			})
		}
		return r
	}
	panic(fmt.Sprintf("unexpected cut type %T", c))
}

func (r record) cut() (Cut, error) {
	switch r.Type {
	case monoType:
		c := &MonoCut{
			ID:           r.ID,
			Start:        r.Start,
			Duration:     r.Duration,
			Recording:    r.Recording,
			Features:     r.Features,
			Supervisions: r.Supervisions,
		}
		if r.Channel != nil {
			c.Channel = *r.Channel
		}
		return c, nil
	case multiType:
		return &MultiCut{
			ID:           r.ID,
			Start:        r.Start,
			Duration:     r.Duration,
			Channels:     r.Channels,
			Recording:    r.Recording,
			Features:     r.Features,
			Supervisions: r.Supervisions,
		}, nil
	case paddingType:
		return &PaddingCut{
			ID:           r.ID,
			Duration:     r.Duration,
			SamplingRate: r.SamplingRate,
			NumChannels:  r.NumChannels,
			FeatValue:    r.FeatValue,
			NumFrames:    r.NumFrames,
			NumFeatures:  r.NumFeatures,
			FrameShift:   r.FrameShift,
		}, nil
	case mixedType:
		c := &MixedCut{ID: r.ID, Tracks: make([]Track, 0, len(r.Tracks))}
		for _, t := range r.Tracks {
			tc, err := t.Cut.cut()
			if err != nil {
				return nil, err
			}
			c.Tracks = append(c.Tracks, Track{Cut: tc, Offset: t.Offset, Type: t.Type, Gain: t.Gain})
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q of cut %s", ErrUnknownCutType, r.Type, r.ID)
}
