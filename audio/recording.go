// Package audio describes recordings and loads their samples. The way
// samples are obtained depends on the source type; loaders are registered
// per type and the "file" loader decodes wav files.
package audio

import (
	"errors"
	"fmt"

	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/timing"
)

// DurationTolerance is how much shorter in seconds the decoded audio may be
// compared to the manifest before loading fails. Missing samples within
// tolerance are zero-padded.
const DurationTolerance = 0.025

var (
	// ErrUnknownChannel is returned when requested channel isn't provided by
	// any source of the recording.
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrOutOfRange is returned when requested samples exceed the recording.
	ErrOutOfRange = errors.New("out of range")
)

// Source is a location of samples for one or more channels of a recording.
type Source struct {
	Type     string `json:"type" yaml:"type" validate:"required"`
	Channels []int  `json:"channels" yaml:"channels" validate:"min=1"`
	Source   string `json:"source" yaml:"source"`
}

// Recording is an audio source descriptor.
type Recording struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Sources      []Source `json:"sources" yaml:"sources" validate:"min=1,dive"`
	SamplingRate int      `json:"sampling_rate" yaml:"sampling_rate" validate:"gt=0"`
	NumSamples   int      `json:"num_samples" yaml:"num_samples" validate:"gt=0"`
	Duration     float64  `json:"duration" yaml:"duration" validate:"gt=0"`
}

// RecordingSet is a collection of recordings indexed by recording id.
type RecordingSet = manifest.Set[Recording]

// Key implements manifest.Keyed.
func (r Recording) Key() string {
	return r.ID
}

// ChannelIDs returns all channels of the recording in source order.
func (r *Recording) ChannelIDs() []int {
	var ids []int
	for _, s := range r.Sources {
		ids = append(ids, s.Channels...)
	}
	return ids
}

// NumChannels returns number of channels of the recording.
func (r *Recording) NumChannels() int {
	return len(r.ChannelIDs())
}

// LoadAudio returns samples of requested channels in [offset, offset+duration)
// interval. The result has exactly one row per channel and
// SecondsToSamples(duration) samples per row.
func (r *Recording) LoadAudio(channels []int, offset, duration float64) (signal.Float64, error) {
	if offset < 0 || duration <= 0 {
		return nil, fmt.Errorf("%w: offset %v duration %v of recording %s", ErrOutOfRange, offset, duration, r.ID)
	}
	start := timing.SecondsToSamples(offset, r.SamplingRate)
	size := timing.SecondsToSamples(duration, r.SamplingRate)
	tolerance := timing.SecondsToSamples(DurationTolerance, r.SamplingRate)
	if start+size > r.NumSamples+tolerance {
		return nil, fmt.Errorf("%w: samples [%d, %d) of recording %s with %d samples", ErrOutOfRange, start, start+size, r.ID, r.NumSamples)
	}

	result := make(signal.Float64, 0, len(channels))
	decoded := make(map[int]signal.Float64)
	for _, ch := range channels {
		srcIdx, row := r.locate(ch)
		if srcIdx < 0 {
			return nil, fmt.Errorf("%w: %d in recording %s", ErrUnknownChannel, ch, r.ID)
		}
		samples, ok := decoded[srcIdx]
		if !ok {
			var err error
			if samples, err = load(r.Sources[srcIdx], r.NumSamples); err != nil {
				return nil, err
			}
			decoded[srcIdx] = samples
		}
		if row >= samples.NumChannels() {
			return nil, fmt.Errorf("%w: %d in source %s", ErrUnknownChannel, ch, r.Sources[srcIdx].Source)
		}
		var data []float64
		if start < samples.Size() {
			end := start + size
			if end > samples.Size() {
				end = samples.Size()
			}
			data = samples[row][start:end]
		}
		if size-len(data) > tolerance {
			return nil, fmt.Errorf("%w: decoded %d samples of %s, expected %d", ErrOutOfRange, samples.Size(), r.Sources[srcIdx].Source, start+size)
		}
		result = append(result, data)
	}
	return result.Resize(size), nil
}

// locate returns index of source and row in that source for the channel.
func (r *Recording) locate(channel int) (int, int) {
	for i, s := range r.Sources {
		for j, c := range s.Channels {
			if c == channel {
				return i, j
			}
		}
	}
	return -1, -1
}
