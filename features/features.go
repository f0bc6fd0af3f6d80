// Package features describes precomputed acoustic features and reads them
// from storage backends.
package features

import (
	"errors"
	"fmt"

	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/timing"
)

// ErrOutOfRange is returned when requested frames are outside of features.
var ErrOutOfRange = errors.New("frames out of range")

// Features is a locator of a feature matrix computed for a part of a
// recording.
type Features struct {
	RecordingID  string  `json:"recording_id" yaml:"recording_id" validate:"required"`
	Channel      int     `json:"channels" yaml:"channels" validate:"gte=0"`
	Start        float64 `json:"start" yaml:"start" validate:"gte=0"`
	Duration     float64 `json:"duration" yaml:"duration" validate:"gt=0"`
	Type         string  `json:"type" yaml:"type" validate:"required"`
	NumFrames    int     `json:"num_frames" yaml:"num_frames" validate:"gt=0"`
	NumFeatures  int     `json:"num_features" yaml:"num_features" validate:"gt=0"`
	FrameShift   float64 `json:"frame_shift" yaml:"frame_shift" validate:"gt=0"`
	SamplingRate int     `json:"sampling_rate" yaml:"sampling_rate" validate:"gt=0"`
	StorageType  string  `json:"storage_type" yaml:"storage_type" validate:"required"`
	StoragePath  string  `json:"storage_path" yaml:"storage_path"`
	StorageKey   string  `json:"storage_key" yaml:"storage_key"`
}

// Set is a collection of features indexed by recording id.
type Set = manifest.Set[Features]

// Key implements manifest.Keyed.
func (f Features) Key() string {
	return f.RecordingID
}

// End returns end time of features in the recording.
func (f Features) End() float64 {
	return f.Start + f.Duration
}

// Load reads numFrames frames starting at offsetFrames. Fewer frames are
// returned if features end earlier.
func (f Features) Load(offsetFrames, numFrames int) (Array, error) {
	if offsetFrames < 0 || numFrames <= 0 || offsetFrames >= f.NumFrames {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrOutOfRange, offsetFrames, offsetFrames+numFrames, f.NumFrames)
	}
	storage, err := open(f.StorageType, f.StoragePath)
	if err != nil {
		return nil, err
	}
	arr, err := storage.Read(f.StorageKey)
	if err != nil {
		return nil, err
	}
	return arr.Slice(offsetFrames, numFrames), nil
}

// LoadInterval reads frames of [start, start+duration) interval, where start
// is relative to the recording.
func (f Features) LoadInterval(start, duration float64) (Array, error) {
	offset := timing.SecondsToFrames(start-f.Start, f.FrameShift)
	return f.Load(offset, timing.SecondsToFrames(duration, f.FrameShift))
}
