// Package mock provides dummy cuts and in-memory data sources for tests.
package mock

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/pipelined/cut"
	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

const (
	// SourceType is the audio source type which samples are all equal to
	// the value written in the Source field.
	SourceType = "mock"
	// FeaturesPath is the memory storage of dummy features.
	FeaturesPath = "mock"

	defaultSamplingRate = 16000
	defaultFrameShift   = 0.01
	defaultNumFeatures  = 23
	defaultValue        = 0.5
)

func init() {
	audio.RegisterLoader(SourceType, audio.LoaderFunc(func(s audio.Source, numSamples int) (signal.Float64, error) {
		v := 0.0
		if s.Source != "" {
			var err error
			if v, err = strconv.ParseFloat(s.Source, 64); err != nil {
				return nil, err
			}
		}
		return constant(len(s.Channels), numSamples, v), nil
	}))
}

// Loader is an audio loader that produces constant samples and counts its
// calls.
type Loader struct {
	Value       float64
	ErrorOnCall error

	mu    sync.Mutex
	calls int
}

// Load implements audio.Loader.
func (l *Loader) Load(s audio.Source, numSamples int) (signal.Float64, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	if l.ErrorOnCall != nil {
		return nil, l.ErrorOnCall
	}
	return constant(len(s.Channels), numSamples, l.Value), nil
}

// Calls returns number of Load calls.
func (l *Loader) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func constant(numChannels, numSamples int, v float64) signal.Float64 {
	buf := signal.EmptyFloat64(numChannels, numSamples)
	for c := range buf {
		for i := range buf[c] {
			buf[c][i] = v
		}
	}
	return buf
}

// Recording returns single-channel recording of duration seconds with
// constant samples.
func Recording(id int, duration float64) *audio.Recording {
	return MultiRecording(id, duration, 1)
}

// MultiRecording returns recording with numChannels channels.
func MultiRecording(id int, duration float64, numChannels int) *audio.Recording {
	channels := make([]int, numChannels)
	for i := range channels {
		channels[i] = i
	}
	return &audio.Recording{
		ID: fmt.Sprintf("dummy-recording-%04d", id),
		Sources: []audio.Source{
			{
				Type:     SourceType,
				Channels: channels,
				Source:   strconv.FormatFloat(defaultValue, 'f', -1, 64),
			},
		},
		SamplingRate: defaultSamplingRate,
		NumSamples:   timing.SecondsToSamples(duration, defaultSamplingRate),
		Duration:     duration,
	}
}

// Features returns fbank features of the dummy recording. Every frame of
// the features is filled with its index.
func Features(id int, duration float64) *features.Features {
	f := &features.Features{
		RecordingID:  fmt.Sprintf("dummy-recording-%04d", id),
		Duration:     duration,
		Type:         "fbank",
		NumFrames:    timing.SecondsToFrames(duration, defaultFrameShift),
		NumFeatures:  defaultNumFeatures,
		FrameShift:   defaultFrameShift,
		SamplingRate: defaultSamplingRate,
		StorageType:  features.MemoryStorage,
		StoragePath:  FeaturesPath,
	}
	f.StorageKey = fmt.Sprintf("dummy-features-%04d-%d", id, f.NumFrames)
	arr := features.Constant(f.NumFrames, f.NumFeatures, 0)
	for i := range arr {
		for j := range arr[i] {
			arr[i][j] = float64(i)
		}
	}
	features.Memory(FeaturesPath).Write(f.StorageKey, arr)
	return f
}

// Supervision returns segment of the dummy recording.
func Supervision(id int, start, duration float64) supervision.Segment {
	return supervision.Segment{
		ID:          fmt.Sprintf("dummy-segment-%04d", id),
		RecordingID: "dummy-recording-0000",
		Start:       start,
		Duration:    duration,
		Text:        "irrelevant",
	}
}

// Cut returns a cut with dummy recording and features that last until the
// end of the cut.
func Cut(id int, start, duration float64, segments ...supervision.Segment) *cut.MonoCut {
	return &cut.MonoCut{
		ID:           fmt.Sprintf("dummy-cut-%04d", id),
		Start:        start,
		Duration:     duration,
		Recording:    Recording(id, start+duration),
		Features:     Features(id, start+duration),
		Supervisions: segments,
	}
}

// MultiCut returns a two-channel cut with dummy recording.
func MultiCut(id int, start, duration float64, segments ...supervision.Segment) *cut.MultiCut {
	return &cut.MultiCut{
		ID:           fmt.Sprintf("dummy-cut-%04d", id),
		Start:        start,
		Duration:     duration,
		Channels:     []int{0, 1},
		Recording:    MultiRecording(id, start+duration, 2),
		Features:     Features(id, start+duration),
		Supervisions: segments,
	}
}
