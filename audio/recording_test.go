package audio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/signal"
)

const samplingRate = 8000

func stereo(size int) signal.Float64 {
	buf := signal.EmptyFloat64(2, size)
	for i := 0; i < size; i++ {
		buf[0][i] = 0.25
		buf[1][i] = -0.5
	}
	return buf
}

func TestWavRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	require.NoError(t, audio.WriteWav(path, stereo(2*samplingRate), samplingRate, signal.BitDepth16))

	rec, err := audio.FromFile(path, "rec1")
	require.NoError(t, err)
	assert.Equal(t, "rec1", rec.ID)
	assert.Equal(t, samplingRate, rec.SamplingRate)
	assert.Equal(t, 2*samplingRate, rec.NumSamples)
	assert.Equal(t, 2.0, rec.Duration)
	assert.Equal(t, []int{0, 1}, rec.ChannelIDs())

	tests := []struct {
		description string
		channels    []int
		offset      float64
		duration    float64
		expected    []float64
	}{
		{
			description: "both channels",
			channels:    []int{0, 1},
			offset:      0.5,
			duration:    1,
			expected:    []float64{0.25, -0.5},
		},
		{
			description: "second channel only",
			channels:    []int{1},
			offset:      0,
			duration:    2,
			expected:    []float64{-0.5},
		},
	}
	for _, test := range tests {
		samples, err := rec.LoadAudio(test.channels, test.offset, test.duration)
		require.NoError(t, err, test.description)
		assert.Equal(t, len(test.expected), samples.NumChannels(), test.description)
		assert.Equal(t, int(test.duration*samplingRate), samples.Size(), test.description)
		for i, v := range test.expected {
			assert.InDelta(t, v, samples[i][0], 1e-3, test.description)
			assert.InDelta(t, v, samples[i][samples.Size()-1], 1e-3, test.description)
		}
	}
}

func TestLoadAudioErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	require.NoError(t, audio.WriteWav(path, stereo(samplingRate), samplingRate, signal.BitDepth16))
	rec, err := audio.FromFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, path, rec.ID)

	_, err = rec.LoadAudio([]int{2}, 0, 0.5)
	assert.ErrorIs(t, err, audio.ErrUnknownChannel)

	_, err = rec.LoadAudio([]int{0}, 0.5, 1)
	assert.ErrorIs(t, err, audio.ErrOutOfRange)

	_, err = rec.LoadAudio([]int{0}, -1, 1)
	assert.ErrorIs(t, err, audio.ErrOutOfRange)

	// shortfall within tolerance is padded.
	rec.NumSamples += 10
	samples, err := rec.LoadAudio([]int{0}, 0, float64(rec.NumSamples)/samplingRate)
	require.NoError(t, err)
	assert.Equal(t, rec.NumSamples, samples.Size())
	assert.Equal(t, 0.0, samples[0][rec.NumSamples-1])

	rec.Sources[0].Type = "url"
	_, err = rec.LoadAudio([]int{0}, 0, 0.5)
	assert.ErrorIs(t, err, audio.ErrUnknownSourceType)

	rec.Sources[0].Type = "file"
	rec.Sources[0].Source = "audio.flac"
	_, err = rec.LoadAudio([]int{0}, 0, 0.5)
	assert.ErrorIs(t, err, audio.ErrUnsupportedFormat)

	rec.Sources[0].Source = filepath.Join(t.TempDir(), "missing.wav")
	_, err = rec.LoadAudio([]int{0}, 0, 0.5)
	assert.Error(t, err)
}

func TestRegisterLoader(t *testing.T) {
	audio.RegisterLoader("ones", audio.LoaderFunc(func(s audio.Source, numSamples int) (signal.Float64, error) {
		buf := signal.EmptyFloat64(len(s.Channels), numSamples)
		for c := range buf {
			for i := range buf[c] {
				buf[c][i] = float64(c + 1)
			}
		}
		return buf, nil
	}))
	rec := audio.Recording{
		ID: "multi",
		Sources: []audio.Source{
			{Type: "ones", Channels: []int{0}},
			{Type: "ones", Channels: []int{3, 1}},
		},
		SamplingRate: samplingRate,
		NumSamples:   samplingRate,
		Duration:     1,
	}
	assert.Equal(t, 3, rec.NumChannels())
	samples, err := rec.LoadAudio([]int{1, 0}, 0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 2000, samples.Size())
	assert.Equal(t, 2.0, samples[0][0])
	assert.Equal(t, 1.0, samples[1][0])
}
