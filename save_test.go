package cut_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/cut"
	"github.com/pipelined/cut/mock"
)

// 16-bit quantization error.
const quantization = 1e-4

func TestSaveAudio(t *testing.T) {
	mixed, err := cut.Mix(mock.Cut(2, 0, 1), mock.Cut(3, 0, 0.5), cut.WithGain(0.5), cut.WithMixedID("mixed"))
	require.NoError(t, err)
	tests := []struct {
		description string
		cut         cut.Cut
		expected    interface{}
		channels    int
		value       float64
	}{
		{
			description: "mono",
			cut:         mock.Cut(0, 0.5, 1, segment("a", 0.2, 0.5)),
			expected:    &cut.MonoCut{},
			channels:    1,
			value:       0.5,
		},
		{
			description: "multi",
			cut:         mock.MultiCut(1, 0, 1),
			expected:    &cut.MultiCut{},
			channels:    2,
			value:       0.5,
		},
		{
			description: "mixed",
			cut:         mixed,
			expected:    &cut.MonoCut{},
			channels:    1,
			value:       0.75,
		},
	}
	for _, test := range tests {
		path := filepath.Join(t.TempDir(), "audio.wav")
		saved, err := cut.SaveAudio(test.cut, path)
		require.NoError(t, err, test.description)
		assert.IsType(t, test.expected, saved, test.description)
		assert.Equal(t, test.cut.CutID(), saved.CutID(), test.description)
		assert.Equal(t, 0.0, saved.Span().Start, test.description)
		assert.InDelta(t, test.cut.Span().Duration, saved.Span().Duration, 1e-9, test.description)
		assert.Equal(t, test.cut.Segments(), saved.Segments(), test.description)
		assert.False(t, saved.HasFeatures(), test.description)

		samples, err := saved.LoadAudio()
		require.NoError(t, err, test.description)
		assert.Equal(t, test.channels, samples.NumChannels(), test.description)
		assert.Equal(t, 16000, samples.Size(), test.description)
		for ch := range samples {
			assert.InDelta(t, test.value, samples[ch][0], quantization, test.description)
		}
	}

	_, err = cut.SaveAudio(&cut.PaddingCut{ID: "p", Duration: 1}, filepath.Join(t.TempDir(), "audio.wav"))
	assert.ErrorIs(t, err, cut.ErrNoRecording)
}
