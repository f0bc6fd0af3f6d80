package mixer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/mixer"
	"github.com/pipelined/cut/signal"
)

func buf(numChannels, size int, value float64) signal.Float64 {
	result := signal.EmptyFloat64(numChannels, size)
	for i := range result {
		for j := range result[i] {
			result[i][j] = value
		}
	}
	return result
}

func TestAudio(t *testing.T) {
	tests := []struct {
		description string
		numChannels int
		size        int
		tracks      []signal.Float64
		offsets     []int
		gains       []float64
		expected    [][]float64
	}{
		{
			description: "overlay",
			numChannels: 1,
			size:        6,
			tracks:      []signal.Float64{buf(1, 4, 0.5), buf(1, 3, 0.25)},
			offsets:     []int{0, 2},
			gains:       []float64{1, 1},
			expected:    [][]float64{{0.5, 0.5, 0.75, 0.75, 0.25, 0}},
		},
		{
			description: "clipped track with gain",
			numChannels: 1,
			size:        4,
			tracks:      []signal.Float64{buf(1, 4, 0.5), buf(1, 4, 1)},
			offsets:     []int{0, 3},
			gains:       []float64{1, 0.5},
			expected:    [][]float64{{0.5, 0.5, 0.5, 1}},
		},
		{
			description: "mono into stereo",
			numChannels: 2,
			size:        2,
			tracks:      []signal.Float64{buf(2, 2, 0.5), buf(1, 1, 0.25)},
			offsets:     []int{0, 1},
			gains:       []float64{1, 1},
			expected:    [][]float64{{0.5, 0.75}, {0.5, 0.75}},
		},
	}
	for _, test := range tests {
		m := mixer.NewAudio(test.numChannels, test.size)
		for i := range test.tracks {
			require.NoError(t, m.Add(test.offsets[i], test.tracks[i], test.gains[i]), test.description)
		}
		assert.Equal(t, signal.Float64(test.expected), m.Result(), test.description)
	}

	m := mixer.NewAudio(2, 2)
	err := m.Add(0, buf(3, 2, 1), 1)
	assert.ErrorIs(t, err, mixer.ErrChannelMismatch)
}

func TestFramesAdditive(t *testing.T) {
	m := mixer.NewFrames(4, 2, mixer.ForType("unknown"))
	require.NoError(t, m.Add(0, features.Constant(2, 2, 1), 1))
	require.NoError(t, m.Add(1, features.Constant(5, 2, 2), 1))
	assert.Equal(t, features.Array{{1, 1}, {3, 3}, {2, 2}, {2, 2}}, m.Result())

	err := m.Add(0, features.Constant(1, 3, 0), 1)
	assert.ErrorIs(t, err, mixer.ErrShapeMismatch)
}

func TestFramesLogEnergy(t *testing.T) {
	m := mixer.NewFrames(3, 1, mixer.ForType("fbank"))
	require.NoError(t, m.Add(0, features.Constant(2, 1, 0), 1))
	require.NoError(t, m.Add(1, features.Constant(1, 1, 0), 1))
	result := m.Result()
	// first frame isn't touched by mixing.
	assert.Equal(t, 0.0, result[0][0])
	assert.InDelta(t, math.Log(2), result[1][0], 1e-9)
	assert.InDelta(t, math.Log(mixer.Epsilon), result[2][0], 1e-9)

	// amplitude gain of 0.5 is a quarter of energy.
	s := mixer.LogEnergy{}
	assert.InDelta(t, math.Log(0.25), s.Scale(0, 0.5), 1e-9)
}
