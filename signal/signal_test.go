package signal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/cut/signal"
)

func TestInterIntsAsFloat64(t *testing.T) {
	tests := []struct {
		ints        []int
		numChannels int
		bitDepth    signal.BitDepth
		expected    [][]float64
	}{
		{
			ints:        []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2},
			numChannels: 2,
			expected: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2, 2, 2},
			},
		},
		{
			ints:        []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1},
			numChannels: 2,
			expected: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2, 2, 0},
			},
		},
		{
			ints:        []int{math.MaxInt16, math.MaxInt16 * 2},
			numChannels: 2,
			expected: [][]float64{
				{1},
				{2},
			},
			bitDepth: signal.BitDepth16,
		},
		{
			ints:     nil,
			expected: nil,
		},
		{
			ints:     []int{1, 2, 3},
			expected: nil,
		},
	}

	for _, test := range tests {
		ints := signal.InterInt{
			Data:        test.ints,
			NumChannels: test.numChannels,
			BitDepth:    test.bitDepth,
		}
		result := ints.AsFloat64()
		assert.Equal(t, len(test.expected), len(result))
		for i := range test.expected {
			for j, val := range test.expected[i] {
				assert.Equal(t, val, result[i][j])
			}
		}
	}
}

func TestFloat64AsInterInt(t *testing.T) {
	tests := []struct {
		floats   [][]float64
		bitDepth signal.BitDepth
		expected []int
	}{
		{
			floats: [][]float64{
				{1, 1, 1, 1},
				{2, 2, 2, 2},
			},
			expected: []int{1, 2, 1, 2, 1, 2, 1, 2},
		},
		{
			floats: [][]float64{
				{1},
				{0.5},
			},
			bitDepth: signal.BitDepth16,
			expected: []int{1 * (math.MaxInt16 - 1), int(0.5 * (math.MaxInt16 - 1))},
		},
		{
			floats:   nil,
			expected: nil,
		},
	}

	for _, test := range tests {
		ints := signal.Float64(test.floats).AsInterInt(test.bitDepth)
		assert.Equal(t, test.expected, ints)
	}
}

func TestAddAt(t *testing.T) {
	tests := []struct {
		description string
		at          int
		source      signal.Float64
		gain        float64
		expected    signal.Float64
	}{
		{
			description: "in the middle",
			at:          1,
			source:      signal.Float64{{1, 1}, {2, 2}},
			gain:        1,
			expected:    signal.Float64{{0, 1, 1, 0}, {0, 2, 2, 0}},
		},
		{
			description: "clipped at the end",
			at:          3,
			source:      signal.Float64{{1, 1}, {2, 2}},
			gain:        1,
			expected:    signal.Float64{{0, 0, 0, 1}, {0, 0, 0, 2}},
		},
		{
			description: "mono broadcast with gain",
			at:          0,
			source:      signal.Float64{{1, 1}},
			gain:        0.5,
			expected:    signal.Float64{{0.5, 0.5, 0, 0}, {0.5, 0.5, 0, 0}},
		},
	}
	for _, test := range tests {
		buf := signal.EmptyFloat64(2, 4)
		buf.AddAt(test.at, test.source, test.gain)
		assert.Equal(t, test.expected, buf, test.description)
	}
}

func TestResizeAndChannels(t *testing.T) {
	buf := signal.Float64{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, signal.Float64{{1, 2}, {4, 5}}, buf.Resize(2))
	assert.Equal(t, signal.Float64{{1, 2, 3, 0}, {4, 5, 6, 0}}, buf.Resize(4))
	assert.Equal(t, signal.Float64{{4, 5, 6}}, buf.Channels(1))
	assert.Nil(t, buf.Channels(2))

	loud := signal.Float64{{2, -3, 0.5}}
	loud.Clip()
	assert.Equal(t, signal.Float64{{1, -1, 0.5}}, loud)
}
