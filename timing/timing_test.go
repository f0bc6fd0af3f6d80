package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/cut/timing"
)

func TestSecondsToSamples(t *testing.T) {
	tests := []struct {
		seconds      float64
		samplingRate int
		expected     int
	}{
		{seconds: 10, samplingRate: 16000, expected: 160000},
		{seconds: 4, samplingRate: 16000, expected: 64000},
		{seconds: 14.4, samplingRate: 16000, expected: 230400},
		{seconds: 0.00003, samplingRate: 16000, expected: 0},
		{seconds: 0.00004, samplingRate: 16000, expected: 1},
		{seconds: 1.5396371882, samplingRate: 22050, expected: 33949},
	}
	for _, test := range tests {
		n := timing.SecondsToSamples(test.seconds, test.samplingRate)
		assert.Equal(t, test.expected, n, "seconds: %v", test.seconds)
		// round trip recovers time within half a sample period.
		back := timing.SamplesToSeconds(n, test.samplingRate)
		assert.InDelta(t, test.seconds, back, 0.5/float64(test.samplingRate))
	}
}

func TestSecondsToFrames(t *testing.T) {
	assert.Equal(t, 1000, timing.SecondsToFrames(10, 0.01))
	assert.Equal(t, 1604, timing.SecondsToFrames(16.04, 0.01))
	assert.Equal(t, 400, timing.SecondsToFrames(4, 0.01))
	assert.Equal(t, 1360, timing.SecondsToFrames(13.595, 0.01))
}

func TestOverlaps(t *testing.T) {
	ref := timing.Interval{Start: 0, Duration: 1}
	for _, start := range []float64{0, 0.0001, 0.5, 0.99999} {
		other := timing.Interval{Start: start, Duration: 1}
		assert.True(t, timing.Overlaps(ref, other), "start: %v", start)
		assert.True(t, timing.Overlaps(other, ref), "start: %v", start)
	}
	assert.False(t, timing.Overlaps(ref, timing.Interval{Start: 5, Duration: 1}))
	// touching intervals don't overlap.
	assert.False(t, timing.Overlaps(ref, timing.Interval{Start: 1, Duration: 1}))
	assert.False(t, timing.Overlaps(timing.Interval{Start: 1, Duration: 1}, ref))
}

func TestOverlapDuration(t *testing.T) {
	a := timing.Interval{Start: 0, Duration: 2}
	assert.InDelta(t, 1.5, timing.OverlapDuration(a, timing.Interval{Start: 0.5, Duration: 3}), 1e-9)
	assert.Equal(t, 0.0, timing.OverlapDuration(a, timing.Interval{Start: 2, Duration: 3}))
	assert.True(t, timing.Contains(a, timing.Interval{Start: 0.5, Duration: 1}))
	assert.False(t, timing.Contains(a, timing.Interval{Start: 1.5, Duration: 1}))
	assert.Equal(t, 3.0, a.Shift(1).End())
}
