// Package mixer sums signals and feature matrices placed at offsets into
// a fixed-size output.
package mixer

import (
	"errors"
	"fmt"

	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
)

var (
	// ErrChannelMismatch is returned when a signal can't be mixed into the
	// output channels.
	ErrChannelMismatch = errors.New("channel mismatch")
	// ErrShapeMismatch is returned when feature dimensions differ.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Audio sums signals into a buffer of fixed size.
type Audio struct {
	out signal.Float64
}

// NewAudio returns mixer with silent output of provided dimensions.
func NewAudio(numChannels, size int) *Audio {
	return &Audio{out: signal.EmptyFloat64(numChannels, size)}
}

// Add sums b scaled by gain into the output starting at sample position at.
// Samples past the end of output are dropped. Single-channel signal is added
// to every output channel.
func (m *Audio) Add(at int, b signal.Float64, gain float64) error {
	if nc := b.NumChannels(); nc != 1 && nc != m.out.NumChannels() {
		return fmt.Errorf("%w: %d channels into %d", ErrChannelMismatch, nc, m.out.NumChannels())
	}
	m.out.AddAt(at, b, gain)
	return nil
}

// Result returns mixed signal.
func (m *Audio) Result() signal.Float64 {
	return m.out
}

// Frames mixes feature matrices frame by frame. Frames that no input
// covered are filled with the silence value of the strategy.
type Frames struct {
	strategy Strategy
	out      features.Array
	covered  []bool
}

// NewFrames returns feature mixer with output of provided dimensions.
func NewFrames(numFrames, numFeatures int, s Strategy) *Frames {
	return &Frames{
		strategy: s,
		out:      features.Constant(numFrames, numFeatures, 0),
		covered:  make([]bool, numFrames),
	}
}

// Add mixes arr scaled by gain into the output starting at frame position
// at. Frames past the end of output are dropped.
func (m *Frames) Add(at int, arr features.Array, gain float64) error {
	if arr.NumFrames() > 0 && arr.NumFeatures() != m.out.NumFeatures() {
		return fmt.Errorf("%w: %d features into %d", ErrShapeMismatch, arr.NumFeatures(), m.out.NumFeatures())
	}
	for i, frame := range arr {
		pos := at + i
		if pos < 0 {
			continue
		}
		if pos >= len(m.out) {
			break
		}
		for j, v := range frame {
			v = m.strategy.Scale(v, gain)
			if m.covered[pos] {
				v = m.strategy.Add(m.out[pos][j], v)
			}
			m.out[pos][j] = v
		}
		m.covered[pos] = true
	}
	return nil
}

// Result returns mixed features.
func (m *Frames) Result() features.Array {
	silence := m.strategy.Silence()
	for i, ok := range m.covered {
		if ok {
			continue
		}
		for j := range m.out[i] {
			m.out[i][j] = silence
		}
	}
	return m.out
}
