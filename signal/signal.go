// Package signal provides an API to manipulate digital signals. It allows to:
// 	- convert interleaved data to non-interleaved
//	- convert bit depth for int signals
//	- sum signals at sample offsets
package signal

import (
	"math"
)

// Float64 is a non-interleaved float64 signal. First dimension is channel.
type Float64 [][]float64

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth24 is 24 bit depth.
	BitDepth24 = BitDepth(24)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// InterInt is an interleaved int signal.
type InterInt struct {
	Data        []int
	NumChannels int
	BitDepth
}

// BitDepth contains values required for int-to-float and backward conversion.
type BitDepth int

// devider is used when int to float conversion is done.
func (bitDepth BitDepth) devider() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth24:
		return 1<<23 - 1
	case BitDepth32:
		return math.MaxInt32
	default:
		return 1
	}
}

// multiplier is used when float to int conversion is done.
func (bitDepth BitDepth) multiplier() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8 - 1
	case BitDepth16:
		return math.MaxInt16 - 1
	case BitDepth24:
		return 1<<23 - 2
	case BitDepth32:
		return math.MaxInt32 - 1
	default:
		return 1
	}
}

// AsFloat64 converts interleaved int signal to float64.
func (ints InterInt) AsFloat64() Float64 {
	if ints.Data == nil || ints.NumChannels == 0 {
		return nil
	}
	floats := make([][]float64, ints.NumChannels)
	bufSize := int(math.Ceil(float64(len(ints.Data)) / float64(ints.NumChannels)))

	// determine the devider for bit depth conversion
	devider := float64(ints.BitDepth.devider())

	for i := range floats {
		floats[i] = make([]float64, bufSize)
		pos := 0
		for j := i; j < len(ints.Data); j = j + ints.NumChannels {
			floats[i][pos] = float64(ints.Data[j]) / devider
			pos++
		}
	}
	return floats
}

// AsInterInt converts float64 signal to interleaved int.
func (floats Float64) AsInterInt(bitDepth BitDepth) []int {
	var numChannels int
	if numChannels = len(floats); numChannels == 0 {
		return nil
	}

	// determine the multiplier for bit depth conversion
	multiplier := float64(bitDepth.multiplier())

	ints := make([]int, len(floats[0])*numChannels)

	for j := range floats {
		for i := range floats[j] {
			ints[i*numChannels+j] = int(floats[j][i] * multiplier)
		}
	}
	return ints
}

// EmptyFloat64 returns an empty buffer of specified dimentions.
func EmptyFloat64(numChannels int, bufferSize int) Float64 {
	result := make([][]float64, numChannels)
	for i := range result {
		result[i] = make([]float64, bufferSize)
	}
	return result
}

// NumChannels returns number of channels in this sample slice
func (floats Float64) NumChannels() int {
	return len(floats)
}

// Size returns number of samples in single block in this sample slice
func (floats Float64) Size() int {
	if floats.NumChannels() == 0 {
		return 0
	}
	return len(floats[0])
}

// Channels returns a new buffer with selected channels in provided order.
// Indices outside of buffer produce nil.
func (floats Float64) Channels(indices ...int) Float64 {
	result := make([][]float64, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= floats.NumChannels() {
			return nil
		}
		result = append(result, append([]float64(nil), floats[idx]...))
	}
	return result
}

// Clip limits all values to [-1, 1] range in place.
func (floats Float64) Clip() {
	for c := range floats {
		for i, v := range floats[c] {
			floats[c][i] = math.Max(-1, math.Min(1, v))
		}
	}
}

// Resize returns a copy of buffer with exactly size samples per channel.
// Longer buffers are truncated, shorter are padded with zeros.
func (floats Float64) Resize(size int) Float64 {
	result := EmptyFloat64(floats.NumChannels(), size)
	for i := range floats {
		copy(result[i], floats[i])
	}
	return result
}

// AddAt sums source into the buffer starting at sample position at,
// multiplying source by gain. Samples that don't fit into the buffer are
// dropped. Source must have the same number of channels as buffer or
// a single channel which is then added to every channel.
func (floats Float64) AddAt(at int, source Float64, gain float64) {
	if source.NumChannels() == 0 {
		return
	}
	for c := range floats {
		src := source[0]
		if source.NumChannels() > 1 {
			src = source[c]
		}
		for i, v := range src {
			pos := at + i
			if pos < 0 {
				continue
			}
			if pos >= len(floats[c]) {
				break
			}
			floats[c][pos] += v * gain
		}
	}
}
