package features

// Array is a feature matrix. First dimension is frame.
type Array [][]float64

// Constant returns array filled with value.
func Constant(numFrames, numFeatures int, value float64) Array {
	arr := make(Array, numFrames)
	for i := range arr {
		arr[i] = make([]float64, numFeatures)
		for j := range arr[i] {
			arr[i][j] = value
		}
	}
	return arr
}

// NumFrames returns number of frames.
func (a Array) NumFrames() int {
	return len(a)
}

// NumFeatures returns dimension of a frame.
func (a Array) NumFeatures() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

// Slice returns a copy of n frames starting at offset. Result is shorter if
// array ends earlier and nil if offset is outside of array.
func (a Array) Slice(offset, n int) Array {
	if offset < 0 || offset >= len(a) {
		return nil
	}
	end := offset + n
	if end > len(a) {
		end = len(a)
	}
	result := make(Array, 0, end-offset)
	for _, frame := range a[offset:end] {
		result = append(result, append([]float64(nil), frame...))
	}
	return result
}

// Fit returns a copy with exactly n frames. Extra frames are dropped and
// missing frames repeat the last one. Empty array is padded with zero
// frames of numFeatures dimension.
func (a Array) Fit(n, numFeatures int) Array {
	result := a.Slice(0, n)
	for len(result) < n {
		var frame []float64
		if len(result) > 0 {
			frame = append([]float64(nil), result[len(result)-1]...)
		} else {
			frame = make([]float64, numFeatures)
		}
		result = append(result, frame)
	}
	return result
}
