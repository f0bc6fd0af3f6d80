// Package timing converts between seconds and sample or frame indices and
// compares time intervals. Every conversion in this module goes through it,
// so rounding is the same everywhere.
package timing

import "math"

// Interval is a half-open time interval [Start, Start+Duration) in seconds.
type Interval struct {
	Start    float64
	Duration float64
}

// End returns the end of interval.
func (i Interval) End() float64 {
	return i.Start + i.Duration
}

// Shift returns the interval moved by offset seconds.
func (i Interval) Shift(offset float64) Interval {
	return Interval{Start: i.Start + offset, Duration: i.Duration}
}

// Overlaps reports whether two intervals intersect. Intervals that only
// touch at the boundary don't overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End() && b.Start < a.End()
}

// Contains reports whether b lies completely inside of a.
func Contains(a, b Interval) bool {
	return a.Start <= b.Start && b.End() <= a.End()
}

// OverlapDuration returns the length of intersection of two intervals or 0
// if they don't overlap.
func OverlapDuration(a, b Interval) float64 {
	if !Overlaps(a, b) {
		return 0
	}
	return math.Min(a.End(), b.End()) - math.Max(a.Start, b.Start)
}

// SecondsToSamples returns number of samples in t seconds at provided
// sampling rate.
func SecondsToSamples(t float64, samplingRate int) int {
	return int(math.Round(t * float64(samplingRate)))
}

// SecondsToFrames returns number of feature frames in t seconds for
// provided frame shift.
func SecondsToFrames(t, frameShift float64) int {
	return int(math.Round(t / frameShift))
}

// SamplesToSeconds returns duration of n samples at provided sampling rate.
func SamplesToSeconds(n, samplingRate int) float64 {
	return float64(n) / float64(samplingRate)
}
