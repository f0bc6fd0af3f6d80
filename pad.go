package cut

import (
	"github.com/pipelined/cut/mixer"
	"github.com/pipelined/cut/timing"
)

// Pad extends the cut with silence to last duration seconds. The cut is
// returned unchanged if it's already long enough.
func Pad(c Cut, duration float64, opts ...MixOption) (Cut, error) {
	d := c.Span().Duration
	if duration <= d {
		return c, nil
	}
	f := c.Format()
	p := padding(f, c.HasRecording(), c.HasFeatures(), duration-d)
	p.ID = newUID()
	if c.HasFeatures() {
		// total frames must match frames of the target duration.
		p.NumFrames = timing.SecondsToFrames(duration, f.FrameShift) - f.NumFrames
		if p.NumFrames < 1 {
			p.NumFrames = 1
		}
	}
	return Append(c, p, opts...)
}

// padding returns silence that matches format.
func padding(f Format, audio, feats bool, duration float64) *PaddingCut {
	p := &PaddingCut{Duration: duration}
	if audio {
		p.SamplingRate = f.SamplingRate
		p.NumChannels = f.NumChannels
	}
	if feats {
		p.FrameShift = f.FrameShift
		p.NumFeatures = f.NumFeatures
		p.NumFrames = timing.SecondsToFrames(duration, f.FrameShift)
		p.FeatValue = mixer.ForType(f.FeaturesType).Silence()
	}
	return p
}
