package cut

import (
	"github.com/rs/xid"

	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// Cut is a time-bounded reference to audio and/or features with
// supervisions. It is implemented by *MonoCut, *MultiCut, *PaddingCut and
// *MixedCut only.
type Cut interface {
	// CutID returns identifier of the cut.
	CutID() string
	// Span returns start and duration of the cut. Start is an offset into
	// the referenced recording and features.
	Span() timing.Interval
	// Format describes the data the cut carries.
	Format() Format
	HasRecording() bool
	HasFeatures() bool
	// Segments returns supervisions with start relative to the cut.
	Segments() []supervision.Segment
	// LoadAudio returns samples of the cut. Nil is returned if the cut has
	// no recording.
	LoadAudio() (signal.Float64, error)
	// LoadFeatures returns feature frames of the cut. Nil is returned if the
	// cut has no features.
	LoadFeatures() (features.Array, error)
	// Copy returns a deep copy of the cut.
	Copy() Cut
	// WithID returns a copy of the cut with a new id.
	WithID(id string) Cut
	// FilterSupervisions returns a copy of the cut with supervisions that
	// satisfy predicate.
	FilterSupervisions(predicate func(supervision.Segment) bool) Cut
	// Truncate returns a new cut of the same kind covering
	// [offset, offset+duration) of this cut. Duration is limited by the end
	// of this cut.
	Truncate(offset, duration float64, opts ...TruncateOption) (Cut, error)

	cut()
}

// Format describes audio and features of a cut. Zero values mean the cut
// doesn't carry corresponding data.
type Format struct {
	SamplingRate int
	NumChannels  int
	NumSamples   int
	FrameShift   float64
	NumFrames    int
	NumFeatures  int
	FeaturesType string
}

// HasOverlappingSupervisions checks if any two supervisions of the cut
// overlap. Touching supervisions don't overlap.
func HasOverlappingSupervisions(c Cut) bool {
	segments := c.Segments()
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if timing.Overlaps(segments[i].Span(), segments[j].Span()) {
				return true
			}
		}
	}
	return false
}

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}

func copySegments(segments []supervision.Segment) []supervision.Segment {
	if segments == nil {
		return nil
	}
	return append([]supervision.Segment(nil), segments...)
}

func filterSegments(segments []supervision.Segment, predicate func(supervision.Segment) bool) []supervision.Segment {
	var result []supervision.Segment
	for _, s := range segments {
		if predicate(s) {
			result = append(result, s)
		}
	}
	return result
}
