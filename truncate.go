package cut

import (
	"fmt"
	"math"

	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/timing"
)

// TruncateOption configures truncation of a cut.
type TruncateOption func(*truncateOptions)

type truncateOptions struct {
	id            string
	keepExcessive bool
}

// KeepExcessiveSupervisions keeps supervisions that exceed the truncated cut
// uncropped.
func KeepExcessiveSupervisions() TruncateOption {
	return func(o *truncateOptions) {
		o.keepExcessive = true
	}
}

// WithTruncatedID sets id of the truncated cut. New unique id is generated
// otherwise.
func WithTruncatedID(id string) TruncateOption {
	return func(o *truncateOptions) {
		o.id = id
	}
}

func newTruncateOptions(opts []TruncateOption) truncateOptions {
	var o truncateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = newUID()
	}
	return o
}

// truncatedDuration validates truncation parameters against the parent
// duration and returns duration of the result.
func truncatedDuration(parent, offset, duration float64) (float64, error) {
	if offset < 0 || offset >= parent {
		return 0, fmt.Errorf("%w: %v for cut of %v seconds", ErrInvalidOffset, offset, parent)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	return math.Min(duration, parent-offset), nil
}

// truncateSegments keeps segments that overlap [offset, offset+duration) and
// moves them to the window start.
func truncateSegments(segments []supervision.Segment, offset, duration float64, keepExcessive bool) []supervision.Segment {
	window := timing.Interval{Start: offset, Duration: duration}
	var result []supervision.Segment
	for _, s := range segments {
		if !timing.Overlaps(window, s.Span()) {
			continue
		}
		contained := timing.Contains(window, s.Span())
		s = s.WithOffset(-offset)
		if !keepExcessive && !contained {
			s = s.Trim(duration)
		}
		result = append(result, s)
	}
	return result
}
