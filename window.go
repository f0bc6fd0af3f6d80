package cut

import (
	"fmt"
	"math"
)

// Windows splits the cut into windows of duration seconds that start every
// hop seconds. Zero hop equals duration. The last window is shorter if the
// cut ends earlier. Windows are named <id>-<index>.
func Windows(c Cut, duration, hop float64, opts ...TruncateOption) ([]Cut, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: window of %v seconds", ErrInvalidDuration, duration)
	}
	if hop < 0 {
		return nil, fmt.Errorf("%w: hop of %v seconds", ErrInvalidDuration, hop)
	}
	if hop == 0 {
		hop = duration
	}
	total := c.Span().Duration
	var result []Cut
	for i := 0; ; i++ {
		start := float64(i) * hop
		if total-start <= durationEpsilon {
			break
		}
		wopts := append(opts[:len(opts):len(opts)], WithTruncatedID(fmt.Sprintf("%s-%d", c.CutID(), i)))
		w, err := c.Truncate(start, math.Min(duration, total-start), wopts...)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, nil
}
