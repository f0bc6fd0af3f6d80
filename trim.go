package cut

import (
	"math"
)

// TrimToSupervisions returns a cut for every supervision of c spanning the
// supervision interval. Each result is named after its supervision and
// keeps all supervisions overlapping it uncropped. Cut without
// supervisions is returned as is.
func TrimToSupervisions(c Cut) ([]Cut, error) {
	segments := c.Segments()
	if len(segments) == 0 {
		return []Cut{c}, nil
	}
	result := make([]Cut, 0, len(segments))
	for _, s := range segments {
		offset := math.Max(0, s.Start)
		tc, err := c.Truncate(offset, s.End()-offset, KeepExcessiveSupervisions(), WithTruncatedID(s.ID))
		if err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	return result, nil
}
