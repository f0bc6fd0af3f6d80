package cut

import (
	"github.com/sirupsen/logrus"

	"github.com/pipelined/cut/log"
)

// Option configures batch operations and construction of cut sets.
type Option func(*options)

type options struct {
	numJobs       int
	hop           float64
	skipErrors    bool
	keepExcessive bool
	randomIDs     bool
	strictJoin    bool
	preferLonger  bool
	logger        logrus.FieldLogger
}

func newOptions(opts []Option) options {
	o := options{numJobs: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.GetLogger()
	}
	return o
}

// WithNumJobs sets number of workers of batch operations.
func WithNumJobs(n int) Option {
	return func(o *options) {
		o.numJobs = n
	}
}

// WithHop sets distance in seconds between starts of windows.
func WithHop(hop float64) Option {
	return func(o *options) {
		o.hop = hop
	}
}

// SkipErrors makes batch operations drop failed cuts instead of failing.
// Failures are reported with *BatchError along with the result.
func SkipErrors() Option {
	return func(o *options) {
		o.skipErrors = true
	}
}

// KeepExcessive keeps supervisions that exceed windows uncropped.
func KeepExcessive() Option {
	return func(o *options) {
		o.keepExcessive = true
	}
}

// RandomIDs assigns unique random ids to cuts built from manifests instead
// of <recording id>-<index>.
func RandomIDs() Option {
	return func(o *options) {
		o.randomIDs = true
	}
}

// StrictJoin fails construction of cut set if a supervision references
// unknown recording. Such supervisions are dropped otherwise.
func StrictJoin() Option {
	return func(o *options) {
		o.strictJoin = true
	}
}

// PreferLongerDuration makes cuts built from manifests span the longer of
// recording and features durations. Recording duration is used otherwise.
func PreferLongerDuration() Option {
	return func(o *options) {
		o.preferLonger = true
	}
}

// WithLogger sets logger of the operation.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}
