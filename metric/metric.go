// Package metric exposes counters of cut set batch operations with expvar.
package metric

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const operationsLabel = "cut.operations"

const (
	// BatchCounter counts runs of the operation.
	BatchCounter = "Batches"
	// CutCounter counts input cuts.
	CutCounter = "Cuts"
	// ResultCounter counts produced cuts.
	ResultCounter = "Results"
	// ErrorCounter counts skipped cuts.
	ErrorCounter = "Errors"
	// LatencyCounter is the wall time of the last run.
	LatencyCounter = "Latency"
	// DurationCounter sums durations of input cuts.
	DurationCounter = "Duration"
)

var (
	operations = metrics{
		m: make(map[string]metric),
	}

	counters = []string{
		BatchCounter,
		CutCounter,
		ResultCounter,
		ErrorCounter,
		LatencyCounter,
		DurationCounter,
	}
)

// Get metrics values for provided operation.
func Get(operation string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(operation, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// GetAll returns counters for all measured operations.
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	operations.Lock()
	defer operations.Unlock()
	for operation := range operations.m {
		m[operation] = Get(operation)
	}
	return m
}

// MeasureFunc captures counters when a batch is done. Duration is the
// total duration of input cuts in seconds.
type MeasureFunc func(cuts, results, errors int, duration float64)

// Meter starts measuring a single run of operation.
func Meter(operation string) MeasureFunc {
	metric := operations.get(operation)
	metric.batches.Add(1)
	startedAt := time.Now()
	return func(cuts, results, errors int, d float64) {
		metric.latency.set(time.Since(startedAt))
		metric.cuts.Add(int64(cuts))
		metric.results.Add(int64(results))
		metric.errors.Add(int64(errors))
		metric.duration.add(time.Duration(d * float64(time.Second)))
	}
}

type metrics struct {
	sync.Mutex
	m map[string]metric
}

func (m *metrics) get(operation string) metric {
	m.Lock()
	defer m.Unlock()
	if metric, ok := m.m[operation]; ok {
		return metric
	}
	metric := newMetric(operation)
	m.m[operation] = metric
	return metric
}

type metric struct {
	batches  *expvar.Int
	cuts     *expvar.Int
	results  *expvar.Int
	errors   *expvar.Int
	latency  *duration
	duration *duration
}

func newMetric(operation string) metric {
	m := metric{
		batches:  expvar.NewInt(key(operation, BatchCounter)),
		cuts:     expvar.NewInt(key(operation, CutCounter)),
		results:  expvar.NewInt(key(operation, ResultCounter)),
		errors:   expvar.NewInt(key(operation, ErrorCounter)),
		latency:  &duration{},
		duration: &duration{},
	}
	expvar.Publish(key(operation, LatencyCounter), m.latency)
	expvar.Publish(key(operation, DurationCounter), m.duration)
	return m
}

func key(operation, counter string) string {
	return fmt.Sprintf("%s.%s.%s", operationsLabel, operation, counter)
}

// duration allows to format time.Duration metric values.
type duration struct {
	d int64
}

func (v *duration) String() string {
	return fmt.Sprintf("%q", time.Duration(atomic.LoadInt64(&v.d)).String())
}

func (v *duration) add(delta time.Duration) {
	atomic.AddInt64(&v.d, int64(delta))
}

func (v *duration) set(value time.Duration) {
	atomic.StoreInt64(&v.d, int64(value))
}
