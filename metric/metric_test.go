package metric_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/cut/metric"
)

func TestMeter(t *testing.T) {
	var tests = []struct {
		operation        string
		routines         int
		cuts             int
		results          int
		errors           int
		expectedBatches  string
		expectedCuts     string
		expectedResults  string
		expectedErrors   string
		expectedDuration string
	}{
		{
			operation:        "test windows",
			routines:         2,
			cuts:             10,
			results:          30,
			expectedBatches:  "2",
			expectedCuts:     "20",
			expectedResults:  "60",
			expectedErrors:   "0",
			expectedDuration: `"3s"`,
		},
		{
			operation:        "test windows",
			routines:         1,
			cuts:             5,
			results:          4,
			errors:           1,
			expectedBatches:  "3",
			expectedCuts:     "25",
			expectedResults:  "64",
			expectedErrors:   "1",
			expectedDuration: `"4.5s"`,
		},
	}

	for _, c := range tests {
		wg := &sync.WaitGroup{}
		wg.Add(c.routines)
		for i := 0; i < c.routines; i++ {
			go func(measure metric.MeasureFunc) {
				measure(c.cuts, c.results, c.errors, 1.5)
				wg.Done()
			}(metric.Meter(c.operation))
		}
		// check if no data race.
		wg.Wait()
		values := metric.Get(c.operation)
		assert.Equal(t, c.expectedBatches, values[metric.BatchCounter])
		assert.Equal(t, c.expectedCuts, values[metric.CutCounter])
		assert.Equal(t, c.expectedResults, values[metric.ResultCounter])
		assert.Equal(t, c.expectedErrors, values[metric.ErrorCounter])
		assert.Equal(t, c.expectedDuration, values[metric.DurationCounter])
		assert.Contains(t, metric.GetAll(), c.operation)
	}
}
