package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/cut/log"
)

func TestGetLogger(t *testing.T) {
	l := log.GetLogger()
	assert.NotNil(t, l)
	assert.Contains(t, []logrus.Level{logrus.InfoLevel, logrus.DebugLevel}, l.Level)

	d := log.Discard()
	d.Warn("dropped")
	assert.NotSame(t, l, d)
}
