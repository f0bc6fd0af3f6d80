package mock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/mock"
)

func TestCut(t *testing.T) {
	c := mock.Cut(1, 0.5, 1, mock.Supervision(1, 0, 0.5))
	assert.Equal(t, "dummy-cut-0001", c.ID)
	assert.Equal(t, "dummy-recording-0001", c.RecordingID())

	samples, err := c.LoadAudio()
	require.NoError(t, err)
	assert.Equal(t, 1, samples.NumChannels())
	assert.Equal(t, 16000, samples.Size())
	assert.Equal(t, 0.5, samples[0][0])

	feats, err := c.LoadFeatures()
	require.NoError(t, err)
	assert.Equal(t, 100, feats.NumFrames())
	assert.Equal(t, 50.0, feats[0][0])

	mc := mock.MultiCut(2, 0, 1)
	samples, err = mc.LoadAudio()
	require.NoError(t, err)
	assert.Equal(t, 2, samples.NumChannels())
}

func TestLoader(t *testing.T) {
	errTest := errors.New("test error")
	tests := []struct {
		loader *mock.Loader
		err    error
	}{
		{loader: &mock.Loader{Value: 0.25}},
		{loader: &mock.Loader{ErrorOnCall: errTest}, err: errTest},
	}
	for _, test := range tests {
		audio.RegisterLoader("mock-loader-test", test.loader)
		rec := mock.Recording(0, 1)
		rec.Sources[0].Type = "mock-loader-test"
		samples, err := rec.LoadAudio([]int{0}, 0, 0.5)
		assert.Equal(t, 1, test.loader.Calls())
		if test.err != nil {
			assert.Equal(t, test.err, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, 0.25, samples[0][7999])
	}
}
