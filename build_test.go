package cut_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/cut"
	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/log"
	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/supervision"
	"github.com/pipelined/cut/test"
)

type dummyManifests struct {
	recordings   []audio.Recording
	features     []features.Features
	supervisions []supervision.Segment
}

func loadDummy(t *testing.T) dummyManifests {
	t.Helper()
	var (
		m   dummyManifests
		err error
	)
	m.recordings, err = manifest.Load[audio.Recording](test.Data.Recordings)
	require.NoError(t, err)
	m.features, err = manifest.Load[features.Features](test.Data.Features)
	require.NoError(t, err)
	m.supervisions, err = manifest.Load[supervision.Segment](test.Data.Supervisions)
	require.NoError(t, err)
	return m
}

func (m dummyManifests) sources(recordings, feats, supervisions bool) cut.Sources {
	var src cut.Sources
	if recordings {
		src.Recordings = manifest.Slice[audio.Recording](m.recordings)
	}
	if feats {
		src.Features = manifest.Slice[features.Features](m.features)
	}
	if supervisions {
		src.Supervisions = manifest.Slice[supervision.Segment](m.supervisions)
	}
	return src
}

func TestFromManifests(t *testing.T) {
	m := loadDummy(t)
	tests := []struct {
		description  string
		recordings   bool
		features     bool
		supervisions bool
	}{
		{description: "recordings", recordings: true},
		{description: "features", features: true},
		{description: "recordings and features", recordings: true, features: true},
		{description: "recordings and supervisions", recordings: true, supervisions: true},
		{description: "features and supervisions", features: true, supervisions: true},
		{description: "all", recordings: true, features: true, supervisions: true},
	}
	for _, test := range tests {
		src := m.sources(test.recordings, test.features, test.supervisions)
		set, err := cut.FromManifests(context.Background(), src)
		require.NoError(t, err, test.description)
		require.Equal(t, 1, set.Len(), test.description)

		c := set.At(0).(*cut.MonoCut)
		assert.Equal(t, "rec1-0", c.ID, test.description)
		assert.Equal(t, "rec1", c.RecordingID(), test.description)
		assert.Equal(t, 0.0, c.Start, test.description)
		assert.Equal(t, 10.0, c.Duration, test.description)
		assert.Equal(t, test.recordings, c.HasRecording(), test.description)
		assert.Equal(t, test.features, c.HasFeatures(), test.description)
		if test.supervisions {
			assert.Equal(t, m.supervisions, c.Supervisions, test.description)
		} else {
			assert.Empty(t, c.Supervisions, test.description)
		}

		f := c.Format()
		if test.recordings {
			assert.Equal(t, 16000, f.SamplingRate, test.description)
			assert.Equal(t, 160000, f.NumSamples, test.description)
		}
		if test.features {
			assert.Equal(t, 1000, f.NumFrames, test.description)
			assert.Equal(t, 23, f.NumFeatures, test.description)
		}
	}
}

func TestFromManifestsTrimmed(t *testing.T) {
	m := loadDummy(t)
	set, err := cut.FromManifests(context.Background(), m.sources(true, true, true))
	require.NoError(t, err)
	trimmed, err := set.TrimToSupervisions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"sup1", "sup2"}, trimmed.IDs())

	c := trimmed.At(0).(*cut.MonoCut)
	assert.Equal(t, 3.0, c.Start)
	assert.Equal(t, 4.0, c.Duration)
	assert.Equal(t, 64000, c.Format().NumSamples)
	assert.Equal(t, 400, c.Format().NumFrames)
	require.Len(t, c.Supervisions, 1)
	assert.Equal(t, 0.0, c.Supervisions[0].Start)
	assert.Equal(t, 4.0, c.Supervisions[0].Duration)
}

func TestFromManifestsIDs(t *testing.T) {
	m := loadDummy(t)
	second := m.recordings[0]
	second.ID = "rec2"
	m.recordings = append(m.recordings, second)

	set, err := cut.FromManifests(context.Background(), m.sources(true, false, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"rec1-0", "rec2-1"}, set.IDs())

	a, err := cut.FromManifests(context.Background(), m.sources(true, false, false), cut.RandomIDs())
	require.NoError(t, err)
	b, err := cut.FromManifests(context.Background(), m.sources(true, false, false), cut.RandomIDs())
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())
	assert.NotEqual(t, a.IDs(), b.IDs())
	assert.NotContains(t, a.IDs(), "rec1-0")
}

func TestFromManifestsJoin(t *testing.T) {
	m := loadDummy(t)
	m.supervisions = append(m.supervisions, supervision.Segment{
		ID:          "orphan",
		RecordingID: "unknown",
		Duration:    1,
	})
	src := m.sources(true, true, true)

	set, err := cut.FromManifests(context.Background(), src, cut.WithLogger(log.Discard()))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Len(t, set.At(0).Segments(), 2)

	_, err = cut.FromManifests(context.Background(), src, cut.StrictJoin())
	assert.ErrorIs(t, err, cut.ErrUnknownRecording)

	path := filepath.Join(t.TempDir(), "cuts.jsonl")
	_, err = cut.FromManifestsLazy(context.Background(), src, path, cut.StrictJoin())
	assert.ErrorIs(t, err, cut.ErrUnknownRecording)
}

func TestFromManifestsDuplicates(t *testing.T) {
	m := loadDummy(t)
	m.recordings = append(m.recordings, m.recordings[0])
	_, err := cut.FromManifests(context.Background(), m.sources(true, false, false))
	assert.ErrorIs(t, err, cut.ErrDuplicateID)

	m = loadDummy(t)
	m.features = append(m.features, m.features[0])
	_, err = cut.FromManifests(context.Background(), m.sources(false, true, false))
	assert.ErrorIs(t, err, cut.ErrDuplicateID)
}

func TestFromManifestsDuration(t *testing.T) {
	m := loadDummy(t)
	m.features[0].Duration = 10.5
	src := m.sources(true, true, false)

	set, err := cut.FromManifests(context.Background(), src, cut.WithLogger(log.Discard()))
	require.NoError(t, err)
	assert.Equal(t, 10.0, set.At(0).Span().Duration)

	set, err = cut.FromManifests(context.Background(), src, cut.PreferLongerDuration(), cut.WithLogger(log.Discard()))
	require.NoError(t, err)
	assert.Equal(t, 10.5, set.At(0).Span().Duration)
}

func TestFromManifestsMultiChannel(t *testing.T) {
	m := loadDummy(t)
	m.recordings[0].Sources = []audio.Source{
		{Type: "file", Channels: []int{0}, Source: "left.wav"},
		{Type: "file", Channels: []int{1}, Source: "right.wav"},
	}
	set, err := cut.FromManifests(context.Background(), m.sources(true, false, true))
	require.NoError(t, err)
	c, ok := set.At(0).(*cut.MultiCut)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, c.Channels)
	assert.Equal(t, 2, c.Format().NumChannels)
	assert.Len(t, c.Supervisions, 2)
}

func TestFromManifestsFeaturesOnly(t *testing.T) {
	m := loadDummy(t)
	m.features[0].Start = 2
	m.features[0].Channel = 1
	set, err := cut.FromManifests(context.Background(), m.sources(false, true, false))
	require.NoError(t, err)
	c := set.At(0).(*cut.MonoCut)
	assert.Equal(t, 2.0, c.Start)
	assert.Equal(t, 1, c.Channel)
	assert.Nil(t, c.Recording)
}

func TestFromManifestsLazy(t *testing.T) {
	m := loadDummy(t)
	src := m.sources(true, true, true)
	eager, err := cut.FromManifests(context.Background(), src)
	require.NoError(t, err)

	for _, name := range []string{"cuts.jsonl", "cuts.jsonl.gz"} {
		path := filepath.Join(t.TempDir(), name)
		lazy, err := cut.FromManifestsLazy(context.Background(), src, path)
		require.NoError(t, err, name)
		var cuts []cut.Cut
		err = manifest.Each(lazy, func(c cut.Cut) error {
			cuts = append(cuts, c)
			return nil
		})
		require.NoError(t, err, name)
		assert.Equal(t, eager.Cuts(), cuts, name)
	}
}

func TestFromManifestsCancel(t *testing.T) {
	m := loadDummy(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cut.FromManifests(ctx, m.sources(true, false, false))
	assert.ErrorIs(t, err, context.Canceled)
}
