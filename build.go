package cut

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/supervision"
)

// Sources are manifests joined into cuts by recording id. Any of them can
// be nil.
type Sources struct {
	Recordings   manifest.Source[audio.Recording]
	Features     manifest.Source[features.Features]
	Supervisions manifest.Source[supervision.Segment]
}

// FromManifests builds a cut for every recording and for every features
// without a recording. Cuts span the whole recording and carry all its
// supervisions. Options: RandomIDs, StrictJoin, PreferLongerDuration,
// WithLogger.
func FromManifests(ctx context.Context, src Sources, opts ...Option) (*Set, error) {
	var cuts []Cut
	err := build(ctx, src, newOptions(opts), func(c Cut) error {
		cuts = append(cuts, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewSet(cuts...)
}

// FromManifestsLazy builds the same cuts as FromManifests, but writes them
// into a .jsonl or .jsonl.gz file at path as soon as they are built. Only
// features and supervisions are held in memory, recordings are streamed.
// Returned source reads cuts back from the file.
func FromManifestsLazy(ctx context.Context, src Sources, path string, opts ...Option) (manifest.Source[Cut], error) {
	w, err := NewWriter(path)
	if err != nil {
		return nil, err
	}
	err = build(ctx, src, newOptions(opts), w.Write)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	return Scan(path), nil
}

// build joins manifests and emits cuts in order: recordings as they come,
// then features which recording never appeared.
func build(ctx context.Context, src Sources, o options, emit func(Cut) error) error {
	l := o.logger.WithField("operation", "from manifests")

	var segments []supervision.Segment
	if src.Supervisions != nil {
		err := manifest.Each(src.Supervisions, func(s supervision.Segment) error {
			segments = append(segments, s)
			return nil
		})
		if err != nil {
			return err
		}
	}
	sups, supOrder := supervision.ByRecording(segments)

	var (
		feats     = map[string]features.Features{}
		featOrder []string
	)
	if src.Features != nil {
		err := manifest.Each(src.Features, func(f features.Features) error {
			if _, ok := feats[f.RecordingID]; ok {
				return fmt.Errorf("%w: features of recording %s", ErrDuplicateID, f.RecordingID)
			}
			feats[f.RecordingID] = f
			featOrder = append(featOrder, f.RecordingID)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if o.strictJoin {
		if err := checkJoin(src.Recordings, feats, supOrder); err != nil {
			return err
		}
	}

	b := builder{options: o, logger: l, sups: sups}
	seen := map[string]bool{}
	if src.Recordings != nil {
		err := manifest.Each(src.Recordings, func(rec audio.Recording) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if seen[rec.ID] {
				return fmt.Errorf("%w: recording %s", ErrDuplicateID, rec.ID)
			}
			seen[rec.ID] = true
			var fp *features.Features
			if f, ok := feats[rec.ID]; ok {
				fp = &f
			}
			return emit(b.cut(&rec, fp))
		})
		if err != nil {
			return err
		}
	}
	for _, id := range featOrder {
		if seen[id] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[id] = true
		f := feats[id]
		if err := emit(b.cut(nil, &f)); err != nil {
			return err
		}
	}

	for _, id := range supOrder {
		if !seen[id] {
			l.WithFields(logrus.Fields{
				"recording":    id,
				"supervisions": len(sups[id]),
			}).Warn("supervisions of unknown recording dropped")
		}
	}
	return nil
}

// checkJoin makes a pass over recordings to find supervisions that
// reference unknown recordings.
func checkJoin(recordings manifest.Source[audio.Recording], feats map[string]features.Features, supOrder []string) error {
	known := map[string]bool{}
	for id := range feats {
		known[id] = true
	}
	if recordings != nil {
		err := manifest.Each(recordings, func(rec audio.Recording) error {
			known[rec.ID] = true
			return nil
		})
		if err != nil {
			return err
		}
	}
	for _, id := range supOrder {
		if !known[id] {
			return fmt.Errorf("%w: %s referenced by supervisions", ErrUnknownRecording, id)
		}
	}
	return nil
}

type builder struct {
	options
	logger logrus.FieldLogger
	sups   map[string][]supervision.Segment
	index  int
}

func (b *builder) id(recordingID string) string {
	defer func() { b.index++ }()
	if b.randomIDs {
		return newUID()
	}
	return fmt.Sprintf("%s-%d", recordingID, b.index)
}

// cut returns a cut of the whole recording or features.
func (b *builder) cut(rec *audio.Recording, feat *features.Features) Cut {
	var (
		recordingID string
		start       float64
		duration    float64
		channels    []int
	)
	switch {
	case rec != nil:
		recordingID, duration, channels = rec.ID, rec.Duration, rec.ChannelIDs()
		if feat != nil {
			if math.Abs(feat.Duration-rec.Duration) > audio.DurationTolerance {
				b.logger.WithFields(logrus.Fields{
					"recording":          rec.ID,
					"recording_duration": rec.Duration,
					"features_duration":  feat.Duration,
				}).Warn("recording and features durations differ")
			}
			if b.preferLonger {
				duration = math.Max(duration, feat.Duration)
			}
		}
	default:
		recordingID, start, duration, channels = feat.RecordingID, feat.Start, feat.Duration, []int{feat.Channel}
	}

	segments := copySegments(b.sups[recordingID])
	id := b.id(recordingID)
	if len(channels) > 1 {
		return &MultiCut{
			ID:           id,
			Start:        start,
			Duration:     duration,
			Channels:     channels,
			Recording:    rec,
			Features:     feat,
			Supervisions: segments,
		}
	}
	c := &MonoCut{
		ID:           id,
		Start:        start,
		Duration:     duration,
		Recording:    rec,
		Features:     feat,
		Supervisions: segments,
	}
	if len(channels) == 1 {
		c.Channel = channels[0]
	}
	return c
}
