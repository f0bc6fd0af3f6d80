package cut

import (
	"errors"

	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/signal"
)

// ErrNoRecording is returned when audio of a cut without recording is
// requested to be saved.
var ErrNoRecording = errors.New("cut has no recording")

// SaveAudio writes audio of the cut into a 16-bit wav file and returns a
// cut of the whole new recording. The result is a MultiCut if the audio has
// more than one channel. Supervisions of the cut are kept.
func SaveAudio(c Cut, path string) (Cut, error) {
	if !c.HasRecording() {
		return nil, ErrNoRecording
	}
	samples, err := c.LoadAudio()
	if err != nil {
		return nil, err
	}
	f := c.Format()
	if err := audio.WriteWav(path, samples, f.SamplingRate, signal.BitDepth16); err != nil {
		return nil, err
	}
	rec, err := audio.FromFile(path, c.CutID())
	if err != nil {
		return nil, err
	}
	segments := copySegments(c.Segments())
	if rec.NumChannels() > 1 {
		return &MultiCut{
			ID:           c.CutID(),
			Duration:     rec.Duration,
			Channels:     rec.ChannelIDs(),
			Recording:    rec,
			Supervisions: segments,
		}, nil
	}
	return &MonoCut{
		ID:           c.CutID(),
		Duration:     rec.Duration,
		Recording:    rec,
		Supervisions: segments,
	}, nil
}
