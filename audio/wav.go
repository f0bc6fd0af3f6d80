package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pipelined/cut/signal"
	"github.com/pipelined/cut/timing"
)

// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
var ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32 bit depth is supported")

// wavFormat is PCM audio format of wav header.
const wavFormat = 1

// ReadWav decodes the whole wav file and returns its samples and sampling
// rate.
func ReadWav(path string) (signal.Float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("wav is not valid: %s", path)
	}
	bitDepth := signal.BitDepth(decoder.BitDepth)
	if bitDepth != signal.BitDepth16 && bitDepth != signal.BitDepth24 && bitDepth != signal.BitDepth32 {
		return nil, 0, ErrUnsupportedBitDepth
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	samples := signal.InterInt{
		Data:        buf.Data,
		NumChannels: int(decoder.NumChans),
		BitDepth:    bitDepth,
	}.AsFloat64()
	if samples == nil {
		samples = signal.EmptyFloat64(int(decoder.NumChans), 0)
	}
	return samples, int(decoder.SampleRate), nil
}

// WriteWav encodes samples into a PCM wav file. Samples are clipped to
// [-1, 1] range.
func WriteWav(path string, samples signal.Float64, samplingRate int, bitDepth signal.BitDepth) error {
	if bitDepth != signal.BitDepth16 && bitDepth != signal.BitDepth24 && bitDepth != signal.BitDepth32 {
		return ErrUnsupportedBitDepth
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	clipped := samples.Resize(samples.Size())
	clipped.Clip()

	e := wav.NewEncoder(f, samplingRate, int(bitDepth), samples.NumChannels(), wavFormat)
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: samples.NumChannels(),
			SampleRate:  samplingRate,
		},
		Data:           clipped.AsInterInt(bitDepth),
		SourceBitDepth: int(bitDepth),
	}
	if err := e.Write(ib); err != nil {
		f.Close()
		return err
	}
	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FromFile creates a recording of the wav file. The recording id is file
// path unless id is provided.
func FromFile(path string, id string) (*Recording, error) {
	samples, samplingRate, err := ReadWav(path)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = path
	}
	channels := make([]int, samples.NumChannels())
	for i := range channels {
		channels[i] = i
	}
	return &Recording{
		ID: id,
		Sources: []Source{
			{
				Type:     "file",
				Channels: channels,
				Source:   path,
			},
		},
		SamplingRate: samplingRate,
		NumSamples:   samples.Size(),
		Duration:     timing.SamplesToSeconds(samples.Size(), samplingRate),
	}, nil
}
