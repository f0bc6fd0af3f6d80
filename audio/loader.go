package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pipelined/cut/signal"
)

var (
	// ErrUnknownSourceType is returned when no loader is registered for the
	// source type.
	ErrUnknownSourceType = errors.New("unknown source type")
	// ErrUnsupportedFormat is returned when file extension can't be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Loader decodes all samples of a source. numSamples is the length declared
// by the recording; decoders of self-describing files ignore it.
type Loader interface {
	Load(s Source, numSamples int) (signal.Float64, error)
}

// LoaderFunc is an adapter to use ordinary functions as loaders.
type LoaderFunc func(s Source, numSamples int) (signal.Float64, error)

// Load calls f(s, numSamples).
func (f LoaderFunc) Load(s Source, numSamples int) (signal.Float64, error) {
	return f(s, numSamples)
}

var loaders = struct {
	sync.RWMutex
	m map[string]Loader
}{
	m: map[string]Loader{
		"file": LoaderFunc(loadFile),
	},
}

// RegisterLoader makes loader available for sources of provided type.
// Registering the same type twice replaces the loader.
func RegisterLoader(sourceType string, l Loader) {
	loaders.Lock()
	defer loaders.Unlock()
	loaders.m[sourceType] = l
}

func load(s Source, numSamples int) (signal.Float64, error) {
	loaders.RLock()
	l, ok := loaders.m[s.Type]
	loaders.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSourceType, s.Type)
	}
	return l.Load(s, numSamples)
}

func loadFile(s Source, _ int) (signal.Float64, error) {
	switch strings.ToLower(filepath.Ext(s.Source)) {
	case ".wav":
		samples, _, err := ReadWav(s.Source)
		return samples, err
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.Source)
	}
}
