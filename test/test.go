// Package test contains helpers useful for testing cut packages.
package test

import (
	"path/filepath"
	"runtime"
)

// All test assets should be listed here so they could be accessible in all
// test packages.
var (
	testdata = resolvePath("_testdata")

	// Data lists fixture manifests.
	Data = struct {
		// LJSpeechCuts has two cuts of 1.5396371882 and 1.5976870748
		// seconds.
		LJSpeechCuts string
		// MixedAudioCut has "mixed-cut-id" of 14.4 seconds at 16 kHz.
		MixedAudioCut string
		// MixedFeaturesCut has "mixed-cut-id" of 13.595 seconds with
		// features in FeaturesStorage memory storage.
		MixedFeaturesCut string
		// Recordings, Features and Supervisions are matching manifests of
		// a single recording "rec1".
		Recordings   string
		Features     string
		Supervisions string
	}{
		LJSpeechCuts:     filepath.Join(testdata, "ljspeech", "cuts.json"),
		MixedAudioCut:    filepath.Join(testdata, "mix", "overlayed_audio_cut.yaml"),
		MixedFeaturesCut: filepath.Join(testdata, "mix", "overlayed_features_cut.yaml"),
		Recordings:       filepath.Join(testdata, "dummy", "recordings.json"),
		Features:         filepath.Join(testdata, "dummy", "features.json"),
		Supervisions:     filepath.Join(testdata, "dummy", "supervisions.yaml"),
	}
)

const (
	// FeaturesStorage is the memory storage path of MixedFeaturesCut.
	FeaturesStorage = "mix-fixture"
	// FeaturesKey1 and FeaturesKey2 are the keys of MixedFeaturesCut
	// tracks in FeaturesStorage. Both arrays have 1000 frames of 40
	// features.
	FeaturesKey1 = "feats-1"
	FeaturesKey2 = "feats-2"
)

// resolvePath returns absolute path relative to the module root.
func resolvePath(path string) string {
	_, file, _, _ := runtime.Caller(0)
	result, _ := filepath.Abs(filepath.Join(filepath.Dir(file), "..", path))
	return result
}
