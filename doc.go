/*
Package cut represents and composes time-bounded slices of recordings.

Cuts

A cut references a part of a recording and/or precomputed features with
the supervisions that fall into it. There are four kinds of cuts:

    MonoCut - a single channel of a recording;
    MultiCut - several channels of a recording;
    PaddingCut - silence of given duration;
    MixedCut - an overlay of other cuts placed at offsets.

Cuts are values. Operations never modify a cut, they return a new one:

    windows, err := cut.Windows(c, 0.5, 0.4)
    trimmed, err := cut.TrimToSupervisions(c)
    mixed, err := cut.Mix(c1, c2, cut.OffsetOtherBy(5))
    appended, err := cut.Append(c1, c2)

Audio and features are loaded only when requested with LoadAudio and
LoadFeatures. A mixed cut loads all of its tracks and sums them.

Sets

Set is an ordered collection of cuts with unique ids. It's built from
recording, features and supervision manifests joined by recording id:

    cuts, err := cut.FromManifests(ctx, cut.Sources{
        Recordings:   recordings.Source(),
        Supervisions: supervisions.Source(),
    })

Batch operations of a set run on a pool of workers and keep the order of
cuts:

    windows, err := cuts.CutIntoWindows(ctx, 0.5, cut.WithHop(0.4), cut.WithNumJobs(4))
*/
package cut
