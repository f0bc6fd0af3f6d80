package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pipelined/cut"
	"github.com/pipelined/cut/audio"
	"github.com/pipelined/cut/features"
	"github.com/pipelined/cut/manifest"
	"github.com/pipelined/cut/supervision"
)

type simpleCommand struct {
	recordings   string
	features     string
	supervisions string
	out          string
	lazy         bool
}

func (cmd *simpleCommand) Name() string {
	return "simple"
}

func (cmd *simpleCommand) Help() string {
	return "Create cuts of whole recordings from manifests"
}

func (cmd *simpleCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.recordings, "recordings", "", "recordings manifest")
	fs.StringVar(&cmd.features, "features", "", "features manifest")
	fs.StringVar(&cmd.supervisions, "supervisions", "", "supervisions manifest")
	fs.StringVar(&cmd.out, "out", "", "output cuts manifest (required)")
	fs.BoolVar(&cmd.lazy, "lazy", false, "write cuts as they are built, requires .jsonl output")
}

func (cmd *simpleCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	ctx := context.Background()
	opts, err := options(ctx)
	if err != nil {
		return err
	}

	var src cut.Sources
	if cmd.recordings != "" {
		if src.Recordings, err = source[audio.Recording](cmd.recordings); err != nil {
			return err
		}
	}
	if cmd.features != "" {
		if src.Features, err = source[features.Features](cmd.features); err != nil {
			return err
		}
	}
	if cmd.supervisions != "" {
		if src.Supervisions, err = source[supervision.Segment](cmd.supervisions); err != nil {
			return err
		}
	}

	if cmd.lazy {
		_, err = cut.FromManifestsLazy(ctx, src, cmd.out, opts...)
		return err
	}
	set, err := cut.FromManifests(ctx, src, opts...)
	if err != nil {
		return err
	}
	return set.Save(cmd.out)
}

func (cmd *simpleCommand) Validate() error {
	var message string
	if cmd.recordings == "" && cmd.features == "" {
		message = message + "Missing -recordings or -features flag\n"
	}
	if cmd.out == "" {
		message = message + "Missing -out required flag\n"
	}
	if message != "" {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// source returns a lazy source for line-delimited manifests and reads
// other formats into memory.
func source[T any](path string) (manifest.Source[T], error) {
	format, _, err := manifest.FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == manifest.JSONL {
		return manifest.File[T]{Path: path}, nil
	}
	items, err := manifest.Load[T](path)
	if err != nil {
		return nil, err
	}
	return manifest.Slice[T](items), nil
}
