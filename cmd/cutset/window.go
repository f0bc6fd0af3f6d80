package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pipelined/cut"
)

type windowCommand struct {
	in            string
	out           string
	duration      float64
	hop           float64
	keepExcessive bool
}

func (cmd *windowCommand) Name() string {
	return "window"
}

func (cmd *windowCommand) Help() string {
	return "Split cuts into fixed-size windows"
}

func (cmd *windowCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input cuts manifest (required)")
	fs.StringVar(&cmd.out, "out", "", "output cuts manifest (required)")
	fs.Float64Var(&cmd.duration, "duration", 0, "window duration in seconds (required)")
	fs.Float64Var(&cmd.hop, "hop", 0, "distance between window starts in seconds, defaults to duration")
	fs.BoolVar(&cmd.keepExcessive, "keep-excessive", false, "keep supervisions that exceed windows uncropped")
}

func (cmd *windowCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	ctx := context.Background()
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	opts = append(opts, cut.WithHop(cmd.hop))
	if cmd.keepExcessive {
		opts = append(opts, cut.KeepExcessive())
	}

	set, err := cut.LoadSet(cmd.in)
	if err != nil {
		return err
	}
	windows, err := set.CutIntoWindows(ctx, cmd.duration, opts...)
	if err != nil {
		return err
	}
	return windows.Save(cmd.out)
}

func (cmd *windowCommand) Validate() error {
	var message string
	if cmd.in == "" {
		message = message + "Missing -in required flag\n"
	}
	if cmd.out == "" {
		message = message + "Missing -out required flag\n"
	}
	if cmd.duration <= 0 {
		message = message + "Missing -duration required flag\n"
	}
	if message != "" {
		return fmt.Errorf("%s", message)
	}
	return nil
}
