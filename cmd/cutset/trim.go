package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pipelined/cut"
)

type trimCommand struct {
	in  string
	out string
}

func (cmd *trimCommand) Name() string {
	return "trim"
}

func (cmd *trimCommand) Help() string {
	return "Replace cuts with cuts of their supervisions"
}

func (cmd *trimCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input cuts manifest (required)")
	fs.StringVar(&cmd.out, "out", "", "output cuts manifest (required)")
}

func (cmd *trimCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	ctx := context.Background()
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	set, err := cut.LoadSet(cmd.in)
	if err != nil {
		return err
	}
	trimmed, err := set.TrimToSupervisions(ctx, opts...)
	if err != nil {
		return err
	}
	return trimmed.Save(cmd.out)
}

func (cmd *trimCommand) Validate() error {
	var message string
	if cmd.in == "" {
		message = message + "Missing -in required flag\n"
	}
	if cmd.out == "" {
		message = message + "Missing -out required flag\n"
	}
	if message != "" {
		return fmt.Errorf("%s", message)
	}
	return nil
}
