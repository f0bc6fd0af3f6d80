package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pipelined/cut"
	"github.com/pipelined/cut/config"
	"github.com/pipelined/cut/log"
)

type cli struct {
	args []string
}

type command interface {
	Name() string
	Help() string
	Run() error
	Register(*flag.FlagSet)
}

func (c *cli) run() int {
	cmdName, args := parseArgs(c.args)
	if cmdName == "" {
		printUsage()
		return errorExitCode
	}

	for _, cmd := range commands {
		if cmd.Name() != cmdName {
			continue
		}
		flags := flag.NewFlagSet(cmdName, flag.ContinueOnError)
		cmd.Register(flags)
		if err := flags.Parse(args); err != nil {
			return errorExitCode
		}
		if err := cmd.Run(); err != nil {
			fmt.Printf("Command failed: %v\n", err)
			return errorExitCode
		}
		return successExitCode
	}

	fmt.Printf("Unknown command: %s\n\n", cmdName)
	printUsage()
	return errorExitCode
}

var (
	successExitCode = 0
	errorExitCode   = 1
	commands        = []command{
		&simpleCommand{},
		&windowCommand{},
		&trimCommand{},
	}
)

func main() {
	c := cli{
		args: os.Args,
	}
	os.Exit(c.run())
}

func parseArgs(args []string) (string, []string) {
	if len(args) < 2 {
		return "", nil
	}
	return args[1], args[2:]
}

func printUsage() {
	fmt.Println("Cutset builds and transforms cut manifests")
	fmt.Println()
	fmt.Println("Usage: cutset <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, cmd := range commands {
		fmt.Printf("\t%s\t%s\n", cmd.Name(), cmd.Help())
	}
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("\tCUT_NUM_JOBS\tnumber of workers")
	fmt.Println("\tCUT_STRICT_JOIN\tfail on supervisions of unknown recordings")
	fmt.Println("\tCUT_RANDOM_IDS\tassign random ids to new cuts")
	fmt.Println("\tCUT_DEBUG\tenable debug logging")
}

// options returns cut options configured with environment.
func options(ctx context.Context) ([]cut.Option, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	opts := []cut.Option{
		cut.WithNumJobs(cfg.NumJobs),
		cut.WithLogger(log.GetLogger()),
	}
	if cfg.StrictJoin {
		opts = append(opts, cut.StrictJoin())
	}
	if cfg.RandomIDs {
		opts = append(opts, cut.RandomIDs())
	}
	return opts, nil
}
