package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"tradebook/cmd"
)

// completion describes the CLI surface for shell completion. Complete exits
// early when invoked by the shell, before any flag parsing.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	tb := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"journal": predict.Files("*.jsonl"),
			"v":       predict.Nothing,
		},
	}
	tb.Complete("tb")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
