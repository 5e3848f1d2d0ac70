package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradebook"
	"tradebook/renderer"
)

type profitsCmd struct {
	strict bool
}

func (*profitsCmd) Name() string     { return "profits" }
func (*profitsCmd) Synopsis() string { return "compute realized profit per symbol" }
func (*profitsCmd) Usage() string {
	return `tb profits [-strict]

  Folds the whole journal into per-symbol realized profit and running share
  and contract quantities.
`
}

func (p *profitsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.strict, "strict", false, "Fail on the first trade outside the decision table instead of skipping it.")
}

func (p *profitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	opts := []tradebook.Option{tradebook.WithLogger(Logger())}
	if p.strict {
		opts = append(opts, tradebook.FailFast())
	}

	results, err := book.Profits(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfitsMarkdown(results))
	return subcommands.ExitSuccess
}
