package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"tradebook"
	"tradebook/quote"
	"tradebook/renderer"
)

type positionsCmd struct {
	offline bool
	strict  bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show the currently held positions" }
func (*positionsCmd) Usage() string {
	return `tb positions [-offline] [-strict]

  Shows the symbols still held, with their buy-ins and, when a quote is
  available, the unrealized profit. Quotes come from the provider configured
  through the TB_QUOTE_* environment variables.
`
}

func (p *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.offline, "offline", false, "Do not fetch quotes; show positions without a valuation.")
	f.BoolVar(&p.strict, "strict", false, "Fail on the first trade outside the decision table instead of skipping it.")
}

func (p *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var src tradebook.PriceSource
	if !p.offline {
		cfg, err := quote.FromEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		src = quote.New(cfg, Logger())
	}

	opts := []tradebook.Option{tradebook.WithLogger(Logger())}
	if p.strict {
		opts = append(opts, tradebook.FailFast())
	}

	positions, err := book.Positions(src, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(positions))
	return subcommands.ExitSuccess
}
