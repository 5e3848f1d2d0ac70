package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"tradebook"
	"tradebook/renderer"
)

type buyinCmd struct{}

func (*buyinCmd) Name() string     { return "buyin" }
func (*buyinCmd) Synopsis() string { return "compute the cost basis per symbol" }
func (*buyinCmd) Usage() string {
	return `tb buyin [symbol...]

  Shows the original and the premium/dividend adjusted cost basis side by
  side. Without arguments every symbol in the journal is reported.
`
}

func (*buyinCmd) SetFlags(f *flag.FlagSet) {}

func (c *buyinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = slices.Collect(book.Symbols())
	}

	log := Logger()
	md := renderer.BuyInMarkdown(symbols,
		book.OriginalBuyIn(symbols, tradebook.WithLogger(log)),
		book.AdjustedBuyIn(symbols, tradebook.WithLogger(log)))
	printMarkdown(md)
	return subcommands.ExitSuccess
}
