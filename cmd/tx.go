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

type txCmd struct {
	symbol string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the journal" }
func (*txCmd) Usage() string {
	return `tb tx [-s <symbol>]

  Prints the chronological trade log, optionally restricted to one symbol.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Only show trades for this symbol.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(tradebook.TradeEvent) bool
	if p.symbol != "" {
		filters = append(filters, tradebook.BySymbol(p.symbol))
	}

	printMarkdown(renderer.TransactionsMarkdown(book, filters...))
	return subcommands.ExitSuccess
}
