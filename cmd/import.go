package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"tradebook/ingest"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from a CSV or Excel export" }
func (*importCmd) Usage() string {
	return `tb import <file.csv|file.xlsx>...

  Reads journal exports and appends the valid rows to the journal. Rejected
  rows are reported with their row number and reason; one bad row never stops
  the import. See 'tb topic reports' for the expected columns.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file to import.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	im := ingest.NewImporter()
	im.Log = Logger()

	imported, rejected := 0, 0
	for _, name := range f.Args() {
		res, err := importFile(im, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		for _, rej := range res.Rejected {
			fmt.Fprintf(os.Stderr, "%s: row %d rejected: %v\n", name, rej.Row, rej.Reason)
		}
		book.Append(res.Events...)
		imported += len(res.Events)
		rejected += len(res.Rejected)
	}

	if err := WriteBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Imported %d trades into %s (%d rejected)\n", imported, *journalFile, rejected)
	return subcommands.ExitSuccess
}

func importFile(im *ingest.Importer, name string) (ingest.Result, error) {
	f, err := os.Open(name)
	if err != nil {
		return ingest.Result{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return im.ReadWorkbook(f)
	default:
		return im.ReadCSV(f)
	}
}
