// Package cmd implements the CLI application to manage a trade journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"tradebook"
)

// Commands is the list of subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&txCmd{},
	&profitsCmd{},
	&positionsCmd{},
	&buyinCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application the lifecycle is very short lived, so global flags are
// fine.

var journalFile = flag.String("journal", "journal.jsonl", "Path to the journal file (JSONL format)")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Logger returns the application logger, writing human-readable lines to
// stderr. Folds get it injected; markdown reports stay on stdout.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

// DecodeBook loads the journal file. A missing file is an empty journal.
// Malformed lines are logged and skipped; the valid records still load.
func DecodeBook() (*tradebook.Book, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger := Logger()
		logger.Warn().Str("journal", *journalFile).Msg("journal does not exist yet, starting empty")
		return tradebook.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open journal %q: %w", *journalFile, err)
	}
	defer f.Close()

	book, err := tradebook.DecodeBook(f)
	if err != nil {
		logger := Logger()
		logger.Warn().Str("journal", *journalFile).Err(err).Msg("some journal records were skipped")
	}
	return book, nil
}

// WriteBook rewrites the journal file in canonical form.
func WriteBook(book *tradebook.Book) error {
	f, err := os.Create(*journalFile)
	if err != nil {
		return fmt.Errorf("cannot write journal %q: %w", *journalFile, err)
	}
	defer f.Close()
	if err := tradebook.EncodeBook(f, book); err != nil {
		return fmt.Errorf("cannot write journal %q: %w", *journalFile, err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal; on rendering trouble the
// raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
