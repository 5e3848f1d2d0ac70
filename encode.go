package tradebook

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file implements the journal file format: JSONL, one trade record per
// line, discriminated by the "security" property. The format is meant to stay
// human readable and diff-friendly.

// EncodeBook writes the book to w, one JSON object per line, in chronological
// order.
func EncodeBook(w io.Writer, b *Book) error {
	for i, ev := range b.Events() {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("cannot encode trade %d (index %d): %w", ev.TradeID(), i, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook reads a journal from r. Each line is decoded into its variant by
// the "security" property and re-validated.
//
// Decoding is per-record: a malformed line is reported but does not discard
// the rest of the file. The returned book contains every valid event; the
// returned error joins the per-line failures, and is nil when all lines were
// valid.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	var errs error

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		ev, err := decodeEvent(line)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineno, err))
			continue
		}
		book.Append(ev)
	}
	if err := scanner.Err(); err != nil {
		return book, errors.Join(errs, fmt.Errorf("reading journal: %w", err))
	}
	return book, errs
}

// decodeEvent parses one JSONL line into the trade event variant named by its
// "security" property, and validates it.
func decodeEvent(line []byte) (TradeEvent, error) {
	var probe struct {
		Security string `json:"security"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return nil, fmt.Errorf("cannot parse record: %w", err)
	}
	kind, err := ParseSecurityType(probe.Security)
	if err != nil {
		return nil, err
	}

	var ev TradeEvent
	switch {
	case kind.IsStockLike():
		var v StockEvent
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("cannot parse stock record: %w", err)
		}
		ev = v
	case kind == SecDividend:
		var v DividendEvent
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("cannot parse dividend record: %w", err)
		}
		ev = v
	default:
		var v OptionEvent
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("cannot parse option record: %w", err)
		}
		ev = v
	}
	return ev.Validate()
}
