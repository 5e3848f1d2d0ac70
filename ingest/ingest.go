// Package ingest turns raw journal rows into validated trade events.
//
// Ingestion is a two-stage parse. A [RawRow] holds the source cells as
// strings, keyed by column name. The first stage coerces the cells into typed
// fields (numbers, dates, enums) without judging them; the second stage builds
// the event variant and runs its validation. A row that fails either stage is
// rejected with its row number and reason, and the batch carries on.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"tradebook"
	"tradebook/date"
)

// Column names of the journal workbook. The header row of a CSV or Excel
// source must use these names; column order does not matter.
const (
	ColTradeID    = "trade_id"
	ColStrategyID = "strategy_id"
	ColBrokerage  = "brokerage"
	ColAccount    = "account"
	ColStrategy   = "strategy"
	ColSecurity   = "security_type"
	ColTradeDate  = "trade_date"
	ColSymbol     = "symbol"
	ColAction     = "action"
	ColSubAction  = "sub_action"
	ColQuantity   = "quantity"
	ColFees       = "fees"
	ColPrice      = "price_per_share"
	ColDividend   = "dividend_amount"
	ColExpiration = "expiration_date"
	ColStrike     = "strike"
	ColPremium    = "premium"
	ColOptionType = "option_type"
)

// RawRow is one source row, untouched. Number is the 1-based row number in
// the source file, counting the header, so it matches what the user sees in
// a spreadsheet.
type RawRow struct {
	Number int
	Fields map[string]string
}

// Rejection records why one row was dropped.
type Rejection struct {
	Row    int
	Reason error
}

// Result is the outcome of an ingestion batch: the validated events plus the
// rejected rows. A batch never fails because of one bad row.
type Result struct {
	Events   []tradebook.TradeEvent
	Rejected []Rejection
}

// Importer converts raw rows into events. The logger receives one warning per
// rejected row; the default discards them.
type Importer struct {
	Log zerolog.Logger
}

func NewImporter() *Importer {
	return &Importer{Log: zerolog.Nop()}
}

// FromRows runs the two-stage parse over every row.
func (im *Importer) FromRows(rows []RawRow) Result {
	var res Result
	for _, raw := range rows {
		ev, err := event(raw)
		if err != nil {
			im.Log.Warn().
				Int("row", raw.Number).
				Str("trade_id", raw.Fields[ColTradeID]).
				Err(err).
				Msg("row rejected")
			res.Rejected = append(res.Rejected, Rejection{Row: raw.Number, Reason: err})
			continue
		}
		res.Events = append(res.Events, ev)
	}
	return res
}

// row is the typed intermediate form between cells and events.
type row struct {
	base       tradebook.BaseFields
	price      tradebook.Money
	dividend   tradebook.Money
	expiration date.Date
	strike     tradebook.Money
	premium    tradebook.Money
	kind       tradebook.OptionKind
}

// normalize coerces the string cells into typed fields. It only parses;
// business validation happens in the event constructors. An empty numeric
// cell is zero, an empty date cell is the zero date.
func normalize(raw RawRow) (row, error) {
	var r row

	tradeID, err := parseID(raw.Fields[ColTradeID], ColTradeID)
	if err != nil {
		return r, err
	}
	strategyID, err := parseID(raw.Fields[ColStrategyID], ColStrategyID)
	if err != nil {
		return r, err
	}
	tradeDate, err := parseDate(raw.Fields[ColTradeDate], ColTradeDate)
	if err != nil {
		return r, err
	}
	qty, err := parseDecimal(raw.Fields[ColQuantity], ColQuantity)
	if err != nil {
		return r, err
	}
	fees, err := parseDecimal(raw.Fields[ColFees], ColFees)
	if err != nil {
		return r, err
	}

	r.base = tradebook.BaseFields{
		TradeID:    tradeID,
		StrategyID: strategyID,
		Brokerage:  raw.Fields[ColBrokerage],
		Account:    raw.Fields[ColAccount],
		Tags:       splitTags(raw.Fields[ColStrategy]),
		Security:   tradebook.SecurityType(strings.TrimSpace(raw.Fields[ColSecurity])),
		Date:       tradeDate,
		Symbol:     raw.Fields[ColSymbol],
		Action:     tradebook.Action(strings.TrimSpace(raw.Fields[ColAction])),
		SubAction:  tradebook.SubAction(strings.TrimSpace(raw.Fields[ColSubAction])),
		Quantity:   tradebook.Q(qty),
		Fees:       tradebook.USD(fees),
	}

	price, err := parseDecimal(raw.Fields[ColPrice], ColPrice)
	if err != nil {
		return r, err
	}
	r.price = tradebook.USD(price)

	div, err := parseDecimal(raw.Fields[ColDividend], ColDividend)
	if err != nil {
		return r, err
	}
	r.dividend = tradebook.USD(div)

	r.expiration, err = parseDate(raw.Fields[ColExpiration], ColExpiration)
	if err != nil {
		return r, err
	}
	strike, err := parseDecimal(raw.Fields[ColStrike], ColStrike)
	if err != nil {
		return r, err
	}
	r.strike = tradebook.USD(strike)
	premium, err := parseDecimal(raw.Fields[ColPremium], ColPremium)
	if err != nil {
		return r, err
	}
	r.premium = tradebook.USD(premium)
	r.kind = tradebook.OptionKind(strings.TrimSpace(raw.Fields[ColOptionType]))
	return r, nil
}

// event runs both stages on one raw row.
func event(raw RawRow) (tradebook.TradeEvent, error) {
	r, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	security, err := tradebook.ParseSecurityType(string(r.base.Security))
	if err != nil {
		return nil, err
	}
	switch {
	case security.IsStockLike():
		return tradebook.NewStockEvent(r.base, r.price)
	case security == tradebook.SecDividend:
		return tradebook.NewDividendEvent(r.base, r.dividend)
	default:
		return tradebook.NewOptionEvent(r.base, r.expiration, r.strike, r.premium, r.kind)
	}
}

func parseID(cell, col string) (int64, error) {
	v := strings.TrimSpace(cell)
	if v == "" {
		return 0, fmt.Errorf("column %q is empty", col)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not an integer", col, cell)
	}
	return id, nil
}

func parseDecimal(cell, col string) (decimal.Decimal, error) {
	v := strings.TrimSpace(cell)
	if v == "" {
		return decimal.Decimal{}, nil
	}
	// Spreadsheets often carry thousands separators and a currency sign.
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimPrefix(v, "$")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("column %q: %q is not a number", col, cell)
	}
	return d, nil
}

func parseDate(cell, col string) (date.Date, error) {
	v := strings.TrimSpace(cell)
	if v == "" {
		return date.Date{}, nil
	}
	d, err := date.Parse(v)
	if err != nil {
		return date.Date{}, fmt.Errorf("column %q: %w", col, err)
	}
	return d, nil
}

// splitTags splits the strategy cell on commas; the constructors trim and
// upper-case the parts.
func splitTags(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	return strings.Split(cell, ",")
}
