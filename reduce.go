package tradebook

import (
	"fmt"

	"github.com/rs/zerolog"
)

// contractShares is the number of underlying shares one option contract
// controls. Premiums and strikes are quoted per share, so every option cash
// flow and every assignment or exercise scales by this factor.
var contractShares = Q(100)

// SymbolResult accumulates the running totals for one symbol over the fold:
// realized cash profit, share quantity and open option contract quantity.
// It is created on the first event for the symbol, mutated by every later
// event for it, and read-only once the fold returns.
type SymbolResult struct {
	Profit    Money
	StockQty  Quantity
	OptionQty Quantity
}

// Results maps each symbol to its accumulated totals.
type Results map[string]*SymbolResult

// foldConfig carries the cross-cutting settings of a fold. The logger is
// injected so tests can capture warnings without touching process-wide state.
type foldConfig struct {
	log      zerolog.Logger
	failFast bool
}

// Option configures a fold over the book.
type Option func(*foldConfig)

// WithLogger injects the logger that receives the audit trail and the
// unexpected-combination warnings. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *foldConfig) { cfg.log = log }
}

// FailFast makes a fold return an error on the first event whose
// (security, action, sub-action) combination is not in the decision table,
// instead of skipping it with a warning.
func FailFast() Option {
	return func(cfg *foldConfig) { cfg.failFast = true }
}

func newFoldConfig(opts []Option) foldConfig {
	cfg := foldConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Profits folds the whole book into per-symbol realized profit and running
// quantities. It is a single left-to-right pass; per-symbol totals are sums,
// so the result does not depend on event order, but the audit log follows
// book order.
//
// An event whose combination is not in the decision table contributes zero to
// every field and is logged as a warning; with FailFast the fold stops there.
func (b *Book) Profits(opts ...Option) (Results, error) {
	cfg := newFoldConfig(opts)
	results := make(Results)
	for _, ev := range b.events {
		result, ok := results[ev.Symbol()]
		if !ok {
			result = &SymbolResult{}
			results[ev.Symbol()] = result
		}

		d, err := contribution(ev)
		if err != nil {
			if cfg.failFast {
				return nil, err
			}
			cfg.log.Warn().
				Int64("trade_id", ev.TradeID()).
				Str("symbol", ev.Symbol()).
				Err(err).
				Msg("skipping trade with unexpected combination")
			continue
		}

		result.Profit = result.Profit.Add(d.profit)
		result.StockQty = result.StockQty.Add(d.stockQty)
		result.OptionQty = result.OptionQty.Add(d.optionQty)

		cfg.log.Debug().
			Int64("trade_id", ev.TradeID()).
			Str("symbol", ev.Symbol()).
			Stringer("date", ev.When()).
			Str("profit", d.profit.String()).
			Str("stock_qty", d.stockQty.String()).
			Str("option_qty", d.optionQty.String()).
			Msg("applied trade")
	}
	return results, nil
}

// delta is the contribution of a single event to its symbol's totals.
type delta struct {
	stockQty  Quantity
	optionQty Quantity
	profit    Money
}

// contribution evaluates the decision table for one event. An error means the
// event's combination is not in the table; the caller decides whether that is
// fatal.
func contribution(ev TradeEvent) (delta, error) {
	switch v := ev.(type) {
	case StockEvent:
		return stockContribution(v)
	case DividendEvent:
		// Dividends only move cash.
		return delta{profit: v.Amount.Sub(v.Fees)}, nil
	case OptionEvent:
		return optionContribution(v)
	default:
		return delta{}, fmt.Errorf("unsupported trade event type %T", ev)
	}
}

func stockContribution(v StockEvent) (delta, error) {
	switch v.Action {
	case ActBuy:
		// Cash out, shares in.
		return delta{
			stockQty: v.Qty,
			profit:   v.Price.Mul(v.Qty).Neg().Sub(v.Fees),
		}, nil
	case ActSell:
		return delta{
			stockQty: v.Qty.Neg(),
			profit:   v.Price.Mul(v.Qty).Sub(v.Fees),
		}, nil
	default:
		return delta{}, fmt.Errorf("unexpected action %q for stock trade %d", v.Action, v.ID)
	}
}

func optionContribution(v OptionEvent) (delta, error) {
	premium := v.Premium.Mul(v.Qty).Mul(contractShares)
	strike := v.Strike.Mul(v.Qty).Mul(contractShares)
	underlying := v.Qty.Mul(contractShares)

	switch v.OptionKind {
	case Call:
		switch {
		case v.Action == ActSell && v.SubAction == SubOpen:
			return delta{optionQty: v.Qty, profit: premium.Sub(v.Fees)}, nil
		case v.Action == ActSell && v.SubAction == SubClose:
			return delta{optionQty: v.Qty.Neg(), profit: premium.Sub(v.Fees)}, nil
		case v.Action == ActBuy && v.SubAction == SubOpen:
			return delta{optionQty: v.Qty, profit: premium.Neg().Sub(v.Fees)}, nil
		case v.Action == ActBuy && v.SubAction == SubClose:
			return delta{optionQty: v.Qty.Neg(), profit: premium.Neg().Sub(v.Fees)}, nil
		case v.Action == ActExpired:
			return delta{optionQty: v.Qty.Neg()}, nil
		case v.Action == ActAssigned:
			// Called away: shares leave at the strike.
			return delta{stockQty: underlying.Neg(), optionQty: v.Qty.Neg(), profit: strike.Sub(v.Fees)}, nil
		case v.Action == ActExercised:
			// Shares come in at the strike.
			return delta{stockQty: underlying, optionQty: v.Qty.Neg(), profit: strike.Neg().Sub(v.Fees)}, nil
		}
	case Put:
		switch {
		case v.Action == ActBuy && v.SubAction == SubOpen:
			return delta{optionQty: v.Qty, profit: premium.Neg().Sub(v.Fees)}, nil
		case v.Action == ActSell && v.SubAction == SubClose:
			return delta{optionQty: v.Qty.Neg(), profit: premium.Sub(v.Fees)}, nil
		case v.Action == ActExpired:
			return delta{optionQty: v.Qty.Neg()}, nil
		case v.Action == ActAssigned:
			// Put to us: shares come in at the strike.
			return delta{stockQty: underlying, optionQty: v.Qty.Neg(), profit: strike.Neg().Sub(v.Fees)}, nil
		}
	}
	return delta{}, fmt.Errorf("unexpected combination %s %s/%s %s for option trade %d",
		v.OptionKind, v.Action, v.SubAction, v.Ticker, v.ID)
}
