package tradebook

import (
	"maps"
	"slices"
)

// Current returns the subset of results that represent an active position:
// a non-zero share quantity or a non-zero option contract quantity. The
// receiver is not modified, and applying Current twice is a no-op.
func (r Results) Current() Results {
	active := make(Results)
	for symbol, result := range r {
		if !result.StockQty.IsZero() || !result.OptionQty.IsZero() {
			active[symbol] = result
		}
	}
	return active
}

// Symbols returns the sorted symbols present in the results.
func (r Results) Symbols() []string {
	symbols := slices.Collect(maps.Keys(r))
	slices.Sort(symbols)
	return symbols
}

// PriceSource supplies an optional current price for a symbol. A false return
// means "no price available", which is not an error: the position is reported
// without a valuation.
type PriceSource interface {
	Price(symbol string) (Money, bool)
}

// Position is the output-facing view of one currently held symbol. Optional
// fields are nil when the underlying data is unavailable: a missing price
// makes the unrealized profit non-computable, not wrong.
type Position struct {
	Symbol        string
	StockQty      Quantity
	OptionQty     Quantity
	RealizedPL    Money  // Realized cash profit from the reducer.
	Price         *Money // Current price per share, when the source has one.
	OriginalBuyIn *Money // Average cost basis per share.
	AdjustedBuyIn *Money // Cost basis net of option premiums and dividends.
	Profit        *Money // (Price - AdjustedBuyIn) * StockQty, when computable.
}

// Positions assembles the currently held positions with their buy-ins and,
// when a price source is given, a live valuation. src may be nil.
func (b *Book) Positions(src PriceSource, opts ...Option) ([]Position, error) {
	results, err := b.Profits(opts...)
	if err != nil {
		return nil, err
	}
	held := results.Current()
	symbols := held.Symbols()

	original := b.OriginalBuyIn(symbols, opts...)
	adjusted := b.AdjustedBuyIn(symbols, opts...)

	positions := make([]Position, 0, len(symbols))
	for _, symbol := range symbols {
		result := held[symbol]
		pos := Position{
			Symbol:     symbol,
			StockQty:   result.StockQty,
			OptionQty:  result.OptionQty,
			RealizedPL: result.Profit,
		}
		if buyIn, ok := original[symbol]; ok {
			pos.OriginalBuyIn = &buyIn
		}
		if buyIn, ok := adjusted[symbol]; ok {
			pos.AdjustedBuyIn = &buyIn
		}
		if src != nil {
			if price, ok := src.Price(symbol); ok {
				pos.Price = &price
				if pos.AdjustedBuyIn != nil {
					profit := price.Sub(*pos.AdjustedBuyIn).Mul(pos.StockQty)
					pos.Profit = &profit
				}
			}
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
