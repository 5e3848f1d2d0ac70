package tradebook

// buyInAccumulator collects, for one symbol, everything the two buy-in
// calculators need: the gross cost and quantity of share purchases, the net
// option premium cash flow, and the dividends received.
type buyInAccumulator struct {
	totalCost   Money
	totalQty    Quantity
	netPremiums Money
	dividends   Money
}

// accumulateShareBuys walks the book once and fills cost and quantity from
// stock/ETF BUY events, restricted to the given symbol set (nil means all).
// Every included symbol with any trade gets an accumulator, so symbols with
// no qualifying buy stay visible to the calculators and can be reported as
// excluded rather than silently absent.
func (b *Book) accumulateShareBuys(include map[string]bool) map[string]*buyInAccumulator {
	data := make(map[string]*buyInAccumulator)
	for _, ev := range b.events {
		if include != nil && !include[ev.Symbol()] {
			continue
		}
		acc := data[ev.Symbol()]
		if acc == nil {
			acc = &buyInAccumulator{}
			data[ev.Symbol()] = acc
		}
		v, ok := ev.(StockEvent)
		if !ok || v.Action != ActBuy {
			continue
		}
		acc.totalCost = acc.totalCost.Add(v.Price.Mul(v.Qty)).Add(v.Fees)
		acc.totalQty = acc.totalQty.Add(v.Qty)
	}
	return data
}

// includeSet turns a symbol list into a membership set; nil means "all symbols".
func includeSet(symbols []string) map[string]bool {
	if symbols == nil {
		return nil
	}
	set := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		set[s] = true
	}
	return set
}

// OriginalBuyIn computes the average per-share cost basis for each symbol:
// sum of (price * quantity + fees) over stock/ETF buys, divided by the total
// bought quantity. Symbols with no qualifying buy are omitted from the result
// and logged, never zero-filled. A nil symbol list means every symbol in the
// book.
func (b *Book) OriginalBuyIn(symbols []string, opts ...Option) map[string]Money {
	cfg := newFoldConfig(opts)
	data := b.accumulateShareBuys(includeSet(symbols))

	result := make(map[string]Money, len(data))
	for symbol, acc := range data {
		if !acc.totalQty.IsPositive() {
			cfg.log.Info().Str("symbol", symbol).Msg("no qualifying buy quantity, symbol excluded from buy-in")
			continue
		}
		result[symbol] = acc.totalCost.Div(acc.totalQty)
	}
	return result
}

// AdjustedBuyIn computes the premium- and dividend-adjusted cost basis:
// (total cost - net option premiums - dividends) / total bought quantity.
// Premiums received reduce the basis, premiums paid raise it, dividends
// reduce it. This is the retail "effective cost per share" heuristic, not
// tax-lot accounting. Exclusion rule matches OriginalBuyIn.
func (b *Book) AdjustedBuyIn(symbols []string, opts ...Option) map[string]Money {
	cfg := newFoldConfig(opts)
	include := includeSet(symbols)
	data := b.accumulateShareBuys(include)

	for _, ev := range b.events {
		if include != nil && !include[ev.Symbol()] {
			continue
		}
		acc := data[ev.Symbol()]
		if acc == nil {
			acc = &buyInAccumulator{}
			data[ev.Symbol()] = acc
		}
		switch v := ev.(type) {
		case OptionEvent:
			if v.SubAction != SubOpen && v.SubAction != SubClose {
				continue
			}
			premium := v.Premium.Mul(v.Qty).Mul(contractShares)
			switch v.Action {
			case ActSell:
				acc.netPremiums = acc.netPremiums.Add(premium.Sub(v.Fees))
			case ActBuy:
				acc.netPremiums = acc.netPremiums.Add(premium.Neg().Sub(v.Fees))
			}
		case DividendEvent:
			acc.dividends = acc.dividends.Add(v.Amount.Sub(v.Fees))
		}
	}

	result := make(map[string]Money, len(data))
	for symbol, acc := range data {
		if !acc.totalQty.IsPositive() {
			cfg.log.Info().Str("symbol", symbol).Msg("no qualifying buy quantity, symbol excluded from adjusted buy-in")
			continue
		}
		adjustedCost := acc.totalCost.Sub(acc.netPremiums).Sub(acc.dividends)
		result[symbol] = adjustedCost.Div(acc.totalQty)
	}
	return result
}
