package tradebook

import (
	"tradebook/date"
)

// Test builders. They panic on invalid input so table tests stay terse;
// validation itself is covered by event_test.go.

var nextID int64

func fields(security SecurityType, day, symbol string, action Action, sub SubAction, qty, fees float64) BaseFields {
	nextID++
	return BaseFields{
		TradeID:    nextID,
		StrategyID: 1,
		Brokerage:  "IBKR",
		Account:    "U1234567",
		Tags:       []string{"wheel"},
		Security:   security,
		Date:       date.MustParse(day),
		Symbol:     symbol,
		Action:     action,
		SubAction:  sub,
		Quantity:   Q(qty),
		Fees:       USD(fees),
	}
}

func buy(day, symbol string, qty, price, fees float64) StockEvent {
	ev, err := NewStockEvent(fields(SecStock, day, symbol, ActBuy, SubNone, qty, fees), USD(price))
	if err != nil {
		panic(err)
	}
	return ev
}

func sell(day, symbol string, qty, price, fees float64) StockEvent {
	ev, err := NewStockEvent(fields(SecStock, day, symbol, ActSell, SubNone, qty, fees), USD(price))
	if err != nil {
		panic(err)
	}
	return ev
}

func dividend(day, symbol string, amount, fees float64) DividendEvent {
	ev, err := NewDividendEvent(fields(SecDividend, day, symbol, ActDividend, SubNone, 0, fees), USD(amount))
	if err != nil {
		panic(err)
	}
	return ev
}

func option(day, symbol string, kind OptionKind, action Action, sub SubAction, qty, strike, premium, fees float64) OptionEvent {
	f := fields(SecOption, day, symbol, action, sub, qty, fees)
	ev, err := NewOptionEvent(f, f.Date.Add(30), USD(strike), USD(premium), kind)
	if err != nil {
		panic(err)
	}
	return ev
}
