package tradebook

import (
	"strings"
	"testing"

	"tradebook/date"
)

func validBase() BaseFields {
	return BaseFields{
		TradeID:    42,
		StrategyID: 7,
		Brokerage:  "ibkr",
		Account:    "U1234567",
		Tags:       []string{"wheel", " income "},
		Security:   SecStock,
		Date:       date.MustParse("2025-01-10"),
		Symbol:     "aapl",
		Action:     ActBuy,
		Quantity:   Q(100),
		Fees:       USD(5),
	}
}

func TestNewStockEventCanonicalizes(t *testing.T) {
	ev, err := NewStockEvent(validBase(), USD(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Brokerage != "IBKR" {
		t.Errorf("brokerage not upper-cased: %q", ev.Brokerage)
	}
	if ev.Ticker != "AAPL" {
		t.Errorf("symbol not upper-cased: %q", ev.Ticker)
	}
	if len(ev.Tags) != 2 || ev.Tags[0] != "WHEEL" || ev.Tags[1] != "INCOME" {
		t.Errorf("tags not canonicalized: %v", ev.Tags)
	}
}

func TestNewStockEventRejects(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*BaseFields)
		price   float64
		wantMsg string
	}{
		{name: "zero trade id", mutate: func(b *BaseFields) { b.TradeID = 0 }, wantMsg: "trade id"},
		{name: "negative strategy id", mutate: func(b *BaseFields) { b.StrategyID = -1 }, wantMsg: "strategy id"},
		{name: "blank brokerage", mutate: func(b *BaseFields) { b.Brokerage = "  " }, wantMsg: "brokerage"},
		{name: "short account", mutate: func(b *BaseFields) { b.Account = "U12" }, wantMsg: "account"},
		{name: "no tags", mutate: func(b *BaseFields) { b.Tags = nil }, wantMsg: "strategy tag"},
		{name: "blank tags only", mutate: func(b *BaseFields) { b.Tags = []string{" ", ""} }, wantMsg: "strategy tag"},
		{name: "missing date", mutate: func(b *BaseFields) { b.Date = date.Date{} }, wantMsg: "trade date"},
		{name: "missing symbol", mutate: func(b *BaseFields) { b.Symbol = "" }, wantMsg: "symbol"},
		{name: "dividend action on stock", mutate: func(b *BaseFields) { b.Action = ActDividend }, wantMsg: "not valid for security type"},
		{name: "assignment on stock", mutate: func(b *BaseFields) { b.Action = ActAssigned }, wantMsg: "not valid for security type"},
		{name: "negative quantity", mutate: func(b *BaseFields) { b.Quantity = Q(-1) }, wantMsg: "quantity"},
		{name: "negative fees", mutate: func(b *BaseFields) { b.Fees = USD(-1) }, wantMsg: "fees"},
		{name: "option security on stock event", mutate: func(b *BaseFields) { b.Security = SecOption }, wantMsg: "want STOCK or ETF"},
		{name: "negative price", mutate: func(b *BaseFields) {}, price: -150, wantMsg: "price per share"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBase()
			tc.mutate(&b)
			_, err := NewStockEvent(b, USD(tc.price))
			if err == nil {
				t.Fatal("want error, got none")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestNewDividendEvent(t *testing.T) {
	b := validBase()
	b.Security = SecDividend
	b.Action = ActDividend
	ev, err := NewDividendEvent(b, USD(12.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Kind() != SecDividend {
		t.Errorf("kind = %q, want DIVIDEND", ev.Kind())
	}

	// A dividend record must carry the DIVIDEND security type.
	b.Security = SecStock
	b.Action = ActBuy
	if _, err := NewDividendEvent(b, USD(12.5)); err == nil {
		t.Error("stock security on dividend event: want error")
	}

	b.Security = SecDividend
	b.Action = ActDividend
	if _, err := NewDividendEvent(b, USD(-1)); err == nil {
		t.Error("negative dividend amount: want error")
	}
}

func TestNewOptionEvent(t *testing.T) {
	optionBase := func() BaseFields {
		b := validBase()
		b.Security = SecOption
		b.Action = ActSell
		b.SubAction = SubOpen
		b.Quantity = Q(1)
		return b
	}
	day := date.MustParse("2025-01-10")

	ev, err := NewOptionEvent(optionBase(), day.Add(30), USD(150), USD(2), Call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.OptionKind != Call {
		t.Errorf("kind = %q, want CALL", ev.OptionKind)
	}

	// Expiration on the trade date itself is allowed (0DTE).
	if _, err := NewOptionEvent(optionBase(), day, USD(150), USD(2), Call); err != nil {
		t.Errorf("same-day expiration should be valid: %v", err)
	}

	// Expiration before the trade date is not.
	if _, err := NewOptionEvent(optionBase(), day.Add(-1), USD(150), USD(2), Call); err == nil {
		t.Error("expiration before trade date: want error")
	}

	if _, err := NewOptionEvent(optionBase(), day.Add(30), USD(-1), USD(2), Call); err == nil {
		t.Error("negative strike: want error")
	}
	if _, err := NewOptionEvent(optionBase(), day.Add(30), USD(150), USD(-2), Put); err == nil {
		t.Error("negative premium: want error")
	}
	if _, err := NewOptionEvent(optionBase(), day.Add(30), USD(150), USD(2), OptionKind("STRADDLE")); err == nil {
		t.Error("unknown option kind: want error")
	}

	// BUY/SELL on an option requires an OPEN or CLOSE sub-action.
	b := optionBase()
	b.SubAction = SubNone
	if _, err := NewOptionEvent(b, day.Add(30), USD(150), USD(2), Call); err == nil {
		t.Error("sell without sub-action: want error")
	}

	// Lifecycle actions need no sub-action.
	b = optionBase()
	b.Action = ActExpired
	b.SubAction = SubNone
	if _, err := NewOptionEvent(b, day.Add(30), USD(150), USD(0), Call); err != nil {
		t.Errorf("expiration without sub-action should be valid: %v", err)
	}
}

func TestEventsAreImmutableByValue(t *testing.T) {
	ev, err := NewStockEvent(validBase(), USD(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var asInterface TradeEvent = ev
	// Mutating the local copy must not affect the value held by the interface.
	ev.Ticker = "MSFT"
	if asInterface.Symbol() != "AAPL" {
		t.Errorf("event held by interface changed: %q", asInterface.Symbol())
	}
}

func TestEventEqual(t *testing.T) {
	a, _ := NewStockEvent(validBase(), USD(150))
	b, _ := NewStockEvent(validBase(), USD(150))
	c, _ := NewStockEvent(validBase(), USD(151))
	if !a.Equal(b) {
		t.Error("identical events should be equal")
	}
	if a.Equal(c) {
		t.Error("different price should not be equal")
	}
	div, _ := NewDividendEvent(func() BaseFields {
		f := validBase()
		f.Security = SecDividend
		f.Action = ActDividend
		return f
	}(), USD(1))
	if a.Equal(div) {
		t.Error("different variants should not be equal")
	}
}
