package tradebook

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tradebook/date"
)

// TradeEvent defines the common interface for all validated trade records in
// the journal. The set of implementations is closed: StockEvent,
// DividendEvent and OptionEvent. Code that needs variant fields type-switches
// on the concrete type.
type TradeEvent interface {
	Kind() SecurityType // Kind returns the security type of the record.
	When() date.Date    // When returns the trade date.
	Symbol() string     // Symbol returns the ticker the record refers to.
	TradeID() int64     // TradeID returns the unique record identifier.
	Equal(TradeEvent) bool
	// Validate checks the record and returns its canonical form (trimmed,
	// upper-cased free-text fields) or an error. It never returns a
	// half-valid event.
	Validate() (TradeEvent, error)
}

// baseEvent holds the fields common to every trade record.
type baseEvent struct {
	ID         int64        `json:"trade_id"`
	StrategyID int64        `json:"strategy_id"`
	Brokerage  string       `json:"brokerage"`
	Account    string       `json:"account"`
	Tags       []string     `json:"strategy"` // one or more strategy tags
	Security   SecurityType `json:"security"`
	Date       date.Date    `json:"date"`
	Ticker     string       `json:"symbol"`
	Action     Action       `json:"action"`
	SubAction  SubAction    `json:"sub_action,omitempty"`
	Qty        Quantity     `json:"quantity"`
	Fees       Money        `json:"fees"`
}

const minAccountLen = 4

func (b baseEvent) Kind() SecurityType { return b.Security }
func (b baseEvent) When() date.Date    { return b.Date }
func (b baseEvent) Symbol() string     { return b.Ticker }
func (b baseEvent) TradeID() int64     { return b.ID }

// equal compares two baseEvents field by field. Tags is a slice, so the
// struct is not directly comparable.
func (b baseEvent) equal(o baseEvent) bool {
	return b.ID == o.ID &&
		b.StrategyID == o.StrategyID &&
		b.Brokerage == o.Brokerage &&
		b.Account == o.Account &&
		slices.Equal(b.Tags, o.Tags) &&
		b.Security == o.Security &&
		b.Date == o.Date &&
		b.Ticker == o.Ticker &&
		b.Action == o.Action &&
		b.SubAction == o.SubAction &&
		b.Qty.Equal(o.Qty) &&
		b.Fees.Equal(o.Fees)
}

// validate checks the common fields and returns the canonical form: brokerage,
// tags and ticker are trimmed and upper-cased, so "ibkr" and "IBKR" are the
// same brokerage everywhere downstream.
func (b baseEvent) validate() (baseEvent, error) {
	if b.ID <= 0 {
		return b, fmt.Errorf("trade id must be positive, got %d", b.ID)
	}
	if b.StrategyID <= 0 {
		return b, fmt.Errorf("strategy id must be positive, got %d", b.StrategyID)
	}
	b.Brokerage = strings.ToUpper(strings.TrimSpace(b.Brokerage))
	if b.Brokerage == "" {
		return b, errors.New("brokerage is missing")
	}
	b.Account = strings.TrimSpace(b.Account)
	if len(b.Account) < minAccountLen {
		return b, fmt.Errorf("account %q is too short, want at least %d characters", b.Account, minAccountLen)
	}
	tags := make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return b, errors.New("at least one strategy tag is required")
	}
	b.Tags = tags
	security, err := ParseSecurityType(string(b.Security))
	if err != nil {
		return b, err
	}
	b.Security = security
	if b.Date.IsZero() {
		return b, errors.New("trade date is missing")
	}
	b.Ticker = strings.ToUpper(strings.TrimSpace(b.Ticker))
	if b.Ticker == "" {
		return b, errors.New("symbol is missing")
	}
	action, err := ParseAction(string(b.Action))
	if err != nil {
		return b, err
	}
	b.Action = action
	subAction, err := ParseSubAction(string(b.SubAction))
	if err != nil {
		return b, err
	}
	b.SubAction = subAction
	if !b.Security.Allows(b.Action) {
		return b, fmt.Errorf("action %q is not valid for security type %q, valid actions: %v",
			b.Action, b.Security, validActions[b.Security])
	}
	if b.Qty.IsNegative() {
		return b, fmt.Errorf("quantity must not be negative, got %s", b.Qty)
	}
	if b.Fees.IsNegative() {
		return b, fmt.Errorf("fees must not be negative, got %s", b.Fees)
	}
	return b, nil
}

// StockEvent is a share purchase or sale of a stock or ETF.
type StockEvent struct {
	baseEvent
	Price Money `json:"price_per_share"` // Price is the execution price per share.
}

// NewStockEvent creates a validated StockEvent. It fails rather than return a
// half-valid record.
func NewStockEvent(b BaseFields, price Money) (StockEvent, error) {
	ev := StockEvent{baseEvent: b.base(), Price: price}
	validated, err := ev.Validate()
	if err != nil {
		return StockEvent{}, err
	}
	return validated.(StockEvent), nil
}

// Validate implements TradeEvent.
func (e StockEvent) Validate() (TradeEvent, error) {
	base, err := e.baseEvent.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid stock record (trade %d): %w", e.ID, err)
	}
	e.baseEvent = base
	if !e.Security.IsStockLike() {
		return nil, fmt.Errorf("invalid stock record (trade %d): security type %q, want STOCK or ETF", e.ID, e.Security)
	}
	if e.Price.IsNegative() {
		return nil, fmt.Errorf("invalid stock record (trade %d): price per share must not be negative, got %s", e.ID, e.Price)
	}
	return e, nil
}

func (e StockEvent) Equal(other TradeEvent) bool {
	o, ok := other.(StockEvent)
	return ok && e.baseEvent.equal(o.baseEvent) && e.Price.Equal(o.Price)
}

// DividendEvent is a dividend payment received for a held symbol.
type DividendEvent struct {
	baseEvent
	Amount Money `json:"dividend_amount"` // Amount is the total dividend received.
}

// NewDividendEvent creates a validated DividendEvent.
func NewDividendEvent(b BaseFields, amount Money) (DividendEvent, error) {
	ev := DividendEvent{baseEvent: b.base(), Amount: amount}
	validated, err := ev.Validate()
	if err != nil {
		return DividendEvent{}, err
	}
	return validated.(DividendEvent), nil
}

// Validate implements TradeEvent.
func (e DividendEvent) Validate() (TradeEvent, error) {
	base, err := e.baseEvent.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid dividend record (trade %d): %w", e.ID, err)
	}
	e.baseEvent = base
	if e.Security != SecDividend {
		return nil, fmt.Errorf("invalid dividend record (trade %d): security type %q, want DIVIDEND", e.ID, e.Security)
	}
	if e.Amount.IsNegative() {
		return nil, fmt.Errorf("invalid dividend record (trade %d): dividend amount must not be negative, got %s", e.ID, e.Amount)
	}
	return e, nil
}

func (e DividendEvent) Equal(other TradeEvent) bool {
	o, ok := other.(DividendEvent)
	return ok && e.baseEvent.equal(o.baseEvent) && e.Amount.Equal(o.Amount)
}

// OptionEvent is an option trade: open, close, assignment, exercise or expiration.
type OptionEvent struct {
	baseEvent
	Expiration date.Date  `json:"expiration_date"` // Expiration never precedes the trade date.
	Strike     Money      `json:"strike"`
	Premium    Money      `json:"premium"` // Premium is quoted per share, one contract covers 100.
	OptionKind OptionKind `json:"option_type"`
}

// NewOptionEvent creates a validated OptionEvent.
func NewOptionEvent(b BaseFields, expiration date.Date, strike, premium Money, kind OptionKind) (OptionEvent, error) {
	ev := OptionEvent{baseEvent: b.base(), Expiration: expiration, Strike: strike, Premium: premium, OptionKind: kind}
	validated, err := ev.Validate()
	if err != nil {
		return OptionEvent{}, err
	}
	return validated.(OptionEvent), nil
}

// Validate implements TradeEvent.
func (e OptionEvent) Validate() (TradeEvent, error) {
	base, err := e.baseEvent.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid option record (trade %d): %w", e.ID, err)
	}
	e.baseEvent = base
	if e.Security != SecOption {
		return nil, fmt.Errorf("invalid option record (trade %d): security type %q, want OPTION", e.ID, e.Security)
	}
	kind, err := ParseOptionKind(string(e.OptionKind))
	if err != nil {
		return nil, fmt.Errorf("invalid option record (trade %d): %w", e.ID, err)
	}
	e.OptionKind = kind
	if e.Expiration.IsZero() {
		return nil, fmt.Errorf("invalid option record (trade %d): expiration date is missing", e.ID)
	}
	if e.Expiration.Before(e.Date) {
		return nil, fmt.Errorf("invalid option record (trade %d): expiration %s precedes trade date %s", e.ID, e.Expiration, e.Date)
	}
	if e.Strike.IsNegative() {
		return nil, fmt.Errorf("invalid option record (trade %d): strike must not be negative, got %s", e.ID, e.Strike)
	}
	if e.Premium.IsNegative() {
		return nil, fmt.Errorf("invalid option record (trade %d): premium must not be negative, got %s", e.ID, e.Premium)
	}
	if (e.Action == ActBuy || e.Action == ActSell) && e.SubAction != SubOpen && e.SubAction != SubClose {
		return nil, fmt.Errorf("invalid option record (trade %d): %s requires sub-action OPEN or CLOSE, got %q", e.ID, e.Action, e.SubAction)
	}
	return e, nil
}

func (e OptionEvent) Equal(other TradeEvent) bool {
	o, ok := other.(OptionEvent)
	return ok && e.baseEvent.equal(o.baseEvent) &&
		e.Expiration == o.Expiration &&
		e.Strike.Equal(o.Strike) &&
		e.Premium.Equal(o.Premium) &&
		e.OptionKind == o.OptionKind
}

// BaseFields carries the fields common to every trade record into the
// constructors. It mirrors the journal row layout.
type BaseFields struct {
	TradeID    int64
	StrategyID int64
	Brokerage  string
	Account    string
	Tags       []string
	Security   SecurityType
	Date       date.Date
	Symbol     string
	Action     Action
	SubAction  SubAction
	Quantity   Quantity
	Fees       Money
}

func (b BaseFields) base() baseEvent {
	return baseEvent{
		ID:         b.TradeID,
		StrategyID: b.StrategyID,
		Brokerage:  b.Brokerage,
		Account:    b.Account,
		Tags:       b.Tags,
		Security:   b.Security,
		Date:       b.Date,
		Ticker:     b.Symbol,
		Action:     b.Action,
		SubAction:  b.SubAction,
		Qty:        b.Quantity,
		Fees:       b.Fees,
	}
}
