package tradebook

import (
	"fmt"
	"strings"
)

// SecurityType is a typed string identifying what kind of security a trade
// record refers to. It decides which variant fields apply and which actions
// are legal.
type SecurityType string

// Security types used for identifying trade records.
const (
	SecStock    SecurityType = "STOCK"
	SecETF      SecurityType = "ETF"
	SecOption   SecurityType = "OPTION"
	SecDividend SecurityType = "DIVIDEND"
)

// ParseSecurityType parses a case-insensitive security type string.
func ParseSecurityType(s string) (SecurityType, error) {
	switch v := SecurityType(strings.ToUpper(strings.TrimSpace(s))); v {
	case SecStock, SecETF, SecOption, SecDividend:
		return v, nil
	default:
		return "", fmt.Errorf("unknown security type %q", s)
	}
}

// IsStockLike reports whether the security is a share-holding kind (stock or ETF).
func (t SecurityType) IsStockLike() bool { return t == SecStock || t == SecETF }

// Action is the economic action of a trade record.
type Action string

// Actions used for identifying trade records. The option lifecycle actions
// keep their historical spelling with spaces on the wire.
const (
	ActBuy       Action = "BUY"
	ActSell      Action = "SELL"
	ActDividend  Action = "DIVIDEND"
	ActExpired   Action = "OPTION EXPIRED"
	ActAssigned  Action = "OPTION ASSIGNED"
	ActExercised Action = "OPTION EXERCISED"
)

// ParseAction parses a case-insensitive action string. Underscores are
// accepted in place of spaces for the option lifecycle actions.
func ParseAction(s string) (Action, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	switch v := Action(norm); v {
	case ActBuy, ActSell, ActDividend, ActExpired, ActAssigned, ActExercised:
		return v, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// SubAction qualifies an option trade as establishing or unwinding a position.
// It is meaningful only for options; other records leave it empty.
type SubAction string

const (
	SubNone     SubAction = ""
	SubOpen     SubAction = "OPEN"
	SubClose    SubAction = "CLOSE"
	SubDividend SubAction = "DIVIDEND"
)

// ParseSubAction parses a case-insensitive sub-action string. The empty
// string is valid and means "no sub-action".
func ParseSubAction(s string) (SubAction, error) {
	switch v := SubAction(strings.ToUpper(strings.TrimSpace(s))); v {
	case SubNone, SubOpen, SubClose, SubDividend:
		return v, nil
	default:
		return "", fmt.Errorf("unknown sub-action %q", s)
	}
}

// OptionKind distinguishes calls from puts.
type OptionKind string

const (
	Call OptionKind = "CALL"
	Put  OptionKind = "PUT"
)

// ParseOptionKind parses a case-insensitive option kind string.
func ParseOptionKind(s string) (OptionKind, error) {
	switch v := OptionKind(strings.ToUpper(strings.TrimSpace(s))); v {
	case Call, Put:
		return v, nil
	default:
		return "", fmt.Errorf("unknown option kind %q", s)
	}
}

// validActions maps each security type to the set of actions a record of that
// type may carry. Checked at construction; a record outside this map never
// reaches the folds.
var validActions = map[SecurityType][]Action{
	SecStock:    {ActBuy, ActSell},
	SecETF:      {ActBuy, ActSell},
	SecDividend: {ActDividend},
	SecOption:   {ActBuy, ActSell, ActAssigned, ActExpired, ActExercised},
}

// Allows reports whether the action is legal for this security type.
func (t SecurityType) Allows(a Action) bool {
	for _, v := range validActions[t] {
		if v == a {
			return true
		}
	}
	return false
}
