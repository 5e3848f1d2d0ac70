package renderer

import (
	"fmt"
	"strings"

	"tradebook"
)

// Transaction renders one trade event to a single line.
func Transaction(ev tradebook.TradeEvent) string {
	switch v := ev.(type) {
	case tradebook.StockEvent:
		verb := "Bought"
		if v.Action == tradebook.ActSell {
			verb = "Sold"
		}
		return fmt.Sprintf("%s %s %s at %s", verb, v.Qty, v.Ticker, v.Price)
	case tradebook.DividendEvent:
		return fmt.Sprintf("Dividend of %s for %s", v.Amount, v.Ticker)
	case tradebook.OptionEvent:
		contract := fmt.Sprintf("%s %s %s %s", v.Qty, v.Ticker, v.Strike, v.OptionKind)
		switch v.Action {
		case tradebook.ActBuy, tradebook.ActSell:
			verb := "Bought"
			if v.Action == tradebook.ActSell {
				verb = "Sold"
			}
			return fmt.Sprintf("%s to %s %s for %s, expires %s",
				verb, strings.ToLower(string(v.SubAction)), contract, v.Premium, v.Expiration)
		case tradebook.ActExpired:
			return fmt.Sprintf("Expired %s", contract)
		case tradebook.ActAssigned:
			return fmt.Sprintf("Assigned %s", contract)
		case tradebook.ActExercised:
			return fmt.Sprintf("Exercised %s", contract)
		}
	}
	return fmt.Sprintf("%s %s", ev.Kind(), ev.Symbol())
}

// TransactionsMarkdown renders the chronological trade log.
func TransactionsMarkdown(book *tradebook.Book, filters ...func(tradebook.TradeEvent) bool) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")

	empty := true
	for _, ev := range book.Events(filters...) {
		empty = false
		fmt.Fprintf(&b, "- %s #%d: %s\n", ev.When(), ev.TradeID(), Transaction(ev))
	}
	if empty {
		fmt.Fprintln(&b, "No transactions.")
	}
	return b.String()
}
