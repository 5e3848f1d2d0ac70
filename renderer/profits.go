package renderer

import (
	"fmt"
	"strings"

	"tradebook"
)

// ProfitsMarkdown renders the per-symbol realized profit report.
func ProfitsMarkdown(results tradebook.Results) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Profit per Symbol\n\n")
	if len(results) == 0 {
		fmt.Fprintln(&b, "The journal is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Realized | Shares | Contracts |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")

	var total tradebook.Money
	for _, symbol := range results.Symbols() {
		r := results[symbol]
		total = total.Add(r.Profit)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			symbol,
			r.Profit.SignedString(),
			r.StockQty,
			r.OptionQty,
		)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | | |\n", total.SignedString())

	return b.String()
}

// BuyInMarkdown renders the original and adjusted cost basis side by side.
// Symbols excluded by the calculators (no bought quantity) are listed apart
// rather than zero-filled.
func BuyInMarkdown(symbols []string, original, adjusted map[string]tradebook.Money) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Buy-In per Symbol\n\n")

	var excluded []string
	printed := false
	for _, symbol := range symbols {
		o, ok := original[symbol]
		if !ok {
			excluded = append(excluded, symbol)
			continue
		}
		if !printed {
			fmt.Fprintln(&b, "| Symbol | Buy-In | Adjusted Buy-In |")
			fmt.Fprintln(&b, "|:---|---:|---:|")
			printed = true
		}
		a := "-"
		if v, ok := adjusted[symbol]; ok {
			a = v.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", symbol, o, a)
	}
	if !printed {
		fmt.Fprintln(&b, "No symbol with bought shares.")
	}
	if len(excluded) > 0 {
		fmt.Fprintf(&b, "\nNo bought quantity for: %s.\n", strings.Join(excluded, ", "))
	}
	return b.String()
}
