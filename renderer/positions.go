package renderer

import (
	"tradebook"
)

// positionRow is the template-facing view of one position: every value is
// already a formatted string, optional fields render as "-".
type positionRow struct {
	Symbol        string
	StockQty      string
	OptionQty     string
	RealizedPL    string
	Price         string
	OriginalBuyIn string
	AdjustedBuyIn string
	Profit        string
}

type positionsReport struct {
	Rows []positionRow
}

// PositionsMarkdown renders the current positions with their buy-ins and,
// where a price was available, the unrealized profit.
func PositionsMarkdown(positions []tradebook.Position) string {
	report := positionsReport{Rows: make([]positionRow, 0, len(positions))}
	for _, p := range positions {
		report.Rows = append(report.Rows, positionRow{
			Symbol:        p.Symbol,
			StockQty:      p.StockQty.String(),
			OptionQty:     p.OptionQty.String(),
			RealizedPL:    p.RealizedPL.SignedString(),
			Price:         opt(p.Price),
			OriginalBuyIn: opt(p.OriginalBuyIn),
			AdjustedBuyIn: opt(p.AdjustedBuyIn),
			Profit:        optSigned(p.Profit),
		})
	}
	return renderTemplate("positions", "positions.md", nil, report)
}

func opt(m *tradebook.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}

func optSigned(m *tradebook.Money) string {
	if m == nil {
		return "-"
	}
	return m.SignedString()
}
