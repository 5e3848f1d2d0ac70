package tradebook

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Book is an ordered collection of validated trade events. Events are kept in
// chronological order; events on the same day keep their insertion order, so
// audit output is reproducible.
//
// A Book owns its slice and is not safe for concurrent mutation, but all the
// fold operations (Profits, OriginalBuyIn, AdjustedBuyIn, Positions) are
// read-only and reentrant.
type Book struct {
	events []TradeEvent
}

// NewBook creates a book from the given events, sorting them chronologically.
func NewBook(events ...TradeEvent) *Book {
	b := &Book{}
	b.Append(events...)
	return b
}

// Append adds events to the book and maintains the chronological order.
func (b *Book) Append(events ...TradeEvent) {
	b.events = append(b.events, events...)
	b.stableSort()
}

// stableSort sorts the book by trade date. The sort is stable, so events on
// the same day keep their relative order.
func (b *Book) stableSort() {
	sort.SliceStable(b.events, func(i, j int) bool {
		return b.events[i].When().Before(b.events[j].When())
	})
}

// Len returns the number of events in the book.
func (b *Book) Len() int { return len(b.events) }

// Events returns an iterator over the events in chronological order,
// optionally restricted by filters. With no filter every event is yielded;
// with filters an event is yielded when any filter accepts it.
func (b *Book) Events(filters ...func(TradeEvent) bool) iter.Seq2[int, TradeEvent] {
	return func(yield func(int, TradeEvent) bool) {
		for i, ev := range b.events {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(ev) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, ev) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters events by ticker symbol.
func BySymbol(symbol string) func(TradeEvent) bool {
	return func(ev TradeEvent) bool { return ev.Symbol() == symbol }
}

// ByKind returns a predicate that filters events by security type.
func ByKind(kind SecurityType) func(TradeEvent) bool {
	return func(ev TradeEvent) bool { return ev.Kind() == kind }
}

// Symbols returns an iterator over the unique symbols in the book, sorted.
func (b *Book) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, ev := range b.events {
			visited[ev.Symbol()] = struct{}{}
		}
		symbols := slices.Collect(maps.Keys(visited))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}
