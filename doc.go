// Package tradebook is the accounting core of a personal trade journal.
//
// The journal is a [Book] of validated trade events: stock and ETF buys and
// sells, dividends, and option trades (open, close, assignment, exercise,
// expiration). Every derived figure comes from a deterministic fold over that
// book:
//
//   - [Book.Profits] reduces the events into per-symbol realized profit and
//     running share/contract quantities.
//   - [Results.Current] keeps the symbols still held.
//   - [Book.OriginalBuyIn] and [Book.AdjustedBuyIn] compute the average cost
//     basis, the adjusted variant netting out option premiums and dividends.
//   - [Book.Positions] assembles the held symbols with buy-ins and, given a
//     [PriceSource], a live valuation.
//
// The core performs no I/O. File loading, quote fetching and report rendering
// live in the ingest, quote and renderer packages, and talk to the core only
// through validated events and read-only results.
package tradebook
