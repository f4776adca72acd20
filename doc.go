// Package advisor implements a small personal-finance assistant over a
// spreadsheet of stock holdings.
//
// The core functionalities include:
//   - Portfolio Table: a CSV file of (Ticker, Quantity, Recommendation) rows
//     that is the single source of truth, read and rewritten in place.
//   - Portfolio Valuation: per-ticker market value and total portfolio value
//     computed from the latest closing prices.
//   - Recommendation Scoring: a weighted-threshold function over five
//     financial ratios mapping each holding to Buy, Hold or Sell.
//   - Market Data Integration: live quotes and fundamentals fetched from
//     EODHD with a daily-expiring local cache.
//
// This package serves as the foundational logic for the `psa` command-line
// tool; the conversational layer lives in the agent package.
package advisor
