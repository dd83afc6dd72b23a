// Package cartera provides the types and functions to value an investment
// portfolio across tickers and currencies, derived entirely from an
// append-only log of buy and sell transactions plus a live market price feed
// and an exchange rate.
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions in an immutable,
//     chronological record, with strict validation at the write boundary
//     (a sale can never exceed the quantity held).
//   - Valuation Engine: A pure calculator that replays an asset's transaction
//     history to produce its weighted-average cost basis, realized and
//     unrealized profit and loss, and current market value.
//   - Portfolio Aggregation: Summing per-asset valuations into portfolio-wide
//     totals, converting across currencies with an explicit exchange rate.
//   - Market Enrichment: Overlaying live prices, currencies and names from a
//     quote feed onto the computed assets.
//   - Data Persistence: Encoding and decoding the transaction log in a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `cta` command-line
// tool; every report is recomputed from the full log on demand, the ledger
// file is the single source of truth.
package cartera
