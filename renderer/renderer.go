// Package renderer turns the engine's computed views into markdown reports.
//
// Every function returns a markdown string ready to be rendered by the CLI;
// the renderer never computes, it only formats snapshots handed to it.
package renderer

import (
	"fmt"
	"strings"

	"github.com/nahueld/cartera"
)

// Holdings renders the open positions as a markdown table, one row per
// ticker in lexical order, with a portfolio total line.
func Holdings(assets map[string]*cartera.Asset, snap cartera.PortfolioSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Ticker | Name | Quantity | Avg Price | Price | Market Value | Unrealized P&L | % |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	for ticker := range cartera.Tickers(assets) {
		a := assets[ticker]
		if !a.Open() {
			continue
		}
		perf := a.Performance()
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			a.Ticker,
			a.Name,
			perf.TotalQuantity,
			perf.AvgPrice,
			a.CurrentPrice,
			perf.MarketValue,
			perf.UnrealizedPL.SignedString(),
			perf.UnrealizedPLPercent.SignedString(),
		)
	}

	fmt.Fprintf(&b, "\nTotal: **%s** (%s, %s)\n",
		snap.TotalBalance,
		snap.TotalUnrealizedPL.SignedString(),
		snap.TotalPLPercent.SignedString(),
	)
	return b.String()
}

// Summary renders the portfolio-wide totals.
func Summary(snap cartera.PortfolioSnapshot, rate cartera.Rate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Summary (%s)\n\n", snap.Currency)
	fmt.Fprintf(&b, "- Total Balance: **%s**\n", snap.TotalBalance)
	fmt.Fprintf(&b, "- Unrealized P&L: %s (%s)\n",
		snap.TotalUnrealizedPL.SignedString(), snap.TotalPLPercent.SignedString())
	fmt.Fprintf(&b, "- Exchange Rate: %s\n", rate)
	return b.String()
}

// Transactions renders a transaction log as a markdown table in
// chronological order.
func Transactions(txs []cartera.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Ticker | Type | Quantity | Price | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")

	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date.Format("2006-01-02"),
			tx.Ticker,
			tx.Type,
			tx.Quantity,
			tx.Price,
			tx.Cost(),
		)
	}
	return b.String()
}

// Performance renders the detailed valuation of a single asset.
func Performance(a *cartera.Asset) string {
	perf := a.Performance()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", a.Name, a.Ticker)
	fmt.Fprintf(&b, "- Quantity: %s\n", perf.TotalQuantity)
	fmt.Fprintf(&b, "- Avg Price: %s\n", perf.AvgPrice)
	fmt.Fprintf(&b, "- Current Price: %s\n", a.CurrentPrice)
	fmt.Fprintf(&b, "- Market Value: %s\n", perf.MarketValue)
	fmt.Fprintf(&b, "- Unrealized P&L: %s (%s)\n",
		perf.UnrealizedPL.SignedString(), perf.UnrealizedPLPercent.SignedString())
	fmt.Fprintf(&b, "- Realized P&L: %s\n", perf.RealizedPL.SignedString())
	fmt.Fprintf(&b, "- Total P&L: %s\n", perf.TotalPL.SignedString())
	return b.String()
}
