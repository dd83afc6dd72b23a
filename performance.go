package cartera

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PerformanceSnapshot is the derived valuation of a single asset. It is never
// stored: always a pure function of the asset's transaction list and current
// price, recomputed on demand.
type PerformanceSnapshot struct {
	TotalQuantity       Quantity
	AvgPrice            Money
	MarketValue         Money
	UnrealizedPL        Money
	UnrealizedPLPercent Percent
	RealizedPL          Money
	TotalPL             Money
}

// Performance replays the asset's transactions in chronological order and
// returns its valuation at the current price.
//
// The replay maintains a weighted-average cost basis: every buy adds
// quantity and cost, every sell realizes (price - average) * quantity against
// the average cost at the time of sale, then removes the sold quantity at
// average cost. The unrealized percentage is 0 (not NaN) when the cost basis
// is not positive.
//
// This is the permissive analysis layer: a sale exceeding the held quantity
// drives the quantity negative and propagates through untouched. The strict
// rejection of such sales belongs to the ledger write path.
func (a *Asset) Performance() PerformanceSnapshot {
	txs := slices.Clone(a.Transactions)
	slices.SortStableFunc(txs, func(x, y Transaction) int {
		if !x.Date.Equal(y.Date) {
			return x.Date.Compare(y.Date)
		}
		return x.seq - y.seq
	})

	var quantity, cost, realized decimal.Decimal
	for _, tx := range txs {
		switch tx.Type {
		case Buy:
			quantity = quantity.Add(tx.Quantity.value)
			cost = cost.Add(tx.Quantity.value.Mul(tx.Price))
		case Sell:
			var avg decimal.Decimal
			if quantity.IsPositive() {
				avg = cost.Div(quantity)
			}
			profit := tx.Price.Sub(avg).Mul(tx.Quantity.value)
			realized = realized.Add(profit)
			quantity = quantity.Sub(tx.Quantity.value)
			cost = cost.Sub(tx.Quantity.value.Mul(avg))
		}
	}

	var avg decimal.Decimal
	if quantity.IsPositive() {
		avg = cost.Div(quantity)
	}
	market := quantity.Mul(a.CurrentPrice.value)
	unrealized := market.Sub(cost)
	var pct Percent
	if cost.IsPositive() {
		pct = Percent(unrealized.Div(cost).InexactFloat64() * 100)
	}

	return PerformanceSnapshot{
		TotalQuantity:       Q(quantity),
		AvgPrice:            M(avg, a.Currency),
		MarketValue:         M(market, a.Currency),
		UnrealizedPL:        M(unrealized, a.Currency),
		UnrealizedPLPercent: pct,
		RealizedPL:          M(realized, a.Currency),
		TotalPL:             M(unrealized.Add(realized), a.Currency),
	}
}

// Open reports whether the asset is an open position (positive net quantity).
// Closed positions stay in the ledger but are excluded from holdings views
// and portfolio aggregation.
func (a *Asset) Open() bool {
	return a.Performance().TotalQuantity.IsPositive()
}
