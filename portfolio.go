package cartera

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is the derived portfolio-wide valuation in a chosen
// display currency. Like PerformanceSnapshot it is never stored, always a
// pure function of the assets and the exchange rate.
type PortfolioSnapshot struct {
	Currency          string
	TotalBalance      Money
	TotalUnrealizedPL Money
	TotalPLPercent    Percent
}

// AggregatePortfolio sums the valuations of all open positions into
// portfolio-wide totals, expressed in the given display currency (the base
// currency or the alternate one).
//
// Aggregation happens in the base currency: an asset quoted in another
// currency has its market value and unrealized P&L divided by the exchange
// rate. When the rate is not loaded, conversion is disabled and foreign
// amounts are summed at face value, a documented approximation the caller
// accepts instead of failing the whole report. Displaying in the alternate
// currency re-scales the totals by the rate; the percentage is
// currency-invariant and is never re-scaled.
func AggregatePortfolio(assets map[string]*Asset, rate Rate, display string) (PortfolioSnapshot, error) {
	if display != BaseCurrency && display != AlternateCurrency {
		return PortfolioSnapshot{}, fmt.Errorf("unsupported display currency %q", display)
	}

	var balance, unrealized, cost decimal.Decimal
	for ticker := range Tickers(assets) {
		a := assets[ticker]
		perf := a.Performance()
		if !perf.TotalQuantity.IsPositive() {
			continue // closed positions are excluded
		}
		market := perf.MarketValue
		gain := perf.UnrealizedPL
		if a.Currency != BaseCurrency && rate.Loaded() {
			market = rate.ToBase(market)
			gain = rate.ToBase(gain)
		}
		balance = balance.Add(market.value)
		unrealized = unrealized.Add(gain.value)
		cost = cost.Add(market.value.Sub(gain.value))
	}

	var pct Percent
	if cost.IsPositive() {
		pct = Percent(unrealized.Div(cost).InexactFloat64() * 100)
	}

	totalBalance := M(balance, BaseCurrency)
	totalUnrealized := M(unrealized, BaseCurrency)
	if display == AlternateCurrency {
		totalBalance = rate.FromBase(totalBalance)
		totalUnrealized = rate.FromBase(totalUnrealized)
	}

	return PortfolioSnapshot{
		Currency:          display,
		TotalBalance:      totalBalance,
		TotalUnrealizedPL: totalUnrealized,
		TotalPLPercent:    pct,
	}, nil
}
