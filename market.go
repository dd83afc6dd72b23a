package cartera

import "github.com/shopspring/decimal"

// Quote is one parsed record of the live market feed. Currency and Name are
// optional; feeds that only publish prices leave them empty.
type Quote struct {
	Ticker   string
	Price    decimal.Decimal
	Currency string
	Name     string
}

// ApplyQuotes overlays the live feed onto the asset aggregates. For each
// asset whose ticker matches a quote, the current price, currency and name
// are overwritten; assets with no matching quote keep their last known,
// transaction-derived values. This refreshes valuation inputs only, it never
// touches the cost-basis replay.
func ApplyQuotes(assets map[string]*Asset, quotes []Quote) {
	index := make(map[string]Quote, len(quotes))
	for _, q := range quotes {
		index[NormalizeTicker(q.Ticker)] = q
	}
	for ticker, a := range assets {
		q, ok := index[ticker]
		if !ok {
			continue
		}
		currency := a.Currency
		if q.Currency != "" {
			currency = q.Currency
		}
		a.Currency = currency
		a.CurrentPrice = M(q.Price, currency)
		if q.Name != "" {
			a.Name = q.Name
		}
	}
}
