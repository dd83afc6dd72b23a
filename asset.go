package cartera

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// BaseCurrency is the reference currency used internally for cross-currency
// aggregation. AlternateCurrency is the only other display currency of the
// system; its rate against the base is supplied by an external feed.
const (
	BaseCurrency      = "USD"
	AlternateCurrency = "ARS"
)

// Asset aggregates the transactions of a single ticker together with its
// last known market attributes.
//
// Until the live feed enriches it, an asset carries defaults derived from its
// own transactions: the name is the ticker, the currency is the base currency
// and the current price is the price of the most recently processed
// transaction. An asset whose net quantity is zero remains valid (a closed
// position) but is excluded from holdings views.
type Asset struct {
	Ticker       string
	Name         string
	Currency     string
	CurrentPrice Money
	Transactions []Transaction
}

// Invariant: all transactions in an asset share the asset's ticker.

// GroupTransactions partitions transactions into one asset aggregate per
// distinct ticker. Insertion order is preserved relative to the input within
// each asset. Pure mapping construction, no side effects.
func GroupTransactions(txs []Transaction) map[string]*Asset {
	assets := make(map[string]*Asset)
	for _, tx := range txs {
		a, ok := assets[tx.Ticker]
		if !ok {
			a = &Asset{
				Ticker:   tx.Ticker,
				Name:     tx.Ticker,
				Currency: BaseCurrency,
			}
			assets[tx.Ticker] = a
		}
		a.CurrentPrice = M(tx.Price, a.Currency)
		a.Transactions = append(a.Transactions, tx)
	}
	return assets
}

// GroupRecords coerces raw collaborator records and partitions them into
// asset aggregates. The first malformed record aborts the whole grouping:
// on the transaction log path a bad row affects cost-basis correctness and
// must be surfaced, not dropped.
func GroupRecords(records []RawRecord) (map[string]*Asset, error) {
	txs := make([]Transaction, 0, len(records))
	for i, r := range records {
		tx, err := ParseRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tx.seq = i // input position breaks date ties
		txs = append(txs, tx)
	}
	return GroupTransactions(txs), nil
}

// Tickers iterates over the tickers of an asset map in lexical order.
func Tickers(assets map[string]*Asset) iter.Seq[string] {
	return func(yield func(string) bool) {
		tickers := slices.Collect(maps.Keys(assets))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}
