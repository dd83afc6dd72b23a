package cartera

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger is the append-only log of buy and sell transactions.
//
// In a Ledger transactions are always in chronological order; transactions
// sharing a date keep their insertion order. The ledger is a record of facts,
// not a source of derived state: assets and snapshots are recomputed from it
// on demand.
type Ledger struct {
	transactions []Transaction
	nextSeq      int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates a transaction against the current state of the ledger and
// appends it. This is the only mutation of the system and it is atomic: a
// rejected transaction leaves the ledger unchanged.
//
// A buy requires a positive price and quantity. A sell additionally requires
// existing holdings for the ticker (ErrUnknownTicker) and a quantity not
// exceeding the held quantity computed from the pre-append performance
// snapshot (ErrInsufficientQuantity).
func (l *Ledger) Append(tx Transaction) error {
	tx.Ticker = NormalizeTicker(tx.Ticker)
	if tx.Ticker == "" {
		return fmt.Errorf("%w: missing ticker", ErrMalformedRecord)
	}
	if tx.Type != Buy && tx.Type != Sell {
		return fmt.Errorf("%w: unknown transaction type %q", ErrMalformedRecord, tx.Type)
	}
	if !tx.Price.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", tx.Price)
	}
	if !tx.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", tx.Quantity)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("transaction date is missing")
	}

	if tx.Type == Sell {
		asset, ok := l.Asset(tx.Ticker)
		if !ok {
			return fmt.Errorf("%w: no holdings for %s", ErrUnknownTicker, tx.Ticker)
		}
		held := asset.Performance().TotalQuantity
		if tx.Quantity.GreaterThan(held) {
			return fmt.Errorf("%w: cannot sell %s of %s, only %s held",
				ErrInsufficientQuantity, tx.Quantity, tx.Ticker, held)
		}
	}

	l.add(tx)
	return nil
}

// Replay validates and appends a batch of transactions, in chronological
// order regardless of the input order (input position breaks date ties).
// Unlike Add, every transaction goes through the write path, so an oversell
// anywhere in the batch surfaces as a rejection. The ledger may hold a prefix
// of the batch after a rejection; callers wanting atomicity replay into a
// fresh ledger and discard it on error.
func (l *Ledger) Replay(txs []Transaction) error {
	sorted := slices.Clone(txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	for _, tx := range sorted {
		if err := l.Append(tx); err != nil {
			return err
		}
	}
	return nil
}

// Add ingests transactions without write-path validation and re-sorts the
// ledger. It is the permissive loading path used when replaying an existing
// log (decode, import): historical data is taken as-is, the pure calculator
// tolerates whatever it finds.
func (l *Ledger) Add(txs ...Transaction) {
	for _, tx := range txs {
		tx.Ticker = NormalizeTicker(tx.Ticker)
		l.add(tx)
	}
}

func (l *Ledger) add(tx Transaction) {
	tx.seq = l.nextSeq
	l.nextSeq++
	l.transactions = append(l.transactions, tx)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. Transactions on the same
// date are ordered by their insertion sequence, so replays are deterministic
// even when dates collide.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i], l.transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.seq < b.seq
	})
}

// Transactions returns an iterator over transactions in chronological order,
// keeping only those accepted by all filters.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// ByTicker returns a predicate that filters transactions by ticker.
func ByTicker(ticker string) func(Transaction) bool {
	ticker = NormalizeTicker(ticker)
	return func(tx Transaction) bool { return tx.Ticker == ticker }
}

// Assets materializes the per-ticker asset aggregates from the full log.
// Assets are a view, recomputed fresh on every call.
func (l *Ledger) Assets() map[string]*Asset {
	return GroupTransactions(l.transactions)
}

// Asset materializes the asset aggregate for a single ticker. The boolean is
// false when the ledger holds no transaction for it.
func (l *Ledger) Asset(ticker string) (*Asset, bool) {
	a, ok := l.Assets()[NormalizeTicker(ticker)]
	return a, ok
}
