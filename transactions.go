package cartera

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType identifies the side of a transaction.
type TxType string

const (
	Buy  TxType = "BUY"
	Sell TxType = "SELL"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Error taxonomy of the engine.
var (
	// ErrMalformedRecord reports a transaction or feed row whose numeric
	// fields cannot be coerced to a finite number. On the transaction log
	// path it is surfaced to the caller, never silently dropped.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInsufficientQuantity rejects a sale exceeding the quantity held.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrUnknownTicker rejects a sale for a ticker with no holdings.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// Transaction is an immutable buy or sell record in the ledger.
//
// Price is the unit price paid or received, in the asset's currency.
// Ordering across transactions is by Date ascending; transactions sharing a
// date keep their ledger insertion order (seq, assigned on append).
type Transaction struct {
	ID       string
	Ticker   string
	Type     TxType
	Price    decimal.Decimal
	Quantity Quantity
	Date     time.Time

	seq int // insertion sequence, tie-break for equal dates
}

// NewBuy creates a new buy transaction with a fresh id.
func NewBuy(day time.Time, ticker string, price decimal.Decimal, quantity Quantity) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Ticker:   NormalizeTicker(ticker),
		Type:     Buy,
		Price:    price,
		Quantity: quantity,
		Date:     day,
	}
}

// NewSell creates a new sell transaction with a fresh id.
func NewSell(day time.Time, ticker string, price decimal.Decimal, quantity Quantity) Transaction {
	tx := NewBuy(day, ticker, price, quantity)
	tx.Type = Sell
	return tx
}

// Cost returns the total amount of the transaction (price times quantity).
func (t Transaction) Cost() Money {
	return Money{value: t.Price.Mul(t.Quantity.value)}
}

// Equal compares two transactions field by field.
// The insertion sequence is a ledger detail and is ignored.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Ticker == o.Ticker &&
		t.Type == o.Type &&
		t.Price.Equal(o.Price) &&
		t.Quantity.Equal(o.Quantity) &&
		t.Date.Equal(o.Date)
}

// txJSON is the wire shape of a single ledger line.
type txJSON struct {
	ID       string          `json:"id"`
	Ticker   string          `json:"ticker"`
	Type     TxType          `json:"type"`
	Price    decimal.Decimal `json:"price"`
	Quantity Quantity        `json:"quantity"`
	Date     time.Time       `json:"date"`
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(txJSON{
		ID:       t.ID,
		Ticker:   t.Ticker,
		Type:     t.Type,
		Price:    t.Price,
		Quantity: t.Quantity,
		Date:     t.Date,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp txJSON
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if _, err := ParseTxType(string(temp.Type)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	t.ID = temp.ID
	t.Ticker = NormalizeTicker(temp.Ticker)
	t.Type = temp.Type
	t.Price = temp.Price
	t.Quantity = temp.Quantity
	t.Date = temp.Date
	return nil
}

// RawRecord is the untyped row shape handed over by external collaborators
// (exports, spreadsheet dumps). All fields are strings; ParseRecord performs
// the coercion into a Transaction.
type RawRecord struct {
	ID       string
	Ticker   string
	Type     string
	Price    string
	Quantity string
	Date     string
}

// ParseRecord coerces a raw record into a Transaction. A price or quantity
// that is not a finite positive number, an unknown type, or an unparseable
// date yield an error wrapping ErrMalformedRecord: such records must be
// rejected, not silently zeroed.
func ParseRecord(r RawRecord) (Transaction, error) {
	ticker := NormalizeTicker(r.Ticker)
	if ticker == "" {
		return Transaction{}, fmt.Errorf("%w: missing ticker", ErrMalformedRecord)
	}
	txType, err := ParseTxType(r.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil || !price.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: price %q of %s is not a positive number", ErrMalformedRecord, r.Price, ticker)
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(r.Quantity))
	if err != nil || !quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: quantity %q of %s is not a positive number", ErrMalformedRecord, r.Quantity, ticker)
	}
	day, err := ParseDate(r.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: date %q of %s", ErrMalformedRecord, r.Date, ticker)
	}
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return Transaction{
		ID:       id,
		Ticker:   ticker,
		Type:     txType,
		Price:    price,
		Quantity: Q(quantity),
		Date:     day,
	}, nil
}
