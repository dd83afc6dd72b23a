package cartera

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// csvHeader is the canonical column layout of a transaction export.
var csvHeader = []string{"id", "ticker", "type", "price", "quantity", "date"}

// ImportCSV reads transactions from a CSV export and returns a ledger.
// The column layout is id,ticker,type,price,quantity,date; a leading header
// row is recognized and skipped. Import is stricter than ledger decoding: an
// arbitrary file was never validated by the write path, so on top of rejecting
// the first malformed row (ErrMalformedRecord), the rows are replayed through
// it and an oversell anywhere in the file aborts the whole import
// (ErrInsufficientQuantity, ErrUnknownTicker).
func ImportCSV(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	var txs []Transaction
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++
		if row == 1 && fields[0] == csvHeader[0] {
			continue // header row
		}
		tx, err := ParseRecord(RawRecord{
			ID:       fields[0],
			Ticker:   fields[1],
			Type:     fields[2],
			Price:    fields[3],
			Quantity: fields[4],
			Date:     fields[5],
		})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txs = append(txs, tx)
	}

	ledger := NewLedger()
	if err := ledger.Replay(txs); err != nil {
		return nil, err
	}
	return ledger, nil
}

// ExportCSV writes the ledger as CSV in chronological order, with a header.
func ExportCSV(w io.Writer, ledger *Ledger) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for tx := range ledger.Transactions() {
		record := []string{
			tx.ID,
			tx.Ticker,
			string(tx.Type),
			tx.Price.String(),
			tx.Quantity.String(),
			tx.Date.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
