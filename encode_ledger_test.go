package cartera

import (
	"strings"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Add(
		txBuy(t, "2024-01-10", "AAPL", 150.5, 10),
		txSell(t, "2024-03-10", "AAPL", 200, 5),
		txBuy(t, "2024-02-10", "YPFD", 1080, 100),
	)

	var buf strings.Builder
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeLedger(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != l.Len() {
		t.Fatalf("decoded %d transactions, want %d", decoded.Len(), l.Len())
	}

	want := make([]Transaction, 0, l.Len())
	for tx := range l.Transactions() {
		want = append(want, tx)
	}
	i := 0
	for tx := range decoded.Transactions() {
		if !tx.Equal(want[i]) {
			t.Errorf("transaction %d = %+v, want %+v", i, tx, want[i])
		}
		i++
	}
}

func TestEncodeTransactionWritesBareNumbers(t *testing.T) {
	var buf strings.Builder
	tx := txBuy(t, "2024-01-10", "AAPL", 150.5, 10)
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatal(err)
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("missing trailing newline in %q", line)
	}
	// decimals are encoded as JSON numbers, not strings
	if !strings.Contains(line, `"price":150.5`) {
		t.Errorf("price not encoded as a bare number in %q", line)
	}
}

func TestDecodeLedgerStrict(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"broken json", `{"id":"a","ticker":"KO","type":"BUY","price":100,"quantity":1,"date":"2024-01-10T00:00:00Z"}` + "\n{not json}\n"},
		{"unknown type", `{"id":"a","ticker":"KO","type":"BUY","price":100,"quantity":1,"date":"2024-01-10T00:00:00Z"}` + "\n" +
			`{"id":"b","ticker":"KO","type":"HOLD","price":100,"quantity":1,"date":"2024-01-11T00:00:00Z"}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			// the offending line is named so the log can be repaired
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("err = %v, want a reference to line 2", err)
			}
		})
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	input := `{"id":"a","ticker":"KO","type":"BUY","price":100,"quantity":1,"date":"2024-01-10T00:00:00Z"}` + "\n\n"
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}
