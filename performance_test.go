package cartera

import "testing"

func TestPerformanceAllBuys(t *testing.T) {
	a := &Asset{
		Ticker:       "AAPL",
		Currency:     BaseCurrency,
		CurrentPrice: usd(195.5),
		Transactions: []Transaction{
			txBuy(t, "2024-01-10", "AAPL", 150, 10),
			txBuy(t, "2024-02-10", "AAPL", 180, 5),
		},
	}

	// avg = (10*150 + 5*180) / 15 = 160
	checkSnapshot(t, a.Performance(), PerformanceSnapshot{
		TotalQuantity:       Q(15),
		AvgPrice:            usd(160),
		MarketValue:         usd(2932.5),
		UnrealizedPL:        usd(532.5),
		UnrealizedPLPercent: Percent(532.5 / 2400 * 100),
		RealizedPL:          usd(0),
		TotalPL:             usd(532.5),
	})
}

func TestPerformanceRealizesAgainstAverage(t *testing.T) {
	a := &Asset{
		Ticker:       "AAPL",
		Currency:     BaseCurrency,
		CurrentPrice: usd(195.5),
		Transactions: []Transaction{
			txBuy(t, "2024-01-10", "AAPL", 150, 10),
			txBuy(t, "2024-02-10", "AAPL", 180, 5),
			txSell(t, "2024-03-10", "AAPL", 200, 5),
		},
	}

	// the sale realizes (200-160)*5 = 200 and leaves 10 units at avg 160
	checkSnapshot(t, a.Performance(), PerformanceSnapshot{
		TotalQuantity:       Q(10),
		AvgPrice:            usd(160),
		MarketValue:         usd(1955),
		UnrealizedPL:        usd(355),
		UnrealizedPLPercent: Percent(355.0 / 1600 * 100),
		RealizedPL:          usd(200),
		TotalPL:             usd(555),
	})
}

func TestPerformanceSellAll(t *testing.T) {
	a := &Asset{
		Ticker:       "KO",
		Currency:     BaseCurrency,
		CurrentPrice: usd(130),
		Transactions: []Transaction{
			txBuy(t, "2024-01-10", "KO", 100, 10),
			txSell(t, "2024-02-10", "KO", 120, 10),
		},
	}

	// closing the position zeroes quantity, cost basis and average price
	checkSnapshot(t, a.Performance(), PerformanceSnapshot{
		TotalQuantity:       Q(0),
		AvgPrice:            usd(0),
		MarketValue:         usd(0),
		UnrealizedPL:        usd(0),
		UnrealizedPLPercent: 0,
		RealizedPL:          usd(200),
		TotalPL:             usd(200),
	})
	if a.Open() {
		t.Errorf("closed position reported as open")
	}
}

func TestPerformanceOversellPropagates(t *testing.T) {
	// The calculator is permissive: selling more than held drives the
	// quantity negative without error. Rejection is the write path's job.
	a := &Asset{
		Ticker:       "KO",
		Currency:     BaseCurrency,
		CurrentPrice: usd(100),
		Transactions: []Transaction{
			txBuy(t, "2024-01-10", "KO", 100, 10),
			txSell(t, "2024-02-10", "KO", 120, 15),
		},
	}

	checkSnapshot(t, a.Performance(), PerformanceSnapshot{
		TotalQuantity:       Q(-5),
		AvgPrice:            usd(0), // not computed on non-positive quantity
		MarketValue:         usd(-500),
		UnrealizedPL:        usd(0), // cost is -500 as well
		UnrealizedPLPercent: 0,
		RealizedPL:          usd(300),
		TotalPL:             usd(300),
	})
	if a.Open() {
		t.Errorf("negative position reported as open")
	}
}

func TestPerformanceSortsByDate(t *testing.T) {
	// out of order input replays the same as chronological input
	a := &Asset{
		Ticker:       "AAPL",
		Currency:     BaseCurrency,
		CurrentPrice: usd(195.5),
		Transactions: []Transaction{
			txSell(t, "2024-03-10", "AAPL", 200, 5),
			txBuy(t, "2024-02-10", "AAPL", 180, 5),
			txBuy(t, "2024-01-10", "AAPL", 150, 10),
		},
	}

	perf := a.Performance()
	checkMoney(t, "RealizedPL", perf.RealizedPL, usd(200))
	checkMoney(t, "AvgPrice", perf.AvgPrice, usd(160))
}

func TestPerformanceSameDateKeepsInputOrder(t *testing.T) {
	// Two transactions on the same day: the ingestion sequence is the
	// tie-break, so a buy entered before a sell is replayed before it.
	assets, err := GroupRecords([]RawRecord{
		{Ticker: "KO", Type: "BUY", Price: "100", Quantity: "10", Date: "2024-01-10"},
		{Ticker: "KO", Type: "SELL", Price: "150", Quantity: "5", Date: "2024-01-10"},
	})
	if err != nil {
		t.Fatal(err)
	}

	perf := assets["KO"].Performance()
	checkMoney(t, "RealizedPL", perf.RealizedPL, usd(250))
	if !perf.TotalQuantity.Equal(Q(5)) {
		t.Errorf("TotalQuantity = %v, want 5", perf.TotalQuantity)
	}
}

func TestPerformanceDeterminism(t *testing.T) {
	a := &Asset{
		Ticker:       "AAPL",
		Currency:     BaseCurrency,
		CurrentPrice: usd(195.5),
		Transactions: []Transaction{
			txBuy(t, "2024-01-10", "AAPL", 150, 10),
			txSell(t, "2024-03-10", "AAPL", 200, 5),
			txBuy(t, "2024-02-10", "AAPL", 180, 5),
		},
	}

	checkSnapshot(t, a.Performance(), a.Performance())
}

func TestPerformanceTotalPLIdentity(t *testing.T) {
	tests := []struct {
		name string
		txs  []Transaction
	}{
		{"buys only", []Transaction{
			txBuy(t, "2024-01-10", "X", 150, 10),
			txBuy(t, "2024-02-10", "X", 180, 5),
		}},
		{"with sale", []Transaction{
			txBuy(t, "2024-01-10", "X", 150, 10),
			txSell(t, "2024-02-10", "X", 200, 5),
		}},
		{"closed", []Transaction{
			txBuy(t, "2024-01-10", "X", 150, 10),
			txSell(t, "2024-02-10", "X", 120, 10),
		}},
		{"oversold", []Transaction{
			txBuy(t, "2024-01-10", "X", 100, 10),
			txSell(t, "2024-02-10", "X", 120, 15),
		}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Asset{Ticker: "X", Currency: BaseCurrency, CurrentPrice: usd(175), Transactions: tt.txs}
			perf := a.Performance()
			want := perf.UnrealizedPL.Add(perf.RealizedPL)
			checkMoney(t, "TotalPL", perf.TotalPL, want)
		})
	}
}
