package cartera

import (
	"testing"
	"time"
)

// test fixtures shared across the package tests

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}

func txBuy(t *testing.T, date, ticker string, price, quantity float64) Transaction {
	t.Helper()
	return NewBuy(day(t, date), ticker, newDecimal(price), Q(quantity))
}

func txSell(t *testing.T, date, ticker string, price, quantity float64) Transaction {
	t.Helper()
	return NewSell(day(t, date), ticker, newDecimal(price), Q(quantity))
}

func usd(v float64) Money { return M(v, BaseCurrency) }
func ars(v float64) Money { return M(v, AlternateCurrency) }

// checkMoney fails the test when got and want differ in value or currency.
func checkMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func checkSnapshot(t *testing.T, got, want PerformanceSnapshot) {
	t.Helper()
	if !got.TotalQuantity.Equal(want.TotalQuantity) {
		t.Errorf("TotalQuantity = %v, want %v", got.TotalQuantity, want.TotalQuantity)
	}
	checkMoney(t, "AvgPrice", got.AvgPrice, want.AvgPrice)
	checkMoney(t, "MarketValue", got.MarketValue, want.MarketValue)
	checkMoney(t, "UnrealizedPL", got.UnrealizedPL, want.UnrealizedPL)
	checkMoney(t, "RealizedPL", got.RealizedPL, want.RealizedPL)
	checkMoney(t, "TotalPL", got.TotalPL, want.TotalPL)
	if !got.UnrealizedPLPercent.Equal(want.UnrealizedPLPercent) {
		t.Errorf("UnrealizedPLPercent = %v, want %v", got.UnrealizedPLPercent, want.UnrealizedPLPercent)
	}
}
