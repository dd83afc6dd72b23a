package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nahueld/cartera"

	"github.com/google/subcommands"
)

// recordTransaction validates a transaction against the current ledger and,
// when accepted, appends it to the ledger file. A rejected transaction never
// reaches the file.
func recordTransaction(tx cartera.Transaction) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Rejected: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendTransaction(tx)
}

// parseTxFlags coerces the user-typed flags shared by buy and sell.
// Prices and quantities accept both decimal comma and decimal dot.
func parseTxFlags(date, price, quantity string) (tx cartera.Transaction, err error) {
	tx.Date, err = cartera.ParseDate(date)
	if err != nil {
		return tx, err
	}
	tx.Price, err = cartera.ParseDecimalInput(price)
	if err != nil {
		return tx, fmt.Errorf("invalid price: %w", err)
	}
	q, err := cartera.ParseDecimalInput(quantity)
	if err != nil {
		return tx, fmt.Errorf("invalid quantity: %w", err)
	}
	tx.Quantity = cartera.Q(q)
	return tx, nil
}

// --- Buy Command ---

type buyCmd struct {
	date     string
	ticker   string
	quantity string
	price    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `cta buy -t <ticker> -q <quantity> -p <price> [-d <date>]

  Purchases shares of an asset and appends the transaction to the ledger.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.price, "p", "", "Price per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	parsed, err := parseTxFlags(c.date, c.price, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx := cartera.NewBuy(parsed.Date, c.ticker, parsed.Price, parsed.Quantity)
	return recordTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	ticker   string
	quantity string
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `cta sell -t <ticker> -q <quantity> -p <price> [-d <date>]

  Sells shares of an asset. The sale is rejected when the ticker is not held
  or the quantity exceeds the current position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.price, "p", "", "Price per share")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	parsed, err := parseTxFlags(c.date, c.price, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx := cartera.NewSell(parsed.Date, c.ticker, parsed.Price, parsed.Quantity)
	return recordTransaction(tx)
}
