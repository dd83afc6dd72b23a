// Package cmd implements the CLI application to track a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/nahueld/cartera"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&logCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")
	c.Register(&fetchCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")

// The live data sources are configured through the environment (or a .env
// file loaded by main). An unset feed yields no quotes, an unset rate URL
// falls back to the public dolarapi endpoint.
const (
	envFeedURL = "CARTERA_FEED_URL"
	envRateURL = "CARTERA_RATE_URL"
)

// loadLedger decodes the app ledger file. A missing file is a fresh
// portfolio, not an error.
func loadLedger() (l *cartera.Ledger, err error) {
	l, err = cartera.LoadLedger(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger instead")
		l, err = cartera.NewLedger(), nil
	}
	return
}

// appendTransaction appends a single validated transaction to the app ledger file.
func appendTransaction(tx cartera.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := cartera.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// fetchMarket retrieves the price feed and the exchange rate. The two sources
// are independent and fetched in parallel; the caller gets whatever loaded
// plus the joined errors of what did not.
func fetchMarket() ([]cartera.Quote, cartera.Rate, error) {
	var (
		wg         sync.WaitGroup
		quotes     []cartera.Quote
		rate       cartera.Rate
		qerr, rerr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		quotes, qerr = cartera.FetchQuotes(os.Getenv(envFeedURL))
	}()
	go func() {
		defer wg.Done()
		rate, rerr = cartera.FetchRate(os.Getenv(envRateURL))
	}()
	wg.Wait()
	return quotes, rate, errors.Join(qerr, rerr)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
