package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nahueld/cartera"
	"github.com/nahueld/cartera/renderer"

	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	currency string
	offline  bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open positions with live valuations" }
func (*holdingsCmd) Usage() string {
	return `cta holdings [-c <currency>] [-offline]

  Displays the open positions, enriched with live prices and the current
  exchange rate unless -offline is given.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", cartera.BaseCurrency, "Reporting currency for portfolio totals (USD or ARS)")
	f.BoolVar(&c.offline, "offline", false, "skip the live feeds, value positions at last known prices")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	assets := ledger.Assets()
	var rate cartera.Rate
	if !c.offline {
		quotes, liveRate, err := fetchMarket()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching market data: %v\n", err)
			return subcommands.ExitFailure
		}
		cartera.ApplyQuotes(assets, quotes)
		rate = liveRate
	}

	snap, err := cartera.AggregatePortfolio(assets, rate, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Holdings(assets, snap))

	return subcommands.ExitSuccess
}
