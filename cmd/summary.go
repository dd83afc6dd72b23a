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

type summaryCmd struct {
	currency string
	offline  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio-wide totals" }
func (*summaryCmd) Usage() string {
	return `cta summary [-c <currency>] [-offline]

  Displays the total balance and unrealized P&L of the portfolio in the
  chosen reporting currency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", cartera.BaseCurrency, "Reporting currency for portfolio totals (USD or ARS)")
	f.BoolVar(&c.offline, "offline", false, "skip the live feeds, value positions at last known prices")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Summary(snap, rate))

	return subcommands.ExitSuccess
}
