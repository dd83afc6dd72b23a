package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch the live price feed and exchange rate" }
func (*fetchCmd) Usage() string {
	return `cta fetch

  Fetches the configured price feed and the ARS/USD exchange rate and prints
  what was retrieved. Useful to check the feed configuration.
`
}

func (*fetchCmd) SetFlags(f *flag.FlagSet) {}

func (*fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, rate, err := fetchMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching market data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exchange rate: %s\n", rate)
	for _, q := range quotes {
		fmt.Printf("%s: %s %s %s\n", q.Ticker, q.Price, q.Currency, q.Name)
	}
	fmt.Printf("%d quotes retrieved\n", len(quotes))
	return subcommands.ExitSuccess
}
