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

type perfCmd struct {
	ticker  string
	offline bool
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display the detailed valuation of a single asset" }
func (*perfCmd) Usage() string {
	return `cta perf -t <ticker> [-offline]

  Displays the full performance breakdown of one asset: quantity held,
  average cost, market value, unrealized and realized P&L.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.BoolVar(&c.offline, "offline", false, "skip the live feeds, value the position at its last known price")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	assets := ledger.Assets()
	if !c.offline {
		quotes, _, err := fetchMarket()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching market data: %v\n", err)
			return subcommands.ExitFailure
		}
		cartera.ApplyQuotes(assets, quotes)
	}

	a, ok := assets[cartera.NormalizeTicker(c.ticker)]
	if !ok {
		fmt.Fprintf(os.Stderr, "No transactions for %s\n", cartera.NormalizeTicker(c.ticker))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Performance(a))

	return subcommands.ExitSuccess
}
