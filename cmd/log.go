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

type logCmd struct {
	ticker string
	head   int
	tail   int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*logCmd) Usage() string {
	return `cta log [-t <ticker>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in chronological order, with options for
  filtering and limiting the output.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Show only transactions for this ticker.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(cartera.Transaction) bool
	if c.ticker != "" {
		filters = append(filters, cartera.ByTicker(c.ticker))
	}

	var transactions []cartera.Transaction
	for tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}
