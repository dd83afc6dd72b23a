package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nahueld/cartera"

	"github.com/google/subcommands"
)

// --- Import Command ---

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV export" }
func (*importCmd) Usage() string {
	return `cta import -i <file.csv>

  Imports transactions from a CSV file (id,ticker,type,price,quantity,date)
  and rewrites the ledger with the merged result. Import is strict: the first
  malformed row aborts without touching the ledger.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := cartera.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The merged result goes through the write path: importing must not
	// smuggle an oversell past the validation a direct sell would face.
	// The ledger file is only rewritten when the whole merge is accepted.
	var txs []cartera.Transaction
	for tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}
	for tx := range imported.Transactions() {
		txs = append(txs, tx)
	}
	merged := cartera.NewLedger()
	if err := merged.Replay(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	if err := cartera.SaveLedger(*ledgerFile, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into %s\n", imported.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `cta export [-o <file.csv>]

  Exports the ledger as CSV in chronological order. Writes to stdout when no
  output file is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := cartera.ExportCSV(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
