package cartera

import (
	"fmt"
	"os"
)

// LoadLedger opens and decodes the ledger file. The caller decides what a
// missing file means (a fresh portfolio or an error) by testing the returned
// error against fs.ErrNotExist.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger rewrites the ledger file in canonical form: chronological order,
// one JSON transaction per line.
func SaveLedger(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}
