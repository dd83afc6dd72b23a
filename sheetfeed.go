package cartera

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// The live price feed is a plain CSV published by a spreadsheet, one row per
// ticker:
//
//	ticker,price[,currency[,name]]
//
// Spreadsheets produce ragged, half-edited rows all the time, so feed parsing
// is lenient: a row whose ticker is empty or whose price does not parse is
// dropped. This is the opposite policy of transaction ingestion, where a bad
// row is a hard error; a missing quote only leaves an asset on its last known
// price.

// FetchQuotes retrieves and parses the live price feed. An empty addr means
// the feed is not configured and yields no quotes.
func FetchQuotes(addr string) ([]Quote, error) {
	if addr == "" {
		return nil, nil
	}
	resp, err := live().Get(addr)
	if err != nil {
		return nil, fmt.Errorf("could not fetch price feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("could not fetch price feed: %s", resp.Status)
	}
	return ParseQuotes(resp.Body), nil
}

// ParseQuotes parses feed rows from r, dropping the unparseable ones.
func ParseQuotes(r io.Reader) []Quote {
	var quotes []Quote
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) < 2 {
			continue
		}
		ticker := NormalizeTicker(parts[0])
		price, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if ticker == "" || err != nil {
			continue
		}
		q := Quote{Ticker: ticker, Price: price}
		if len(parts) > 2 {
			q.Currency = strings.ToUpper(strings.TrimSpace(parts[2]))
		}
		if len(parts) > 3 {
			q.Name = strings.TrimSpace(parts[3])
		}
		quotes = append(quotes, q)
	}
	return quotes
}
