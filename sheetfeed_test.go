package cartera

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseQuotes(t *testing.T) {
	input := strings.Join([]string{
		"aapl,195.5,USD,Apple Inc.",
		"YPFD,1350,ARS",
		"KO,62.4",
		"broken",          // too few columns
		"NOPRICE,n/a,USD", // unparseable price
		",100",            // empty ticker
		"",
	}, "\n")

	quotes := ParseQuotes(strings.NewReader(input))
	if len(quotes) != 3 {
		t.Fatalf("got %d quotes, want 3: %+v", len(quotes), quotes)
	}

	aapl := quotes[0]
	if aapl.Ticker != "AAPL" || aapl.Currency != "USD" || aapl.Name != "Apple Inc." {
		t.Errorf("unexpected quote %+v", aapl)
	}
	if !aapl.Price.Equal(newDecimal(195.5)) {
		t.Errorf("Price = %v, want 195.5", aapl.Price)
	}
	if quotes[1].Name != "" {
		t.Errorf("Name = %q, want empty", quotes[1].Name)
	}
	if quotes[2].Currency != "" {
		t.Errorf("Currency = %q, want empty", quotes[2].Currency)
	}
}

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AAPL,195.5,USD,Apple Inc.\nYPFD,1350,ARS\n"))
	}))
	defer srv.Close()

	quotes, err := FetchQuotes(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}
}

func TestFetchQuotesUnconfigured(t *testing.T) {
	quotes, err := FetchQuotes("")
	if err != nil {
		t.Fatal(err)
	}
	if quotes != nil {
		t.Errorf("got %+v, want no quotes", quotes)
	}
}

func TestFetchQuotesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchQuotes(srv.URL); err == nil {
		t.Fatal("expected an error")
	}
}
