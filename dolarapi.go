package cartera

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultRateURL is the public quote of the "dolar bolsa", the exchange rate
// an Argentine investor actually gets when moving money through securities.
const DefaultRateURL = "https://dolarapi.com/v1/dolares/bolsa"

/*
	{
	    "moneda": "USD",
	    "casa": "bolsa",
	    "nombre": "Bolsa",
	    "compra": 1345.1,
	    "venta": 1349.8,
	    "fechaActualizacion": "2025-08-29T16:30:00.000Z"
	}
*/

// FetchRate retrieves the current ARS-per-USD exchange rate. An empty addr
// falls back to DefaultRateURL.
//
// Any failure returns the unloaded Rate along with the error, so a caller
// choosing to continue degrades to face-value aggregation instead of
// converting with a stale or invented number.
func FetchRate(addr string) (Rate, error) {
	if addr == "" {
		addr = DefaultRateURL
	}
	var jobj any
	if err := jwget(live(), addr, &jobj); err != nil {
		return Rate{}, fmt.Errorf("could not fetch exchange rate: %w", err)
	}
	const path = "$.compra"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Rate{}, fmt.Errorf("could not read %q in exchange rate payload: %w", path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return Rate{}, fmt.Errorf("exchange rate %q is not a number: %v", path, jval)
	}
	return NewRate(val), nil
}
