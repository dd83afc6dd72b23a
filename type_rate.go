package cartera

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is the exchange rate used for cross-currency aggregation, expressed in
// alternate-currency units per unit of the base currency (e.g. ARS per USD).
//
// The zero value means "not loaded": conversion is disabled and foreign amounts
// are summed at face value, a documented approximation. A rate only becomes
// loaded through NewRate with a value strictly greater than 1, so the
// "disable conversion" branch is carried by the type instead of being inferred
// from the magnitude of a raw number.
type Rate struct {
	value  decimal.Decimal
	loaded bool
}

// NewRate returns a loaded Rate for values strictly greater than 1.
// Values of 1 or below are the uninitialized defaults of upstream feeds and
// yield the unloaded zero value.
func NewRate[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	d := newDecimal(value)
	if d.LessThanOrEqual(decimal.NewFromInt(1)) {
		return Rate{}
	}
	return Rate{value: d, loaded: true}
}

// Loaded reports whether the rate holds a real market value.
func (r Rate) Loaded() bool { return r.loaded }

// ToBase converts an alternate-currency amount into the base currency.
// An unloaded rate returns the amount unchanged (face value).
func (r Rate) ToBase(m Money) Money {
	if !r.loaded {
		return m
	}
	return Money{value: m.value.Div(r.value), cur: BaseCurrency}
}

// FromBase converts a base-currency amount into the alternate currency.
// An unloaded rate returns the amount unchanged.
func (r Rate) FromBase(m Money) Money {
	if !r.loaded {
		return m
	}
	return Money{value: m.value.Mul(r.value), cur: AlternateCurrency}
}

func (r Rate) String() string {
	if !r.loaded {
		return "not loaded"
	}
	return fmt.Sprintf("%s %s/%s", r.value.String(), AlternateCurrency, BaseCurrency)
}
