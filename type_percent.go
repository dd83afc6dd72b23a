package cartera

import (
	"fmt"
	"math"
)

// Percent is a relative performance value in percent units (22.5 means 22.5%).
// It is derived from decimal ratios at the very end of a computation, so plain
// float64 precision is enough.
type Percent float64

// Equal compares two percentages with a fixed tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString formats the percentage with an explicit sign, rendering zero
// as "-" so flat positions read as such in report tables.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
