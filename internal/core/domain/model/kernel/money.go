package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents). Order totals are exact
// integer sums of line totals, so equality checks never suffer from rounding.
type Money int64

// NewMoney returns cents as Money, rejecting negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", cents))
	}
	return Money(cents), nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// String formats the amount with two decimals, e.g. "19.99".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
