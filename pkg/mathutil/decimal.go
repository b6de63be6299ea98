// Package mathutil provides common decimal math utilities.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

var (
	// Zero is the decimal zero value.
	Zero = decimal.Zero

	// One is the decimal one value.
	One = decimal.NewFromInt(1)

	// Twelve is the number of months in a year as a decimal.
	Twelve = decimal.NewFromInt(constants.MonthsPerYear)

	// Hundred is the percentage multiplier as a decimal.
	Hundred = decimal.NewFromInt(100)

	currencyTolerance = decimal.NewFromFloat(constants.CurrencyTolerance)
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(2)
}

// IsZero checks if a value is effectively zero (within currency tolerance).
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(currencyTolerance)
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}

// Pow raises (1 + rate) to the given number of periods. The exponentiation
// goes through float64 and is converted straight back to decimal; every
// other arithmetic step in the engine stays in decimal.
func Pow(rate decimal.Decimal, periods int) decimal.Decimal {
	base, _ := One.Add(rate).Float64()
	return decimal.NewFromFloat(math.Pow(base, float64(periods)))
}

// Percentage calculates what percentage value is of total, returning zero
// when total is zero.
func Percentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return Zero
	}
	return value.Div(total).Mul(Hundred)
}

// SafeDiv divides a by b, returning zero when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return Zero
	}
	return a.Div(b)
}
