package entities

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is a currency amount in cents (BRL minor unit).
//
// Arithmetic that needs fractions goes through Decimal() and comes back with
// MoneyFromDecimal, which rounds half-up exactly once.
type Money int64

// BasisPoints expresses a percentage with two decimals: 10000 == 100%.
type BasisPoints int

const FullBasisPoints BasisPoints = 10000

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Shift(2).IntPart())
}

// MoneyFromDecimalChecked is MoneyFromDecimal reporting false when the
// amount does not fit in int64 cents.
func MoneyFromDecimalChecked(d decimal.Decimal) (Money, bool) {
	cents := d.Round(2).Shift(2)
	if cents.LessThan(minCents) || cents.GreaterThan(maxCents) {
		return 0, false
	}
	return Money(cents.IntPart()), true
}

// MoneyFromReais converts a display amount (e.g. 180.50) into cents.
func MoneyFromReais(v float64) Money {
	return MoneyFromDecimal(decimal.NewFromFloat(v))
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Reais returns the amount with two-decimal precision for presentation.
func (m Money) Reais() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (b BasisPoints) Percent() float64 {
	f, _ := decimal.New(int64(b), -2).Float64()
	return f
}
