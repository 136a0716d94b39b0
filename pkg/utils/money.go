package utils

import "github.com/shopspring/decimal"

// ToCents converts a decimal amount to integer cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
