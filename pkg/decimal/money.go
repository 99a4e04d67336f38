package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the string representation with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount with the rupee currency prefix.
func (m Money) Format() string {
	return "Rs " + m.String()
}
