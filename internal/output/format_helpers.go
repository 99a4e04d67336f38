package output

import (
	"github.com/shopspring/decimal"

	money "github.com/taxaudit/assessment-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as a rupee amount with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Round().Format()
}

// FormatPercentage formats a decimal rate (0.06) as a percentage (6.00%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
