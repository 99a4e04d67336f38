package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/calculation"
	"github.com/taxaudit/assessment-calculator/internal/domain"
	"github.com/taxaudit/assessment-calculator/internal/output"
)

func main() {
	rules := domain.DefaultTaxRules()

	incomes := []int64{500000, 1200000, 1800000, 2450000, 3090000, 5000000, 10000000}
	for _, income := range incomes {
		result, err := calculation.ComputeProgressiveTax(decimal.NewFromInt(income), rules.Brackets)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("Taxable %s:\n", output.FormatCurrency(decimal.NewFromInt(income)))
		for _, p := range result.Portions {
			fmt.Printf("  %s on %s = %s\n", output.FormatPercentage(p.Rate), output.FormatCurrency(p.Portion), output.FormatCurrency(p.Tax))
		}
		fmt.Printf("  total %s\n\n", output.FormatCurrency(result.TotalTax))
	}
}
