package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// TestProgressiveTaxReferenceTable tests the bracket walk against the
// reference configuration: 5 bands of 500,000 at 6–30%, then 36% unbounded.
func TestProgressiveTaxReferenceTable(t *testing.T) {
	bands := domain.DefaultTaxRules().Brackets

	tests := []struct {
		name          string
		taxableIncome decimal.Decimal
		expectedTax   decimal.Decimal
		expectedBands int
		description   string
	}{
		{
			name:          "Zero income",
			taxableIncome: decimal.Zero,
			expectedTax:   decimal.Zero,
			expectedBands: 0,
			description:   "No income, no bands consumed",
		},
		{
			name:          "First band only",
			taxableIncome: decimal.NewFromInt(400000),
			expectedTax:   decimal.NewFromInt(24000), // 400,000 * 0.06
			expectedBands: 1,
			description:   "Income inside the 6% band",
		},
		{
			name:          "Exact band boundary",
			taxableIncome: decimal.NewFromInt(500000),
			expectedTax:   decimal.NewFromInt(30000), // 500,000 * 0.06
			expectedBands: 1,
			description:   "Income exactly filling the first band",
		},
		{
			name:          "Two bands",
			taxableIncome: decimal.NewFromInt(600000),
			expectedTax:   decimal.NewFromInt(42000), // 30,000 + 100,000*0.12
			expectedBands: 2,
			description:   "Income spilling into the 12% band",
		},
		{
			name:          "Reference scenario",
			taxableIncome: decimal.NewFromInt(2450000),
			expectedTax:   decimal.NewFromInt(435000), // 30k+60k+90k+120k+135k
			expectedBands: 5,
			description:   "2,450,000 spanning five bands",
		},
		{
			name:          "Top rate engaged",
			taxableIncome: decimal.NewFromInt(3000000),
			expectedTax:   decimal.NewFromInt(630000), // 450,000 + 500,000*0.36
			expectedBands: 6,
			description:   "Income beyond the fifth band taxed at 36%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeProgressiveTax(tt.taxableIncome, bands)
			require.NoError(t, err)
			assert.True(t, tt.expectedTax.Equal(result.TotalTax),
				"%s: expected %s, got %s", tt.description, tt.expectedTax.StringFixed(2), result.TotalTax.StringFixed(2))
			assert.Len(t, result.Portions, tt.expectedBands)
		})
	}
}

// TestProgressiveTaxBreakdownSumsToTotal verifies the audit-trail invariant:
// the per-band taxes always sum exactly to the total.
func TestProgressiveTaxBreakdownSumsToTotal(t *testing.T) {
	bands := domain.DefaultTaxRules().Brackets
	incomes := []int64{0, 1, 499999, 500000, 500001, 1250000, 2450000, 2500000, 9999999}

	for _, income := range incomes {
		result, err := ComputeProgressiveTax(decimal.NewFromInt(income), bands)
		require.NoError(t, err)

		sum := decimal.Zero
		portionSum := decimal.Zero
		for _, p := range result.Portions {
			sum = sum.Add(p.Tax)
			portionSum = portionSum.Add(p.Portion)
		}
		assert.True(t, sum.Equal(result.TotalTax),
			"income %d: breakdown sums to %s, total is %s", income, sum.StringFixed(2), result.TotalTax.StringFixed(2))
		assert.True(t, portionSum.Equal(decimal.NewFromInt(income)),
			"income %d: portions must cover the whole taxable amount", income)
	}
}

// TestProgressiveTaxMonotonic checks that total tax never decreases as
// taxable income grows.
func TestProgressiveTaxMonotonic(t *testing.T) {
	bands := domain.DefaultTaxRules().Brackets

	prev := decimal.Zero
	for income := int64(0); income <= 4000000; income += 100000 {
		result, err := ComputeProgressiveTax(decimal.NewFromInt(income), bands)
		require.NoError(t, err)
		assert.True(t, result.TotalTax.GreaterThanOrEqual(prev),
			"tax decreased at income %d", income)
		prev = result.TotalTax
	}
}

// TestProgressiveTaxRejectsNegativeIncome verifies the precondition: the
// engine fails loudly instead of clamping so upstream bugs surface.
func TestProgressiveTaxRejectsNegativeIncome(t *testing.T) {
	bands := domain.DefaultTaxRules().Brackets

	result, err := ComputeProgressiveTax(decimal.NewFromInt(-1), bands)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "non-negative")
}

// TestProgressiveTaxAlternateTable runs a flat two-band table to confirm the
// walk is driven entirely by configuration.
func TestProgressiveTaxAlternateTable(t *testing.T) {
	bands := []domain.BracketBand{
		{Width: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.10)},
		{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.20)},
	}

	result, err := ComputeProgressiveTax(decimal.NewFromInt(1500000), bands)
	require.NoError(t, err)
	// 1,000,000*0.10 + 500,000*0.20
	assert.True(t, decimal.NewFromInt(200000).Equal(result.TotalTax),
		"expected 200000, got %s", result.TotalTax.StringFixed(2))
}
