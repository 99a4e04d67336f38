package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// BracketResult is the output of the progressive bracket walk: the total tax
// and the per-band portions that produced it. The portions always sum to the
// total exactly.
type BracketResult struct {
	TotalTax decimal.Decimal
	Portions []domain.BracketPortion
}

// ComputeProgressiveTax walks the bracket table in ascending order, taxing
// the slice of taxableIncome inside each band at that band's marginal rate.
// The final (zero-width) band absorbs all remaining income.
//
// Negative input is a precondition violation: the orchestrator clamps taxable
// income at zero before calling, so a negative here means an upstream bug and
// the function fails loudly instead of clamping silently.
func ComputeProgressiveTax(taxableIncome decimal.Decimal, bands []domain.BracketBand) (*BracketResult, error) {
	if taxableIncome.IsNegative() {
		return nil, fmt.Errorf("taxable income must be non-negative, got %s", taxableIncome.StringFixed(2))
	}

	result := &BracketResult{TotalTax: decimal.Zero}
	remaining := taxableIncome
	for _, band := range bands {
		if !remaining.IsPositive() {
			break
		}
		portion := remaining
		if !band.Unbounded() {
			portion = decimal.Min(remaining, band.Width)
		}
		tax := portion.Mul(band.Rate)
		result.Portions = append(result.Portions, domain.BracketPortion{
			Rate:    band.Rate,
			Portion: portion,
			Tax:     tax,
		})
		result.TotalTax = result.TotalTax.Add(tax)
		remaining = remaining.Sub(portion)
	}

	return result, nil
}
