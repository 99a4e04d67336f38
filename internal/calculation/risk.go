package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// ComputeRisk builds the unexplained-wealth score for one tax year: wealth
// growth and spending on one side, declared income and new borrowing on the
// other.
//
// Asset growth uses the valuation resolver for both ends of the year. An
// asset first acquired within the requested year contributes its full
// acquisition cost; the whole outlay must be explained, not just any
// appreciation since purchase.
func (e *Engine) ComputeRisk(snap *domain.Snapshot, year domain.TaxYear) (*domain.RiskAssessment, error) {
	rules := e.rulesFor(snap)

	records, certificates, err := e.recordsForYear(snap, year)
	if err != nil {
		return nil, err
	}
	declared := Aggregate(records, certificates, rules).TotalIncome

	assetGrowth := decimal.Zero
	for _, asset := range snap.Assets {
		if asset.AcquiredYear.After(year) {
			continue
		}
		if asset.AcquiredYear == year {
			assetGrowth = assetGrowth.Add(asset.Cost)
			continue
		}
		current := ResolveValue(asset, year)
		prior := priorReferenceValue(asset, year)
		assetGrowth = assetGrowth.Add(current.Sub(prior))
	}

	repayments := decimal.Zero
	borrowing := decimal.Zero
	for _, liability := range snap.Liabilities {
		if liability.TakenYear.After(year) {
			continue
		}
		start := liabilityBalanceAt(liability, year.Prev())
		end := liabilityBalanceAt(liability, year)
		delta := start.Sub(end)
		if delta.IsPositive() {
			repayments = repayments.Add(delta)
		} else {
			borrowing = borrowing.Add(delta.Neg())
		}
	}

	living, ok := snap.LivingExpense(year)
	if !ok {
		living = rules.DefaultLivingExpenses
	}

	score := assetGrowth.Add(repayments).Add(living).Sub(declared).Sub(borrowing)

	assessment := &domain.RiskAssessment{
		TaxYear:        year,
		AssetGrowth:    assetGrowth,
		LoanRepayments: repayments,
		NewBorrowing:   borrowing,
		LivingExpenses: living,
		DeclaredIncome: declared,
		RiskScore:      score,
		Band:           classifyRisk(score, rules.Risk),
	}
	e.Logger.Debugf("risk %s: growth=%s repayments=%s borrowing=%s living=%s declared=%s score=%s band=%s",
		year, assetGrowth.StringFixed(2), repayments.StringFixed(2), borrowing.StringFixed(2),
		living.StringFixed(2), declared.StringFixed(2), score.StringFixed(2), assessment.Band)
	return assessment, nil
}

// priorReferenceValue is the start-of-year value an already-held asset is
// measured against. Ledger-style assets use the shared opening-balance rule;
// everything else resolves as of the previous tax year.
func priorReferenceValue(asset domain.Asset, year domain.TaxYear) decimal.Decimal {
	switch asset.Category {
	case domain.CategoryBankBalance, domain.CategoryCash, domain.CategoryLoanGiven:
		return OpeningBalance(asset, year)
	default:
		return ResolveValue(asset, year.Prev())
	}
}

// liabilityBalanceAt returns the outstanding balance of a liability at the
// end of a tax year: zero before the loan was taken, the latest recorded
// closing balance not after the year, or the original amount when no
// repayment history exists yet.
func liabilityBalanceAt(liability domain.Liability, year domain.TaxYear) decimal.Decimal {
	if liability.TakenYear.After(year) {
		return decimal.Zero
	}
	var best domain.TaxYear
	balance := decimal.Zero
	found := false
	for _, b := range liability.Balances {
		if b.TaxYear.After(year) {
			continue
		}
		if !found || b.TaxYear.After(best) {
			best, balance, found = b.TaxYear, b.ClosingBalance, true
		}
	}
	if !found {
		return liability.OriginalAmount
	}
	return balance
}

func classifyRisk(score decimal.Decimal, thresholds domain.RiskThresholds) domain.RiskBand {
	switch {
	case score.LessThanOrEqual(thresholds.SafeCeiling):
		return domain.RiskSafe
	case score.LessThanOrEqual(thresholds.WarningCeiling):
		return domain.RiskWarning
	default:
		return domain.RiskDanger
	}
}
