package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// AggregateResult is the reduction of one tax year's income records and
// certificates into schedule subtotals and credits. Reliefs and the
// taxable-income clamp are applied by the orchestrator, not here.
type AggregateResult struct {
	GrossBySchedule domain.ScheduleTotals
	TotalIncome     decimal.Decimal
	TaxCredits      decimal.Decimal
}

// Aggregate reduces income records (already filtered to a single tax year)
// into per-schedule assessable amounts and total tax credits.
//
// Credit reconciliation is explicit system policy: certificates are an
// independently summed credit source, and when a certificate is linked to an
// income record the certificate's figure wins: the record's own withheld
// field is skipped so the same withholding is never counted twice.
func Aggregate(records []domain.IncomeRecord, certificates []domain.Certificate, rules domain.TaxRules) AggregateResult {
	linked := make(map[string]bool, len(certificates))
	for _, cert := range certificates {
		if cert.IncomeRecordID != "" {
			linked[cert.IncomeRecordID] = true
		}
	}

	var res AggregateResult
	res.TotalIncome = decimal.Zero
	res.TaxCredits = decimal.Zero

	for _, rec := range records {
		switch rec.Schedule {
		case domain.ScheduleEmployment:
			gross := rec.Remuneration.Add(rec.NonCashBenefits).Sub(rec.ExemptIncome)
			res.GrossBySchedule.Employment = res.GrossBySchedule.Employment.Add(gross)
			if !linked[rec.ID] {
				res.TaxCredits = res.TaxCredits.Add(rec.APITDeducted)
			}

		case domain.ScheduleBusiness:
			// Net profit counts as-is; a loss reduces total income. Loss
			// carry-forward is an external concern.
			net := rec.GrossRevenue.Sub(rec.DirectExpenses)
			res.GrossBySchedule.Business = res.GrossBySchedule.Business.Add(net)

		case domain.ScheduleInvestment:
			assessable := rec.Gross
			if rec.Kind == domain.InvestmentRent {
				relief := rec.Gross.Mul(rules.RentReliefRate)
				assessable = rec.Gross.Sub(relief)
			}
			res.GrossBySchedule.Investment = res.GrossBySchedule.Investment.Add(assessable)
			if !linked[rec.ID] {
				res.TaxCredits = res.TaxCredits.Add(rec.WHTDeducted)
			}

		case domain.ScheduleOther:
			assessable := rec.Gross.Sub(rec.ExemptAmount)
			res.GrossBySchedule.Other = res.GrossBySchedule.Other.Add(assessable)
			if !linked[rec.ID] {
				res.TaxCredits = res.TaxCredits.Add(rec.WHTDeducted)
			}
		}
	}

	for _, cert := range certificates {
		res.TaxCredits = res.TaxCredits.Add(cert.TaxDeducted)
	}

	res.TotalIncome = res.GrossBySchedule.Sum()
	return res
}

// Reliefs returns the deductions applied before the bracket walk: the fixed
// personal relief plus solar relief capped at the configured ceiling.
func Reliefs(rules domain.TaxRules, solarCost decimal.Decimal) (personal, solar decimal.Decimal) {
	personal = rules.PersonalRelief
	solar = decimal.Min(solarCost, rules.SolarReliefCap)
	if solar.IsNegative() {
		solar = decimal.Zero
	}
	return personal, solar
}
