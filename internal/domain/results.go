package domain

import (
	"github.com/shopspring/decimal"
)

// BracketPortion is one band's contribution to the computed tax, kept so the
// UI can show the full marginal breakdown and tests can verify it band by
// band.
type BracketPortion struct {
	Rate    decimal.Decimal `json:"rate"`
	Portion decimal.Decimal `json:"portion"`
	Tax     decimal.Decimal `json:"tax"`
}

// ScheduleTotals holds the assessable amount contributed by each income
// schedule. The investment figure is after rent relief.
type ScheduleTotals struct {
	Employment decimal.Decimal `json:"employment"`
	Business   decimal.Decimal `json:"business"`
	Investment decimal.Decimal `json:"investment"`
	Other      decimal.Decimal `json:"other"`
}

// Sum returns total assessable income across schedules. Business losses are
// included as-is and can reduce the total.
func (st ScheduleTotals) Sum() decimal.Decimal {
	return st.Employment.Add(st.Business).Add(st.Investment).Add(st.Other)
}

// TaxComputation is the complete liability result for one tax year. It is
// plain data with no behavior beyond convenience accessors, suitable for
// direct rendering or serialization.
type TaxComputation struct {
	TaxYear         TaxYear          `json:"tax_year"`
	GrossBySchedule ScheduleTotals   `json:"gross_by_schedule"`
	TotalIncome     decimal.Decimal  `json:"total_income"`
	PersonalRelief  decimal.Decimal  `json:"personal_relief"`
	SolarRelief     decimal.Decimal  `json:"solar_relief"`
	TaxableIncome   decimal.Decimal  `json:"taxable_income"`
	Brackets        []BracketPortion `json:"brackets"`
	TaxOnIncome     decimal.Decimal  `json:"tax_on_income"`
	TaxCredits      decimal.Decimal  `json:"tax_credits"`
	FinalTaxPayable decimal.Decimal  `json:"final_tax_payable"`
}

// IsRefund reports whether withheld credits exceed the computed liability.
func (tc *TaxComputation) IsRefund() bool { return tc.FinalTaxPayable.IsNegative() }

// RiskBand classifies a risk score against the configured thresholds.
type RiskBand string

const (
	RiskSafe    RiskBand = "safe"
	RiskWarning RiskBand = "warning"
	RiskDanger  RiskBand = "danger"
)

// RiskAssessment is the unexplained-wealth result for one tax year, with
// every component of the score exposed for the audit-trail UI.
type RiskAssessment struct {
	TaxYear        TaxYear         `json:"tax_year"`
	AssetGrowth    decimal.Decimal `json:"asset_growth"`
	LoanRepayments decimal.Decimal `json:"loan_repayments"`
	NewBorrowing   decimal.Decimal `json:"new_borrowing"`
	LivingExpenses decimal.Decimal `json:"living_expenses"`
	DeclaredIncome decimal.Decimal `json:"declared_income"`
	RiskScore      decimal.Decimal `json:"risk_score"`
	Band           RiskBand        `json:"band"`
}

// Assessment bundles the tax and risk results for one year, the unit the
// output formatters work over.
type Assessment struct {
	TaxYear TaxYear         `json:"tax_year"`
	Tax     *TaxComputation `json:"tax"`
	Risk    *RiskAssessment `json:"risk"`
}
