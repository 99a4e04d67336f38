package domain

import (
	"github.com/shopspring/decimal"
)

// RULE TABLE ASSUMPTIONS:
//
// 1. Bracket bands: ordered ascending; each band taxes only the slice of
//    taxable income falling within its width. The final band has zero width
//    and absorbs everything above the preceding bands at the top rate.
//
// 2. Reference configuration (2023/24 onwards): five bands of 500,000 at
//    6%, 12%, 18%, 24%, 30%, then 36% unbounded; personal relief 1,200,000;
//    solar relief capped at 600,000; rent relief 25%.
//
// 3. The table is loaded once at process start and never mutated; it is
//    passed explicitly into every computation so alternate tables (future
//    tax years, tests) need no global state.

// BracketBand is one marginal band of the progressive tax table. A zero or
// negative width marks the unbounded top band.
type BracketBand struct {
	Width decimal.Decimal `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the band absorbs all remaining income.
func (b BracketBand) Unbounded() bool { return !b.Width.IsPositive() }

// RiskThresholds are the band boundaries for the audit-risk classification.
type RiskThresholds struct {
	SafeCeiling    decimal.Decimal `yaml:"safe_ceiling" json:"safe_ceiling"`
	WarningCeiling decimal.Decimal `yaml:"warning_ceiling" json:"warning_ceiling"`
}

// TaxRules is the process-wide constant table driving every computation:
// relief amounts, the bracket table and the risk-band thresholds.
type TaxRules struct {
	PersonalRelief        decimal.Decimal `yaml:"personal_relief" json:"personal_relief"`
	SolarReliefCap        decimal.Decimal `yaml:"solar_relief_cap" json:"solar_relief_cap"`
	RentReliefRate        decimal.Decimal `yaml:"rent_relief_rate" json:"rent_relief_rate"`
	Brackets              []BracketBand   `yaml:"brackets" json:"brackets"`
	Risk                  RiskThresholds  `yaml:"risk" json:"risk"`
	DefaultLivingExpenses decimal.Decimal `yaml:"default_living_expenses" json:"default_living_expenses"`
}

// DefaultTaxRules returns the reference rule table.
func DefaultTaxRules() TaxRules {
	bandWidth := decimal.NewFromInt(500000)
	return TaxRules{
		PersonalRelief: decimal.NewFromInt(1200000),
		SolarReliefCap: decimal.NewFromInt(600000),
		RentReliefRate: decimal.NewFromFloat(0.25),
		Brackets: []BracketBand{
			{Width: bandWidth, Rate: decimal.NewFromFloat(0.06)},
			{Width: bandWidth, Rate: decimal.NewFromFloat(0.12)},
			{Width: bandWidth, Rate: decimal.NewFromFloat(0.18)},
			{Width: bandWidth, Rate: decimal.NewFromFloat(0.24)},
			{Width: bandWidth, Rate: decimal.NewFromFloat(0.30)},
			{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.36)},
		},
		Risk: RiskThresholds{
			SafeCeiling:    decimal.NewFromInt(100000),
			WarningCeiling: decimal.NewFromInt(500000),
		},
		DefaultLivingExpenses: decimal.Zero,
	}
}
