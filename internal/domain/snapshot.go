package domain

import (
	"github.com/shopspring/decimal"
)

// SolarDeclaration is a declared solar-installation outlay for a tax year;
// it earns a capped relief.
type SolarDeclaration struct {
	TaxYear TaxYear         `yaml:"tax_year" json:"tax_year"`
	Cost    decimal.Decimal `yaml:"cost" json:"cost"`
}

// LivingExpenseEstimate is a caller-supplied estimate of living expenses for
// a tax year, used by the audit-risk computation. Years without an estimate
// fall back to the configured default.
type LivingExpenseEstimate struct {
	TaxYear TaxYear         `yaml:"tax_year" json:"tax_year"`
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
}

// Snapshot is an immutable view of a taxpayer's records as produced by the
// surrounding application. The engine only reads it; every computation over
// the same snapshot and tax year yields the same result.
type Snapshot struct {
	Taxpayers         []Taxpayer              `yaml:"taxpayers" json:"taxpayers"`
	Income            []IncomeRecord          `yaml:"income,omitempty" json:"income,omitempty"`
	Assets            []Asset                 `yaml:"assets,omitempty" json:"assets,omitempty"`
	Liabilities       []Liability             `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`
	Certificates      []Certificate           `yaml:"certificates,omitempty" json:"certificates,omitempty"`
	SolarDeclarations []SolarDeclaration      `yaml:"solar_declarations,omitempty" json:"solar_declarations,omitempty"`
	LivingExpenses    []LivingExpenseEstimate `yaml:"living_expenses,omitempty" json:"living_expenses,omitempty"`

	// Rules optionally overrides the process defaults for this snapshot.
	Rules *TaxRules `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// HasTaxpayer reports whether id is a known owner in the snapshot.
func (s *Snapshot) HasTaxpayer(id string) bool {
	for _, tp := range s.Taxpayers {
		if tp.ID == id {
			return true
		}
	}
	return false
}

// SolarCost returns the declared solar outlay for a year, zero if none.
func (s *Snapshot) SolarCost(year TaxYear) decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.SolarDeclarations {
		if d.TaxYear == year {
			total = total.Add(d.Cost)
		}
	}
	return total
}

// LivingExpense returns the estimate for a year and whether one was supplied.
func (s *Snapshot) LivingExpense(year TaxYear) (decimal.Decimal, bool) {
	for _, e := range s.LivingExpenses {
		if e.TaxYear == year {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}
