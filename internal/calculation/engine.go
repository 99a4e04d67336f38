package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// Engine orchestrates the per-year assessments. It is stateless apart from
// the immutable rule table and a logger, so concurrent invocations over the
// same snapshot are always safe.
type Engine struct {
	Rules  domain.TaxRules
	Logger Logger
}

// NewEngine creates an engine with the reference rule table.
func NewEngine() *Engine {
	return &Engine{Rules: domain.DefaultTaxRules(), Logger: NopLogger{}}
}

// NewEngineWithRules creates an engine with a caller-supplied rule table.
func NewEngineWithRules(rules domain.TaxRules) *Engine {
	return &Engine{Rules: rules, Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// rulesFor returns the snapshot's rule override when present, otherwise the
// engine's table.
func (e *Engine) rulesFor(snap *domain.Snapshot) domain.TaxRules {
	if snap.Rules != nil {
		return *snap.Rules
	}
	return e.Rules
}

// recordsForYear filters income records and certificates to one tax year and
// verifies referential integrity. A record pointing at an unknown owner is a
// data-integrity error surfaced to the caller; records are never silently
// dropped.
func (e *Engine) recordsForYear(snap *domain.Snapshot, year domain.TaxYear) ([]domain.IncomeRecord, []domain.Certificate, error) {
	if !year.Valid() {
		return nil, nil, fmt.Errorf("invalid tax year %q", year)
	}

	var records []domain.IncomeRecord
	for _, rec := range snap.Income {
		if rec.TaxYear != year {
			continue
		}
		if rec.OwnerID == "" || !snap.HasTaxpayer(rec.OwnerID) {
			return nil, nil, fmt.Errorf("income record %s: unknown owner %q", rec.ID, rec.OwnerID)
		}
		records = append(records, rec)
	}

	var certificates []domain.Certificate
	for _, cert := range snap.Certificates {
		if cert.TaxYear != year {
			continue
		}
		if cert.OwnerID == "" || !snap.HasTaxpayer(cert.OwnerID) {
			return nil, nil, fmt.Errorf("certificate %s: unknown owner %q", cert.ID, cert.OwnerID)
		}
		certificates = append(certificates, cert)
	}

	return records, certificates, nil
}

// ComputeTax computes the complete liability for one tax year. It is
// deterministic and side-effect-free: identical snapshots always yield
// identical results, and the order of the input records never matters.
func (e *Engine) ComputeTax(snap *domain.Snapshot, year domain.TaxYear) (*domain.TaxComputation, error) {
	rules := e.rulesFor(snap)

	records, certificates, err := e.recordsForYear(snap, year)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(records, certificates, rules)
	personal, solar := Reliefs(rules, snap.SolarCost(year))

	taxable := agg.TotalIncome.Sub(personal).Sub(solar)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	brackets, err := ComputeProgressiveTax(taxable, rules.Brackets)
	if err != nil {
		return nil, fmt.Errorf("bracket computation for %s: %w", year, err)
	}

	computation := &domain.TaxComputation{
		TaxYear:         year,
		GrossBySchedule: agg.GrossBySchedule,
		TotalIncome:     agg.TotalIncome,
		PersonalRelief:  personal,
		SolarRelief:     solar,
		TaxableIncome:   taxable,
		Brackets:        brackets.Portions,
		TaxOnIncome:     brackets.TotalTax,
		TaxCredits:      agg.TaxCredits,
		FinalTaxPayable: brackets.TotalTax.Sub(agg.TaxCredits),
	}
	e.Logger.Debugf("tax %s: total=%s taxable=%s tax=%s credits=%s payable=%s",
		year, computation.TotalIncome.StringFixed(2), taxable.StringFixed(2),
		computation.TaxOnIncome.StringFixed(2), computation.TaxCredits.StringFixed(2),
		computation.FinalTaxPayable.StringFixed(2))
	return computation, nil
}

// ComputeAssessment runs both the tax and risk computations for a year and
// bundles the results for rendering.
func (e *Engine) ComputeAssessment(snap *domain.Snapshot, year domain.TaxYear) (*domain.Assessment, error) {
	tax, err := e.ComputeTax(snap, year)
	if err != nil {
		return nil, fmt.Errorf("ComputeTax failed: %w", err)
	}
	risk, err := e.ComputeRisk(snap, year)
	if err != nil {
		return nil, fmt.Errorf("ComputeRisk failed: %w", err)
	}
	return &domain.Assessment{TaxYear: year, Tax: tax, Risk: risk}, nil
}
