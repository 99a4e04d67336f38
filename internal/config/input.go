package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// InputParser handles parsing of snapshot input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a taxpayer snapshot from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var snap domain.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}

	return &snap, nil
}

// ValidateSnapshot validates the loaded snapshot.
func (ip *InputParser) ValidateSnapshot(snap *domain.Snapshot) error {
	if len(snap.Taxpayers) == 0 {
		return fmt.Errorf("no taxpayers provided")
	}
	for i, tp := range snap.Taxpayers {
		if tp.ID == "" {
			return fmt.Errorf("taxpayer %d: id is required", i)
		}
	}

	ids := make(map[string]bool, len(snap.Income))
	for i, rec := range snap.Income {
		if err := ip.validateIncomeRecord(&rec, snap); err != nil {
			return fmt.Errorf("income record %d validation failed: %w", i, err)
		}
		if ids[rec.ID] {
			return fmt.Errorf("income record %d: duplicate id %q", i, rec.ID)
		}
		ids[rec.ID] = true
	}

	for i, cert := range snap.Certificates {
		if err := ip.validateCertificate(&cert, snap, ids); err != nil {
			return fmt.Errorf("certificate %d validation failed: %w", i, err)
		}
	}

	for i, asset := range snap.Assets {
		if err := ip.validateAsset(&asset, snap); err != nil {
			return fmt.Errorf("asset %d validation failed: %w", i, err)
		}
	}

	for i, liability := range snap.Liabilities {
		if err := ip.validateLiability(&liability); err != nil {
			return fmt.Errorf("liability %d validation failed: %w", i, err)
		}
	}

	if snap.Rules != nil {
		if err := ValidateRules(snap.Rules); err != nil {
			return fmt.Errorf("rules validation failed: %w", err)
		}
	}

	return nil
}

// validateIncomeRecord validates a single income record.
func (ip *InputParser) validateIncomeRecord(rec *domain.IncomeRecord, snap *domain.Snapshot) error {
	if rec.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !snap.HasTaxpayer(rec.OwnerID) {
		return fmt.Errorf("owner %q is not a known taxpayer", rec.OwnerID)
	}
	if !rec.TaxYear.Valid() {
		return fmt.Errorf("tax year %q is not a four-digit year", rec.TaxYear)
	}
	if !rec.Schedule.Valid() {
		return fmt.Errorf("unknown schedule %q", rec.Schedule)
	}

	switch rec.Schedule {
	case domain.ScheduleEmployment:
		if rec.Remuneration.IsNegative() || rec.NonCashBenefits.IsNegative() {
			return fmt.Errorf("employment amounts cannot be negative")
		}
		if rec.ExemptIncome.IsNegative() || rec.APITDeducted.IsNegative() {
			return fmt.Errorf("exempt income and APIT cannot be negative")
		}
	case domain.ScheduleBusiness:
		if rec.GrossRevenue.IsNegative() || rec.DirectExpenses.IsNegative() {
			return fmt.Errorf("business revenue and expenses cannot be negative")
		}
	case domain.ScheduleInvestment:
		if !rec.Kind.Valid() {
			return fmt.Errorf("unknown investment kind %q", rec.Kind)
		}
		if rec.Gross.IsNegative() || rec.WHTDeducted.IsNegative() {
			return fmt.Errorf("investment amounts cannot be negative")
		}
	case domain.ScheduleOther:
		if rec.Gross.IsNegative() || rec.ExemptAmount.IsNegative() || rec.WHTDeducted.IsNegative() {
			return fmt.Errorf("other-income amounts cannot be negative")
		}
	}

	return nil
}

// validateCertificate validates a withholding certificate, including any link
// to an income record.
func (ip *InputParser) validateCertificate(cert *domain.Certificate, snap *domain.Snapshot, recordIDs map[string]bool) error {
	if cert.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !snap.HasTaxpayer(cert.OwnerID) {
		return fmt.Errorf("owner %q is not a known taxpayer", cert.OwnerID)
	}
	if !cert.TaxYear.Valid() {
		return fmt.Errorf("tax year %q is not a four-digit year", cert.TaxYear)
	}
	if cert.Kind != domain.CertificateAPIT && cert.Kind != domain.CertificateWHT {
		return fmt.Errorf("unknown certificate kind %q", cert.Kind)
	}
	if cert.Gross.IsNegative() || cert.TaxDeducted.IsNegative() {
		return fmt.Errorf("certificate amounts cannot be negative")
	}
	if cert.TaxDeducted.GreaterThan(cert.Gross) {
		return fmt.Errorf("tax deducted cannot exceed gross")
	}
	if cert.IncomeRecordID != "" && !recordIDs[cert.IncomeRecordID] {
		return fmt.Errorf("linked income record %q does not exist", cert.IncomeRecordID)
	}
	return nil
}

// validateAsset validates an asset and its historical collections.
func (ip *InputParser) validateAsset(asset *domain.Asset, snap *domain.Snapshot) error {
	if asset.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !snap.HasTaxpayer(asset.OwnerID) {
		return fmt.Errorf("owner %q is not a known taxpayer", asset.OwnerID)
	}
	if !asset.Category.Valid() {
		return fmt.Errorf("unknown category %q", asset.Category)
	}
	if asset.Cost.IsNegative() || asset.MarketValue.IsNegative() {
		return fmt.Errorf("cost and market value cannot be negative")
	}
	if asset.AcquiredYear != "" && !asset.AcquiredYear.Valid() {
		return fmt.Errorf("acquired year %q is not a four-digit year", asset.AcquiredYear)
	}
	for _, v := range asset.Valuations {
		if !v.TaxYear.Valid() {
			return fmt.Errorf("valuation year %q is not a four-digit year", v.TaxYear)
		}
		if v.MarketValue.IsNegative() {
			return fmt.Errorf("valuation for %s cannot be negative", v.TaxYear)
		}
	}
	for _, e := range asset.PropertyExpenses {
		if !e.TaxYear.Valid() {
			return fmt.Errorf("property expense year %q is not a four-digit year", e.TaxYear)
		}
		if e.Amount.IsNegative() || e.MarketValue.IsNegative() {
			return fmt.Errorf("property expense for %s cannot be negative", e.TaxYear)
		}
	}
	for _, b := range asset.Balances {
		if !b.TaxYear.Valid() {
			return fmt.Errorf("balance year %q is not a four-digit year", b.TaxYear)
		}
		if b.ClosingBalance.IsNegative() || b.InterestEarned.IsNegative() {
			return fmt.Errorf("balance entry for %s cannot be negative", b.TaxYear)
		}
	}
	for _, s := range asset.StockBalances {
		if !s.TaxYear.Valid() {
			return fmt.Errorf("stock balance year %q is not a four-digit year", s.TaxYear)
		}
		if s.PortfolioValue.IsNegative() {
			return fmt.Errorf("portfolio value for %s cannot be negative", s.TaxYear)
		}
	}
	return nil
}

// validateLiability validates a liability and its balance history.
func (ip *InputParser) validateLiability(liability *domain.Liability) error {
	if liability.ID == "" {
		return fmt.Errorf("id is required")
	}
	if liability.OriginalAmount.IsNegative() {
		return fmt.Errorf("original amount cannot be negative")
	}
	if liability.TakenYear != "" && !liability.TakenYear.Valid() {
		return fmt.Errorf("taken year %q is not a four-digit year", liability.TakenYear)
	}
	for _, b := range liability.Balances {
		if !b.TaxYear.Valid() {
			return fmt.Errorf("balance year %q is not a four-digit year", b.TaxYear)
		}
		if b.ClosingBalance.IsNegative() {
			return fmt.Errorf("closing balance for %s cannot be negative", b.TaxYear)
		}
	}
	return nil
}

// ValidateRules validates a rule table. Every band except the last must have
// a positive width; the last must be unbounded so all income is covered.
func ValidateRules(rules *domain.TaxRules) error {
	if rules.PersonalRelief.IsNegative() {
		return fmt.Errorf("personal relief cannot be negative")
	}
	if rules.SolarReliefCap.IsNegative() {
		return fmt.Errorf("solar relief cap cannot be negative")
	}
	if rules.RentReliefRate.IsNegative() || rules.RentReliefRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rent relief rate must be between 0 and 1")
	}
	if len(rules.Brackets) == 0 {
		return fmt.Errorf("at least one bracket band is required")
	}
	for i, band := range rules.Brackets {
		if band.Rate.IsNegative() || band.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("band %d: rate must be between 0 and 1", i)
		}
		last := i == len(rules.Brackets)-1
		if !last && band.Unbounded() {
			return fmt.Errorf("band %d: only the final band may be unbounded", i)
		}
		if last && !band.Unbounded() {
			return fmt.Errorf("final band must be unbounded (zero width)")
		}
	}
	if rules.Risk.SafeCeiling.GreaterThanOrEqual(rules.Risk.WarningCeiling) {
		return fmt.Errorf("safe ceiling must be below warning ceiling")
	}
	return nil
}
