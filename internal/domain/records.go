package domain

import (
	"github.com/shopspring/decimal"
)

// Taxpayer is the owning entity for income records and certificates. The
// engine never creates or mutates taxpayers; it only checks that every record
// it is asked to compute over references one.
type Taxpayer struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	TIN  string `yaml:"tin,omitempty" json:"tin,omitempty"`
}

// Schedule tags an income record with the statutory schedule it is declared
// under. Fields on IncomeRecord that belong to a different schedule are dead
// data and are never read by the aggregator.
type Schedule string

const (
	ScheduleEmployment Schedule = "employment"
	ScheduleBusiness   Schedule = "business"
	ScheduleInvestment Schedule = "investment"
	ScheduleOther      Schedule = "other"
)

// Valid reports whether s is one of the four known schedules.
func (s Schedule) Valid() bool {
	switch s {
	case ScheduleEmployment, ScheduleBusiness, ScheduleInvestment, ScheduleOther:
		return true
	}
	return false
}

// InvestmentKind sub-tags an investment record. Rent receives an automatic
// 25% relief before inclusion in total income; interest and dividends do not.
type InvestmentKind string

const (
	InvestmentInterest InvestmentKind = "interest"
	InvestmentDividend InvestmentKind = "dividend"
	InvestmentRent     InvestmentKind = "rent"
)

// Valid reports whether k is a known investment kind.
func (k InvestmentKind) Valid() bool {
	switch k {
	case InvestmentInterest, InvestmentDividend, InvestmentRent:
		return true
	}
	return false
}

// IncomeRecord is a single declared income line for one taxpayer in one tax
// year. It is a tagged union over schedules: only the field group matching
// Schedule is meaningful.
type IncomeRecord struct {
	ID       string   `yaml:"id" json:"id"`
	OwnerID  string   `yaml:"owner_id" json:"owner_id"`
	TaxYear  TaxYear  `yaml:"tax_year" json:"tax_year"`
	Schedule Schedule `yaml:"schedule" json:"schedule"`

	// Employment schedule
	Remuneration    decimal.Decimal `yaml:"remuneration,omitempty" json:"remuneration,omitempty"`
	NonCashBenefits decimal.Decimal `yaml:"non_cash_benefits,omitempty" json:"non_cash_benefits,omitempty"`
	ExemptIncome    decimal.Decimal `yaml:"exempt_income,omitempty" json:"exempt_income,omitempty"`
	APITDeducted    decimal.Decimal `yaml:"apit_deducted,omitempty" json:"apit_deducted,omitempty"`

	// Business schedule
	GrossRevenue   decimal.Decimal `yaml:"gross_revenue,omitempty" json:"gross_revenue,omitempty"`
	DirectExpenses decimal.Decimal `yaml:"direct_expenses,omitempty" json:"direct_expenses,omitempty"`

	// Investment schedule (Kind selects the sub-type); Gross and WHTDeducted
	// are shared with the other schedule.
	Kind        InvestmentKind  `yaml:"kind,omitempty" json:"kind,omitempty"`
	Gross       decimal.Decimal `yaml:"gross,omitempty" json:"gross,omitempty"`
	WHTDeducted decimal.Decimal `yaml:"wht_deducted,omitempty" json:"wht_deducted,omitempty"`

	// Other schedule
	ExemptAmount decimal.Decimal `yaml:"exempt_amount,omitempty" json:"exempt_amount,omitempty"`
}

// CertificateKind labels the origin of a withholding certificate.
type CertificateKind string

const (
	CertificateAPIT CertificateKind = "apit"
	CertificateWHT  CertificateKind = "wht"
)

// Certificate is a withholding-tax or advance-tax receipt issued by a payer.
// Certificates feed tax credits independently of income records; when
// IncomeRecordID links one to a record, the certificate's figure wins and the
// record's own withheld field is not counted again.
type Certificate struct {
	ID             string          `yaml:"id" json:"id"`
	OwnerID        string          `yaml:"owner_id" json:"owner_id"`
	TaxYear        TaxYear         `yaml:"tax_year" json:"tax_year"`
	Kind           CertificateKind `yaml:"kind" json:"kind"`
	Payer          string          `yaml:"payer,omitempty" json:"payer,omitempty"`
	Gross          decimal.Decimal `yaml:"gross" json:"gross"`
	TaxDeducted    decimal.Decimal `yaml:"tax_deducted" json:"tax_deducted"`
	Net            decimal.Decimal `yaml:"net,omitempty" json:"net,omitempty"`
	IncomeRecordID string          `yaml:"income_record_id,omitempty" json:"income_record_id,omitempty"`
}

// LiabilityBalance records the outstanding balance of a liability at the end
// of a tax year.
type LiabilityBalance struct {
	TaxYear        TaxYear         `yaml:"tax_year" json:"tax_year"`
	ClosingBalance decimal.Decimal `yaml:"closing_balance" json:"closing_balance"`
}

// Liability is a loan taken by the taxpayer. A year-over-year balance
// decrease is a repayment the taxpayer must explain; an increase is new
// borrowing and explains wealth growth instead.
type Liability struct {
	ID             string             `yaml:"id" json:"id"`
	Lender         string             `yaml:"lender" json:"lender"`
	OriginalAmount decimal.Decimal    `yaml:"original_amount" json:"original_amount"`
	TakenYear      TaxYear            `yaml:"taken_year" json:"taken_year"`
	Balances       []LiabilityBalance `yaml:"balances,omitempty" json:"balances,omitempty"`
}
