package domain

import (
	"github.com/shopspring/decimal"
)

// AssetCategory classifies an asset and determines which historical-record
// collection, if any, governs its valuation. Collections that do not belong
// to the asset's category may be present in the data but are never consulted.
type AssetCategory string

const (
	CategoryProperty         AssetCategory = "immovable_property"
	CategoryVehicle          AssetCategory = "vehicle"
	CategoryBankBalance      AssetCategory = "bank_balance"
	CategoryCash             AssetCategory = "cash"
	CategoryLoanGiven        AssetCategory = "loan_given"
	CategoryStockPortfolio   AssetCategory = "stock_portfolio"
	CategoryBusinessProperty AssetCategory = "business_property"
	CategoryOtherAsset       AssetCategory = "other"
)

// Valid reports whether c is a known asset category.
func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryProperty, CategoryVehicle, CategoryBankBalance, CategoryCash,
		CategoryLoanGiven, CategoryStockPortfolio, CategoryBusinessProperty, CategoryOtherAsset:
		return true
	}
	return false
}

// Valuation is a recorded market value of an asset as of a tax year.
type Valuation struct {
	TaxYear     TaxYear         `yaml:"tax_year" json:"tax_year"`
	MarketValue decimal.Decimal `yaml:"market_value" json:"market_value"`
}

// PropertyExpense is an improvement or maintenance outlay on a property,
// optionally carrying an updated market value. Entries with a market value
// act as a secondary valuation source for property categories.
type PropertyExpense struct {
	TaxYear     TaxYear         `yaml:"tax_year" json:"tax_year"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	MarketValue decimal.Decimal `yaml:"market_value,omitempty" json:"market_value,omitempty"`
}

// BalanceEntry is one year's line in the running ledger of an
// interest-bearing asset. Each year's opening balance is the prior year's
// closing balance.
type BalanceEntry struct {
	TaxYear        TaxYear         `yaml:"tax_year" json:"tax_year"`
	ClosingBalance decimal.Decimal `yaml:"closing_balance" json:"closing_balance"`
	InterestEarned decimal.Decimal `yaml:"interest_earned,omitempty" json:"interest_earned,omitempty"`
}

// StockBalance is one year's summary of a stock portfolio.
type StockBalance struct {
	TaxYear        TaxYear         `yaml:"tax_year" json:"tax_year"`
	PortfolioValue decimal.Decimal `yaml:"portfolio_value" json:"portfolio_value"`
	Purchases      decimal.Decimal `yaml:"purchases,omitempty" json:"purchases,omitempty"`
	Dividends      decimal.Decimal `yaml:"dividends,omitempty" json:"dividends,omitempty"`
	Sales          decimal.Decimal `yaml:"sales,omitempty" json:"sales,omitempty"`
	RealizedGain   decimal.Decimal `yaml:"realized_gain,omitempty" json:"realized_gain,omitempty"`
}

// Asset is a single item of taxpayer wealth. Cost is the full acquisition
// outlay; MarketValue is the base value used when no historical record
// answers a valuation query.
type Asset struct {
	ID           string          `yaml:"id" json:"id"`
	OwnerID      string          `yaml:"owner_id" json:"owner_id"`
	Name         string          `yaml:"name" json:"name"`
	Category     AssetCategory   `yaml:"category" json:"category"`
	Cost         decimal.Decimal `yaml:"cost" json:"cost"`
	MarketValue  decimal.Decimal `yaml:"market_value" json:"market_value"`
	AcquiredYear TaxYear         `yaml:"acquired_year" json:"acquired_year"`

	Valuations       []Valuation       `yaml:"valuations,omitempty" json:"valuations,omitempty"`
	PropertyExpenses []PropertyExpense `yaml:"property_expenses,omitempty" json:"property_expenses,omitempty"`
	Balances         []BalanceEntry    `yaml:"balances,omitempty" json:"balances,omitempty"`
	StockBalances    []StockBalance    `yaml:"stock_balances,omitempty" json:"stock_balances,omitempty"`
}
