package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// VALUATION RULES:
//
// 1. Only entries dated at or before the requested year are ever considered;
//    among those, the latest wins. An entry dated after the requested year is
//    ignored even when it is the only one present.
//
// 2. A recorded value of exactly zero is indistinguishable from "no record"
//    and falls through to the next source. This mirrors the authoritative
//    behavior of the filing rules this engine implements; do not "fix" it.
//
// 3. Empty collections behave identically to absent ones, and collections
//    that do not belong to the asset's category are dead data, never an
//    error.

// ResolveValue returns the authoritative market value of an asset as of a
// tax year. It is total: there is always an answer, the last fallback being
// the asset's base financials.
func ResolveValue(asset domain.Asset, year domain.TaxYear) decimal.Decimal {
	switch asset.Category {
	case domain.CategoryProperty, domain.CategoryBusinessProperty:
		if v, ok := latestValuationNotAfter(asset.Valuations, year); ok {
			return v
		}
		if v, ok := latestExpenseValueNotAfter(asset.PropertyExpenses, year); ok {
			return v
		}
		return asset.MarketValue

	case domain.CategoryVehicle:
		if v, ok := latestValuationNotAfter(asset.Valuations, year); ok {
			return v
		}
		return asset.MarketValue

	case domain.CategoryStockPortfolio:
		if v, ok := latestStockValueNotAfter(asset.StockBalances, year); ok {
			return v
		}
		return asset.MarketValue

	case domain.CategoryBankBalance, domain.CategoryCash, domain.CategoryLoanGiven:
		if v, ok := latestClosingNotAfter(asset.Balances, year); ok {
			return v
		}
		return baseValue(asset)

	default:
		return asset.MarketValue
	}
}

// OpeningBalance derives the opening balance of a ledger-style asset for a
// tax year: the closing balance of the latest entry strictly before that
// year, or the asset's base financials when no prior entry exists. It is the
// "opening = prior closing" rule shared by every ledger lookup.
func OpeningBalance(asset domain.Asset, year domain.TaxYear) decimal.Decimal {
	if v, ok := latestClosingNotAfter(asset.Balances, year.Prev()); ok {
		return v
	}
	return baseValue(asset)
}

// baseValue is the ledger fallback: the recorded market value, or the
// acquisition cost when no market value was captured.
func baseValue(asset domain.Asset) decimal.Decimal {
	if !asset.MarketValue.IsZero() {
		return asset.MarketValue
	}
	return asset.Cost
}

// latestValuationNotAfter finds the valuation with the greatest tax year not
// after the requested year. A zero recorded value reads as absent.
func latestValuationNotAfter(entries []domain.Valuation, year domain.TaxYear) (decimal.Decimal, bool) {
	var best domain.TaxYear
	value := decimal.Zero
	found := false
	for _, e := range entries {
		if e.TaxYear.After(year) {
			continue
		}
		if !found || e.TaxYear.After(best) {
			best, value, found = e.TaxYear, e.MarketValue, true
		}
	}
	if !found || value.IsZero() {
		return decimal.Zero, false
	}
	return value, true
}

// latestExpenseValueNotAfter applies the same temporal rule to property
// expenses, considering only entries that carry a market value.
func latestExpenseValueNotAfter(entries []domain.PropertyExpense, year domain.TaxYear) (decimal.Decimal, bool) {
	var best domain.TaxYear
	value := decimal.Zero
	found := false
	for _, e := range entries {
		if e.TaxYear.After(year) || e.MarketValue.IsZero() {
			continue
		}
		if !found || e.TaxYear.After(best) {
			best, value, found = e.TaxYear, e.MarketValue, true
		}
	}
	return value, found
}

func latestStockValueNotAfter(entries []domain.StockBalance, year domain.TaxYear) (decimal.Decimal, bool) {
	var best domain.TaxYear
	value := decimal.Zero
	found := false
	for _, e := range entries {
		if e.TaxYear.After(year) {
			continue
		}
		if !found || e.TaxYear.After(best) {
			best, value, found = e.TaxYear, e.PortfolioValue, true
		}
	}
	if !found || value.IsZero() {
		return decimal.Zero, false
	}
	return value, true
}

func latestClosingNotAfter(entries []domain.BalanceEntry, year domain.TaxYear) (decimal.Decimal, bool) {
	var best domain.TaxYear
	value := decimal.Zero
	found := false
	for _, e := range entries {
		if e.TaxYear.After(year) {
			continue
		}
		if !found || e.TaxYear.After(best) {
			best, value, found = e.TaxYear, e.ClosingBalance, true
		}
	}
	if !found || value.IsZero() {
		return decimal.Zero, false
	}
	return value, true
}
