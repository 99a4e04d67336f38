package config

import (
	"github.com/shopspring/decimal"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// CreateExampleSnapshot creates a small but complete example snapshot: one
// taxpayer with income across all four schedules, assets covering every
// valuation source, a partly repaid loan and a linked APIT certificate.
func (ip *InputParser) CreateExampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Taxpayers: []domain.Taxpayer{
			{ID: "tp-1", Name: "A. Perera", TIN: "104523678"},
		},
		Income: []domain.IncomeRecord{
			{
				ID:              "inc-emp-2024",
				OwnerID:         "tp-1",
				TaxYear:         "2024",
				Schedule:        domain.ScheduleEmployment,
				Remuneration:    decimal.NewFromInt(3000000),
				NonCashBenefits: decimal.NewFromInt(240000),
				APITDeducted:    decimal.NewFromInt(200000),
			},
			{
				ID:             "inc-biz-2024",
				OwnerID:        "tp-1",
				TaxYear:        "2024",
				Schedule:       domain.ScheduleBusiness,
				GrossRevenue:   decimal.NewFromInt(1500000),
				DirectExpenses: decimal.NewFromInt(900000),
			},
			{
				ID:          "inc-rent-2024",
				OwnerID:     "tp-1",
				TaxYear:     "2024",
				Schedule:    domain.ScheduleInvestment,
				Kind:        domain.InvestmentRent,
				Gross:       decimal.NewFromInt(1000000),
				WHTDeducted: decimal.NewFromInt(100000),
			},
			{
				ID:       "inc-int-2024",
				OwnerID:  "tp-1",
				TaxYear:  "2024",
				Schedule: domain.ScheduleInvestment,
				Kind:     domain.InvestmentInterest,
				Gross:    decimal.NewFromInt(150000),
			},
			{
				ID:           "inc-other-2024",
				OwnerID:      "tp-1",
				TaxYear:      "2024",
				Schedule:     domain.ScheduleOther,
				Gross:        decimal.NewFromInt(200000),
				ExemptAmount: decimal.NewFromInt(50000),
			},
		},
		Certificates: []domain.Certificate{
			{
				ID:             "cert-apit-2024",
				OwnerID:        "tp-1",
				TaxYear:        "2024",
				Kind:           domain.CertificateAPIT,
				Payer:          "Ceylon Holdings PLC",
				Gross:          decimal.NewFromInt(3000000),
				TaxDeducted:    decimal.NewFromInt(210000),
				Net:            decimal.NewFromInt(2790000),
				IncomeRecordID: "inc-emp-2024",
			},
		},
		Assets: []domain.Asset{
			{
				ID:           "asset-house",
				OwnerID:      "tp-1",
				Name:         "Colombo residence",
				Category:     domain.CategoryProperty,
				Cost:         decimal.NewFromInt(18000000),
				MarketValue:  decimal.NewFromInt(20000000),
				AcquiredYear: "2018",
				Valuations: []domain.Valuation{
					{TaxYear: "2022", MarketValue: decimal.NewFromInt(24000000)},
					{TaxYear: "2024", MarketValue: decimal.NewFromInt(26500000)},
				},
			},
			{
				ID:           "asset-savings",
				OwnerID:      "tp-1",
				Name:         "NSB savings account",
				Category:     domain.CategoryBankBalance,
				Cost:         decimal.NewFromInt(500000),
				MarketValue:  decimal.NewFromInt(500000),
				AcquiredYear: "2020",
				Balances: []domain.BalanceEntry{
					{TaxYear: "2023", ClosingBalance: decimal.NewFromInt(750000), InterestEarned: decimal.NewFromInt(32000)},
					{TaxYear: "2024", ClosingBalance: decimal.NewFromInt(940000), InterestEarned: decimal.NewFromInt(41000)},
				},
			},
			{
				ID:           "asset-portfolio",
				OwnerID:      "tp-1",
				Name:         "CSE portfolio",
				Category:     domain.CategoryStockPortfolio,
				Cost:         decimal.NewFromInt(1000000),
				MarketValue:  decimal.NewFromInt(1000000),
				AcquiredYear: "2021",
				StockBalances: []domain.StockBalance{
					{TaxYear: "2024", PortfolioValue: decimal.NewFromInt(1350000), Dividends: decimal.NewFromInt(45000)},
				},
			},
			{
				ID:           "asset-vehicle",
				OwnerID:      "tp-1",
				Name:         "Toyota Aqua",
				Category:     domain.CategoryVehicle,
				Cost:         decimal.NewFromInt(9500000),
				MarketValue:  decimal.NewFromInt(9500000),
				AcquiredYear: "2024",
			},
		},
		Liabilities: []domain.Liability{
			{
				ID:             "loan-housing",
				Lender:         "Bank of Ceylon",
				OriginalAmount: decimal.NewFromInt(6000000),
				TakenYear:      "2021",
				Balances: []domain.LiabilityBalance{
					{TaxYear: "2023", ClosingBalance: decimal.NewFromInt(4800000)},
					{TaxYear: "2024", ClosingBalance: decimal.NewFromInt(4200000)},
				},
			},
		},
		SolarDeclarations: []domain.SolarDeclaration{
			{TaxYear: "2024", Cost: decimal.NewFromInt(850000)},
		},
		LivingExpenses: []domain.LivingExpenseEstimate{
			{TaxYear: "2024", Amount: decimal.NewFromInt(1800000)},
		},
	}
}
