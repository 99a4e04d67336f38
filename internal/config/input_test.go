package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

func TestExampleSnapshotValidates(t *testing.T) {
	parser := NewInputParser()
	snap := parser.CreateExampleSnapshot()

	err := parser.ValidateSnapshot(snap)
	assert.NoError(t, err, "the shipped example must always validate")
}

// TestLoadFromFileRoundTrip serializes the example snapshot to YAML and loads
// it back, checking the decimal fields survive intact.
func TestLoadFromFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleSnapshot()

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Income, len(original.Income))
	assert.True(t, decimal.NewFromInt(3000000).Equal(loaded.Income[0].Remuneration))
	require.Len(t, loaded.Assets, len(original.Assets))
	assert.True(t, decimal.NewFromInt(26500000).Equal(loaded.Assets[0].Valuations[1].MarketValue))
	require.Len(t, loaded.Certificates, 1)
	assert.Equal(t, "inc-emp-2024", loaded.Certificates[0].IncomeRecordID)
}

func TestLoadFromFileMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("/nonexistent/snapshot.yaml")
	assert.ErrorContains(t, err, "failed to read file")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("taxpayers: [}{"), 0o644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestValidateSnapshot(t *testing.T) {
	base := func() *domain.Snapshot {
		return &domain.Snapshot{
			Taxpayers: []domain.Taxpayer{{ID: "tp-1", Name: "A. Perera"}},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*domain.Snapshot)
		expectedErr string
	}{
		{
			name:        "No taxpayers",
			mutate:      func(s *domain.Snapshot) { s.Taxpayers = nil },
			expectedErr: "no taxpayers provided",
		},
		{
			name:        "Taxpayer without id",
			mutate:      func(s *domain.Snapshot) { s.Taxpayers = []domain.Taxpayer{{Name: "A"}} },
			expectedErr: "id is required",
		},
		{
			name: "Income record with unknown owner",
			mutate: func(s *domain.Snapshot) {
				s.Income = []domain.IncomeRecord{{
					ID: "r1", OwnerID: "ghost", TaxYear: "2024", Schedule: domain.ScheduleEmployment,
				}}
			},
			expectedErr: "not a known taxpayer",
		},
		{
			name: "Income record with malformed year",
			mutate: func(s *domain.Snapshot) {
				s.Income = []domain.IncomeRecord{{
					ID: "r1", OwnerID: "tp-1", TaxYear: "24", Schedule: domain.ScheduleEmployment,
				}}
			},
			expectedErr: "not a four-digit year",
		},
		{
			name: "Income record with unknown schedule",
			mutate: func(s *domain.Snapshot) {
				s.Income = []domain.IncomeRecord{{
					ID: "r1", OwnerID: "tp-1", TaxYear: "2024", Schedule: "pension",
				}}
			},
			expectedErr: "unknown schedule",
		},
		{
			name: "Investment record without a kind",
			mutate: func(s *domain.Snapshot) {
				s.Income = []domain.IncomeRecord{{
					ID: "r1", OwnerID: "tp-1", TaxYear: "2024", Schedule: domain.ScheduleInvestment,
					Gross: decimal.NewFromInt(100000),
				}}
			},
			expectedErr: "unknown investment kind",
		},
		{
			name: "Negative remuneration",
			mutate: func(s *domain.Snapshot) {
				s.Income = []domain.IncomeRecord{{
					ID: "r1", OwnerID: "tp-1", TaxYear: "2024", Schedule: domain.ScheduleEmployment,
					Remuneration: decimal.NewFromInt(-1),
				}}
			},
			expectedErr: "cannot be negative",
		},
		{
			name: "Duplicate income record ids",
			mutate: func(s *domain.Snapshot) {
				rec := domain.IncomeRecord{
					ID: "r1", OwnerID: "tp-1", TaxYear: "2024", Schedule: domain.ScheduleEmployment,
				}
				s.Income = []domain.IncomeRecord{rec, rec}
			},
			expectedErr: "duplicate id",
		},
		{
			name: "Certificate deduction exceeding gross",
			mutate: func(s *domain.Snapshot) {
				s.Certificates = []domain.Certificate{{
					ID: "c1", OwnerID: "tp-1", TaxYear: "2024", Kind: domain.CertificateAPIT,
					Gross:       decimal.NewFromInt(100000),
					TaxDeducted: decimal.NewFromInt(150000),
				}}
			},
			expectedErr: "tax deducted cannot exceed gross",
		},
		{
			name: "Certificate linked to a missing record",
			mutate: func(s *domain.Snapshot) {
				s.Certificates = []domain.Certificate{{
					ID: "c1", OwnerID: "tp-1", TaxYear: "2024", Kind: domain.CertificateWHT,
					Gross:          decimal.NewFromInt(100000),
					TaxDeducted:    decimal.NewFromInt(10000),
					IncomeRecordID: "nope",
				}}
			},
			expectedErr: "does not exist",
		},
		{
			name: "Asset with unknown owner",
			mutate: func(s *domain.Snapshot) {
				s.Assets = []domain.Asset{{ID: "a1", OwnerID: "ghost", Category: domain.CategoryVehicle}}
			},
			expectedErr: "not a known taxpayer",
		},
		{
			name: "Asset with unknown category",
			mutate: func(s *domain.Snapshot) {
				s.Assets = []domain.Asset{{ID: "a1", OwnerID: "tp-1", Category: "yacht"}}
			},
			expectedErr: "unknown category",
		},
		{
			name: "Asset valuation with malformed year",
			mutate: func(s *domain.Snapshot) {
				s.Assets = []domain.Asset{{
					ID: "a1", OwnerID: "tp-1", Category: domain.CategoryProperty,
					Valuations: []domain.Valuation{{TaxYear: "20245"}},
				}}
			},
			expectedErr: "not a four-digit year",
		},
		{
			name: "Liability with negative balance",
			mutate: func(s *domain.Snapshot) {
				s.Liabilities = []domain.Liability{{
					ID: "l1", OriginalAmount: decimal.NewFromInt(1000000), TakenYear: "2021",
					Balances: []domain.LiabilityBalance{
						{TaxYear: "2023", ClosingBalance: decimal.NewFromInt(-1)},
					},
				}}
			},
			expectedErr: "cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base()
			tt.mutate(snap)
			err := parser.ValidateSnapshot(snap)
			assert.ErrorContains(t, err, tt.expectedErr)
		})
	}
}

func TestValidateRules(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		rules := domain.DefaultTaxRules()
		assert.NoError(t, ValidateRules(&rules))
	})

	t.Run("final band must be unbounded", func(t *testing.T) {
		rules := domain.DefaultTaxRules()
		rules.Brackets = []domain.BracketBand{
			{Width: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.06)},
		}
		assert.ErrorContains(t, ValidateRules(&rules), "must be unbounded")
	})

	t.Run("only the final band may be unbounded", func(t *testing.T) {
		rules := domain.DefaultTaxRules()
		rules.Brackets = []domain.BracketBand{
			{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.06)},
			{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.36)},
		}
		assert.ErrorContains(t, ValidateRules(&rules), "only the final band")
	})

	t.Run("rates outside 0 to 1 rejected", func(t *testing.T) {
		rules := domain.DefaultTaxRules()
		rules.Brackets[0].Rate = decimal.NewFromInt(6)
		assert.ErrorContains(t, ValidateRules(&rules), "rate must be between 0 and 1")
	})

	t.Run("risk ceilings must be ordered", func(t *testing.T) {
		rules := domain.DefaultTaxRules()
		rules.Risk.SafeCeiling = rules.Risk.WarningCeiling
		assert.ErrorContains(t, ValidateRules(&rules), "safe ceiling must be below warning ceiling")
	})

	t.Run("snapshot rules validated on load", func(t *testing.T) {
		bad := domain.DefaultTaxRules()
		bad.PersonalRelief = decimal.NewFromInt(-1)
		snap := &domain.Snapshot{
			Taxpayers: []domain.Taxpayer{{ID: "tp-1"}},
			Rules:     &bad,
		}
		err := NewInputParser().ValidateSnapshot(snap)
		assert.ErrorContains(t, err, "rules validation failed")
	})
}
