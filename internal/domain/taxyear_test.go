package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxYearValid(t *testing.T) {
	tests := []struct {
		year     TaxYear
		expected bool
	}{
		{"2024", true},
		{"0999", true},
		{"24", false},
		{"20245", false},
		{"20a4", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.year.Valid(), "year %q", tt.year)
	}
}

func TestTaxYearNavigation(t *testing.T) {
	assert.Equal(t, TaxYear("2023"), TaxYear("2024").Prev())
	assert.Equal(t, TaxYear("2025"), TaxYear("2024").Next())
	assert.Equal(t, TaxYear("0999"), TaxYear("1000").Prev(), "keys stay fixed-width")
}

func TestTaxYearOrdering(t *testing.T) {
	assert.True(t, TaxYear("2023").Before("2024"))
	assert.True(t, TaxYear("2024").After("2023"))
	assert.False(t, TaxYear("2024").Before("2024"))
	assert.False(t, TaxYear("2024").After("2024"))
}
