package domain

import (
	"fmt"
	"strconv"
)

// TaxYear identifies an April–March fiscal year by the calendar year in which
// it starts, e.g. "2023" for the year running 1 April 2023 to 31 March 2024.
// Keys are fixed-width four-digit strings so that lexicographic comparison
// agrees with numeric comparison; every temporal lookup in the engine relies
// on this.
type TaxYear string

// Valid reports whether the key is a four-digit year string.
func (y TaxYear) Valid() bool {
	if len(y) != 4 {
		return false
	}
	for _, c := range y {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Prev returns the preceding tax year.
func (y TaxYear) Prev() TaxYear {
	n, err := strconv.Atoi(string(y))
	if err != nil {
		return ""
	}
	return TaxYear(fmt.Sprintf("%04d", n-1))
}

// Next returns the following tax year.
func (y TaxYear) Next() TaxYear {
	n, err := strconv.Atoi(string(y))
	if err != nil {
		return ""
	}
	return TaxYear(fmt.Sprintf("%04d", n+1))
}

// Before reports whether y starts before other.
func (y TaxYear) Before(other TaxYear) bool { return y < other }

// After reports whether y starts after other.
func (y TaxYear) After(other TaxYear) bool { return y > other }
