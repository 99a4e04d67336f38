package dateutil

import (
	"fmt"
	"time"
)

// The fiscal year runs 1 April to 31 March and is keyed by the calendar year
// in which it starts, as a fixed-width four-digit string so lexicographic
// order matches numeric order.

// TaxYearKey returns the key of the fiscal year containing the given date.
func TaxYearKey(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%04d", year)
}
