package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// ConsoleFormatter renders a concise per-year assessment summary, including
// the band-by-band bracket breakdown and the audit-risk components.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(assessment *domain.Assessment) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX ASSESSMENT %s/%s\n", assessment.TaxYear, assessment.TaxYear.Next())
	fmt.Fprintln(&buf, strings.Repeat("=", 32))

	if tax := assessment.Tax; tax != nil {
		fmt.Fprintf(&buf, "Employment income:  %s\n", FormatCurrency(tax.GrossBySchedule.Employment))
		fmt.Fprintf(&buf, "Business income:    %s\n", FormatCurrency(tax.GrossBySchedule.Business))
		fmt.Fprintf(&buf, "Investment income:  %s\n", FormatCurrency(tax.GrossBySchedule.Investment))
		fmt.Fprintf(&buf, "Other income:       %s\n", FormatCurrency(tax.GrossBySchedule.Other))
		fmt.Fprintf(&buf, "Total income:       %s\n", FormatCurrency(tax.TotalIncome))
		fmt.Fprintf(&buf, "Personal relief:    %s\n", FormatCurrency(tax.PersonalRelief))
		fmt.Fprintf(&buf, "Solar relief:       %s\n", FormatCurrency(tax.SolarRelief))
		fmt.Fprintf(&buf, "Taxable income:     %s\n", FormatCurrency(tax.TaxableIncome))
		fmt.Fprintln(&buf)
		for _, b := range tax.Brackets {
			fmt.Fprintf(&buf, "  %7s on %s = %s\n", FormatPercentage(b.Rate), FormatCurrency(b.Portion), FormatCurrency(b.Tax))
		}
		fmt.Fprintf(&buf, "Tax on income:      %s\n", FormatCurrency(tax.TaxOnIncome))
		fmt.Fprintf(&buf, "Tax credits:        %s\n", FormatCurrency(tax.TaxCredits))
		if tax.IsRefund() {
			fmt.Fprintf(&buf, "Refund due:         %s\n", FormatCurrency(tax.FinalTaxPayable.Neg()))
		} else {
			fmt.Fprintf(&buf, "Tax payable:        %s\n", FormatCurrency(tax.FinalTaxPayable))
		}
	}

	if risk := assessment.Risk; risk != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Asset growth:       %s\n", FormatCurrency(risk.AssetGrowth))
		fmt.Fprintf(&buf, "Loan repayments:    %s\n", FormatCurrency(risk.LoanRepayments))
		fmt.Fprintf(&buf, "Living expenses:    %s\n", FormatCurrency(risk.LivingExpenses))
		fmt.Fprintf(&buf, "Declared income:    %s\n", FormatCurrency(risk.DeclaredIncome))
		fmt.Fprintf(&buf, "New borrowing:      %s\n", FormatCurrency(risk.NewBorrowing))
		fmt.Fprintf(&buf, "Risk score:         %s (%s)\n", FormatCurrency(risk.RiskScore), strings.ToUpper(string(risk.Band)))
	}

	return buf.Bytes(), nil
}
