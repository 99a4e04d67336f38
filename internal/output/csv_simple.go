package output

import (
	"bytes"
	"encoding/csv"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per assessed year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(assessment *domain.Assessment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TaxYear", "TotalIncome", "TaxableIncome", "TaxOnIncome", "TaxCredits", "FinalTaxPayable", "AssetGrowth", "RiskScore", "RiskBand"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{string(assessment.TaxYear), "", "", "", "", "", "", "", ""}
	if tax := assessment.Tax; tax != nil {
		row[1] = tax.TotalIncome.StringFixed(2)
		row[2] = tax.TaxableIncome.StringFixed(2)
		row[3] = tax.TaxOnIncome.StringFixed(2)
		row[4] = tax.TaxCredits.StringFixed(2)
		row[5] = tax.FinalTaxPayable.StringFixed(2)
	}
	if risk := assessment.Risk; risk != nil {
		row[6] = risk.AssetGrowth.StringFixed(2)
		row[7] = risk.RiskScore.StringFixed(2)
		row[8] = string(risk.Band)
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
