package output

import (
	"bytes"
	"encoding/csv"

	"github.com/e9akhan/finutil/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "SimpleAmount", "CompoundAmount", "FutureValue", "RequiredPayment"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		required := ""
		if sc.RequiredPayment != nil {
			required = sc.RequiredPayment.StringFixed(2)
		}
		row := []string{
			sc.Name,
			sc.SimpleAmount.StringFixed(2),
			sc.CompoundAmount.StringFixed(2),
			sc.FutureValue.StringFixed(2),
			required,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
