package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/e9akhan/finutil/internal/domain"
)

// CSVDetailedExporter writes one row per schedule year across all scenarios.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv-detailed" }

func (c CSVDetailedExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Opening", "Interest", "Payment", "Closing"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		for _, row := range sc.Schedule {
			record := []string{
				sc.Name,
				strconv.Itoa(row.Year),
				row.Opening.StringFixed(2),
				row.Interest.StringFixed(2),
				row.Payment.StringFixed(2),
				row.Closing.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
