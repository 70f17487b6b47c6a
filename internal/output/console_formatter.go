package output

import (
	"bytes"
	"fmt"

	"github.com/e9akhan/finutil/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&buf)
	for _, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "%s: Simple=%s Compound=%s FutureValue=%s\n",
			sc.Name,
			FormatAmount(sc.SimpleAmount),
			FormatAmount(sc.CompoundAmount),
			FormatAmount(sc.FutureValue),
		)
		if sc.RequiredPayment != nil {
			fmt.Fprintf(&buf, "  Required yearly payment: %s\n", FormatAmount(*sc.RequiredPayment))
		}
	}
	return buf.Bytes(), nil
}
