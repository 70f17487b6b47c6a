package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/e9akhan/finutil/internal/domain"
)

// ConsoleVerboseFormatter prints each scenario with its full yearly schedule.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS PLAN DETAIL")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	for _, sc := range report.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "--- %s ---\n", sc.Name)
		fmt.Fprintf(&buf, "Simple interest amount:   %s\n", FormatAmount(sc.SimpleAmount))
		fmt.Fprintf(&buf, "Compound interest amount: %s\n", FormatAmount(sc.CompoundAmount))
		fmt.Fprintf(&buf, "Future value:             %s\n", FormatAmount(sc.FutureValue))
		if sc.RequiredPayment != nil {
			fmt.Fprintf(&buf, "Required yearly payment:  %s\n", FormatAmount(*sc.RequiredPayment))
		}

		w := tabwriter.NewWriter(&buf, 2, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Year\tOpening\tInterest\tPayment\tClosing\t")
		for _, row := range sc.Schedule {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
				row.Year,
				FormatAmount(row.Opening),
				FormatAmount(row.Interest),
				FormatAmount(row.Payment),
				FormatAmount(row.Closing),
			)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
