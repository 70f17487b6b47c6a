// Quick manual check of the yearly schedule against the closed-form future value.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/e9akhan/finutil/internal/finance"
	"github.com/e9akhan/finutil/internal/output"
	"github.com/shopspring/decimal"
)

func main() {
	principal := flag.Float64("principal", 0, "starting amount")
	payment := flag.Float64("payment", 100000, "yearly payment")
	term := flag.Int("term", 35, "years")
	rate := flag.Float64("rate", 0.10, "annual rate")
	due := flag.Bool("due", false, "payments at year start")
	flag.Parse()

	p := decimal.NewFromFloat(*principal)
	pmt := decimal.NewFromFloat(*payment)
	r := decimal.NewFromFloat(*rate)

	rows, err := finance.Schedule(p, pmt, *term, r, !*due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, row := range rows {
		fmt.Printf("%3d  opening=%18s  interest=%15s  closing=%18s\n",
			row.Year, output.FormatAmount(row.Opening), output.FormatAmount(row.Interest), output.FormatAmount(row.Closing))
	}

	fv, err := finance.FutureValue(p, pmt, *term, r, !*due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("\nclosed-form future value: %s\n", output.FormatAmount(fv))
}
